package cmd

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
)

// Set at build time via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func newVersionCommand() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:     "version",
		GroupID: groupUtility,
		Short:   "Print the jenkview CLI version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), formatVersion(verbose))
			return nil
		},
	}
	cmd.Flags().BoolVar(&verbose, "verbose", false, "include commit, build date, and Go runtime")
	return cmd
}

func formatVersion(verbose bool) string {
	version := orDefault(Version, "dev")
	if !verbose {
		return "jenkview " + version
	}
	return fmt.Sprintf(
		"jenkview %s\n  commit: %s\n  built:  %s\n  go:     %s",
		version, orDefault(Commit, "none"), orDefault(Date, "unknown"), runtime.Version(),
	)
}

func orDefault(value, fallback string) string {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		return trimmed
	}
	return fallback
}
