package cmd

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
	"github.com/spf13/cobra"

	"github.com/crmarques/jenkview/faults"
	"github.com/crmarques/jenkview/viewserver"
)

func newServerCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "server",
		GroupID: groupUserFacing,
		Short:   "Inspect the remote server",
	}

	cmd.AddCommand(newServerVersionCommand())
	return cmd
}

func newServerVersionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Report the remote server version and whether it is supported",
		RunE: func(cmd *cobra.Command, args []string) error {
			jenkviewContext, err := loadJenkviewContext()
			if err != nil {
				return err
			}

			reported, err := jenkviewContext.Server.Version(cmd.Context())
			if err != nil {
				return err
			}

			current, err := semver.NewVersion(reported)
			if err != nil {
				return faults.NewTypedError(
					faults.MalformedStateError,
					fmt.Sprintf("server reported unparseable version %q", reported),
					err,
				)
			}

			infof(cmd, "server version: %s", current)

			floor := semver.MustParse(viewserver.MinSupportedServerVersion)
			if current.LessThan(floor) {
				fmt.Fprintf(cmd.ErrOrStderr(),
					"warning: server version %s is below the minimum supported %s; view sub-commands may misbehave\n",
					current, floor)
				return nil
			}

			successf(cmd, "server meets the minimum supported version %s", floor)
			return nil
		},
	}

	return cmd
}
