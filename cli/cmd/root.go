package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	noStatusOutput bool
	contextName    string
)

var rootCmd = newRootCommand()

const (
	groupUtility    = "utility"
	groupUserFacing = "user"
)

func Execute() error {
	return rootCmd.Execute()
}

func NewRootCommand() *cobra.Command {
	return newRootCommand()
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jenkview",
		Short: "Converge declarative Jenkins views over the Jenkins CLI",
		Long: `jenkview keeps declared Jenkins views in sync with a live Jenkins server.

It observes and mutates views exclusively through the Jenkins CLI jar and only
issues the remote calls a pass actually needs: a view that already exists is
not re-created, and a descriptor that already matches is not re-uploaded.`,
		Example: `  # Ensure a view exists with the standard descriptor
  jenkview view create release-1.0

  # See what a pass would change without touching the server
  jenkview view create release-1.0 --dry-run

  # Add a job to a view (fires on every invocation)
  jenkview view add-job qa build-42

  # Converge every view declared in a manifest
  jenkview view apply --file views.yaml`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)

	cmd.SetHelpCommandGroupID(groupUtility)
	cmd.SetCompletionCommandGroupID(groupUtility)

	cmd.PersistentFlags().BoolVar(&noStatusOutput, "no-status", false, "Suppress status messages and print only command output")
	cmd.PersistentFlags().StringVarP(&contextName, "context", "c", "", "Context from the catalog to run against")

	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		if err == nil {
			return nil
		}
		return usageError(cmd, err.Error())
	})

	cmd.AddGroup(&cobra.Group{ID: groupUserFacing, Title: "Commands:"})
	cmd.AddGroup(&cobra.Group{ID: groupUtility, Title: "Utility Commands:"})

	cmd.AddCommand(newViewCommand())
	cmd.AddCommand(newConfigCommand())
	cmd.AddCommand(newServerCommand())
	cmd.AddCommand(newVersionCommand())

	return cmd
}
