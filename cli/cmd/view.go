package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crmarques/jenkview/engine"
	"github.com/crmarques/jenkview/view"
)

func newViewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "view",
		GroupID: groupUserFacing,
		Short:   "Converge views against the remote server",
	}

	cmd.AddCommand(newViewCreateCommand())
	cmd.AddCommand(newViewUpdateCommand())
	cmd.AddCommand(newViewDeleteCommand())
	cmd.AddCommand(newViewAddJobCommand())
	cmd.AddCommand(newViewStatusCommand())
	cmd.AddCommand(newViewApplyCommand())

	return cmd
}

func newViewCreateCommand() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create the view and correct its configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := resolveSingleArg(cmd, args, "name")
			if err != nil {
				return err
			}

			eng, err := loadEngine(cmd, dryRun)
			if err != nil {
				return err
			}

			result, err := eng.Converge(cmd.Context(), engine.ActionCreate, view.DesiredView{Name: name})
			if err != nil {
				return err
			}

			reportResult(cmd, result, dryRun)
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report intended changes without issuing mutating calls")
	return cmd
}

func newViewUpdateCommand() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "update <name>",
		Short: "Correct the configuration of an existing view",
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := resolveSingleArg(cmd, args, "name")
			if err != nil {
				return err
			}

			eng, err := loadEngine(cmd, dryRun)
			if err != nil {
				return err
			}

			result, err := eng.Converge(cmd.Context(), engine.ActionUpdate, view.DesiredView{Name: name})
			if err != nil {
				return err
			}

			reportResult(cmd, result, dryRun)
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report intended changes without issuing mutating calls")
	return cmd
}

func newViewDeleteCommand() *cobra.Command {
	var (
		dryRun bool
		yes    bool
	)

	cmd := &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete the view if it exists",
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := resolveSingleArg(cmd, args, "name")
			if err != nil {
				return err
			}

			if !dryRun {
				if err := confirmAction(cmd, yes, fmt.Sprintf("Delete view %q from the remote server?", name)); err != nil {
					return err
				}
			}

			eng, err := loadEngine(cmd, dryRun)
			if err != nil {
				return err
			}

			result, err := eng.Converge(cmd.Context(), engine.ActionDelete, view.DesiredView{Name: name})
			if err != nil {
				return err
			}

			reportResult(cmd, result, dryRun)
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report intended changes without issuing mutating calls")
	cmd.Flags().BoolVar(&yes, "yes", false, "Skip confirmation prompts")
	return cmd
}

func newViewAddJobCommand() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "add-job <name> <job>",
		Short: "Add a job to the view",
		Long: `Add a job to the view.

The call fires on every invocation: membership is not diffed locally, the
server treats re-adding a listed job as a no-op.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return usageError(cmd, "expected <name> <job>")
			}

			eng, err := loadEngine(cmd, dryRun)
			if err != nil {
				return err
			}

			result, err := eng.Converge(cmd.Context(), engine.ActionAddJob, view.DesiredView{Name: args[0], Job: args[1]})
			if err != nil {
				return err
			}

			reportResult(cmd, result, dryRun)
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report intended changes without issuing mutating calls")
	return cmd
}

func newViewStatusCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status <name>",
		Short: "Report whether the view is absent, in sync, or drifted",
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := resolveSingleArg(cmd, args, "name")
			if err != nil {
				return err
			}
			if err := (view.DesiredView{Name: name}).Validate(); err != nil {
				return err
			}

			jenkviewContext, err := loadJenkviewContext()
			if err != nil {
				return err
			}

			observed, err := jenkviewContext.Server.GetView(cmd.Context(), name)
			if err != nil {
				return err
			}

			if !observed.Exists {
				infof(cmd, "view %s: absent", name)
				return nil
			}

			desiredXML, err := view.DesiredXML(name)
			if err != nil {
				return err
			}
			observedCanonical, err := view.Canonical(observed.Doc)
			if err != nil {
				return err
			}

			if observedCanonical == desiredXML {
				infof(cmd, "view %s: in sync", name)
			} else {
				infof(cmd, "view %s: drifted", name)
			}
			return nil
		},
	}

	return cmd
}
