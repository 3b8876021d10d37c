package cmd

import (
	"context"
	"sync/atomic"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/crmarques/jenkview/engine"
	"github.com/crmarques/jenkview/view"
)

func newViewApplyCommand() *cobra.Command {
	var (
		file        string
		dryRun      bool
		concurrency int
	)

	cmd := &cobra.Command{
		Use:   "apply --file <manifest>",
		Short: "Converge every view declared in a manifest",
		Long: `Converge every view declared in a manifest.

Each view gets a create pass followed by one add-job pass per listed job.
Distinct views converge concurrently; the manifest rejects duplicate names, so
no two passes ever race on the same view.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 {
				return usageError(cmd, "apply takes no positional arguments")
			}
			if file == "" {
				return usageError(cmd, "--file is required")
			}
			if concurrency < 1 {
				return usageError(cmd, "--concurrency must be at least 1")
			}

			manifest, err := view.LoadManifest(file)
			if err != nil {
				return err
			}

			eng, err := loadEngine(cmd, dryRun)
			if err != nil {
				return err
			}

			var changes atomic.Int64

			group, groupCtx := errgroup.WithContext(cmd.Context())
			group.SetLimit(concurrency)

			for _, declared := range manifest.Views {
				declared := declared
				group.Go(func() error {
					return applyDeclaredView(groupCtx, eng, declared, &changes)
				})
			}

			if err := group.Wait(); err != nil {
				return err
			}

			if dryRun {
				successf(cmd, "planned %d change(s) across %d view(s)", changes.Load(), len(manifest.Views))
			} else {
				successf(cmd, "converged %d view(s) with %d change(s)", len(manifest.Views), changes.Load())
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Manifest declaring the desired views")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report intended changes without issuing mutating calls")
	cmd.Flags().IntVar(&concurrency, "concurrency", 4, "Maximum number of views converged at once")
	return cmd
}

// applyDeclaredView runs all passes for one view sequentially; only distinct
// views run concurrently.
func applyDeclaredView(ctx context.Context, eng engine.Engine, declared view.ManifestView, changes *atomic.Int64) error {
	result, err := eng.Converge(ctx, engine.ActionCreate, view.DesiredView{Name: declared.Name})
	if err != nil {
		return err
	}
	changes.Add(int64(len(result.Operations)))

	for _, job := range declared.Jobs {
		result, err := eng.Converge(ctx, engine.ActionAddJob, view.DesiredView{Name: declared.Name, Job: job})
		if err != nil {
			return err
		}
		changes.Add(int64(len(result.Operations)))
	}
	return nil
}
