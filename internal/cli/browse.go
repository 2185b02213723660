package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/runoshun/leadtime/internal/app"
	"github.com/runoshun/leadtime/internal/domain"
	"github.com/runoshun/leadtime/internal/usecase"
)

// newBrowseCommand creates the browse command for launching the interactive report browser.
func newBrowseCommand(c *app.Container) *cobra.Command {
	var opts struct {
		History string
		RunID   string
	}

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse item reports interactively",
		Long: `Launch the interactive report browser.

Items are computed from the history file, or read back from a saved run
with --run.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if opts.RunID != "" && opts.History != "" {
				return errors.New("--run and --history cannot be used together")
			}

			if opts.RunID != "" {
				uc := c.ShowRunUseCase()
				return launchTUIFunc("run "+opts.RunID, func(ctx context.Context) ([]domain.ItemReport, error) {
					out, err := uc.Execute(ctx, usecase.ShowRunInput{ID: opts.RunID})
					if err != nil {
						return nil, err
					}
					return out.Run.Items, nil
				})
			}

			source, err := c.HistorySource(opts.History)
			if err != nil {
				return err
			}
			assembleOpts, err := c.AssembleOptions()
			if err != nil {
				return err
			}
			uc := c.ComputeStatsUseCase(source)
			return launchTUIFunc(source.Path(), func(ctx context.Context) ([]domain.ItemReport, error) {
				out, err := uc.Execute(ctx, usecase.ComputeStatsInput{
					StatusOverrides: c.AppConfig.Statuses,
					Source:          source.Path(),
					Options:         assembleOpts,
				})
				if err != nil {
					return nil, err
				}
				return out.Reports, nil
			})
		},
	}

	cmd.Flags().StringVar(&opts.History, "history", "", "Change history file (YAML or JSON)")
	cmd.Flags().StringVar(&opts.RunID, "run", "", "Browse a saved run instead of computing")

	return cmd
}
