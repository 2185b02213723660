package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/runoshun/leadtime/internal/app"
	"github.com/runoshun/leadtime/internal/usecase"
)

// newStatsCommand creates the stats command.
func newStatsCommand(c *app.Container) *cobra.Command {
	var opts struct {
		History string
		Format  string
		Keys    []string
		Max     int
		Save    bool
	}

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Compute lead and cycle times",
		Long: `Compute start and finish dates, lead time, cycle time and per-category
durations for every item in a change history.

The history file is taken from --history or the [history] path setting.
Lead and cycle times are business days, counted with the [calendar] settings.

Examples:
  # All items as a table
  leadtime stats --history history.yaml

  # Two items as JSON
  leadtime stats --key PROJ-1 --key PROJ-2 --format json

  # Save the run for later comparison
  leadtime stats --save`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateFormat(opts.Format); err != nil {
				return err
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
			out, err := uc.Execute(cmd.Context(), usecase.ComputeStatsInput{
				StatusOverrides: c.AppConfig.Statuses,
				Source:          source.Path(),
				Keys:            opts.Keys,
				Options:         assembleOpts,
				Max:             opts.Max,
				Save:            opts.Save,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if opts.Format == formatTable {
				writeReports(w, out.Reports)
				_, _ = fmt.Fprintf(w, "%d items\n", len(out.Reports))
			} else if err := writeEncoded(w, opts.Format, out.Reports); err != nil {
				return err
			}

			if out.RunID != "" {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Saved run %s\n", out.RunID)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.History, "history", "", "Change history file (YAML or JSON)")
	cmd.Flags().StringSliceVarP(&opts.Keys, "key", "k", nil, "Only compute these item keys (repeatable)")
	cmd.Flags().IntVarP(&opts.Max, "max", "n", 0, "Maximum number of items (0 = no limit)")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", formatTable, "Output format: table, json or yaml")
	cmd.Flags().BoolVar(&opts.Save, "save", false, "Save the run to the report database")

	return cmd
}
