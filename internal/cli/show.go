package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/runoshun/leadtime/internal/app"
	"github.com/runoshun/leadtime/internal/domain"
	"github.com/runoshun/leadtime/internal/usecase"
)

// itemDetail is the encoded form of the show command.
type itemDetail struct {
	domain.ItemReport `yaml:",inline"`
	Children          []domain.ItemReport `json:"children,omitempty" yaml:"children,omitempty"`
	Timeline          []domain.Snapshot   `json:"timeline,omitempty" yaml:"timeline,omitempty"`
}

// newShowCommand creates the show command.
func newShowCommand(c *app.Container) *cobra.Command {
	var opts struct {
		History  string
		Format   string
		Timeline bool
	}

	cmd := &cobra.Command{
		Use:   "show KEY",
		Short: "Show one item",
		Long: `Show one item with its timings and per-category and per-actor durations.
Direct children of the item are listed below it.

Use --timeline to also list the raw snapshots recorded from its history.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
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

			uc := c.ShowItemUseCase(source)
			out, err := uc.Execute(cmd.Context(), usecase.ShowItemInput{
				StatusOverrides: c.AppConfig.Statuses,
				Key:             args[0],
				Options:         assembleOpts,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if opts.Format != formatTable {
				detail := itemDetail{ItemReport: out.Report, Children: out.Children}
				if opts.Timeline {
					detail.Timeline = out.Item.Changes
				}
				return writeEncoded(w, opts.Format, detail)
			}

			writeReportDetail(w, &out.Report)
			if len(out.Children) > 0 {
				_, _ = fmt.Fprintln(w)
				_, _ = fmt.Fprintln(w, "Children:")
				writeReports(w, out.Children)
			}
			if opts.Timeline {
				_, _ = fmt.Fprintln(w)
				writeTimeline(w, out.Item.Changes)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.History, "history", "", "Change history file (YAML or JSON)")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", formatTable, "Output format: table, json or yaml")
	cmd.Flags().BoolVarP(&opts.Timeline, "timeline", "t", false, "Also list the recorded snapshots")

	return cmd
}

// writeTimeline renders the snapshots of an item in order.
func writeTimeline(w io.Writer, changes []domain.Snapshot) {
	rows := make([][]string, 0, len(changes))
	for _, s := range changes {
		flagged := ""
		if s.Flagged {
			flagged = "yes"
		}
		rows = append(rows, []string{
			s.At.Format("2006-01-02 15:04"),
			s.Status.Name,
			s.EffectiveCategory().Display(),
			s.Actor,
			flagged,
		})
	}
	writeTable(w, []string{"AT", "STATUS", "CATEGORY", "ACTOR", "FLAGGED"}, rows)
}
