package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/runoshun/leadtime/internal/app"
	"github.com/runoshun/leadtime/internal/usecase"
)

// newLogsCommand creates the logs command.
func newLogsCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Item  string
		Lines int
	}

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Show the log file",
		Long: `Show entries from the leadtime log file.

Missing references and other per-item warnings are logged with the item key,
so --item shows everything recorded about one item.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ShowLogsUseCase().Execute(cmd.Context(), usecase.ShowLogsInput{
				Item:  opts.Item,
				Lines: opts.Lines,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprint(cmd.OutOrStdout(), out.Content)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Item, "item", "i", "", "Only show entries for this item key")
	cmd.Flags().IntVarP(&opts.Lines, "lines", "n", 0, "Number of lines from the end (0 = all)")

	return cmd
}
