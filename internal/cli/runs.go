package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/runoshun/leadtime/internal/app"
	"github.com/runoshun/leadtime/internal/usecase"
)

// newRunsCommand creates the runs command.
func newRunsCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "Inspect saved runs",
		Long:  `List and display runs saved with "leadtime stats --save".`,
		// No RunE: shows subcommand list when called without arguments
	}

	cmd.AddCommand(newRunsListCommand(c))
	cmd.AddCommand(newRunsShowCommand(c))

	return cmd
}

// newRunsListCommand creates the runs list subcommand.
func newRunsListCommand(c *app.Container) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List saved runs, newest first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ListRunsUseCase().Execute(cmd.Context(), usecase.ListRunsInput{Limit: limit})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if len(out.Runs) == 0 {
				_, _ = fmt.Fprintln(w, "No saved runs.")
				return nil
			}

			rows := make([][]string, 0, len(out.Runs))
			for _, r := range out.Runs {
				rows = append(rows, []string{
					r.ID,
					r.CreatedAt.Local().Format(time.DateTime),
					r.Source,
					strconv.Itoa(r.ItemCount),
				})
			}
			writeTable(w, []string{"ID", "CREATED", "SOURCE", "ITEMS"}, rows)
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", 20, "Maximum number of runs (0 = all)")

	return cmd
}

// newRunsShowCommand creates the runs show subcommand.
func newRunsShowCommand(c *app.Container) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show ID",
		Short: "Show the items of a saved run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}

			out, err := c.ShowRunUseCase().Execute(cmd.Context(), usecase.ShowRunInput{ID: args[0]})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if format != formatTable {
				return writeEncoded(w, format, out.Run)
			}

			_, _ = fmt.Fprintf(w, "Run %s\n", out.Run.ID)
			_, _ = fmt.Fprintf(w, "Created: %s\n", out.Run.CreatedAt.Local().Format(time.DateTime))
			_, _ = fmt.Fprintf(w, "Source:  %s\n\n", out.Run.Source)
			writeReports(w, out.Run.Items)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatTable, "Output format: table, json or yaml")

	return cmd
}
