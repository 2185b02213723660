package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/runoshun/leadtime/internal/app"
	"github.com/runoshun/leadtime/internal/domain"
	"github.com/runoshun/leadtime/internal/usecase"
)

// newDaysCommand creates the days command.
func newDaysCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "days START END",
		Short: "Count business days between two dates",
		Long: `Count the business days from START to END, both included.

Dates are YYYY-MM-DD in the local time zone. Weekends and holidays come
from the [calendar] settings.

Examples:
  leadtime days 2019-12-23 2020-01-03`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := domain.ParseDate(args[0], time.Local)
			if err != nil {
				return err
			}
			end, err := domain.ParseDate(args[1], time.Local)
			if err != nil {
				return err
			}
			cal, err := c.Calendar()
			if err != nil {
				return err
			}

			out, err := c.CountDaysUseCase().Execute(cmd.Context(), usecase.CountDaysInput{
				Start:     start,
				End:       end,
				IsWorkDay: cal.Predicate(),
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d business days (%d calendar days)\n", out.Days, out.CalendarDays)
			return nil
		},
	}
	return cmd
}
