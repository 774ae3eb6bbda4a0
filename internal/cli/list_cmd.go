package cli

import (
	"fmt"

	"github.com/alexanderramin/sleeplog/internal/cli/formatter"
	"github.com/alexanderramin/sleeplog/internal/domain"
	"github.com/spf13/cobra"
)

func newListCmd(app *App) *cobra.Command {
	var date dayValue

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded sleep by day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := app.Sleep.Entries(cmd.Context())
			if date.set {
				key := date.d.String()
				filtered := make([]domain.SleepDayEntry, 0, len(entries))
				for _, e := range entries {
					if e.Date == key {
						filtered = append(filtered, e)
					}
				}
				entries = filtered
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatEntries(entries))
			return nil
		},
	}

	cmd.Flags().Var(&date, "date", "Only show entries for this day (YYYY-MM-DD)")

	return cmd
}

func newWeekCmd(app *App) *cobra.Command {
	var today dayValue

	cmd := &cobra.Command{
		Use:   "week",
		Short: "Show the last 7 days of sleep",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			day := app.today()
			if today.set {
				day = today.d
			}

			view := app.Sleep.Week(cmd.Context(), day)
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatWeek(view, day))
			return nil
		},
	}

	cmd.Flags().Var(&today, "today", "Last day of the window (YYYY-MM-DD); defaults to today")

	return cmd
}
