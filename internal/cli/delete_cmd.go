package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/sleeplog/internal/cli/formatter"
	"github.com/alexanderramin/sleeplog/internal/ledger"
	"github.com/spf13/cobra"
)

func newDeleteDayCmd(app *App) *cobra.Command {
	var sessionFlag string

	cmd := &cobra.Command{
		Use:   "delete-day DATE",
		Short: "Delete one day's share of a sleep session",
		Long: "Delete one day's share of a sleep session. When several sessions touch\n" +
			"DATE, pick one with --session or from the prompt in a terminal.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			date := args[0]

			sessionID := ""
			if sessionFlag != "" {
				id, err := resolveSessionID(ctx, app, sessionFlag)
				if err != nil {
					return err
				}
				sessionID = id
			}

			res, err := app.Sleep.DeleteDay(ctx, date, sessionID)
			var ambiguous *ledger.AmbiguousDayError
			if errors.As(err, &ambiguous) {
				if !app.interactive() {
					fmt.Fprint(cmd.ErrOrStderr(), formatter.FormatCandidates(ambiguous))
					return err
				}
				picked, pickErr := app.pickSession(ambiguous)
				if pickErr != nil {
					return pickErr
				}
				res, err = app.Sleep.DeleteDay(ctx, date, picked)
			}
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDeleteResult(res))
			return nil
		},
	}

	cmd.Flags().StringVar(&sessionFlag, "session", "", "Session ID or unique prefix")

	return cmd
}

func newDeleteSessionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete-session SESSION",
		Short: "Delete every day of a sleep session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			sessionID, err := resolveSessionID(ctx, app, args[0])
			if err != nil {
				return err
			}

			removed, err := app.Sleep.DeleteSession(ctx, sessionID)
			if err != nil {
				return err
			}

			entries := "entries"
			if removed == 1 {
				entries = "entry"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted session %s (%d %s).\n",
				formatter.Bold(sessionID), removed, entries)
			return nil
		},
	}

	return cmd
}
