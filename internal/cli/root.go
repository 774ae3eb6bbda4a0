package cli

import (
	"time"

	"github.com/alexanderramin/sleeplog/internal/domain"
	"github.com/alexanderramin/sleeplog/internal/ledger"
	"github.com/alexanderramin/sleeplog/internal/service"
	"github.com/spf13/cobra"
)

// App holds what CLI commands need from the rest of the program.
type App struct {
	Sleep service.SleepService

	// Now supplies the default "today" for week and list; nil means time.Now.
	Now func() time.Time
	// IsInteractive reports whether stdin is a terminal that can answer a
	// prompt. Nil means never.
	IsInteractive func() bool
	// PickSession asks the user which session to delete from an ambiguous
	// day. Nil falls back to the huh picker.
	PickSession func(ambiguous *ledger.AmbiguousDayError) (string, error)
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) today() domain.Day {
	return domain.DayOf(a.now())
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) pickSession(ambiguous *ledger.AmbiguousDayError) (string, error) {
	if a.PickSession != nil {
		return a.PickSession(ambiguous)
	}
	return runSessionPicker(ambiguous)
}

// NewRootCmd creates the top-level "sleeplog" command and registers all
// subcommands against the provided App. The stored ledger is loaded before
// any subcommand runs and pending saves are flushed after it returns.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "sleeplog",
		Short:         "Sleep session log with a rolling weekly view",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			app.Sleep.Start(ctx)
			return app.Sleep.WaitLoaded(ctx)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return app.Sleep.Flush(cmd.Context())
		},
	}

	root.AddCommand(
		newLogCmd(app),
		newEditCmd(app),
		newDeleteDayCmd(app),
		newDeleteSessionCmd(app),
		newListCmd(app),
		newWeekCmd(app),
	)

	return root
}
