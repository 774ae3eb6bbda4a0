package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/sleeplog/internal/cli/formatter"
	"github.com/alexanderramin/sleeplog/internal/ledger"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// errPickCancelled is returned when the user aborts the session picker.
var errPickCancelled = errors.New("delete cancelled")

// sleeplogHuhTheme returns a huh theme using the formatter's Gruvbox palette.
func sleeplogHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// newSessionPicker builds a select over the sessions of an ambiguous day.
// The chosen session id is written to result.
func newSessionPicker(ambiguous *ledger.AmbiguousDayError, result *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(fmt.Sprintf("Which sleep on %s?", ambiguous.Date)).
				Description("Only that session's share of the day is removed.").
				Options(candidateOptions(ambiguous)...).
				Value(result),
		),
	).WithTheme(sleeplogHuhTheme()).WithShowHelp(false)
}

func candidateOptions(ambiguous *ledger.AmbiguousDayError) []huh.Option[string] {
	options := make([]huh.Option[string], 0, len(ambiguous.Candidates))
	for _, c := range ambiguous.Candidates {
		options = append(options, huh.NewOption(formatter.CandidateLabel(c), c.SessionID))
	}
	return options
}

func runSessionPicker(ambiguous *ledger.AmbiguousDayError) (string, error) {
	var picked string
	if err := newSessionPicker(ambiguous, &picked).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", errPickCancelled
		}
		return "", err
	}
	return picked, nil
}
