package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/sleeplog/internal/domain"
	"github.com/alexanderramin/sleeplog/internal/ledger"
	"github.com/alexanderramin/sleeplog/internal/service"
)

// FormatEntries renders ledger entries as a table in ledger order.
func FormatEntries(entries []domain.SleepDayEntry) string {
	if len(entries) == 0 {
		return Dim("No sleep recorded.") + "\n"
	}

	t := Table{
		Headers:    []string{"DATE", "SESSION", "SPAN", "HOURS", "TYPE", "TOTAL"},
		RightAlign: map[int]bool{3: true, 5: true},
	}
	for _, e := range entries {
		t.Rows = append(t.Rows, []string{
			e.Date,
			TruncID(e.SessionID),
			FormatSpan(e),
			fmt.Sprintf("%.2f", e.Hours),
			SleepTypePill(e.SleepType),
			Dim(fmt.Sprintf("%.2f", e.TotalSleepHours)),
		})
	}
	return t.Render()
}

// FormatSessionResult confirms a logged or edited session and lists the
// days it was split across.
func FormatSessionResult(verb string, res *service.SessionResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s session %s %s\n",
		verb, Bold(shortID(res.SessionID)), Dim("("+FormatHours(res.TotalHours)+")"))
	for _, e := range res.Entries {
		fmt.Fprintf(&b, "  %s  %6.2fh  %s\n", e.Date, e.Hours, SleepTypePill(e.SleepType))
	}
	return b.String()
}

// FormatDeleteResult describes what a delete-day removed.
func FormatDeleteResult(res *ledger.DeleteResult) string {
	id := Bold(shortID(res.Removed.SessionID))
	if res.Outcome == ledger.OutcomeSessionRemoved {
		return fmt.Sprintf("Removed %s from session %s; the session is now gone.\n", res.Removed.Date, id)
	}
	days := "days"
	if res.RemainingDays == 1 {
		days = "day"
	}
	return fmt.Sprintf("Removed %s from session %s (%d %s left).\n",
		res.Removed.Date, id, res.RemainingDays, days)
}

// FormatCandidates lists the sessions sharing an ambiguous day so the user
// can re-run the command with --session.
func FormatCandidates(err *ledger.AmbiguousDayError) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d sessions recorded on %s:\n", len(err.Candidates), err.Date)
	for _, c := range err.Candidates {
		fmt.Fprintf(&b, "  %s  %s  %.2fh\n", shortID(c.SessionID), FormatSpan(c), c.Hours)
	}
	b.WriteString(Dim("Re-run with --session <id> to pick one.") + "\n")
	return b.String()
}

// CandidateLabel is the picker label of one ambiguous-day candidate.
func CandidateLabel(e domain.SleepDayEntry) string {
	return fmt.Sprintf("%s  %s  (%.2fh on %s)", shortID(e.SessionID), FormatSpan(e), e.Hours, e.Date)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
