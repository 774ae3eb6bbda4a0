package ledger

import (
	"fmt"
	"slices"
	"strings"

	"github.com/alexanderramin/sleeplog/internal/domain"
)

// Ledger is the ordered collection of per-day sleep allocations across all
// sessions. It is a value: command methods never modify the receiver and
// return the resulting ledger instead.
type Ledger struct {
	entries []domain.SleepDayEntry
}

// DeleteOutcome tells the caller how much of a session a DeleteDay removed.
type DeleteOutcome string

const (
	// OutcomeDayRemoved means other days of the session are still recorded.
	OutcomeDayRemoved DeleteOutcome = "day_removed"
	// OutcomeSessionRemoved means the deleted day was the session's last one.
	OutcomeSessionRemoved DeleteOutcome = "session_removed"
)

// DeleteResult describes a completed DeleteDay.
type DeleteResult struct {
	Removed       domain.SleepDayEntry
	Outcome       DeleteOutcome
	RemainingDays int
}

// New builds a ledger from entries in any order.
func New(entries []domain.SleepDayEntry) Ledger {
	return Ledger{}.Add(entries)
}

// Entries returns a copy of all entries sorted by date.
func (l Ledger) Entries() []domain.SleepDayEntry {
	return slices.Clone(l.entries)
}

func (l Ledger) Len() int { return len(l.entries) }

// EntriesOn returns the entries allocated to the given YYYY-MM-DD date.
func (l Ledger) EntriesOn(date string) []domain.SleepDayEntry {
	return l.filter(func(e domain.SleepDayEntry) bool { return e.Date == date })
}

// Session returns every entry of one session, oldest day first.
func (l Ledger) Session(sessionID string) []domain.SleepDayEntry {
	return l.filter(func(e domain.SleepDayEntry) bool { return e.SessionID == sessionID })
}

func (l Ledger) HasSession(sessionID string) bool {
	return slices.ContainsFunc(l.entries, func(e domain.SleepDayEntry) bool {
		return e.SessionID == sessionID
	})
}

// SessionIDs lists distinct session ids in ledger order.
func (l Ledger) SessionIDs() []string {
	seen := make(map[string]bool)
	var ids []string
	for _, e := range l.entries {
		if !seen[e.SessionID] {
			seen[e.SessionID] = true
			ids = append(ids, e.SessionID)
		}
	}
	return ids
}

// Add appends the entries of one allocation and re-sorts by date.
func (l Ledger) Add(entries []domain.SleepDayEntry) Ledger {
	next := make([]domain.SleepDayEntry, 0, len(l.entries)+len(entries))
	next = append(next, l.entries...)
	next = append(next, entries...)
	sortEntries(next)
	return Ledger{entries: next}
}

// Edit replaces every entry of sessionID with newEntries in one step.
func (l Ledger) Edit(sessionID string, newEntries []domain.SleepDayEntry) (Ledger, error) {
	if !l.HasSession(sessionID) {
		return l, fmt.Errorf("editing session %s: %w", sessionID, ErrSessionNotFound)
	}
	return l.without(func(e domain.SleepDayEntry) bool {
		return e.SessionID == sessionID
	}).Add(newEntries), nil
}

// DeleteDay removes one day's entry of one session. When only one session
// touches date, sessionID may be empty; otherwise it selects the session and
// an *AmbiguousDayError is returned if it is missing. Entries of other
// sessions are never touched.
func (l Ledger) DeleteDay(date, sessionID string) (Ledger, DeleteResult, error) {
	onDay := l.EntriesOn(date)

	var target domain.SleepDayEntry
	switch {
	case len(onDay) == 0:
		return l, DeleteResult{}, fmt.Errorf("no sleep recorded on %s: %w", date, ErrEntryNotFound)
	case sessionID == "" && len(onDay) > 1:
		return l, DeleteResult{}, &AmbiguousDayError{Date: date, Candidates: onDay}
	case sessionID == "":
		target = onDay[0]
	default:
		i := slices.IndexFunc(onDay, func(e domain.SleepDayEntry) bool { return e.SessionID == sessionID })
		if i < 0 {
			return l, DeleteResult{}, fmt.Errorf("session %s has no sleep on %s: %w", sessionID, date, ErrEntryNotFound)
		}
		target = onDay[i]
	}

	next := l.without(func(e domain.SleepDayEntry) bool {
		return e.Date == date && e.SessionID == target.SessionID
	})
	remaining := len(next.Session(target.SessionID))

	outcome := OutcomeDayRemoved
	if remaining == 0 {
		outcome = OutcomeSessionRemoved
	}
	return next, DeleteResult{Removed: target, Outcome: outcome, RemainingDays: remaining}, nil
}

// DeleteSession removes every entry of sessionID and reports how many went.
func (l Ledger) DeleteSession(sessionID string) (Ledger, int, error) {
	next := l.without(func(e domain.SleepDayEntry) bool { return e.SessionID == sessionID })
	removed := len(l.entries) - len(next.entries)
	if removed == 0 {
		return l, 0, fmt.Errorf("deleting session %s: %w", sessionID, ErrSessionNotFound)
	}
	return next, removed, nil
}

func (l Ledger) filter(keep func(domain.SleepDayEntry) bool) []domain.SleepDayEntry {
	var out []domain.SleepDayEntry
	for _, e := range l.entries {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}

func (l Ledger) without(drop func(domain.SleepDayEntry) bool) Ledger {
	next := make([]domain.SleepDayEntry, 0, len(l.entries))
	for _, e := range l.entries {
		if !drop(e) {
			next = append(next, e)
		}
	}
	return Ledger{entries: next}
}

// sortEntries orders by date, then bedtime, keeping insertion order for ties.
func sortEntries(entries []domain.SleepDayEntry) {
	slices.SortStableFunc(entries, func(a, b domain.SleepDayEntry) int {
		if c := strings.Compare(a.Date, b.Date); c != 0 {
			return c
		}
		return a.BedDateTime.Compare(b.BedDateTime)
	})
}
