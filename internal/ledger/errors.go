package ledger

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/sleeplog/internal/domain"
)

var (
	ErrEntryNotFound   = errors.New("sleep entry not found")
	ErrSessionNotFound = errors.New("sleep session not found")
	ErrAmbiguousDay    = errors.New("day has more than one sleep session")
)

// AmbiguousDayError is returned by DeleteDay when the day holds entries from
// several sessions and no session was named. Candidates lists that day's
// entries so the caller can ask which one to remove and retry.
type AmbiguousDayError struct {
	Date       string
	Candidates []domain.SleepDayEntry
}

func (e *AmbiguousDayError) Error() string {
	return fmt.Sprintf("%s has %d sleep sessions; choose one to delete", e.Date, len(e.Candidates))
}

func (e *AmbiguousDayError) Unwrap() error {
	return ErrAmbiguousDay
}
