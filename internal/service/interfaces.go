package service

import (
	"context"
	"time"

	"github.com/alexanderramin/sleeplog/internal/domain"
	"github.com/alexanderramin/sleeplog/internal/ledger"
	"github.com/alexanderramin/sleeplog/internal/persistence"
	"github.com/alexanderramin/sleeplog/internal/weekly"
)

// SessionResult describes a session after it was logged or edited.
type SessionResult struct {
	SessionID  string
	Entries    []domain.SleepDayEntry
	TotalHours float64
}

type SleepService interface {
	// Start begins loading the persisted ledger. Until the load resolves the
	// ledger reads as empty.
	Start(ctx context.Context)
	// WaitLoaded blocks until the load started by Start has resolved.
	WaitLoaded(ctx context.Context) error

	LogSession(ctx context.Context, bed, wake time.Time) (*SessionResult, error)
	EditSession(ctx context.Context, sessionID string, bed, wake time.Time) (*SessionResult, error)
	DeleteDay(ctx context.Context, date string, sessionID string) (*ledger.DeleteResult, error)
	DeleteSession(ctx context.Context, sessionID string) (int, error)

	Entries(ctx context.Context) []domain.SleepDayEntry
	Week(ctx context.Context, today domain.Day) weekly.WeekView

	// Flush waits for pending background saves.
	Flush(ctx context.Context) error
}

// LedgerPersister is the asynchronous persistence boundary of the service.
type LedgerPersister interface {
	LoadAsync(ctx context.Context) <-chan persistence.LoadResult
	SaveAsync(ctx context.Context, entries []domain.SleepDayEntry)
	Wait(ctx context.Context) error
}
