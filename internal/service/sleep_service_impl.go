package service

import (
	"context"
	"sync"
	"time"

	"github.com/alexanderramin/sleeplog/internal/allocator"
	"github.com/alexanderramin/sleeplog/internal/domain"
	"github.com/alexanderramin/sleeplog/internal/ledger"
	"github.com/alexanderramin/sleeplog/internal/weekly"
	"github.com/google/uuid"
)

type sleepService struct {
	store    LedgerPersister
	now      func() time.Time
	observer UseCaseObserver

	mu      sync.Mutex
	ledger  ledger.Ledger
	started bool
	loaded  chan struct{}
}

// NewSleepService owns the in-memory ledger and persists it through store
// after every successful command. now defaults to time.Now.
func NewSleepService(store LedgerPersister, now func() time.Time, observers ...UseCaseObserver) SleepService {
	if now == nil {
		now = time.Now
	}
	return &sleepService{
		store:    store,
		now:      now,
		observer: useCaseObserverOrNoop(observers),
		loaded:   make(chan struct{}),
	}
}

func (s *sleepService) Start(ctx context.Context) {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return
	}
	s.started = true
	s.mu.Unlock()

	results := s.store.LoadAsync(ctx)
	go func() {
		defer close(s.loaded)
		res := <-results
		if res.Err != nil || len(res.Entries) == 0 {
			return
		}

		s.mu.Lock()
		defer s.mu.Unlock()
		changedBeforeLoad := s.ledger.Len() > 0
		s.ledger = mergeLoaded(res.Entries, s.ledger)
		if changedBeforeLoad {
			// The snapshots queued so far lack the loaded sessions.
			s.store.SaveAsync(ctx, s.ledger.Entries())
		}
	}()
}

func (s *sleepService) WaitLoaded(ctx context.Context) error {
	s.mu.Lock()
	started := s.started
	s.mu.Unlock()
	if !started {
		return nil
	}
	select {
	case <-s.loaded:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *sleepService) LogSession(ctx context.Context, bed, wake time.Time) (*SessionResult, error) {
	startedAt := time.Now()
	sessionID := uuid.New().String()
	res, err := s.allocateAndCommit(ctx, sessionID, bed, wake, func(l ledger.Ledger, entries []domain.SleepDayEntry) (ledger.Ledger, error) {
		return l.Add(entries), nil
	})
	s.observe(ctx, "log_session", startedAt, err, map[string]any{"session_id": sessionID})
	return res, err
}

func (s *sleepService) EditSession(ctx context.Context, sessionID string, bed, wake time.Time) (*SessionResult, error) {
	startedAt := time.Now()
	res, err := s.allocateAndCommit(ctx, sessionID, bed, wake, func(l ledger.Ledger, entries []domain.SleepDayEntry) (ledger.Ledger, error) {
		return l.Edit(sessionID, entries)
	})
	s.observe(ctx, "edit_session", startedAt, err, map[string]any{"session_id": sessionID})
	return res, err
}

func (s *sleepService) DeleteDay(ctx context.Context, date string, sessionID string) (*ledger.DeleteResult, error) {
	startedAt := time.Now()
	var result ledger.DeleteResult
	err := func() error {
		if _, err := domain.ParseDay(date); err != nil {
			return err
		}
		return s.commit(ctx, func(l ledger.Ledger) (ledger.Ledger, error) {
			next, res, err := l.DeleteDay(date, sessionID)
			result = res
			return next, err
		})
	}()
	s.observe(ctx, "delete_day", startedAt, err, map[string]any{
		"date":       date,
		"session_id": sessionID,
		"outcome":    string(result.Outcome),
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *sleepService) DeleteSession(ctx context.Context, sessionID string) (int, error) {
	startedAt := time.Now()
	var removed int
	err := s.commit(ctx, func(l ledger.Ledger) (ledger.Ledger, error) {
		next, n, err := l.DeleteSession(sessionID)
		removed = n
		return next, err
	})
	s.observe(ctx, "delete_session", startedAt, err, map[string]any{
		"session_id": sessionID,
		"removed":    removed,
	})
	return removed, err
}

func (s *sleepService) Entries(ctx context.Context) []domain.SleepDayEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.Entries()
}

func (s *sleepService) Week(ctx context.Context, today domain.Day) weekly.WeekView {
	s.mu.Lock()
	l := s.ledger
	s.mu.Unlock()
	return weekly.Aggregate(l, today)
}

func (s *sleepService) Flush(ctx context.Context) error {
	return s.store.Wait(ctx)
}

// allocateAndCommit validates [bed, wake) against the clock, splits it into
// day entries for sessionID and applies them with apply.
func (s *sleepService) allocateAndCommit(
	ctx context.Context,
	sessionID string,
	bed, wake time.Time,
	apply func(ledger.Ledger, []domain.SleepDayEntry) (ledger.Ledger, error),
) (*SessionResult, error) {
	if err := domain.ValidateSession(bed, wake, s.now()); err != nil {
		return nil, err
	}
	entries := allocator.Allocate(sessionID, bed, wake)
	if len(entries) == 0 {
		// Shorter than the 0.01h storage precision.
		return nil, domain.ErrNonPositiveDuration
	}

	if err := s.commit(ctx, func(l ledger.Ledger) (ledger.Ledger, error) {
		return apply(l, entries)
	}); err != nil {
		return nil, err
	}
	return &SessionResult{
		SessionID:  sessionID,
		Entries:    entries,
		TotalHours: entries[0].TotalSleepHours,
	}, nil
}

// commit replaces the ledger with cmd's result and queues a save. A failing
// cmd leaves the ledger as it was.
func (s *sleepService) commit(ctx context.Context, cmd func(ledger.Ledger) (ledger.Ledger, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := cmd(s.ledger)
	if err != nil {
		return err
	}
	s.ledger = next
	s.store.SaveAsync(ctx, next.Entries())
	return nil
}

func (s *sleepService) observe(ctx context.Context, name string, startedAt time.Time, err error, fields map[string]any) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		Duration:  time.Since(startedAt),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
		StartedAt: startedAt,
	})
}

// mergeLoaded puts loaded sessions underneath the ones recorded before the
// load resolved. A session present in both keeps its in-memory version.
func mergeLoaded(loaded []domain.SleepDayEntry, current ledger.Ledger) ledger.Ledger {
	keep := make([]domain.SleepDayEntry, 0, len(loaded))
	for _, e := range loaded {
		if !current.HasSession(e.SessionID) {
			keep = append(keep, e)
		}
	}
	return ledger.New(keep).Add(current.Entries())
}
