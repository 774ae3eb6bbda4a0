package persistence

import (
	"context"
	"errors"
	"sync"

	"github.com/alexanderramin/sleeplog/internal/domain"
	"github.com/alexanderramin/sleeplog/internal/repository"
	"go.uber.org/zap"
)

// DefaultKey is the storage key the ledger document lives under.
const DefaultKey = "sleepData"

// LoadResult is delivered once by LoadAsync.
type LoadResult struct {
	Entries []domain.SleepDayEntry
	Err     error
}

// LedgerStore loads and saves the whole ledger as one document in a
// BlobStore. Background saves are serialized and never block the caller;
// their failures are logged, not returned.
type LedgerStore struct {
	blobs  repository.BlobStore
	key    string
	logger *zap.Logger

	mu       sync.Mutex
	gen      uint64        // generation of the newest snapshot handed to SaveAsync
	loadDone chan struct{} // nil until LoadAsync is called

	saveMu  sync.Mutex
	latest  uint64 // generation of the newest snapshot a write was attempted for
	pending sync.WaitGroup
}

func NewLedgerStore(blobs repository.BlobStore, key string, logger *zap.Logger) *LedgerStore {
	if key == "" {
		key = DefaultKey
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LedgerStore{blobs: blobs, key: key, logger: logger}
}

// Load reads the stored ledger. A missing document is an empty ledger.
func (s *LedgerStore) Load(ctx context.Context) ([]domain.SleepDayEntry, error) {
	data, err := s.blobs.Get(ctx, s.key)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

// Save writes entries synchronously, replacing the stored document.
func (s *LedgerStore) Save(ctx context.Context, entries []domain.SleepDayEntry) error {
	data, err := Encode(entries)
	if err != nil {
		return err
	}
	return s.blobs.Put(ctx, s.key, data)
}

// LoadAsync starts loading in the background. The result is sent once on the
// returned channel; failures are also logged. Saves queued by SaveAsync wait
// until the load has finished so they never overwrite an unread document.
func (s *LedgerStore) LoadAsync(ctx context.Context) <-chan LoadResult {
	out := make(chan LoadResult, 1)
	done := make(chan struct{})

	s.mu.Lock()
	s.loadDone = done
	s.mu.Unlock()

	go func() {
		defer close(done)
		entries, err := s.Load(ctx)
		if err != nil {
			s.logger.Warn("loading sleep ledger failed; starting empty",
				zap.String("key", s.key), zap.Error(err))
		} else {
			s.logger.Debug("sleep ledger loaded",
				zap.String("key", s.key), zap.Int("entries", len(entries)))
		}
		out <- LoadResult{Entries: entries, Err: err}
		close(out)
	}()
	return out
}

// SaveAsync writes a snapshot in the background. A snapshot older than one
// already attempted is dropped. A failed write is logged and left for the next
// snapshot to repair.
func (s *LedgerStore) SaveAsync(ctx context.Context, entries []domain.SleepDayEntry) {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	loadDone := s.loadDone
	s.mu.Unlock()

	ctx = context.WithoutCancel(ctx)
	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		if loadDone != nil {
			<-loadDone
		}

		s.saveMu.Lock()
		defer s.saveMu.Unlock()
		if gen < s.latest {
			s.logger.Debug("skipping stale ledger snapshot", zap.Uint64("generation", gen))
			return
		}
		s.latest = gen
		if err := s.Save(ctx, entries); err != nil {
			s.logger.Warn("saving sleep ledger failed; will retry on next change",
				zap.String("key", s.key), zap.Int("entries", len(entries)), zap.Error(err))
		}
	}()
}

// Wait blocks until every queued save has finished or ctx is done.
func (s *LedgerStore) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.pending.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
