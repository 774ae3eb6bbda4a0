package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/alexanderramin/sleeplog/internal/db"
)

// FailOnNthExec wraps a DBTX and injects Err on the Nth ExecContext call.
// Calls are counted starting at 1; reads pass through untouched.
type FailOnNthExec struct {
	db.DBTX
	FailOn int32
	Err    error
	count  atomic.Int32
}

func (f *FailOnNthExec) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if f.count.Add(1) == f.FailOn {
		return nil, f.Err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}

// MemoryBlobStore is an in-memory blob store whose reads and writes can be
// made to fail. It records every successful Put.
type MemoryBlobStore struct {
	mu       sync.Mutex
	values   map[string][]byte
	puts     int
	GetErr   error
	PutErr   error
	NotFound error
	// BeforeGet, if set, runs at the start of every Get (e.g. to block it).
	BeforeGet func()
}

func NewMemoryBlobStore(notFound error) *MemoryBlobStore {
	return &MemoryBlobStore{values: make(map[string][]byte), NotFound: notFound}
}

func (m *MemoryBlobStore) Get(ctx context.Context, key string) ([]byte, error) {
	if m.BeforeGet != nil {
		m.BeforeGet()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	v, ok := m.values[key]
	if !ok {
		return nil, fmt.Errorf("blob %q: %w", key, m.NotFound)
	}
	return append([]byte(nil), v...), nil
}

func (m *MemoryBlobStore) Put(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.PutErr != nil {
		return m.PutErr
	}
	m.values[key] = append([]byte(nil), value...)
	m.puts++
	return nil
}

func (m *MemoryBlobStore) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

// SetPutErr changes the injected write error under the store's lock.
func (m *MemoryBlobStore) SetPutErr(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PutErr = err
}

// Raw returns the stored bytes for key.
func (m *MemoryBlobStore) Raw(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok
}

// Puts reports how many writes succeeded.
func (m *MemoryBlobStore) Puts() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.puts
}
