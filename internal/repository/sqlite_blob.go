package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/sleeplog/internal/db"
)

// SQLiteBlobStore implements BlobStore on the kv_blobs table.
type SQLiteBlobStore struct {
	db db.DBTX
}

// NewSQLiteBlobStore creates a new SQLiteBlobStore.
func NewSQLiteBlobStore(db db.DBTX) *SQLiteBlobStore {
	return &SQLiteBlobStore{db: db}
}

func (r *SQLiteBlobStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx, `SELECT value FROM kv_blobs WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("blob %q: %w", key, ErrNotFound)
		}
		return nil, fmt.Errorf("reading blob %q: %w", key, err)
	}
	return value, nil
}

// Put stores value under key and bumps the key's revision.
func (r *SQLiteBlobStore) Put(ctx context.Context, key string, value []byte) error {
	query := `INSERT INTO kv_blobs (key, value, updated_at, revision) VALUES (?, ?, ?, 1)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at,
			revision = kv_blobs.revision + 1`
	if _, err := r.db.ExecContext(ctx, query, key, value, nowUTC()); err != nil {
		return fmt.Errorf("writing blob %q: %w", key, err)
	}
	return nil
}

func (r *SQLiteBlobStore) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM kv_blobs WHERE key = ?`, key); err != nil {
		return fmt.Errorf("deleting blob %q: %w", key, err)
	}
	return nil
}

// Revision returns how many times key has been written.
func (r *SQLiteBlobStore) Revision(ctx context.Context, key string) (int, error) {
	var rev int
	err := r.db.QueryRowContext(ctx, `SELECT revision FROM kv_blobs WHERE key = ?`, key).Scan(&rev)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, fmt.Errorf("blob %q: %w", key, ErrNotFound)
		}
		return 0, fmt.Errorf("reading revision of %q: %w", key, err)
	}
	return rev, nil
}
