package repository

import (
	"context"
	"errors"
)

// ErrNotFound is returned (wrapped) when a key has no stored value.
var ErrNotFound = errors.New("not found")

// BlobStore is a key-value store of opaque documents. Put replaces the whole
// value; there is no partial update.
type BlobStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
