package repository

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unreachableRedis points at a port nothing listens on so every command
// fails fast with a connection error.
func unreachableRedis(t *testing.T) *redis.Client {
	t.Helper()
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 200 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { client.Close() })
	return client
}

func TestRedisBlobStore_ConnectionErrorsAreNotNotFound(t *testing.T) {
	store := NewRedisBlobStore(unreachableRedis(t))
	ctx := context.Background()

	_, err := store.Get(ctx, "sleepData")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), `reading blob "sleepData" from redis`)

	err = store.Put(ctx, "sleepData", []byte("[]"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "writing blob")

	err = store.Delete(ctx, "sleepData")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deleting blob")
}

func TestRedisBlobStore_SatisfiesBlobStore(t *testing.T) {
	var _ BlobStore = NewRedisBlobStore(unreachableRedis(t))
	var _ BlobStore = (*SQLiteBlobStore)(nil)
}
