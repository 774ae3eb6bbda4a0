package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisBlobStore implements BlobStore with plain GET/SET/DEL. Values never
// expire.
type RedisBlobStore struct {
	client redis.Cmdable
}

func NewRedisBlobStore(client redis.Cmdable) *RedisBlobStore {
	return &RedisBlobStore{client: client}
}

func (r *RedisBlobStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("blob %q: %w", key, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("reading blob %q from redis: %w", key, err)
	}
	return data, nil
}

func (r *RedisBlobStore) Put(ctx context.Context, key string, value []byte) error {
	if err := r.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("writing blob %q to redis: %w", key, err)
	}
	return nil
}

func (r *RedisBlobStore) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("deleting blob %q from redis: %w", key, err)
	}
	return nil
}
