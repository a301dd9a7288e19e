// Package redis keeps documents as plain string values in Redis.
package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/dtroode/diagnosis-server/internal/model"
)

var _ model.BlobStore = (*Blob)(nil)

// Blob is one Redis key holding a whole document.
type Blob struct {
	rdb redis.Cmdable
	key string
}

// NewBlob returns a Blob stored under prefix+name.
func NewBlob(rdb redis.Cmdable, prefix, name string) *Blob {
	return &Blob{rdb: rdb, key: prefix + name}
}

// Key returns the Redis key of the document.
func (b *Blob) Key() string {
	return b.key
}

func (b *Blob) Read(ctx context.Context) ([]byte, error) {
	data, err := b.rdb.Get(ctx, b.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", b.key, err)
	}
	return data, nil
}

func (b *Blob) Write(ctx context.Context, data []byte) error {
	if err := b.rdb.Set(ctx, b.key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to set %s: %w", b.key, err)
	}
	return nil
}

// Ping checks connectivity.
func Ping(ctx context.Context, rdb redis.UniversalClient) error {
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to ping redis: %w", err)
	}
	return nil
}
