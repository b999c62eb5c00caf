package store

import (
	"context"
	"errors"
)

var (
	ErrCorruptSnapshot = errors.New("stored snapshot is not compatible with the collection type")
	ErrClosed          = errors.New("store is closed")
)

// KV is a flat key-value space of JSON snapshots. Each collection owns one key.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}
