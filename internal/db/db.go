// Package db defines the key-value store facade used by the embedding cache
// and the durable idempotency ledger. Consumers depend on narrow slices of
// the Store interface.
package db

import (
	"context"
	"time"
)

// Store is the key-value store facade.
type Store interface {
	KVStore
	Ping(ctx context.Context) error
	Close()
	WaitForReady(ctx context.Context, timeout time.Duration) error
}

// KVStore provides simple key-value operations.
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// SetNX stores the value only if the key does not exist yet and reports
	// whether this call created it. The check-and-insert is atomic.
	SetNX(ctx context.Context, key string, value []byte) (bool, error)
}
