// Package ledger implements the idempotency ledger: the append-only record
// of order identifiers already subjected to a mutating action. Backed by the
// KV store facade, so the memory driver gives process-lifetime semantics and
// the Redis driver makes the ledger durable across restarts.
package ledger

import (
	"context"
	"fmt"
)

const keyPrefix = "ecomassist:ledger:"

// store is the consumer interface for the ledger (ISP).
type store interface {
	SetNX(ctx context.Context, key string, value []byte) (bool, error)
}

// Ledger records performed mutating actions per (action, order id) pair.
type Ledger struct {
	store store
}

// New creates a ledger over a KV store.
func New(s store) *Ledger {
	return &Ledger{store: s}
}

// Mark records that the action was performed for the order identifier and
// reports whether this call was the first. The underlying SetNX makes the
// check-and-insert atomic, so two simultaneous first-time requests for the
// same identifier cannot both observe first=true.
func (l *Ledger) Mark(ctx context.Context, action, orderID string) (bool, error) {
	key := keyPrefix + action + ":" + orderID
	first, err := l.store.SetNX(ctx, key, []byte("1"))
	if err != nil {
		return false, fmt.Errorf("mark %s for order %s: %w", action, orderID, err)
	}
	return first, nil
}
