// Package kv provides the durable key-value store the back office persists
// its state into. Collections and id counters are stored as opaque values
// under well-known keys; the store itself knows nothing about entities.
package kv

import "context"

// Well-known keys for persisted state.
const (
	KeyProductList = "productList"
	KeyOrderList   = "orderList"
	KeyPromoList   = "promoList"
)

// Store is the durable key-value port. Implementations must make Set an
// atomic overwrite from the caller's point of view: a concurrent or
// subsequent Get never observes a partially written value.
type Store interface {
	// Get returns the value for key. The boolean reports whether the key
	// exists; an absent key is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set overwrites the value for key.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes the key. Deleting an absent key is a no-op.
	Delete(ctx context.Context, key string) error

	// Close releases any underlying resources.
	Close() error
}
