// Package store holds the authoritative in-memory collections of products,
// orders, and promos, and is the sole mutator of their persisted state.
// Every mutation is written through to the durable store before the call
// returns, so the in-memory and persisted copies never drift.
package store

import (
	"context"
	"sync"

	"backoffice/internal/idgen"
	"backoffice/internal/kv"
	"backoffice/internal/model"

	"github.com/rs/zerolog"
)

// Store owns the three entity collections. A single mutex serialises
// mutations: the stock-debit step on order placement reads then writes
// product state and must not interleave with a concurrent placement
// referencing the same product.
type Store struct {
	mu       sync.RWMutex
	products []model.Product
	orders   []model.Order
	promos   []model.Promo

	storage kv.Store
	ids     *idgen.Generator
	logger  zerolog.Logger
}

// New creates a store and loads all three collections from the durable
// backend. An absent or malformed collection degrades to empty: the process
// starts with whatever state is readable and keeps attempting saves.
func New(ctx context.Context, storage kv.Store, ids *idgen.Generator, logger zerolog.Logger) *Store {
	s := &Store{
		storage: storage,
		ids:     ids,
		logger:  logger.With().Str("component", "store").Logger(),
	}

	s.products = loadCollection[model.Product](ctx, storage, kv.KeyProductList, s.logger)
	s.orders = loadCollection[model.Order](ctx, storage, kv.KeyOrderList, s.logger)
	s.promos = loadCollection[model.Promo](ctx, storage, kv.KeyPromoList, s.logger)

	s.logger.Info().
		Int("products", len(s.products)).
		Int("orders", len(s.orders)).
		Int("promos", len(s.promos)).
		Msg("collections loaded")

	return s
}

// loadCollection reads one collection, treating any failure as empty.
func loadCollection[T any](ctx context.Context, storage kv.Store, key string, logger zerolog.Logger) []T {
	list, err := kv.LoadList[T](ctx, storage, key)
	if err != nil {
		logger.Warn().Str("key", key).Err(err).Msg("failed to load collection, starting empty")
		return []T{}
	}
	return list
}

// Products returns a copy of the product collection in insertion order.
func (s *Store) Products() []model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Orders returns a copy of the order collection in insertion order.
func (s *Store) Orders() []model.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// Promos returns a copy of the promo collection in insertion order.
func (s *Store) Promos() []model.Promo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Promo, len(s.promos))
	copy(out, s.promos)
	return out
}

// saveCollection writes one collection through to the durable store. A
// failed save is logged and absorbed: the in-memory state stays current and
// the next mutation attempts the write again.
func saveCollection[T any](ctx context.Context, s *Store, key string, list []T) {
	if err := kv.SaveList(ctx, s.storage, key, list); err != nil {
		s.logger.Error().Str("key", key).Err(err).Msg("failed to persist collection")
	}
}
