// Package idgen produces unique, monotonically increasing, human-readable
// record identifiers of the form "{PREFIX}-{NN}", one durable counter per
// prefix.
package idgen

import (
	"context"
	"fmt"
	"sync"

	"backoffice/internal/kv"

	"github.com/rs/zerolog"
)

// Prefixes for the three entity collections.
const (
	PrefixProduct = "PROD"
	PrefixOrder   = "ORD"
	PrefixPromo   = "PROM"
)

// Generator hands out sequential ids per prefix and persists each counter
// immediately. A counter is consumed on every call: a discarded draft still
// burns its id, there is no rollback.
type Generator struct {
	mu       sync.Mutex
	store    kv.Store
	counters map[string]int
	degraded map[string]bool
	logger   zerolog.Logger
}

// New creates a generator backed by the given store.
func New(store kv.Store, logger zerolog.Logger) *Generator {
	return &Generator{
		store:    store,
		counters: make(map[string]int),
		degraded: make(map[string]bool),
		logger:   logger.With().Str("component", "idgen").Logger(),
	}
}

// Next returns the next id for the prefix, zero-padded to at least 2 digits.
// Counters start at 1. If the durable store is unavailable the generator
// keeps counting in memory for the rest of the session; the counter starts
// over on the next run. That is degraded but non-fatal.
func (g *Generator) Next(ctx context.Context, prefix string) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	key := counterKey(prefix)

	last, loaded := g.counters[prefix]
	if !loaded && !g.degraded[prefix] {
		persisted, err := kv.LoadCounter(ctx, g.store, key)
		if err != nil {
			g.logger.Warn().
				Str("prefix", prefix).
				Err(err).
				Msg("counter unavailable, restarting from 0 for this session")
			g.degraded[prefix] = true
		} else {
			last = persisted
		}
	}

	next := last + 1
	g.counters[prefix] = next

	if err := kv.SaveCounter(ctx, g.store, key, next); err != nil {
		g.logger.Warn().
			Str("prefix", prefix).
			Int("counter", next).
			Err(err).
			Msg("failed to persist counter")
	}

	return fmt.Sprintf("%s-%02d", prefix, next)
}

// counterKey returns the storage key for a prefix counter.
func counterKey(prefix string) string {
	return prefix + "_counter"
}
