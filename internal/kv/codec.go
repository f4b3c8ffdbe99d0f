package kv

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
)

// LoadList reads and decodes a JSON-encoded collection. An absent key yields
// an empty slice. A malformed value yields an error: callers decide the
// fallback (the entity store treats it as an empty collection).
func LoadList[T any](ctx context.Context, s Store, key string) ([]T, error) {
	raw, ok, err := s.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if !ok || len(raw) == 0 {
		return []T{}, nil
	}

	var list []T
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("malformed value for key %q: %w", key, err)
	}
	if list == nil {
		list = []T{}
	}
	return list, nil
}

// SaveList encodes and writes the full collection in a single overwriting
// write, so readers never observe a partial collection.
func SaveList[T any](ctx context.Context, s Store, key string, list []T) error {
	if list == nil {
		list = []T{}
	}
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("failed to encode value for key %q: %w", key, err)
	}
	return s.Set(ctx, key, data)
}

// LoadCounter reads an integer counter. An absent or malformed value yields
// zero, which restarts the counter for the session.
func LoadCounter(ctx context.Context, s Store, key string) (int, error) {
	raw, ok, err := s.Get(ctx, key)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, nil
	}
	n, err := strconv.Atoi(string(raw))
	if err != nil {
		return 0, fmt.Errorf("malformed counter for key %q: %w", key, err)
	}
	return n, nil
}

// SaveCounter writes an integer counter.
func SaveCounter(ctx context.Context, s Store, key string, value int) error {
	return s.Set(ctx, key, []byte(strconv.Itoa(value)))
}
