package kv

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteStore_SetGet(t *testing.T) {
	ctx := context.Background()
	store := openTempStore(t)

	value, ok, err := store.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, value)

	require.NoError(t, store.Set(ctx, "productList", []byte(`[{"id":"PROD-01"}]`)))

	value, ok, err = store.Get(ctx, "productList")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"PROD-01"}]`, string(value))
}

func TestSQLiteStore_SetOverwrites(t *testing.T) {
	ctx := context.Background()
	store := openTempStore(t)

	require.NoError(t, store.Set(ctx, "key", []byte("first")))
	require.NoError(t, store.Set(ctx, "key", []byte("second")))

	value, ok, err := store.Get(ctx, "key")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "second", string(value))
}

func TestSQLiteStore_Delete(t *testing.T) {
	ctx := context.Background()
	store := openTempStore(t)

	require.NoError(t, store.Set(ctx, "key", []byte("value")))
	require.NoError(t, store.Delete(ctx, "key"))

	_, ok, err := store.Get(ctx, "key")
	require.NoError(t, err)
	assert.False(t, ok)

	// Deleting an absent key is a no-op
	assert.NoError(t, store.Delete(ctx, "key"))
}

func TestSQLiteStore_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "state.db")

	store, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, "orderList", []byte(`[]`)))
	require.NoError(t, store.Close())

	reopened, err := OpenSQLite(path)
	require.NoError(t, err)
	defer reopened.Close()

	value, ok, err := reopened.Get(ctx, "orderList")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[]`, string(value))
}

func TestOpenSQLite_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "state.db")

	store, err := OpenSQLite(path)
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Set(context.Background(), "key", []byte("value")))
}

func openTempStore(t *testing.T) Store {
	t.Helper()

	store, err := OpenSQLite(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}
