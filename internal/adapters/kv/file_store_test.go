package kv_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aryan9369/HonestWork/internal/adapters/kv"
	"github.com/Aryan9369/HonestWork/internal/domain/providers"
)

func TestFileStore_RoundTrip(t *testing.T) {
	store, err := kv.NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	_, err = store.Get(ctx, providers.KeyCustomCompanies)
	assert.ErrorIs(t, err, providers.ErrKeyNotFound)

	require.NoError(t, store.Set(ctx, providers.KeyCustomCompanies, []byte(`[{"id":"x"}]`)))

	data, err := store.Get(ctx, providers.KeyCustomCompanies)
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"x"}]`, string(data))

	require.NoError(t, store.Set(ctx, providers.KeyCustomCompanies, []byte(`[]`)))
	data, err = store.Get(ctx, providers.KeyCustomCompanies)
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(data), "set overwrites the previous value")
}

func TestFileStore_Delete(t *testing.T) {
	store, err := kv.NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "some:key", []byte("v")))
	require.NoError(t, store.Delete(ctx, "some:key"))

	_, err = store.Get(ctx, "some:key")
	assert.ErrorIs(t, err, providers.ErrKeyNotFound)

	// Deleting a missing key is not an error.
	require.NoError(t, store.Delete(ctx, "some:key"))
}

func TestFileStore_StateSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := kv.NewFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, providers.KeyUserSession, []byte(`{"is_verified":true}`)))

	reopened, err := kv.NewFileStore(dir)
	require.NoError(t, err)
	data, err := reopened.Get(ctx, providers.KeyUserSession)
	require.NoError(t, err)
	assert.JSONEq(t, `{"is_verified":true}`, string(data))
}

func TestFileStore_EscapesUnsafeKeyCharacters(t *testing.T) {
	dir := t.TempDir()
	store, err := kv.NewFileStore(dir)
	require.NoError(t, err)
	ctx := context.Background()

	key := "honestwork:reviews/../1"
	require.NoError(t, store.Set(ctx, key, []byte("v")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.NotContains(t, entries[0].Name(), "/")
	assert.NotContains(t, entries[0].Name(), ":")
	assert.Equal(t, dir, filepath.Dir(filepath.Join(dir, entries[0].Name())), "value stays inside the data dir")

	data, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "v", string(data))
}
