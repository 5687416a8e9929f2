package kv_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aryan9369/HonestWork/internal/adapters/kv"
	"github.com/Aryan9369/HonestWork/internal/domain/providers"
)

func TestMemoryStore_RoundTrip(t *testing.T) {
	store := kv.NewMemoryStore()
	ctx := context.Background()

	_, err := store.Get(ctx, "missing")
	assert.ErrorIs(t, err, providers.ErrKeyNotFound)

	require.NoError(t, store.Set(ctx, "k", []byte("v1")))
	require.NoError(t, store.Set(ctx, "k", []byte("v2")))

	data, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v2", string(data))

	require.NoError(t, store.Delete(ctx, "k"))
	_, err = store.Get(ctx, "k")
	assert.ErrorIs(t, err, providers.ErrKeyNotFound)
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	store := kv.NewMemoryStore()
	ctx := context.Background()

	original := []byte("abc")
	require.NoError(t, store.Set(ctx, "k", original))
	original[0] = 'x'

	data, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(data), "caller mutations must not reach the store")

	data[0] = 'y'
	again, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(again))
}
