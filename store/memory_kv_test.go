package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryKV_GetPut(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()

	_, found, err := kv.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, kv.Put(ctx, "k", []byte("v1")))
	value, found, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte("v1"), value)

	require.NoError(t, kv.Put(ctx, "k", []byte("v2")))
	value, _, _ = kv.Get(ctx, "k")
	assert.Equal(t, []byte("v2"), value)
}

func TestMemoryKV_PutIfAbsent(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()

	written, err := kv.PutIfAbsent(ctx, "k", []byte("first"))
	require.NoError(t, err)
	assert.True(t, written)

	written, err = kv.PutIfAbsent(ctx, "k", []byte("second"))
	require.NoError(t, err)
	assert.False(t, written)

	value, _, _ := kv.Get(ctx, "k")
	assert.Equal(t, []byte("first"), value, "losing write must not clobber the original")
}

func TestMemoryKV_CompareAndSwap(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()

	// CAS on a missing key never swaps.
	swapped, err := kv.CompareAndSwap(ctx, "k", []byte("old"), []byte("new"))
	require.NoError(t, err)
	assert.False(t, swapped)

	require.NoError(t, kv.Put(ctx, "k", []byte("old")))

	swapped, err = kv.CompareAndSwap(ctx, "k", []byte("stale"), []byte("new"))
	require.NoError(t, err)
	assert.False(t, swapped)

	swapped, err = kv.CompareAndSwap(ctx, "k", []byte("old"), []byte("new"))
	require.NoError(t, err)
	assert.True(t, swapped)

	value, _, _ := kv.Get(ctx, "k")
	assert.Equal(t, []byte("new"), value)
}

func TestMemoryKV_DeleteAndListKeys(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()

	require.NoError(t, kv.Put(ctx, "track:a", []byte("1")))
	require.NoError(t, kv.Put(ctx, "track:b", []byte("2")))
	require.NoError(t, kv.Put(ctx, "playlist:c", []byte("3")))

	keys, err := kv.ListKeys(ctx, "track:")
	require.NoError(t, err)
	assert.Equal(t, []string{"track:a", "track:b"}, keys)

	require.NoError(t, kv.Delete(ctx, "track:a"))
	require.NoError(t, kv.Delete(ctx, "track:a")) // absent delete is a no-op

	keys, err = kv.ListKeys(ctx, "track:")
	require.NoError(t, err)
	assert.Equal(t, []string{"track:b"}, keys)
}

func TestMemoryKV_GetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()

	require.NoError(t, kv.Put(ctx, "k", []byte("abc")))
	value, _, _ := kv.Get(ctx, "k")
	value[0] = 'x'

	fresh, _, _ := kv.Get(ctx, "k")
	assert.Equal(t, []byte("abc"), fresh, "callers must not be able to mutate stored bytes")
}
