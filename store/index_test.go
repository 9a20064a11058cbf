package store

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndex_EmptyList(t *testing.T) {
	ctx := context.Background()
	ix := NewIndex(NewMemoryKV(), "tracks")

	ids, err := ix.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestIndex_AddIsIdempotent(t *testing.T) {
	ctx := context.Background()
	ix := NewIndex(NewMemoryKV(), "tracks")

	require.NoError(t, ix.Add(ctx, "a"))
	require.NoError(t, ix.Add(ctx, "b"))
	require.NoError(t, ix.Add(ctx, "a"))

	ids, err := ix.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ids, "duplicate add must not change membership or order")
}

func TestIndex_RemoveAbsentIsNoop(t *testing.T) {
	ctx := context.Background()
	ix := NewIndex(NewMemoryKV(), "tracks")

	require.NoError(t, ix.Remove(ctx, "ghost"))

	require.NoError(t, ix.Add(ctx, "a"))
	require.NoError(t, ix.Add(ctx, "b"))
	require.NoError(t, ix.Remove(ctx, "a"))
	require.NoError(t, ix.Remove(ctx, "a"))

	ids, err := ix.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, ids)
}

func TestIndex_Has(t *testing.T) {
	ctx := context.Background()
	ix := NewIndex(NewMemoryKV(), "likes")

	has, err := ix.Has(ctx, "a")
	require.NoError(t, err)
	assert.False(t, has)

	require.NoError(t, ix.Add(ctx, "a"))
	has, err = ix.Has(ctx, "a")
	require.NoError(t, err)
	assert.True(t, has)
}

func TestIndex_ConcurrentAdds(t *testing.T) {
	ctx := context.Background()
	ix := NewIndex(NewMemoryKV(), "tracks")

	const n = 16
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = ix.Add(ctx, fmt.Sprintf("id-%02d", i))
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		require.NoError(t, err, "add %d", i)
	}

	ids, err := ix.List(ctx)
	require.NoError(t, err)
	assert.Len(t, ids, n, "no add may be lost to a concurrent writer")
	seen := make(map[string]bool)
	for _, id := range ids {
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}
