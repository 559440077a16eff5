package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheRoundTrip(t *testing.T) {
	c := New(NewMemory())
	ctx := context.Background()

	type entry struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}
	require.NoError(t, c.Put(ctx, KeyProducts, []entry{{Name: "Cloves", Count: 80}}))

	var got []entry
	require.True(t, c.Get(ctx, KeyProducts, &got))
	require.Len(t, got, 1)
	assert.Equal(t, entry{Name: "Cloves", Count: 80}, got[0])
}

func TestCacheMissing(t *testing.T) {
	c := New(NewMemory())
	var got []string
	assert.False(t, c.Get(context.Background(), KeyOrders, &got))
	assert.Empty(t, got)
}

func TestCacheCorruptEntry(t *testing.T) {
	kv := NewMemory()
	c := New(kv)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, KeyReviews, "{not json"))

	// Corrupt payloads read as absent, never as an error.
	var got []string
	assert.False(t, c.Get(ctx, KeyReviews, &got))
}

func TestCacheDelete(t *testing.T) {
	c := New(NewMemory())
	ctx := context.Background()

	require.NoError(t, c.Put(ctx, KeyCart, []int{1}))
	require.NoError(t, c.Delete(ctx, KeyCart))

	var got []int
	assert.False(t, c.Get(ctx, KeyCart, &got))
}
