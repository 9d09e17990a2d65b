package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheInsertGetRemove(t *testing.T) {
	cache := NewCache[string]()

	h1 := cache.Insert("one")
	h2 := cache.Insert("two")
	assert.NotEqual(t, h1, h2)
	assert.Equal(t, 2, cache.Len())

	v, ok := cache.Get(h1)
	require.True(t, ok)
	assert.Equal(t, "one", v)

	assert.True(t, cache.Remove(h1))
	assert.False(t, cache.Remove(h1), "double remove must report false")
	_, ok = cache.Get(h1)
	assert.False(t, ok)
	assert.Equal(t, 1, cache.Len())
}

func TestCacheHandlesAreNeverReused(t *testing.T) {
	cache := NewCache[int]()
	h1 := cache.Insert(1)
	cache.Remove(h1)
	h2 := cache.Insert(2)
	assert.NotEqual(t, h1, h2)
}
