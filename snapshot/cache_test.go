package snapshot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCache_GetMissThenHit(t *testing.T) {
	cache := NewCache()
	raw := []byte("hello world")

	_, ok := cache.Get(raw, KindZstd)
	assert.False(t, ok)

	cache.Put(raw, KindZstd, []byte("compressed"))
	got, ok := cache.Get(raw, KindZstd)
	assert.True(t, ok)
	assert.Equal(t, []byte("compressed"), got)
}

func TestCache_DifferentKindIsMiss(t *testing.T) {
	cache := NewCache()
	raw := []byte("hello world")

	cache.Put(raw, KindZstd, []byte("compressed-zstd"))
	_, ok := cache.Get(raw, KindS2)
	assert.False(t, ok)
}

func TestCache_ResetClearsEntries(t *testing.T) {
	cache := NewCache()
	cache.Put([]byte("a"), KindNone, []byte("a"))
	cache.Put([]byte("b"), KindNone, []byte("b"))
	assert.Equal(t, 2, cache.Count())

	cache.Reset()
	assert.Equal(t, 0, cache.Count())
}
