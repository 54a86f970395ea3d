package snapshot

import (
	"sync"

	"github.com/go-ecma/arraybuffer/internal/hash"
)

// entry holds a previously computed Dump result alongside the kind it was
// compressed with, so a Cache hit can be rejected if the caller later asks
// for a different Kind of the same content.
type entry struct {
	kind Kind
	data []byte
}

// Cache is a content-addressed cache of Dump results, keyed by
// internal/hash.ID over the ArrayBuffer's raw, pre-compression bytes. It
// exists because fixture-generation code commonly re-snapshots buffers
// that carry identical content (the same test vector constructed
// independently in several places); caching the compressed form skips
// redundant compression work.
//
// Safe for concurrent use.
type Cache struct {
	mu      sync.RWMutex
	entries map[uint64]entry
}

// NewCache returns an empty Cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[uint64]entry)}
}

// Get returns the cached Dump output for raw content hashed to the given
// kind, and whether it was present. A hit requires both the content hash
// and the Kind to match a prior Put.
func (c *Cache) Get(raw []byte, kind Kind) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[hash.IDBytes(raw)]
	if !ok || e.kind != kind {
		return nil, false
	}
	return e.data, true
}

// Put records dumped as the Dump output for raw content compressed with
// kind, keyed by raw's content hash. A later Put for the same content
// overwrites the prior entry, including one stored under a different
// Kind.
func (c *Cache) Put(raw []byte, kind Kind, dumped []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[hash.IDBytes(raw)] = entry{kind: kind, data: dumped}
}

// Count returns the number of distinct contents currently cached.
func (c *Cache) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Reset clears all cached entries.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k := range c.entries {
		delete(c.entries, k)
	}
}
