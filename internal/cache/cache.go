package cache

import (
	"slices"
	"sync"
)

// Cache is a thread-safe LRU cache. Once it grows past its soft limit,
// the least recently used quarter of the entries is evicted.
//
// Cache must not be copied after first use.
type Cache[K comparable, V any] struct {
	mu        sync.Mutex
	entries   map[K]*entry[V]
	softLimit int
	tick      uint64

	hits, misses uint64
}

type entry[V any] struct {
	value V
	used  uint64
}

// Stats reports cache usage.
type Stats struct {
	Len    int
	Hits   uint64
	Misses uint64
}

// New returns a cache holding about softLimit entries.
// A softLimit <= 0 disables eviction.
func New[K comparable, V any](softLimit int) *Cache[K, V] {
	return &Cache[K, V]{
		entries:   make(map[K]*entry[V]),
		softLimit: softLimit,
	}
}

// Get returns the value stored under key.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		c.misses++
		var zero V
		return zero, false
	}
	c.hits++
	c.tick++
	e.used = c.tick
	return e.value, true
}

// Set stores value under key, evicting old entries when over the limit.
func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store(key, value)
}

// GetOrCreate returns the value under key, calling create on a miss.
// create runs with the cache locked and must not use the cache.
func (c *Cache[K, V]) GetOrCreate(key K, create func() V) V {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		c.hits++
		c.tick++
		e.used = c.tick
		return e.value
	}
	c.misses++
	v := create()
	c.store(key, v)
	return v
}

// Len returns the number of cached entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Clear drops every entry and resets the counters.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.entries)
	c.tick, c.hits, c.misses = 0, 0, 0
}

// Stats returns a snapshot of the cache counters.
func (c *Cache[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Stats{Len: len(c.entries), Hits: c.hits, Misses: c.misses}
}

// store requires c.mu.
func (c *Cache[K, V]) store(key K, value V) {
	c.tick++
	c.entries[key] = &entry[V]{value: value, used: c.tick}
	if c.softLimit > 0 && len(c.entries) > c.softLimit {
		c.evict()
	}
}

// evict trims the cache to three quarters of its soft limit, oldest first.
func (c *Cache[K, V]) evict() {
	keep := max(c.softLimit*3/4, 1)
	n := len(c.entries) - keep
	if n <= 0 {
		return
	}

	type aged struct {
		key  K
		used uint64
	}
	all := make([]aged, 0, len(c.entries))
	for k, e := range c.entries {
		all = append(all, aged{k, e.used})
	}
	slices.SortFunc(all, func(a, b aged) int {
		switch {
		case a.used < b.used:
			return -1
		case a.used > b.used:
			return 1
		}
		return 0
	})
	for _, a := range all[:n] {
		delete(c.entries, a.key)
	}
}
