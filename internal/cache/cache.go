package cache

import "sync"

// Cache is a generic thread-safe LRU cache bounded by the total size of its
// values. When an insertion pushes the total above the budget, least
// recently used entries are evicted until it fits again.
//
// Cache must not be copied after creation (has mutex).
type Cache[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]*entry[K, V]
	order   recencyList[K, V]
	sizeOf  func(V) int64
	budget  int64
	used    int64

	hits      uint64
	misses    uint64
	evictions uint64
}

// New creates a cache holding at most budget size units as measured by
// sizeOf. A budget of 0 means unlimited. A nil sizeOf counts every value
// as 1, turning the budget into an entry count.
func New[K comparable, V any](budget int64, sizeOf func(V) int64) *Cache[K, V] {
	if sizeOf == nil {
		sizeOf = func(V) int64 { return 1 }
	}
	return &Cache[K, V]{
		entries: make(map[K]*entry[K, V]),
		sizeOf:  sizeOf,
		budget:  budget,
	}
}

// Get retrieves a value from the cache and marks it as recently used.
// Returns (value, true) if found, (zero, false) otherwise.
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
	c.order.moveToFront(e)
	return e.value, true
}

// Set stores a value in the cache, replacing any previous value for key.
// A value larger than the whole budget is not stored.
func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	size := c.sizeOf(value)
	if old, ok := c.entries[key]; ok {
		c.remove(old)
	}
	if c.budget > 0 && size > c.budget {
		return
	}

	e := &entry[K, V]{key: key, value: value, size: size}
	c.entries[key] = e
	c.order.pushFront(e)
	c.used += size
	c.evict()
}

// Delete removes an entry from the cache.
// Returns true if the entry was found and removed.
func (c *Cache[K, V]) Delete(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if ok {
		c.remove(e)
	}
	return ok
}

// Clear removes all entries from the cache. Counters are kept.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[K]*entry[K, V])
	c.order.clear()
	c.used = 0
}

// Len returns the number of entries in the cache.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

// Stats returns cache statistics.
func (c *Cache[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := Stats{
		Len:       len(c.entries),
		Used:      c.used,
		Budget:    c.budget,
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
	}
	if total := c.hits + c.misses; total > 0 {
		s.HitRate = float64(c.hits) / float64(total)
	}
	return s
}

// evict drops least recently used entries until the budget holds.
// Caller must hold c.mu.
func (c *Cache[K, V]) evict() {
	if c.budget <= 0 {
		return
	}
	for c.used > c.budget {
		e := c.order.oldest()
		if e == nil {
			return
		}
		c.remove(e)
		c.evictions++
	}
}

// remove unlinks e. Caller must hold c.mu.
func (c *Cache[K, V]) remove(e *entry[K, V]) {
	c.order.unlink(e)
	delete(c.entries, e.key)
	c.used -= e.size
}

// Stats contains cache statistics.
type Stats struct {
	// Len is the current number of entries.
	Len int
	// Used is the total size of the cached values.
	Used int64
	// Budget is the size limit, 0 for unlimited.
	Budget int64
	// Hits is the number of successful lookups.
	Hits uint64
	// Misses is the number of failed lookups.
	Misses uint64
	// HitRate is the cache hit rate 0.0 to 1.0.
	HitRate float64
	// Evictions is the number of entries dropped to honor the budget.
	Evictions uint64
}
