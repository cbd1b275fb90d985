package cache

import (
	"errors"
	"sync"
)

// ErrLoadPanicked is returned to callers that waited on a load which
// panicked instead of returning.
var ErrLoadPanicked = errors.New("cache: load panicked")

// Cache is a generic thread-safe LRU cache with a hard entry limit.
// When an insertion exceeds the limit, the least recently used entry is
// evicted.
//
// Values are only added through GetOrLoad. Loads of different keys run in
// parallel; callers asking for a key that is being loaded wait for that
// load instead of starting another.
//
// Cache is safe for concurrent use.
// Cache must not be copied after creation (has mutex).
type Cache[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]*cacheEntry[K, V]
	loading map[K]*call[V]
	order   lruList[K]
	limit   int

	hits, misses uint64
}

type cacheEntry[K comparable, V any] struct {
	value V
	node  *lruNode[K]
}

// call is a load in progress. val and err are written before wg is
// released and only read after Wait.
type call[V any] struct {
	wg  sync.WaitGroup
	val V
	err error
}

// New creates a cache holding at most limit entries.
// A limit of 0 means unlimited.
func New[K comparable, V any](limit int) *Cache[K, V] {
	return &Cache[K, V]{
		entries: make(map[K]*cacheEntry[K, V]),
		loading: make(map[K]*call[V]),
		limit:   limit,
	}
}

// GetOrLoad returns the cached value for key, or calls load and caches its
// result. load runs without the cache lock held. Concurrent callers for the
// same key share one load and its result, errors included. Errors are not
// cached, so a later call loads again.
func (c *Cache[K, V]) GetOrLoad(key K, load func() (V, error)) (V, error) {
	c.mu.Lock()
	if e, ok := c.entries[key]; ok {
		c.hits++
		c.order.touch(e.node)
		c.mu.Unlock()
		return e.value, nil
	}
	if cl, ok := c.loading[key]; ok {
		c.hits++
		c.mu.Unlock()
		cl.wg.Wait()
		return cl.val, cl.err
	}
	c.misses++
	cl := &call[V]{err: ErrLoadPanicked}
	cl.wg.Add(1)
	c.loading[key] = cl
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		if cl.err == nil {
			c.store(key, cl.val)
		}
		delete(c.loading, key)
		c.mu.Unlock()
		cl.wg.Done()
	}()

	cl.val, cl.err = load()
	return cl.val, cl.err
}

// Len returns the number of entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

// Stats returns cache statistics.
func (c *Cache[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Stats{
		Len:      len(c.entries),
		Capacity: c.limit,
		Hits:     c.hits,
		Misses:   c.misses,
	}
}

// store inserts or replaces key and evicts down to the limit.
// Caller must hold c.mu.
func (c *Cache[K, V]) store(key K, value V) {
	if e, ok := c.entries[key]; ok {
		e.value = value
		c.order.touch(e.node)
		return
	}
	c.entries[key] = &cacheEntry[K, V]{value: value, node: c.order.pushFront(key)}

	for c.limit > 0 && len(c.entries) > c.limit {
		oldest, ok := c.order.popBack()
		if !ok {
			break
		}
		delete(c.entries, oldest)
	}
}

// Stats contains cache statistics.
type Stats struct {
	// Len is the current number of entries.
	Len int
	// Capacity is the entry limit (0 = unlimited).
	Capacity int
	// Hits is the number of calls that did not start a load.
	Hits uint64
	// Misses is the number of loads started.
	Misses uint64
}
