package cache

import (
	"sync"
	"time"

	"landscout-backoffice/pkg/metrics"
)

// DefaultTTL is the freshness window applied by Set.
const DefaultTTL = 30 * time.Second

type entry struct {
	data      interface{}
	timestamp time.Time
	ttl       time.Duration
}

// Cache is an in-process TTL store for the most recent successful result per
// logical key. Entries expire lazily on read. Each service instance owns its
// own Cache; nothing here is shared across processes, so horizontally scaled
// deployments see independent staleness windows bounded by the TTL.
type Cache struct {
	mu         sync.Mutex
	entries    map[string]entry
	defaultTTL time.Duration
	now        func() time.Time
}

// New creates a cache with the given default TTL. A zero or negative
// defaultTTL falls back to DefaultTTL.
func New(defaultTTL time.Duration) *Cache {
	if defaultTTL <= 0 {
		defaultTTL = DefaultTTL
	}
	return &Cache{
		entries:    make(map[string]entry),
		defaultTTL: defaultTTL,
		now:        time.Now,
	}
}

// Set stores data under key with the default TTL, overwriting any prior
// entry unconditionally.
func (c *Cache) Set(key string, data interface{}) {
	c.SetTTL(key, data, c.defaultTTL)
}

// SetTTL stores data under key with an explicit TTL.
func (c *Cache) SetTTL(key string, data interface{}, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{data: data, timestamp: c.now(), ttl: ttl}
}

// Get returns the cached value and true if the entry exists and is still
// fresh (age <= ttl). An expired entry is deleted and reported as absent.
// A miss is a normal outcome, never an error.
func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	label := metrics.OperationLabel(key)
	e, ok := c.entries[key]
	if !ok {
		metrics.CacheMissesTotal.WithLabelValues(label).Inc()
		return nil, false
	}
	if c.now().Sub(e.timestamp) > e.ttl {
		delete(c.entries, key)
		metrics.CacheMissesTotal.WithLabelValues(label).Inc()
		return nil, false
	}
	metrics.CacheHitsTotal.WithLabelValues(label).Inc()
	return e.data, true
}

// Invalidate removes one entry; no-op if absent.
func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Clear removes all entries.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry)
}

// Len reports the number of entries currently held, expired or not.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
