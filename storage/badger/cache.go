package badger

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/onflow/flow-crowdfund/module"
	"github.com/onflow/flow-crowdfund/module/metrics"
)

func withLimit[K comparable, V any](limit uint) func(*Cache[K, V]) {
	return func(c *Cache[K, V]) {
		c.limit = limit
	}
}

func withResource[K comparable, V any](resource string) func(*Cache[K, V]) {
	return func(c *Cache[K, V]) {
		c.resource = resource
	}
}

type versioned[V any] struct {
	version uint64
	value   V
}

// Cache holds decoded records together with the badger commit version they
// were read at. A cached record is only served for the exact version the
// transaction sees, so the cache can never return data a transaction's
// snapshot would not.
type Cache[K comparable, V any] struct {
	metrics  module.CacheMetrics
	limit    uint
	resource string
	cache    *lru.Cache[K, versioned[V]]
}

func newCache[K comparable, V any](collector module.CacheMetrics, options ...func(*Cache[K, V])) *Cache[K, V] {
	c := Cache[K, V]{
		metrics:  collector,
		limit:    1000,
		resource: metrics.ResourceUndefined,
	}
	for _, option := range options {
		option(&c)
	}
	c.cache, _ = lru.New[K, versioned[V]](int(c.limit))
	c.metrics.CacheEntries(c.resource, uint(c.cache.Len()))
	return &c
}

// Get returns the value cached for key if it was cached at the given version.
func (c *Cache[K, V]) Get(key K, version uint64) (V, bool) {
	entry, cached := c.cache.Get(key)
	if cached && entry.version == version {
		c.metrics.CacheHit(c.resource)
		return entry.value, true
	}
	c.metrics.CacheMiss(c.resource)
	var nullV V
	return nullV, false
}

// NotFound records a lookup of a key that is in neither the cache nor the database.
func (c *Cache[K, V]) NotFound(key K) {
	c.cache.Remove(key)
	c.metrics.CacheNotFound(c.resource)
}

// Insert caches the value read at the given version. Older versions never
// replace newer ones.
func (c *Cache[K, V]) Insert(key K, version uint64, value V) {
	entry, cached := c.cache.Peek(key)
	if cached && entry.version > version {
		return
	}
	evicted := c.cache.Add(key, versioned[V]{version: version, value: value})
	if !evicted {
		c.metrics.CacheEntries(c.resource, uint(c.cache.Len()))
	}
}
