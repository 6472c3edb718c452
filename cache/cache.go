// Package cache contains data structures that are useful to build caches.
//
// The types provided by the package are generic building blocks implementing
// caching algorithms. Synchronization in caching strategies is often very
// specific to the application and harder to generalize, so the types provided
// by this package do not make opinionated choices on how synchronization should
// be handled, which makes them unsafe to use concurrently from multiple
// goroutines
package cache

import "github.com/segmentio/intrusive/container"

// Interface is the interface implemented by caches.
type Interface[K comparable, V any] interface {
	// Returns the number of items in the cache.
	Len() int

	// Inserts an item in the cache, returning the previous value associated
	// with the cache key.
	Insert(key K, value V) (previous V, replaced bool)

	// Returns the value associated with the given key in the cache.
	Lookup(key K) (value V, found bool)

	// Deletes an item from the cache.
	Delete(key K) (value V, deleted bool)

	// Evicts an item from the cache.
	Evict() (key K, value V, evicted bool)

	// Calls f for each entry in the cache. The order in which entries are
	// presented depends on the implementation. If f returns false, iteration
	// stops.
	Range(f func(K, V) bool)
}

// Stats contains counters tracking usage of a cache.
type Stats struct {
	Inserts   int64
	Updates   int64
	Deletes   int64
	Lookups   int64
	Hits      int64
	Evictions int64
}

// Config carries the configuration of Cache instances.
type Config struct {
	// Maximum number of entries in the cache, zero means no limit.
	Capacity int
	// Release values which implement container.Releaser when the cache
	// evicts them to stay within its capacity.
	ReleaseEvicted bool
}

// DefaultConfig constructs a new Config instance initialized with the default
// configuration.
func DefaultConfig() *Config {
	return &Config{}
}

// Apply applies the list of options passed as arguments to c.
func (c *Config) Apply(options ...Option) {
	for _, opt := range options {
		opt.Configure(c)
	}
}

// Option is an interface implemented by options allowing configuration of new
// Cache instances.
type Option interface {
	Configure(*Config)
}

type option func(*Config)

func (opt option) Configure(config *Config) { opt(config) }

// Capacity is a configuration option setting the maximum number of entries
// held by the cache. Inserting entries in a full cache evicts the least
// recently used ones.
//
// Default: no limit
func Capacity(n int) Option {
	return option(func(config *Config) { config.Capacity = n })
}

// ReleaseEvicted is a configuration option enabling the release of values
// evicted from the cache when it is full (see container.Releaser). Values
// returned by Evict and Delete are never released by the cache.
//
// Default: false
func ReleaseEvicted(enabled bool) Option {
	return option(func(config *Config) { config.ReleaseEvicted = enabled })
}

// Cache wraps an underlying caching implementation, adding measures of usage
// and an optional capacity.
//
// By default, a LRU caching strategy is used.
type Cache[K comparable, V any] struct {
	stats   Stats
	config  Config
	backend Interface[K, V]
}

// New constructs a new Cache instance backed by a LRU, using the list of
// options passed as arguments to configure the cache.
func New[K comparable, V any](options ...Option) *Cache[K, V] {
	config := DefaultConfig()
	config.Apply(options...)
	c := &Cache[K, V]{config: *config}
	c.backend = new(LRU[K, V])
	return c
}

func (c *Cache[K, V]) Init(backend Interface[K, V]) {
	c.stats = Stats{}
	c.backend = backend
}

func (c *Cache[K, V]) Len() int {
	if c.backend != nil {
		return c.backend.Len()
	}
	return 0
}

func (c *Cache[K, V]) Insert(key K, value V) (previous V, replaced bool) {
	if c.backend == nil {
		c.backend = new(LRU[K, V])
	}
	previous, replaced = c.backend.Insert(key, value)
	if replaced {
		c.stats.Updates++
	} else {
		c.stats.Inserts++
		c.shrink()
	}
	return previous, replaced
}

func (c *Cache[K, V]) shrink() {
	if c.config.Capacity <= 0 {
		return
	}
	for c.backend.Len() > c.config.Capacity {
		_, value, evicted := c.Evict()
		if !evicted {
			break
		}
		if c.config.ReleaseEvicted {
			container.Release(value)
		}
	}
}

func (c *Cache[K, V]) Lookup(key K) (value V, found bool) {
	if c.backend != nil {
		value, found = c.backend.Lookup(key)
		c.stats.Lookups++
		if found {
			c.stats.Hits++
		}
	}
	return value, found
}

func (c *Cache[K, V]) Delete(key K) (value V, deleted bool) {
	if c.backend != nil {
		value, deleted = c.backend.Delete(key)
		if deleted {
			c.stats.Deletes++
		}
	}
	return value, deleted
}

func (c *Cache[K, V]) Evict() (key K, value V, evicted bool) {
	if c.backend != nil {
		key, value, evicted = c.backend.Evict()
		if evicted {
			c.stats.Evictions++
		}
	}
	return key, value, evicted
}

func (c *Cache[K, V]) Range(f func(K, V) bool) {
	if c.backend != nil {
		c.backend.Range(f)
	}
}

func (c *Cache[K, V]) Stats() Stats {
	return c.stats
}
