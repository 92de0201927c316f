package pulse

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

type Releaser interface {
	Release()
}

// ResourceCache keeps a bounded number of gpu resources created on demand.
// Values are released when they are evicted or the cache is released.
type ResourceCache[K comparable, V Releaser] struct {
	create func(key K) (V, error)
	cache  *lru.Cache[K, V]
}

func NewResourceCache[K comparable, V Releaser](size int, create func(key K) (V, error)) *ResourceCache[K, V] {
	cache, err := lru.NewWithEvict[K, V](size, releaseOnEvict[K, V])
	if err != nil {
		panic(fmt.Errorf("create resource cache of size %d: %w", size, err))
	}

	return &ResourceCache[K, V]{create: create, cache: cache}
}

func releaseOnEvict[K comparable, V Releaser](_ K, value V) {
	value.Release()
}

// Get returns the cached value for key, creating it on a miss.
// Failed creations are not cached.
func (c *ResourceCache[K, V]) Get(key K) (V, error) {
	if value, ok := c.cache.Get(key); ok {
		return value, nil
	}

	value, err := c.create(key)
	if err != nil {
		return value, err
	}

	c.cache.Add(key, value)

	return value, nil
}

func (c *ResourceCache[K, V]) Len() int {
	return c.cache.Len()
}

// Release releases all cached values. The cache stays usable.
func (c *ResourceCache[K, V]) Release() {
	c.cache.Purge()
}
