package services

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// keyCache remembers sub-entities already resolved in this process. A nil
// *keyCache is valid and caches nothing.
type keyCache[K comparable, V any] struct {
	storage *lru.Cache[K, V]
}

func newKeyCache[K comparable, V any](size int) *keyCache[K, V] {
	if size <= 0 {
		return nil
	}
	c, err := lru.New[K, V](size)
	if err != nil {
		return nil
	}
	return &keyCache[K, V]{storage: c}
}

func (c *keyCache[K, V]) get(key K) (V, bool) {
	if c == nil {
		var zero V
		return zero, false
	}
	return c.storage.Get(key)
}

func (c *keyCache[K, V]) add(key K, value V) {
	if c == nil {
		return
	}
	c.storage.Add(key, value)
}

func (c *keyCache[K, V]) len() int {
	if c == nil {
		return 0
	}
	return c.storage.Len()
}
