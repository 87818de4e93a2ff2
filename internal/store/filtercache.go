package store

import (
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// item wraps a cached value with its expiry.
type item[T any] struct {
	value     T
	expiredAt time.Time
}

// FilterCache memoizes filtered list queries. size caps the number of
// distinct filter combinations kept, ttl bounds staleness between flushes.
type FilterCache[T any] struct {
	storage *lru.Cache[string, item[T]]
	ttl     time.Duration
}

// NewFilterCache builds a cache holding up to size entries for ttl each.
func NewFilterCache[T any](size int, ttl time.Duration) *FilterCache[T] {
	// lru.New only fails on a non-positive size.
	c, err := lru.New[string, item[T]](size)
	if err != nil {
		panic(err)
	}
	return &FilterCache[T]{storage: c, ttl: ttl}
}

// Set stores value under key.
func (c *FilterCache[T]) Set(key string, value T) {
	c.storage.Add(key, item[T]{value: value, expiredAt: time.Now().Add(c.ttl)})
}

// Get returns the live value for key, dropping it when expired.
func (c *FilterCache[T]) Get(key string) (T, bool) {
	var zero T
	it, ok := c.storage.Get(key)
	if !ok {
		return zero, false
	}
	if time.Now().After(it.expiredAt) {
		c.storage.Remove(key)
		return zero, false
	}
	return it.value, true
}

// Clear drops every entry. Called whenever an underlying table mutates.
func (c *FilterCache[T]) Clear() {
	c.storage.Purge()
}

// Len counts live plus expired-but-unswept entries.
func (c *FilterCache[T]) Len() int {
	return c.storage.Len()
}
