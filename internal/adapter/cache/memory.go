// Package cache holds the in-process CachePort used when Redis is not
// configured (flat-file/dev mode) and in tests.
package cache

import (
	"errors"
	"sync"
	"time"

	"devdirectory/internal/core/ports"
)

var ErrCacheMiss = errors.New("cache: key not found")

type entry struct {
	value     []byte
	expiresAt time.Time
}

type MemoryCache struct {
	mu    sync.RWMutex
	items map[string]entry
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{items: map[string]entry{}}
}

func (c *MemoryCache) Get(key string) ([]byte, error) {
	c.mu.RLock()
	item, ok := c.items[key]
	c.mu.RUnlock()

	if !ok {
		return nil, ErrCacheMiss
	}
	if !item.expiresAt.IsZero() && time.Now().After(item.expiresAt) {
		c.mu.Lock()
		delete(c.items, key)
		c.mu.Unlock()
		return nil, ErrCacheMiss
	}
	return item.value, nil
}

func (c *MemoryCache) Set(key string, value []byte, ttl time.Duration) error {
	item := entry{value: value}
	if ttl > 0 {
		item.expiresAt = time.Now().Add(ttl)
	}

	c.mu.Lock()
	c.items[key] = item
	c.mu.Unlock()
	return nil
}

func (c *MemoryCache) Delete(key string) error {
	c.mu.Lock()
	delete(c.items, key)
	c.mu.Unlock()
	return nil
}

var _ ports.CachePort = (*MemoryCache)(nil)
