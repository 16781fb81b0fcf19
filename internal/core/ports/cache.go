package ports

import "time"

// CachePort is the cache-aside contract; Get returns an error on miss.
type CachePort interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
}
