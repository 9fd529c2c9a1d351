package cache

import (
	"context"
	"errors"
	"time"
)

// Cache is implemented by every cache backend.
type Cache interface {
	// Get retrieves a value from cache by key
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value in cache with TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value from cache by key
	Delete(ctx context.Context, key string) error

	// DeletePattern removes all keys matching a glob pattern ("*" and "?")
	DeletePattern(ctx context.Context, pattern string) error

	// Close closes the cache connection
	Close() error

	// Stats returns cache statistics
	Stats() Stats
}

// Stats provides cache performance statistics
type Stats struct {
	Hits      int64   `json:"hits"`
	Misses    int64   `json:"misses"`
	HitRatio  float64 `json:"hitRatio"`
	Keys      int64   `json:"keys"`
	Evictions int64   `json:"evictions"`
}

func hitRatio(hits, misses int64) float64 {
	if total := hits + misses; total > 0 {
		return float64(hits) / float64(total)
	}
	return 0
}

// Backend names accepted by CACHE_BACKEND.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

var (
	// ErrKeyNotFound is returned when a key is not found in cache
	ErrKeyNotFound = errors.New("key not found")

	// ErrCacheUnavailable is returned when cache backend is unavailable
	ErrCacheUnavailable = errors.New("cache unavailable")

	// ErrCacheDisabled is returned when cache is disabled or closed
	ErrCacheDisabled = errors.New("cache disabled")

	// ErrInvalidCacheType is returned for an unknown backend name
	ErrInvalidCacheType = errors.New("invalid cache type")
)
