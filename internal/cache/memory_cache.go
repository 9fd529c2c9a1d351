package cache

import (
	"context"
	"path"
	"sync"
	"sync/atomic"
	"time"
)

type cacheItem struct {
	value      []byte
	expiration time.Time
}

func (i *cacheItem) expired(now time.Time) bool {
	return !i.expiration.IsZero() && now.After(i.expiration)
}

// MemoryCache is a process-local Cache. When maxKeys is reached the entry
// closest to expiry is evicted.
type MemoryCache struct {
	mu        sync.RWMutex
	items     map[string]*cacheItem
	maxKeys   int
	hits      int64
	misses    int64
	evictions int64
	closed    bool
	stop      chan struct{}
	now       func() time.Time
}

// NewMemoryCache creates a memory cache and starts its janitor when
// cleanupInterval is positive.
func NewMemoryCache(maxKeys int, cleanupInterval time.Duration) *MemoryCache {
	c := &MemoryCache{
		items:   make(map[string]*cacheItem),
		maxKeys: maxKeys,
		stop:    make(chan struct{}),
		now:     time.Now,
	}
	if cleanupInterval > 0 {
		go c.janitor(cleanupInterval)
	}
	return c
}

// Get retrieves a copy of the value stored under key.
func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	c.mu.RLock()
	if c.closed {
		c.mu.RUnlock()
		return nil, ErrCacheDisabled
	}
	item, ok := c.items[key]
	c.mu.RUnlock()

	if !ok || item.expired(c.now()) {
		atomic.AddInt64(&c.misses, 1)
		return nil, ErrKeyNotFound
	}

	atomic.AddInt64(&c.hits, 1)
	out := make([]byte, len(item.value))
	copy(out, item.value)
	return out, nil
}

// Set stores a copy of value. A non-positive ttl never expires.
func (c *MemoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrCacheDisabled
	}

	item := &cacheItem{value: append([]byte(nil), value...)}
	if ttl > 0 {
		item.expiration = c.now().Add(ttl)
	}

	if _, exists := c.items[key]; !exists && c.maxKeys > 0 && len(c.items) >= c.maxKeys {
		c.evictLocked()
	}
	c.items[key] = item
	return nil
}

func (c *MemoryCache) evictLocked() {
	now := c.now()
	var victim string
	var soonest time.Time
	for key, item := range c.items {
		if item.expired(now) {
			victim = key
			break
		}
		if victim == "" || (!item.expiration.IsZero() && (soonest.IsZero() || item.expiration.Before(soonest))) {
			victim, soonest = key, item.expiration
		}
	}
	if victim != "" {
		delete(c.items, victim)
		atomic.AddInt64(&c.evictions, 1)
	}
}

// Delete removes a value from cache
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
	return nil
}

// DeletePattern removes every key matching the glob pattern.
func (c *MemoryCache) DeletePattern(ctx context.Context, pattern string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key := range c.items {
		if matched, err := path.Match(pattern, key); err != nil {
			return err
		} else if matched {
			delete(c.items, key)
		}
	}
	return nil
}

func (c *MemoryCache) janitor(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.removeExpired()
		case <-c.stop:
			return
		}
	}
}

func (c *MemoryCache) removeExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for key, item := range c.items {
		if item.expired(now) {
			delete(c.items, key)
		}
	}
}

// Close stops the janitor and drops every entry.
func (c *MemoryCache) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true
	close(c.stop)
	c.items = map[string]*cacheItem{}
	return nil
}

// Stats returns cache statistics
func (c *MemoryCache) Stats() Stats {
	c.mu.RLock()
	keys := int64(len(c.items))
	c.mu.RUnlock()

	hits := atomic.LoadInt64(&c.hits)
	misses := atomic.LoadInt64(&c.misses)
	return Stats{
		Hits:      hits,
		Misses:    misses,
		HitRatio:  hitRatio(hits, misses),
		Keys:      keys,
		Evictions: atomic.LoadInt64(&c.evictions),
	}
}
