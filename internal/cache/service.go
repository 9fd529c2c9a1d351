package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/qolzam/jobly/internal/pkg/log"
	"github.com/qolzam/jobly/internal/platform/config"
)

// Service stores JSON values under prefixed keys. Cache failures are logged
// and reported as misses so callers can always fall back to the database.
type Service struct {
	cache   Cache
	prefix  string
	ttl     time.Duration
	enabled bool
}

// NewService wraps a backend. A nil backend yields a disabled service.
func NewService(backend Cache, prefix string, ttl time.Duration) *Service {
	return &Service{cache: backend, prefix: prefix, ttl: ttl, enabled: backend != nil}
}

// NewFromConfig builds the configured backend.
func NewFromConfig(ctx context.Context, cfg config.CacheConfig) (*Service, error) {
	if !cfg.Enabled {
		return NewService(nil, cfg.Prefix, cfg.TTL), nil
	}

	switch cfg.Backend {
	case BackendMemory:
		return NewService(NewMemoryCache(cfg.MaxKeys, cfg.CleanupInterval), cfg.Prefix, cfg.TTL), nil
	case BackendRedis:
		backend, err := NewRedisCache(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		return NewService(backend, cfg.Prefix, cfg.TTL), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidCacheType, cfg.Backend)
	}
}

// IsEnabled reports whether a backend is configured.
func (s *Service) IsEnabled() bool {
	return s != nil && s.enabled
}

// Key joins the prefix, a namespace and an id.
func (s *Service) Key(namespace, id string) string {
	return s.prefix + namespace + ":" + id
}

// GetCached unmarshals the value under key into target and reports a hit.
func (s *Service) GetCached(ctx context.Context, key string, target interface{}) bool {
	if !s.IsEnabled() {
		return false
	}

	data, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrKeyNotFound) {
			log.WarnWithContext(ctx, "Cache get error for key %s: %v", key, err)
		}
		return false
	}

	if err := json.Unmarshal(data, target); err != nil {
		log.WarnWithContext(ctx, "Cache data unmarshal error for key %s: %v", key, err)
		return false
	}
	return true
}

// CacheData stores value under key with the default TTL.
func (s *Service) CacheData(ctx context.Context, key string, value interface{}) {
	if !s.IsEnabled() {
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		log.WarnWithContext(ctx, "Cache data marshal error for key %s: %v", key, err)
		return
	}
	if err := s.cache.Set(ctx, key, data, s.ttl); err != nil {
		log.WarnWithContext(ctx, "Cache set error for key %s: %v", key, err)
	}
}

// Invalidate removes the given keys.
func (s *Service) Invalidate(ctx context.Context, keys ...string) {
	if !s.IsEnabled() {
		return
	}
	for _, key := range keys {
		if err := s.cache.Delete(ctx, key); err != nil {
			log.WarnWithContext(ctx, "Cache delete error for key %s: %v", key, err)
		}
	}
}

// InvalidateNamespace removes every key of a namespace.
func (s *Service) InvalidateNamespace(ctx context.Context, namespace string) {
	if !s.IsEnabled() {
		return
	}
	pattern := s.prefix + namespace + ":*"
	if err := s.cache.DeletePattern(ctx, pattern); err != nil {
		log.WarnWithContext(ctx, "Cache delete pattern error for %s: %v", pattern, err)
	}
}

// Stats returns backend statistics.
func (s *Service) Stats() Stats {
	if !s.IsEnabled() {
		return Stats{}
	}
	return s.cache.Stats()
}

// Close closes the backend.
func (s *Service) Close() error {
	if !s.IsEnabled() {
		return nil
	}
	return s.cache.Close()
}
