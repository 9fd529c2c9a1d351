// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package platform

import (
	"context"
	"errors"
	"fmt"

	"github.com/qolzam/jobly/internal/auth/tokens"
	"github.com/qolzam/jobly/internal/cache"
	"github.com/qolzam/jobly/internal/database/postgres"
	"github.com/qolzam/jobly/internal/pkg/log"
	platformconfig "github.com/qolzam/jobly/internal/platform/config"
)

// BaseService bundles the infrastructure every domain service is built on
type BaseService struct {
	Config   *platformconfig.Config
	DB       *postgres.Client
	Cache    *cache.Service
	Issuer   *tokens.Issuer
	Verifier *tokens.Verifier
}

// NewBaseService connects to Postgres, builds the cache backend and parses
// the signing keys. Anything already opened is closed again on failure.
func NewBaseService(ctx context.Context, cfg *platformconfig.Config) (*BaseService, error) {
	if cfg == nil {
		return nil, fmt.Errorf("platform configuration is required")
	}

	issuer, err := tokens.NewIssuer(cfg.JWT.PrivateKey, cfg.JWT.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to load signing key: %w", err)
	}
	verifier, err := tokens.NewVerifier(cfg.JWT.PublicKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load verification key: %w", err)
	}

	db, err := postgres.NewClient(ctx, cfg.Database.Postgres)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	cacheService, err := cache.NewFromConfig(ctx, cfg.Cache)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create cache: %w", err)
	}
	if cacheService.IsEnabled() {
		log.Info("Cache enabled (%s backend, ttl %s)", cfg.Cache.Backend, cfg.Cache.TTL)
	}

	return NewBaseServiceWith(cfg, db, cacheService, issuer, verifier), nil
}

// NewBaseServiceWith assembles a BaseService from existing parts. Tests use
// it with a sqlmock-backed client.
func NewBaseServiceWith(cfg *platformconfig.Config, db *postgres.Client, cacheService *cache.Service,
	issuer *tokens.Issuer, verifier *tokens.Verifier) *BaseService {
	return &BaseService{
		Config:   cfg,
		DB:       db,
		Cache:    cacheService,
		Issuer:   issuer,
		Verifier: verifier,
	}
}

// Ping checks the database connection.
func (s *BaseService) Ping(ctx context.Context) error {
	return s.DB.Ping(ctx)
}

// Close releases the cache backend and the connection pool.
func (s *BaseService) Close() error {
	var errs []error
	if s.Cache != nil {
		if err := s.Cache.Close(); err != nil {
			errs = append(errs, fmt.Errorf("cache: %w", err))
		}
	}
	if s.DB != nil {
		stats := s.DB.TxStats()
		log.Info("Transactions: %d committed, %d rolled back, %d failed", stats.Committed, stats.RolledBack, stats.Failed)
		if err := s.DB.Close(); err != nil {
			errs = append(errs, fmt.Errorf("postgres: %w", err))
		}
	}
	return errors.Join(errs...)
}
