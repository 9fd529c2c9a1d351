package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/qolzam/jobly/internal/pkg/log"
)

// Config is the full runtime configuration of the API.
type Config struct {
	Env        string           `json:"env"`
	Server     ServerConfig     `json:"server"`
	Database   DatabaseConfig   `json:"database"`
	JWT        JWTConfig        `json:"jwt"`
	Security   SecurityConfig   `json:"security"`
	Cache      CacheConfig      `json:"cache"`
	RateLimits RateLimitsConfig `json:"rateLimits"`
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Host      string `json:"host"`
	Port      int    `json:"port"`
	WebDomain string `json:"webDomain"`
	Debug     bool   `json:"debug"`
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Postgres PostgreSQLConfig `json:"postgres"`
}

// PostgreSQLConfig holds PostgreSQL-specific configuration. DSN wins over the
// individual connection fields when set.
type PostgreSQLConfig struct {
	Host            string        `json:"host"`
	Port            int           `json:"port"`
	Username        string        `json:"username"`
	Password        string        `json:"password"`
	Database        string        `json:"database"`
	DSN             string        `json:"dsn"`
	SSLMode         string        `json:"sslMode"`
	MaxOpenConns    int           `json:"maxOpenConns"`
	MaxIdleConns    int           `json:"maxIdleConns"`
	ConnMaxLifetime time.Duration `json:"connMaxLifetime"`
}

// JWTConfig holds the ES256 key pair in PEM form and the token lifetime.
type JWTConfig struct {
	PublicKey  string        `json:"publicKey"`
	PrivateKey string        `json:"privateKey"`
	TokenTTL   time.Duration `json:"tokenTtl"`
}

// SecurityConfig holds password policy.
type SecurityConfig struct {
	BcryptWorkFactor int `json:"bcryptWorkFactor"`
	// PasswordMinScore is the minimum zxcvbn score (0-4); 0 disables the check.
	PasswordMinScore int `json:"passwordMinScore"`
}

// CacheConfig holds cache-related configuration
type CacheConfig struct {
	Enabled         bool          `json:"enabled"`
	Backend         string        `json:"backend"`
	TTL             time.Duration `json:"ttl"`
	Prefix          string        `json:"prefix"`
	MaxKeys         int           `json:"maxKeys"`
	CleanupInterval time.Duration `json:"cleanupInterval"`
	Redis           RedisConfig   `json:"redis"`
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	Address  string `json:"address"`
	Password string `json:"password"`
	Database int    `json:"database"`
	PoolSize int    `json:"poolSize"`
}

// RateLimitConfig holds rate limiting configuration for a specific endpoint
type RateLimitConfig struct {
	Enabled  bool          `json:"enabled"`
	Max      int           `json:"max"`
	Duration time.Duration `json:"duration"`
}

// RateLimitsConfig holds rate limiting configuration for all endpoints
type RateLimitsConfig struct {
	Login    RateLimitConfig `json:"login"`
	Register RateLimitConfig `json:"register"`
}

// IsTest reports whether APP_ENV selects the test profile.
func (c *Config) IsTest() bool {
	return c.Env == "test"
}

// lookup reads one raw value; ok is false when the key is absent.
type lookup func(key string) (string, bool)

type source struct {
	lookup lookup
}

func (s source) get(key, defaultValue string) string {
	if value, ok := s.lookup(key); ok && value != "" {
		return value
	}
	return defaultValue
}

func (s source) getInt(key string, defaultValue int) int {
	if value, ok := s.lookup(key); ok {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func (s source) getBool(key string, defaultValue bool) bool {
	if value, ok := s.lookup(key); ok {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func (s source) getDuration(key string, defaultValue time.Duration) time.Duration {
	if value, ok := s.lookup(key); ok {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// LoadFromEnv loads configuration from the process environment.
// Precedence: explicit environment variables, then the first .env file found,
// then defaults.
func LoadFromEnv() (*Config, error) {
	envPaths := []string{
		".env",
		"../.env",
		"../../.env",
	}

	var loadErr error
	for _, envPath := range envPaths {
		// godotenv never overrides a variable that is already set.
		if loadErr = godotenv.Load(envPath); loadErr == nil {
			break
		}
	}
	if loadErr != nil {
		log.Info(".env file not found, using environment variables and defaults")
	}

	return load(source{lookup: os.LookupEnv})
}

// LoadFromMap loads configuration from an in-memory map.
// Tests use it to exercise configuration without touching the environment.
func LoadFromMap(envMap map[string]string) (*Config, error) {
	return load(source{lookup: func(key string) (string, bool) {
		value, ok := envMap[key]
		return value, ok
	}})
}

func load(s source) (*Config, error) {
	env := s.get("APP_ENV", "development")
	isTest := env == "test"

	database := "jobly"
	bcryptCost := 12
	if isTest {
		database = "jobly_test"
		bcryptCost = 1
	}

	config := &Config{
		Env: env,
		Server: ServerConfig{
			Host:      s.get("HOST", "0.0.0.0"),
			Port:      s.getInt("SERVER_PORT", 3001),
			WebDomain: s.get("WEB_DOMAIN", "http://localhost:3000"),
			Debug:     s.getBool("DEBUG", false),
		},
		Database: DatabaseConfig{
			Postgres: PostgreSQLConfig{
				Host:            s.get("POSTGRES_HOST", "localhost"),
				Port:            s.getInt("POSTGRES_PORT", 5432),
				Username:        s.get("POSTGRES_USERNAME", "postgres"),
				Password:        s.get("POSTGRES_PASSWORD", ""),
				Database:        s.get("POSTGRES_DATABASE", database),
				DSN:             s.get("POSTGRES_DSN", ""),
				SSLMode:         s.get("POSTGRES_SSL_MODE", "disable"),
				MaxOpenConns:    s.getInt("POSTGRES_MAX_OPEN_CONNS", 25),
				MaxIdleConns:    s.getInt("POSTGRES_MAX_IDLE_CONNS", 25),
				ConnMaxLifetime: time.Duration(s.getInt("POSTGRES_CONN_MAX_LIFETIME", 300)) * time.Second,
			},
		},
		JWT: JWTConfig{
			PublicKey:  s.get("JWT_PUBLIC_KEY", ""),
			PrivateKey: s.get("JWT_PRIVATE_KEY", ""),
			TokenTTL:   s.getDuration("JWT_TOKEN_TTL", 24*time.Hour),
		},
		Security: SecurityConfig{
			BcryptWorkFactor: s.getInt("BCRYPT_WORK_FACTOR", bcryptCost),
			PasswordMinScore: s.getInt("PASSWORD_MIN_SCORE", 0),
		},
		Cache: CacheConfig{
			Enabled:         s.getBool("CACHE_ENABLED", true),
			Backend:         s.get("CACHE_BACKEND", "memory"),
			TTL:             s.getDuration("CACHE_TTL", 5*time.Minute),
			Prefix:          s.get("CACHE_PREFIX", "jobly:"),
			MaxKeys:         s.getInt("CACHE_MAX_KEYS", 10000),
			CleanupInterval: s.getDuration("CACHE_CLEANUP_INTERVAL", time.Minute),
			Redis: RedisConfig{
				Address:  s.get("REDIS_ADDRESS", "localhost:6379"),
				Password: s.get("REDIS_PASSWORD", ""),
				Database: s.getInt("REDIS_DATABASE", 0),
				PoolSize: s.getInt("REDIS_POOL_SIZE", 10),
			},
		},
		RateLimits: RateLimitsConfig{
			Login: RateLimitConfig{
				Enabled:  s.getBool("RATE_LIMIT_LOGIN_ENABLED", !isTest),
				Max:      s.getInt("RATE_LIMIT_LOGIN_MAX", 10),
				Duration: s.getDuration("RATE_LIMIT_LOGIN_DURATION", 15*time.Minute),
			},
			Register: RateLimitConfig{
				Enabled:  s.getBool("RATE_LIMIT_REGISTER_ENABLED", !isTest),
				Max:      s.getInt("RATE_LIMIT_REGISTER_MAX", 5),
				Duration: s.getDuration("RATE_LIMIT_REGISTER_DURATION", time.Hour),
			},
		},
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration for required fields
func (c *Config) Validate() error {
	var errors []string

	if strings.TrimSpace(c.JWT.PublicKey) == "" {
		errors = append(errors, "JWT_PUBLIC_KEY is required")
	}
	if strings.TrimSpace(c.JWT.PrivateKey) == "" {
		errors = append(errors, "JWT_PRIVATE_KEY is required")
	}
	if c.JWT.TokenTTL <= 0 {
		errors = append(errors, "JWT_TOKEN_TTL must be positive")
	}
	if c.Security.BcryptWorkFactor < 1 || c.Security.BcryptWorkFactor > 31 {
		errors = append(errors, "BCRYPT_WORK_FACTOR must be between 1 and 31")
	}
	if c.Security.PasswordMinScore < 0 || c.Security.PasswordMinScore > 4 {
		errors = append(errors, "PASSWORD_MIN_SCORE must be between 0 and 4")
	}

	validBackends := []string{"memory", "redis"}
	if !contains(validBackends, c.Cache.Backend) {
		errors = append(errors, fmt.Sprintf("CACHE_BACKEND must be one of: %s", strings.Join(validBackends, ", ")))
	}

	if len(errors) > 0 {
		return fmt.Errorf("validation errors: %s", strings.Join(errors, "; "))
	}

	return nil
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
