// ABOUTME: Default implementations for library dependencies
// ABOUTME: Provides factory functions for caches, HTTP clients and loggers

package cosmos

import (
	"time"

	"cosmos-api/core/interfaces"
	"cosmos-api/infrastructure/cache/memory"
	"cosmos-api/infrastructure/cache/redis"
	"cosmos-api/infrastructure/cache/sqlite"
	httpInfra "cosmos-api/infrastructure/http/standard"
	logrusInfra "cosmos-api/infrastructure/logger/logrus"
	"cosmos-api/pkg/config"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "COSMOS-Library/1.0"
	defaultCacheFile = "cosmos_cache.db"
)

// DefaultHTTPClient creates an HTTP client that sends every request once
func DefaultHTTPClient(timeout time.Duration, logger interfaces.Logger) interfaces.HTTPClient {
	return httpInfra.NewStandardHTTPClient(timeout,
		httpInfra.WithLogger(logger),
		httpInfra.WithUserAgent(defaultUserAgent),
	)
}

// DefaultMemoryCache creates a default in-memory cache
func DefaultMemoryCache() interfaces.Cache {
	return memory.NewMemoryCache(10 * time.Minute)
}

// DefaultSQLiteCache creates a SQLite cache with the given file path
func DefaultSQLiteCache(filePath string, logger interfaces.Logger) (*sqlite.Client, error) {
	return sqlite.NewSQLiteCache(filePath, logger)
}

// DefaultLogger creates a text logger on stderr at info level
func DefaultLogger() interfaces.Logger {
	logger, err := logrusInfra.New(logrusInfra.Options{Level: "info", Format: "text"})
	if err != nil {
		return QuietLogger()
	}
	return logger
}

// QuietLogger creates a logger that discards all output
func QuietLogger() interfaces.Logger {
	return interfaces.Dependencies{}.Log()
}

// CacheOption represents cache configuration options
type CacheOption struct {
	Type CacheType

	// FilePath is used by the SQLite cache
	FilePath string

	// Redis is used by the Redis cache
	Redis config.RedisConfig
}

// CacheType represents the type of cache
type CacheType string

const (
	CacheTypeMemory CacheType = "memory"
	CacheTypeSQLite CacheType = "sqlite"
	CacheTypeRedis  CacheType = "redis"
)

// WithCacheOption creates a cache based on the provided options. Caches built
// here are closed by Client.Close.
func WithCacheOption(opt CacheOption) Option {
	return func(c *Config) error {
		switch opt.Type {
		case CacheTypeMemory:
			c.Cache = DefaultMemoryCache()
		case CacheTypeSQLite:
			if opt.FilePath == "" {
				opt.FilePath = defaultCacheFile
			}
			cache, err := DefaultSQLiteCache(opt.FilePath, c.Logger)
			if err != nil {
				return NewError(ErrorTypeConfiguration, "failed to open sqlite cache").
					WithContext("path", opt.FilePath).
					WithCause(err)
			}
			c.Cache = cache
			c.closers = append(c.closers, cache)
		case CacheTypeRedis:
			cache, err := redis.NewRedisCache(opt.Redis)
			if err != nil {
				return NewError(ErrorTypeConfiguration, "failed to connect to redis").
					WithContext("address", opt.Redis.Address).
					WithCause(err)
			}
			c.Cache = cache
			c.closers = append(c.closers, cache)
		default:
			return NewError(ErrorTypeConfiguration, "invalid cache type").
				WithContext("type", string(opt.Type))
		}
		return nil
	}
}

// WithDefaultDependencies configures the client with all default dependencies
func WithDefaultDependencies() Option {
	return func(c *Config) error {
		if c.Logger == nil {
			c.Logger = DefaultLogger()
		}
		if c.HTTPClient == nil {
			c.HTTPClient = DefaultHTTPClient(c.Timeout, c.Logger)
		}
		if c.Cache == nil {
			c.Cache = DefaultMemoryCache()
		}
		return nil
	}
}

// WithQuietMode configures the client to suppress all log output
func WithQuietMode() Option {
	return func(c *Config) error {
		c.Logger = QuietLogger()
		return nil
	}
}

// WithLogConfig builds a logrus logger from the given settings
func WithLogConfig(cfg config.LogConfig) Option {
	return func(c *Config) error {
		logger, err := logrusInfra.New(logrusInfra.Options{
			Level:      cfg.Level,
			Format:     cfg.Format,
			File:       cfg.File,
			MaxSizeMB:  cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAgeDays: cfg.MaxAgeDays,
		})
		if err != nil {
			return NewError(ErrorTypeConfiguration, "invalid log configuration").WithCause(err)
		}
		c.Logger = logger
		c.closers = append(c.closers, logger)
		return nil
	}
}

// HTTPClientConfig holds configuration for HTTP client
type HTTPClientConfig struct {
	Timeout time.Duration
	// Retries is the number of attempts for GET requests; 1 disables retrying
	Retries   int
	UserAgent string
}

// DefaultHTTPClientConfig returns default HTTP client configuration
func DefaultHTTPClientConfig() HTTPClientConfig {
	return HTTPClientConfig{
		Timeout:   defaultTimeout,
		Retries:   1,
		UserAgent: defaultUserAgent,
	}
}

// WithHTTPClientConfig creates an HTTP client with custom configuration
func WithHTTPClientConfig(cfg HTTPClientConfig) Option {
	return func(c *Config) error {
		if cfg.Timeout <= 0 {
			cfg.Timeout = defaultTimeout
		}
		if cfg.UserAgent == "" {
			cfg.UserAgent = defaultUserAgent
		}
		c.HTTPClient = httpInfra.NewStandardHTTPClient(cfg.Timeout,
			httpInfra.WithRetries(cfg.Retries),
			httpInfra.WithLogger(c.Logger),
			httpInfra.WithUserAgent(cfg.UserAgent),
		)
		return nil
	}
}
