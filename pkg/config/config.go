// ABOUTME: Configuration management with YAML file and environment variable support
// ABOUTME: Defines server, cache, logging, upstream API and search settings

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig `yaml:"server"`

	// Cache contains cache configuration
	Cache CacheConfig `yaml:"cache"`

	// Log controls logger output
	Log LogConfig `yaml:"log"`

	// NewsAPI configures the structured news client
	NewsAPI NewsAPIConfig `yaml:"newsapi"`

	// Perplexity configures the conversational web search client
	Perplexity PerplexityConfig `yaml:"perplexity"`

	// Search tunes the result aggregator
	Search SearchConfig `yaml:"search"`

	// RateLimit configures per-client request limiting
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port            string        `yaml:"port"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	CORSOrigins     []string      `yaml:"cors_origins"`
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (memory/redis/sqlite)
	Type string `yaml:"type"`

	Redis  RedisConfig  `yaml:"redis"`
	SQLite SQLiteConfig `yaml:"sqlite"`
	Memory MemoryConfig `yaml:"memory"`
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`

	// KeyPrefix namespaces every key; replicas sharing a server must agree on it
	KeyPrefix string `yaml:"key_prefix"`
}

// SQLiteConfig holds SQLite cache configuration
type SQLiteConfig struct {
	Path string `yaml:"path"`
}

// MemoryConfig holds in-memory cache configuration
type MemoryConfig struct {
	// CleanupInterval is how often expired entries are purged
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`

	// File enables rotated file output in addition to stderr
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

// NewsAPIConfig holds news API credentials
type NewsAPIConfig struct {
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url"`
}

// PerplexityConfig holds web search API credentials and model choice
type PerplexityConfig struct {
	APIKey     string `yaml:"api_key"`
	BaseURL    string `yaml:"base_url"`
	SmallModel string `yaml:"small_model"`
	LargeModel string `yaml:"large_model"`
}

// SearchConfig tunes aggregation
type SearchConfig struct {
	// CacheTTL is how long a successful upstream contribution is reused; 0 disables caching
	CacheTTL time.Duration `yaml:"cache_ttl"`

	// UpstreamTimeout bounds every outgoing API call
	UpstreamTimeout time.Duration `yaml:"upstream_timeout"`
}

// RateLimitConfig configures the token bucket applied per client IP
type RateLimitConfig struct {
	Enabled           bool    `yaml:"enabled"`
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	Burst             int     `yaml:"burst"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            "8000",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			CORSOrigins:     []string{"*"},
		},
		Cache: CacheConfig{
			Type: "memory",
			Redis: RedisConfig{
				Address:   "localhost:6379",
				KeyPrefix: "cosmos:",
			},
			SQLite: SQLiteConfig{
				Path: "cosmos-cache.db",
			},
			Memory: MemoryConfig{
				CleanupInterval: 10 * time.Minute,
			},
		},
		Log: LogConfig{
			Level:      "info",
			Format:     "json",
			MaxSizeMB:  100,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
		NewsAPI: NewsAPIConfig{
			BaseURL: "https://newsapi.org/v2",
		},
		Perplexity: PerplexityConfig{
			BaseURL:    "https://api.perplexity.ai",
			SmallModel: "sonar",
			LargeModel: "sonar-pro",
		},
		Search: SearchConfig{
			CacheTTL:        5 * time.Minute,
			UpstreamTimeout: 30 * time.Second,
		},
		RateLimit: RateLimitConfig{
			Enabled:           true,
			RequestsPerSecond: 5,
			Burst:             10,
		},
	}
}

// LoadFromEnv loads configuration from environment variables over the defaults
func LoadFromEnv() (*Config, error) {
	cfg := Default()
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromFile reads a YAML file over the defaults, then applies environment overrides
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads path when given, otherwise the environment only
func Load(path string) (*Config, error) {
	if path == "" {
		return LoadFromEnv()
	}
	return LoadFromFile(path)
}

func (c *Config) applyEnv() error {
	setString(&c.Server.Port, "PORT")
	setList(&c.Server.CORSOrigins, "CORS_ORIGINS")

	setString(&c.Cache.Type, "CACHE_TYPE")
	setString(&c.Cache.Redis.Address, "REDIS_ADDRESS")
	setString(&c.Cache.Redis.Password, "REDIS_PASSWORD")
	setString(&c.Cache.Redis.KeyPrefix, "REDIS_KEY_PREFIX")
	setString(&c.Cache.SQLite.Path, "SQLITE_PATH")

	setString(&c.Log.Level, "LOG_LEVEL")
	setString(&c.Log.Format, "LOG_FORMAT")
	setString(&c.Log.File, "LOG_FILE")

	setString(&c.NewsAPI.APIKey, "NEWS_API_KEY")
	setString(&c.NewsAPI.BaseURL, "NEWS_API_BASE_URL")

	setString(&c.Perplexity.APIKey, "PERPLEXITY_API_KEY")
	setString(&c.Perplexity.BaseURL, "PERPLEXITY_BASE_URL")
	setString(&c.Perplexity.SmallModel, "PERPLEXITY_SMALL_MODEL")
	setString(&c.Perplexity.LargeModel, "PERPLEXITY_LARGE_MODEL")

	var errs []error
	errs = append(errs,
		setInt(&c.Cache.Redis.DB, "REDIS_DB"),
		setDuration(&c.Cache.Memory.CleanupInterval, "MEMORY_CACHE_CLEANUP"),
		setDuration(&c.Search.CacheTTL, "SEARCH_CACHE_TTL"),
		setDuration(&c.Search.UpstreamTimeout, "UPSTREAM_TIMEOUT"),
		setBool(&c.RateLimit.Enabled, "RATE_LIMIT_ENABLED"),
		setFloat(&c.RateLimit.RequestsPerSecond, "RATE_LIMIT_RPS"),
		setInt(&c.RateLimit.Burst, "RATE_LIMIT_BURST"),
	)
	return errors.Join(errs...)
}

func setString(dst *string, key string) {
	if value := os.Getenv(key); value != "" {
		*dst = value
	}
}

func setList(dst *[]string, key string) {
	value := os.Getenv(key)
	if value == "" {
		return
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	*dst = out
}

func setInt(dst *int, key string) error {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("%s: invalid integer %q", key, value)
	}
	*dst = n
	return nil
}

func setFloat(dst *float64, key string) error {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("%s: invalid number %q", key, value)
	}
	*dst = f
	return nil
}

func setBool(dst *bool, key string) error {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("%s: invalid boolean %q", key, value)
	}
	*dst = b
	return nil
}

func setDuration(dst *time.Duration, key string) error {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("%s: invalid duration %q", key, value)
	}
	*dst = d
	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	switch c.Cache.Type {
	case "memory":
	case "redis":
		if c.Cache.Redis.Address == "" {
			return errors.New("redis address cannot be empty when using redis cache")
		}
	case "sqlite":
		if c.Cache.SQLite.Path == "" {
			return errors.New("sqlite path cannot be empty when using sqlite cache")
		}
	default:
		return errors.New("cache type must be 'memory', 'redis' or 'sqlite'")
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}

	if c.Log.Format != "json" && c.Log.Format != "text" {
		return errors.New("log format must be 'json' or 'text'")
	}

	if c.Search.CacheTTL < 0 {
		return errors.New("search cache TTL cannot be negative")
	}

	if c.Search.UpstreamTimeout <= 0 {
		return errors.New("upstream timeout must be positive")
	}

	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst < 1) {
		return errors.New("rate limit needs a positive rate and a burst of at least 1")
	}

	return nil
}

// MissingCredentials names the upstream APIs that have no key configured
func (c *Config) MissingCredentials() []string {
	var missing []string
	if c.NewsAPI.APIKey == "" {
		missing = append(missing, "newsapi")
	}
	if c.Perplexity.APIKey == "" {
		missing = append(missing, "perplexity")
	}
	return missing
}
