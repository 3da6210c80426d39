// ABOUTME: Main entry point for the COSMOS API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cosmos-api/api"
	"cosmos-api/api/handlers"
	"cosmos-api/api/middleware"
	"cosmos-api/core/interfaces"
	"cosmos-api/core/newsapi"
	"cosmos-api/core/perplexity"
	"cosmos-api/core/search"
	"cosmos-api/infrastructure/cache/memory"
	"cosmos-api/infrastructure/cache/redis"
	"cosmos-api/infrastructure/cache/sqlite"
	stdhttp "cosmos-api/infrastructure/http/standard"
	logruslogger "cosmos-api/infrastructure/logger/logrus"
	"cosmos-api/pkg/config"
	"cosmos-api/pkg/featureflags"
)

func main() {
	configPath := flag.String("config", os.Getenv("COSMOS_CONFIG"), "path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger, err := logruslogger.New(logruslogger.Options{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Close()

	logger.Info("Starting COSMOS API", map[string]interface{}{
		"port":       cfg.Server.Port,
		"cache_type": cfg.Cache.Type,
		"cache_ttl":  cfg.Search.CacheTTL.String(),
	})

	if missing := cfg.MissingCredentials(); len(missing) > 0 {
		logger.Warn("Upstream API keys missing; those sources will contribute no results", map[string]interface{}{
			"missing": missing,
		})
	}

	cache, closeCache := newCache(cfg, logger)
	defer closeCache()

	httpClient := stdhttp.NewStandardHTTPClient(cfg.Search.UpstreamTimeout,
		stdhttp.WithLogger(logger),
	)

	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: httpClient,
		Logger:     logger,
	}

	newsClient, webClient := newUpstreamClients(cfg, deps)

	searchService := search.NewSearchService(deps, newsClient, webClient,
		search.WithCacheTTL(cfg.Search.CacheTTL),
	)

	// FEATURE_* environment variables override these per flag
	flagDefaults := featureflags.Defaults()
	flagDefaults[featureflags.RateLimitEnabled] = cfg.RateLimit.Enabled
	flags := featureflags.NewEnvManager("FEATURE_", flagDefaults)

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
		defer limiter.Stop()
	}

	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
		Logger:      logger,
		CORSOrigins: cfg.Server.CORSOrigins,
		Flags:       flags,
		RateLimiter: limiter,
	})

	handlers.NewSearchHandler(searchService).RegisterRoutes(humaAPI)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
	}

	logger.Info("Server stopped", nil)
}

// newUpstreamClients builds a client per configured key. A source without a key
// stays nil and contributes nothing to searches.
func newUpstreamClients(cfg *config.Config, deps interfaces.Dependencies) (search.NewsClient, search.WebSearchClient) {
	var (
		news search.NewsClient
		web  search.WebSearchClient
	)

	if cfg.NewsAPI.APIKey != "" {
		news = newsapi.NewClient(newsapi.Config{
			APIKey:  cfg.NewsAPI.APIKey,
			BaseURL: cfg.NewsAPI.BaseURL,
		}, deps)
	}

	if cfg.Perplexity.APIKey != "" {
		web = perplexity.NewClient(perplexity.Config{
			APIKey:     cfg.Perplexity.APIKey,
			BaseURL:    cfg.Perplexity.BaseURL,
			SmallModel: cfg.Perplexity.SmallModel,
			LargeModel: cfg.Perplexity.LargeModel,
		}, deps)
	}

	return news, web
}

// newCache builds the configured backend, falling back to memory when it cannot be reached
func newCache(cfg *config.Config, logger interfaces.Logger) (interfaces.Cache, func()) {
	fallback := func(backend string, err error) (interfaces.Cache, func()) {
		logger.Error("Failed to create cache, falling back to memory", map[string]interface{}{
			"backend": backend,
			"error":   err.Error(),
		})
		return memory.NewMemoryCache(cfg.Cache.Memory.CleanupInterval), func() {}
	}

	switch cfg.Cache.Type {
	case "redis":
		c, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err != nil {
			return fallback("redis", err)
		}
		logger.Info("Using Redis cache", map[string]interface{}{
			"address": cfg.Cache.Redis.Address,
		})
		return c, closer(c, logger)
	case "sqlite":
		c, err := sqlite.NewSQLiteCache(cfg.Cache.SQLite.Path, logger)
		if err != nil {
			return fallback("sqlite", err)
		}
		logger.Info("Using SQLite cache", map[string]interface{}{
			"path": cfg.Cache.SQLite.Path,
		})
		return c, closer(c, logger)
	default:
		logger.Info("Using memory cache", nil)
		return memory.NewMemoryCache(cfg.Cache.Memory.CleanupInterval), func() {}
	}
}

func closer(c io.Closer, logger interfaces.Logger) func() {
	return func() {
		if err := c.Close(); err != nil {
			logger.Warn("Failed to close cache", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}
}

func init() {
	fmt.Println(`
   ___________  _____ __  _______  _____
  / ____/ __ \/ ___//  |/  / __ \/ ___/
 / /   / / / /\__ \/ /|_/ / / / /\__ \
/ /___/ /_/ /___/ / /  / / /_/ /___/ /
\____/\____//____/_/  /_/\____//____/
	`)
}
