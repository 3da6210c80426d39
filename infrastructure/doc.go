// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as caching, HTTP communication, and logging.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: In-process cache backed by patrickmn/go-cache
// - cache/redis: Redis-based cache shared across replicas
// - cache/sqlite: File-backed cache that survives restarts
// - http/standard: net/http client with per-request headers and a logging transport
// - logger/logrus: Structured logger on logrus with lumberjack file rotation
//
// # Cache Implementations
//
// Memory Cache Example:
//
//	cache := memory.NewMemoryCache(10 * time.Minute)
//	err := cache.Set(ctx, "search:news:4f1c", payload, 5*time.Minute)
//	value, err := cache.Get(ctx, "search:news:4f1c")
//
// Redis Cache Example:
//
//	cache, err := redis.NewRedisCache(config.RedisConfig{
//	    Address: "localhost:6379",
//	})
//
// # HTTP Client
//
// Upstream calls are made once unless retries are requested:
//
//	client := standard.NewStandardHTTPClient(30*time.Second, standard.WithLogger(logger))
//	resp, err := client.Get(ctx, "https://newsapi.org/v2/everything?q=go", map[string]string{
//	    "X-Api-Key": key,
//	})
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Logger
//
//	logger, err := logrus.New(logrus.Options{Level: "info", Format: "json"})
//	logger.Info("Search completed", map[string]interface{}{
//	    "query":   "golang",
//	    "results": 12,
//	})
package infrastructure
