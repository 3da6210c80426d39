// ABOUTME: Advanced example showing custom configuration and advanced features
// ABOUTME: Demonstrates SQLite caching, feature flags, timeouts and JSON output

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	cosmos "cosmos-api/cosmos-lib"
	"cosmos-api/pkg/config"
	"cosmos-api/pkg/featureflags"
)

func main() {
	// Example 1: Load keys from the application configuration
	fmt.Println("=== Custom Configuration ===")
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Web search only; FEATURE_NEWS_SEARCH_ENABLED=true turns news back on
	flags := featureflags.NewEnvManager("FEATURE_", map[featureflags.FeatureFlag]bool{
		featureflags.NewsSearchEnabled: false,
		featureflags.WebSearchEnabled:  true,
		featureflags.CacheEnabled:      true,
	})

	client, err := cosmos.NewClient(
		cosmos.FromConfig(cfg),

		// Persist contributions between runs
		cosmos.WithCacheOption(cosmos.CacheOption{
			Type:     cosmos.CacheTypeSQLite,
			FilePath: "./cosmos_cache.db",
		}),
		cosmos.WithCacheTTL(30*time.Minute),

		cosmos.WithHTTPClientConfig(cosmos.HTTPClientConfig{
			Timeout:   45 * time.Second,
			Retries:   3, // opt in to retrying news API GETs on 5xx
			UserAgent: "MyResearchTool/2.0",
		}),

		cosmos.WithFeatureFlags(flags),
		cosmos.WithQuietMode(),
	)
	if err != nil {
		log.Fatal("Failed to create client:", err)
	}
	defer client.Close()

	// Example 2: Context with timeout
	fmt.Println("\n=== Context with Timeout ===")
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	results, err := client.Search(ctx, "rust vs go performance",
		cosmos.WithType("blogs"),
		cosmos.WithRecency("month"),
		cosmos.WithLimit(10),
	)
	if err != nil {
		log.Printf("Error with timeout: %v\n", err)
	}

	// Example 3: JSON output
	fmt.Println("\n=== JSON Output ===")
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(results); err != nil {
		log.Printf("Error encoding: %v\n", err)
	}

	// Example 4: Second call inside the TTL is served from the cache
	fmt.Println("\n=== Cached Search ===")
	start := time.Now()
	if _, err := client.Search(ctx, "rust vs go performance",
		cosmos.WithType("blogs"),
		cosmos.WithRecency("month"),
		cosmos.WithLimit(10),
	); err == nil {
		fmt.Printf("Second search took %v\n", time.Since(start))
	}

	// Example 5: Restrict to domains
	fmt.Println("\n=== Domain-restricted Search ===")
	results, err = client.Search(ctx, "kubernetes release",
		cosmos.WithType("general"),
		cosmos.WithDomains("kubernetes.io", "github.com"),
	)
	if err != nil {
		log.Printf("Error searching: %v\n", err)
	} else {
		for _, r := range results {
			fmt.Printf("- %s\n  %s\n", r.Title, r.URL)
		}
	}
}
