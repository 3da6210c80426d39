// ABOUTME: Basic example of using the COSMOS library
// ABOUTME: Demonstrates searching, headlines and source listing with default settings

package main

import (
	"context"
	"fmt"
	"log"
	"os"

	cosmos "cosmos-api/cosmos-lib"
)

func main() {
	// Example 1: Create a client with API keys from the environment
	client, err := cosmos.NewClient(
		cosmos.WithNewsAPIKey(os.Getenv("NEWS_API_KEY")),
		cosmos.WithPerplexityAPIKey(os.Getenv("PERPLEXITY_API_KEY")),
	)
	if err != nil {
		log.Fatal("Failed to create client:", err)
	}
	defer client.Close()

	ctx := context.Background()

	// Example 2: Search every source
	fmt.Println("=== Search: all sources ===")
	results, err := client.Search(ctx, "artificial intelligence")
	if err != nil {
		log.Printf("Error searching: %v\n", err)
	} else {
		printResults(results)
	}

	// Example 3: Narrow the search
	fmt.Println("\n=== Search: news from the last day ===")
	results, err = client.Search(ctx, "climate",
		cosmos.WithType("news"),
		cosmos.WithRecency("day"),
		cosmos.WithLimit(5),
	)
	if err != nil {
		log.Printf("Error searching: %v\n", err)
	} else {
		printResults(results)
	}

	// Example 4: Top headlines
	fmt.Println("\n=== Top headlines (US, technology) ===")
	headlines, err := client.TopHeadlines(ctx,
		cosmos.WithCountry("us"),
		cosmos.WithCategory("technology"),
		cosmos.WithHeadlineLimit(5),
	)
	if err != nil {
		log.Printf("Error fetching headlines: %v\n", err)
	} else {
		printResults(headlines)
	}

	// Example 5: List sources
	fmt.Println("\n=== English sources ===")
	sources, err := client.Sources(ctx, cosmos.SourcesFilter{Language: "en"})
	if err != nil {
		log.Printf("Error listing sources: %v\n", err)
	} else {
		for i, src := range sources {
			if i >= 5 {
				break
			}
			fmt.Printf("- %s (%s)\n", src.Name, src.ID)
		}
	}

	// Example 6: Error handling
	fmt.Println("\n=== Error Handling ===")
	_, err = client.Search(ctx, "")
	if err != nil {
		switch {
		case cosmos.IsValidationError(err):
			fmt.Println("Validation error occurred:", err)
		case cosmos.IsUpstreamError(err), cosmos.IsNetworkError(err):
			fmt.Println("Upstream error occurred:", err)
		default:
			fmt.Println("Other error occurred:", err)
		}
	}

	fmt.Println("\nDone!")
}

func printResults(results []*cosmos.SearchResult) {
	fmt.Printf("Found %d results\n", len(results))
	for i, r := range results {
		fmt.Printf("%d. [%s] %s\n", i+1, r.Type, r.Title)
		fmt.Printf("   %s (%s)\n", r.URL, r.Source)
	}
}
