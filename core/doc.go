// Package core contains the business logic for the COSMOS search API.
// It is framework-agnostic and can be used without the HTTP layer.
//
// The core package is organized into several sub-packages:
//
// - domain: Search results, options and news sources
// - search: Aggregates the upstream clients into one ranked result list
// - newsapi: Client for the structured news article API
// - perplexity: Client for the conversational web search API
// - errors: Validation and upstream error types
// - interfaces: Contracts for external dependencies (cache, HTTP, logger)
//
// # Design Principles
//
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Upstream failures degrade results instead of failing the search
//
// # Usage Example
//
//	import (
//	    "cosmos-api/core/interfaces"
//	    "cosmos-api/core/newsapi"
//	    "cosmos-api/core/perplexity"
//	    "cosmos-api/core/search"
//	)
//
//	deps := interfaces.Dependencies{
//	    Cache:      myCache,      // implements interfaces.Cache
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	news := newsapi.NewClient(newsapi.Config{APIKey: newsKey}, deps)
//	web := perplexity.NewClient(perplexity.Config{APIKey: webKey}, deps)
//	svc := search.NewSearchService(deps, news, web)
//
//	results, err := svc.Search(ctx, "fusion energy", domain.SearchOptions{
//	    Type:    domain.ContentTypeAll,
//	    Recency: domain.RecencyDay,
//	})
package core
