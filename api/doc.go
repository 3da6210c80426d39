// Package api provides the HTTP API layer for the COSMOS search service.
// It uses the Huma framework to provide automatic OpenAPI documentation,
// request validation, and a clean handler interface.
//
// # Architecture
//
// - server.go: Huma API configuration and the middleware chain
// - handlers/: HTTP request handlers
// - dto/: Data Transfer Objects for requests and responses
// - middleware/: request ids and logging, rate limiting, feature flags
//
// # Endpoints
//
//	GET /search?q=&type=&recency=&sources=&domains=&language=&sort_by=&limit=
//	GET /headlines?country=&category=&sources=&limit=
//	GET /sources?category=&language=&country=
//
// The OpenAPI spec is served at /openapi.json and the interactive docs at /docs.
//
// # Usage Example
//
//	limiter := middleware.NewRateLimiter(5, 10)
//	defer limiter.Stop()
//
//	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
//	    Logger:      logger,
//	    Flags:       flags,
//	    RateLimiter: limiter,
//	})
//	handlers.NewSearchHandler(searchService).RegisterRoutes(humaAPI)
//
//	http.ListenAndServe(":8000", router)
//
// # Error Handling
//
// Errors use the RFC 7807 problem format:
//
//	{
//	    "status": 400,
//	    "title": "Bad Request",
//	    "detail": "validation error on field 'q': query cannot be empty"
//	}
//
// Upstream failures during a search only shrink the result list. Upstream
// errors surface as 502, 503, 504 or 429 only on /sources, which has no
// partial result to fall back to.
package api
