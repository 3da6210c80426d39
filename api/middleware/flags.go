// ABOUTME: Feature flag middleware
// ABOUTME: Makes the flag manager available to handlers and services through the request context

package middleware

import (
	"net/http"

	"cosmos-api/pkg/featureflags"
)

// FeatureFlagsMiddleware stores manager in every request context
func FeatureFlagsMiddleware(manager featureflags.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(featureflags.WithManager(r.Context(), manager)))
		})
	}
}
