// ABOUTME: Request ID generation and context propagation
// ABOUTME: Lets outgoing upstream calls be correlated with the API request that caused them

package requestid

import (
	"context"

	"github.com/google/uuid"
)

// Header is the HTTP header carrying the request ID
const Header = "X-Request-ID"

type contextKey struct{}

// New returns a fresh request ID
func New() string {
	return uuid.New().String()
}

// NewContext returns ctx carrying id
func NewContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// FromContext returns the request ID stored in ctx, or ""
func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(contextKey{}).(string)
	return id
}
