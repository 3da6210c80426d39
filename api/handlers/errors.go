// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain and upstream errors to appropriate HTTP responses

package handlers

import (
	"context"
	stderrors "errors"

	"cosmos-api/core/errors"

	"github.com/danielgtaylor/huma/v2"
)

// toHumaError converts domain errors to appropriate Huma HTTP errors
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	if errors.IsValidation(err) {
		return huma.Error400BadRequest(err.Error())
	}

	var apiErr *errors.ExternalAPIError
	if stderrors.As(err, &apiErr) {
		switch {
		case apiErr.StatusCode == 429:
			return huma.Error429TooManyRequests("Rate limited by external service")
		case apiErr.StatusCode >= 500:
			return huma.Error503ServiceUnavailable("External service error", err)
		case apiErr.StatusCode >= 400:
			// Our request or credentials were rejected upstream; the caller did nothing wrong
			return huma.Error502BadGateway("External service rejected the request", err)
		default:
			return huma.Error500InternalServerError("Unexpected external service response", err)
		}
	}

	if errors.IsNetwork(err) {
		if stderrors.Is(err, context.DeadlineExceeded) {
			return huma.Error504GatewayTimeout("External service timed out", err)
		}
		return huma.Error503ServiceUnavailable("External service unreachable", err)
	}

	return huma.Error500InternalServerError("Internal server error", err)
}
