// ABOUTME: Error types and handling for the COSMOS library
// ABOUTME: Translates core errors into structured library errors with context

package cosmos

import (
	"context"
	"errors"
	"fmt"

	coreerrors "cosmos-api/core/errors"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// ErrorTypeValidation indicates invalid caller input
	ErrorTypeValidation ErrorType = "validation"

	// ErrorTypeUpstream indicates an upstream API answered with an error
	ErrorTypeUpstream ErrorType = "upstream"

	// ErrorTypeNetwork indicates an upstream API could not be reached
	ErrorTypeNetwork ErrorType = "network"

	// ErrorTypeInternal indicates an internal error
	ErrorTypeInternal ErrorType = "internal"

	// ErrorTypeConfiguration indicates a configuration error
	ErrorTypeConfiguration ErrorType = "configuration"
)

// Error represents a structured error from the library
type Error struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates a new error with the given type and message
func NewError(errType ErrorType, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Context: make(map[string]interface{}),
	}
}

// WithCause adds a cause to the error
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// ErrClientClosed is returned when operations are attempted on a closed client
var ErrClientClosed = NewError(ErrorTypeInternal, "client is closed")

// translateError maps core error kinds onto library error types
func translateError(err error) error {
	if err == nil {
		return nil
	}

	var (
		validation *coreerrors.ValidationError
		external   *coreerrors.ExternalAPIError
		network    *coreerrors.NetworkError
	)
	switch {
	case errors.As(err, &validation):
		return NewError(ErrorTypeValidation, validation.Message).
			WithContext("field", validation.Field).
			WithCause(err)
	case errors.As(err, &external):
		return NewError(ErrorTypeUpstream, "upstream API returned an error").
			WithContext("api", external.API).
			WithContext("status", external.StatusCode).
			WithCause(err)
	case errors.As(err, &network):
		return NewError(ErrorTypeNetwork, "upstream API unreachable").
			WithContext("api", network.API).
			WithCause(err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	default:
		return NewError(ErrorTypeInternal, "operation failed").WithCause(err)
	}
}

func hasType(err error, t ErrorType) bool {
	var e *Error
	return errors.As(err, &e) && e.Type == t
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return hasType(err, ErrorTypeValidation)
}

// IsUpstreamError checks if an upstream API rejected or failed the request
func IsUpstreamError(err error) bool {
	return hasType(err, ErrorTypeUpstream)
}

// IsNetworkError checks if an error is a network error
func IsNetworkError(err error) bool {
	return hasType(err, ErrorTypeNetwork)
}

// IsConfigurationError checks if an error is a configuration error
func IsConfigurationError(err error) bool {
	return hasType(err, ErrorTypeConfiguration)
}
