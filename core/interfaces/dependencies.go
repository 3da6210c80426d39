// ABOUTME: Dependencies container provides dependency injection for core services
// ABOUTME: Defines the contract for dependencies required by the core business logic

package interfaces

// Dependencies holds all external dependencies required by the core business logic
type Dependencies struct {
	// Cache provides caching functionality; nil disables caching
	Cache Cache

	// HTTPClient performs upstream API calls
	HTTPClient HTTPClient

	// Logger provides structured logging
	Logger Logger
}

// Log returns the configured logger, or one that discards everything
func (d Dependencies) Log() Logger {
	if d.Logger == nil {
		return discardLogger{}
	}
	return d.Logger
}

type discardLogger struct{}

func (discardLogger) Debug(string, map[string]interface{}) {}
func (discardLogger) Info(string, map[string]interface{})  {}
func (discardLogger) Warn(string, map[string]interface{})  {}
func (discardLogger) Error(string, map[string]interface{}) {}
