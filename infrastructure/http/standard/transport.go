// ABOUTME: Logging http.RoundTripper for outgoing upstream calls
// ABOUTME: Tags each call with the request ID of the inbound API request

package standard

import (
	"net/http"
	"time"

	"cosmos-api/core/interfaces"
	"cosmos-api/pkg/utils/requestid"
)

// LoggingRoundTripper implements http.RoundTripper with logging
type LoggingRoundTripper struct {
	Transport http.RoundTripper
	Logger    interfaces.Logger
}

// RoundTrip logs outgoing HTTP requests. Query strings are omitted since they
// may carry credentials.
func (t *LoggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	transport := t.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}

	start := time.Now()
	fields := map[string]interface{}{
		"request_id": requestid.FromContext(req.Context()),
		"method":     req.Method,
		"host":       req.URL.Host,
		"path":       req.URL.Path,
	}

	t.Logger.Debug("Outgoing HTTP request", fields)

	resp, err := transport.RoundTrip(req)

	done := make(map[string]interface{}, len(fields)+2)
	for k, v := range fields {
		done[k] = v
	}
	done["duration_ms"] = time.Since(start).Milliseconds()

	if err != nil {
		done["error"] = err.Error()
		t.Logger.Warn("Outgoing HTTP request failed", done)
		return nil, err
	}

	done["status"] = resp.StatusCode
	t.Logger.Debug("Outgoing HTTP response", done)
	return resp, nil
}
