package source

import (
	"fmt"
	"strings"
)

// ConfigError reports required settings that are missing. It is returned
// before any network request is made.
type ConfigError struct {
	Missing []string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("missing configuration: %s", strings.Join(e.Missing, ", "))
}

// HTTPError reports a non-success response.
type HTTPError struct {
	StatusCode int
	Status     string
	// Detail is the provider's own error message, when the body carried one.
	Detail string
}

func (e *HTTPError) Error() string {
	msg := fmt.Sprintf("request failed: %s", e.Status)
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

// FormatError reports a response body that does not have the expected shape.
type FormatError struct {
	Reason string
	Err    error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("unexpected response format: %s: %v", e.Reason, e.Err)
	}
	return "unexpected response format: " + e.Reason
}

func (e *FormatError) Unwrap() error { return e.Err }

// TransportError wraps network and read failures that have no more specific
// classification.
type TransportError struct {
	Op  string
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
