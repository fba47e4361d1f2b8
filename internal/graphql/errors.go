package graphql

import (
	"fmt"
	"strings"
)

// ResponseError is a single error object from the remote query endpoint's
// top-level errors array.
type ResponseError struct {
	Message    string         `json:"message"`
	Path       []any          `json:"path,omitempty"`
	Extensions map[string]any `json:"extensions,omitempty"`
}

// RateLimitedError indicates the remote service answered HTTP 429 on every
// attempt and the retry budget is exhausted.
type RateLimitedError struct {
	Attempts int
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("rate limited by catalog service after %d attempts", e.Attempts)
}

// UnauthorizedError indicates the bearer credential was rejected. It is not
// retried; the remediation text is intended to be shown to the user.
type UnauthorizedError struct {
	Message string
}

func (e *UnauthorizedError) Error() string {
	return fmt.Sprintf("catalog authorization failed: %s (the API token may be expired; obtain a new token and re-enter it)", e.Message)
}

// QueryError carries the raw remote error list for a 2xx response whose body
// contained a top-level errors array. The transport does not retry it; the
// caller decides what to do.
type QueryError struct {
	Errors []ResponseError
}

func (e *QueryError) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, re := range e.Errors {
		msgs = append(msgs, re.Message)
	}
	return fmt.Sprintf("catalog query failed: %s", strings.Join(msgs, "; "))
}

// NetworkError represents a transport-level failure: a connection fault or a
// non-2xx status other than 429.
type NetworkError struct {
	StatusCode int
	Body       string
	Cause      error
}

func (e *NetworkError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("catalog request failed: %v", e.Cause)
	}
	return fmt.Sprintf("catalog request failed: HTTP status %d: %s", e.StatusCode, e.Body)
}

func (e *NetworkError) Unwrap() error {
	return e.Cause
}

// authorization error signatures in remote error objects
const authExtensionCode = "invalid-headers"

// isAuthorizationError reports whether any remote error object carries an
// authorization signature: a message mentioning "Authorization" or an
// extension code indicating invalid headers.
func isAuthorizationError(errs []ResponseError) bool {
	for _, re := range errs {
		if strings.Contains(re.Message, "Authorization") {
			return true
		}
		if code, ok := re.Extensions["code"].(string); ok && code == authExtensionCode {
			return true
		}
	}
	return false
}
