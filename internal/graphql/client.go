// Package graphql executes queries against the remote catalog's GraphQL
// endpoint with bounded retry, backoff and structured error classification.
package graphql

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

const (
	// maxRetries is the number of retries after the initial attempt.
	maxRetries = 3

	// rateLimitBaseDelay is the base for the 429 backoff: 2^attempt times
	// this value (2s, 4s, 8s).
	rateLimitBaseDelay = 2 * time.Second

	// transientRetryDelay is the flat delay before retrying any other
	// transient fault.
	transientRetryDelay = 1 * time.Second
)

// Options configures the client.
type Options struct {
	Timeout time.Duration
	// Sleep is the function used for backoff pauses. Tests inject a
	// recorder here; nil means time.Sleep.
	Sleep func(time.Duration)
}

// DefaultOptions returns sensible defaults.
func DefaultOptions() *Options {
	return &Options{
		Timeout: DefaultTimeout,
	}
}

// Client executes GraphQL requests against a single endpoint with a bearer
// credential. It holds no mutable state and is safe for concurrent use.
type Client struct {
	endpoint   string
	token      string
	httpClient *http.Client
	sleep      func(time.Duration)
}

// NewClient creates a client for the given endpoint and bearer token.
func NewClient(endpoint, token string, opts *Options) *Client {
	if opts == nil {
		opts = DefaultOptions()
	}
	if opts.Timeout == 0 {
		opts.Timeout = DefaultTimeout
	}
	sleep := opts.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}
	return &Client{
		endpoint:   endpoint,
		token:      token,
		httpClient: &http.Client{Timeout: opts.Timeout},
		sleep:      sleep,
	}
}

// response is the generic GraphQL response envelope.
type response struct {
	Data   json.RawMessage `json:"data"`
	Errors []ResponseError `json:"errors"`
}

// Execute posts {query, variables} to the endpoint and returns the raw data
// payload. It retries up to maxRetries times: HTTP 429 with exponential
// backoff, other transient faults with a flat delay. Authorization failures
// and remote query errors are returned immediately without further retries.
func (c *Client) Execute(ctx context.Context, query string, variables map[string]any) (json.RawMessage, error) {
	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		data, retryable, err := c.attempt(ctx, query, variables)
		if err == nil {
			return data, nil
		}
		if !retryable {
			return nil, err
		}
		lastErr = err
		if attempt == maxRetries {
			break
		}
		if _, ok := err.(*RateLimitedError); ok {
			c.sleep(rateLimitBaseDelay << attempt)
		} else {
			c.sleep(transientRetryDelay)
		}
	}
	return nil, lastErr
}

// attempt performs a single request. The second return value reports whether
// the failure is retryable within Execute's loop.
func (c *Client) attempt(ctx context.Context, query string, variables map[string]any) (json.RawMessage, bool, error) {
	body, err := json.Marshal(map[string]any{
		"query":     query,
		"variables": variables,
	})
	if err != nil {
		return nil, false, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, false, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, true, &NetworkError{Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, true, &RateLimitedError{Attempts: maxRetries + 1}
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, true, &NetworkError{StatusCode: resp.StatusCode, Cause: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, true, &NetworkError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	var parsed response
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, true, &NetworkError{StatusCode: resp.StatusCode, Body: string(respBody), Cause: err}
	}

	if len(parsed.Errors) > 0 {
		if isAuthorizationError(parsed.Errors) {
			return nil, false, &UnauthorizedError{Message: parsed.Errors[0].Message}
		}
		return nil, false, &QueryError{Errors: parsed.Errors}
	}

	return parsed.Data, false, nil
}
