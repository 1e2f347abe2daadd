// Package httpclient provides the bounded HTTP client used for best-effort
// network operations (serving-endpoint counts, content probes).
package httpclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v5"
)

const (
	// DefaultTimeout is the default timeout for HTTP requests
	DefaultTimeout = 5 * time.Second

	// MaxResponseSize is the maximum allowed response size (10MB)
	MaxResponseSize = 10 * 1024 * 1024

	// UserAgent is the user agent string for HTTP requests
	UserAgent = "registry-console/1.0"
)

// Client is an interface for HTTP operations
type Client interface {
	// Get performs an HTTP GET request and returns the response body
	Get(ctx context.Context, url string) ([]byte, error)

	// Head performs an HTTP HEAD request and reports whether the URL
	// responded with a success status
	Head(ctx context.Context, url string) (bool, error)
}

// DefaultClient is the default HTTP client implementation
type DefaultClient struct {
	client *http.Client
}

// NewDefaultClient creates a new default HTTP client with the specified timeout.
// If timeout is 0, uses DefaultTimeout.
func NewDefaultClient(timeout time.Duration) Client {
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	return &DefaultClient{
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Get performs an HTTP GET request
func (c *DefaultClient) Get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, NewHTTPError(resp.StatusCode, url, resp.Status)
	}

	if resp.ContentLength > MaxResponseSize {
		return nil, fmt.Errorf("response size %d bytes exceeds maximum allowed size of %d bytes",
			resp.ContentLength, MaxResponseSize)
	}

	// LimitReader with one extra byte so an oversized body is detectable
	limitedReader := io.LimitReader(resp.Body, MaxResponseSize+1)
	body, err := io.ReadAll(limitedReader)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if int64(len(body)) > MaxResponseSize {
		return nil, fmt.Errorf("response size exceeds maximum allowed size of %d bytes", MaxResponseSize)
	}

	return body, nil
}

// Head performs an HTTP HEAD request
func (c *DefaultClient) Head(ctx context.Context, url string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return false, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", UserAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("failed to execute request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	return resp.StatusCode >= 200 && resp.StatusCode < 300, nil
}

// RetryingClient wraps a Client with a bounded retry on transient failures.
// Server errors (5xx) and transport errors are retried; client errors are not.
type RetryingClient struct {
	inner      Client
	maxElapsed time.Duration
}

// NewRetryingClient creates a client that retries transient GET failures
// until maxElapsed has passed.
func NewRetryingClient(inner Client, maxElapsed time.Duration) Client {
	if maxElapsed == 0 {
		maxElapsed = DefaultTimeout
	}
	return &RetryingClient{
		inner:      inner,
		maxElapsed: maxElapsed,
	}
}

// Get performs an HTTP GET request with exponential backoff on transient failures
func (c *RetryingClient) Get(ctx context.Context, url string) ([]byte, error) {
	operation := func() ([]byte, error) {
		body, err := c.inner.Get(ctx, url)
		if err != nil {
			if !isRetryable(err) {
				return nil, backoff.Permanent(err)
			}
			return nil, err
		}
		return body, nil
	}

	return backoff.Retry(ctx, operation,
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxElapsedTime(c.maxElapsed))
}

// Head delegates to the inner client without retries
func (c *RetryingClient) Head(ctx context.Context, url string) (bool, error) {
	return c.inner.Head(ctx, url)
}

// isRetryable reports whether an error is worth retrying. HTTP client errors
// (4xx) are permanent; everything else is treated as transient.
func isRetryable(err error) bool {
	var httpErr *HTTPError
	if asHTTPError(err, &httpErr) {
		return httpErr.StatusCode >= 500
	}
	return true
}
