// Package http provides the HTTP-based documentation fetcher. It bounds
// outstanding requests with a counting semaphore and retries transient
// failures with exponential backoff.
package http

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	cardanomcp "github.com/Jimmyh-world/Cardano-MCP-sub001"
	"golang.org/x/sync/semaphore"
)

// Defaults for fetcher configuration.
const (
	DefaultFetchTimeout  = 10 * time.Second
	DefaultMaxConcurrent = 5
	DefaultMaxRetries    = 3
	DefaultRetryDelay    = 1 * time.Second
	DefaultBackoffFactor = 2.0
)

// Ensure Fetcher implements cardanomcp.Fetcher at compile time.
var _ cardanomcp.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves documentation content over HTTP. A weighted semaphore
// of size maxConcurrent gates attempts; waiters are served in FIFO order.
type Fetcher struct {
	client        *http.Client
	sem           *semaphore.Weighted
	timeout       time.Duration
	maxConcurrent int
	maxRetries    int
	retryDelay    time.Duration
	backoffFactor float64
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the per-attempt timeout. Defaults to DefaultFetchTimeout.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithMaxConcurrent sets the concurrency limit. Values below 1 are clamped
// to 1. Defaults to DefaultMaxConcurrent.
func WithMaxConcurrent(n int) Option {
	return func(f *Fetcher) {
		if n < 1 {
			n = 1
		}
		f.maxConcurrent = n
	}
}

// WithMaxRetries sets the number of additional attempts after the first
// failure. Negative values are clamped to 0. Defaults to DefaultMaxRetries.
func WithMaxRetries(n int) Option {
	return func(f *Fetcher) {
		if n < 0 {
			n = 0
		}
		f.maxRetries = n
	}
}

// WithRetryDelay sets the base backoff delay. Defaults to DefaultRetryDelay.
func WithRetryDelay(d time.Duration) Option {
	return func(f *Fetcher) {
		f.retryDelay = d
	}
}

// WithBackoffFactor sets the multiplicative backoff growth factor. Values
// below 1 are clamped to 1 (flat delay). Defaults to DefaultBackoffFactor.
func WithBackoffFactor(factor float64) Option {
	return func(f *Fetcher) {
		if factor < 1 {
			factor = 1
		}
		f.backoffFactor = factor
	}
}

// NewFetcher creates a new HTTP Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:       DefaultFetchTimeout,
		maxConcurrent: DefaultMaxConcurrent,
		maxRetries:    DefaultMaxRetries,
		retryDelay:    DefaultRetryDelay,
		backoffFactor: DefaultBackoffFactor,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.sem = semaphore.NewWeighted(int64(f.maxConcurrent))
	// Attempts are time-boxed via context, not the client, so the timeout
	// covers one attempt rather than the whole retry sequence.
	f.client = &http.Client{}

	return f
}

// Fetch retrieves the content at the source's location with up to
// 1 + maxRetries attempts. Pure network failures, timeouts, 5xx statuses,
// and 4xx statuses other than 404 are retried; a 404 is terminal and
// consumes no retry budget.
func (f *Fetcher) Fetch(ctx context.Context, source *cardanomcp.DocumentationSource) (*cardanomcp.FetchResult, error) {
	if source == nil || source.Location == "" {
		return nil, cardanomcp.Errorf(cardanomcp.EINVALID, "source location required")
	}

	attempts := f.maxRetries + 1
	var lastErr error

	for attempt := 0; attempt < attempts; attempt++ {
		result, status, err := f.attempt(ctx, source.Location)
		if err == nil {
			return result, nil
		}
		lastErr = err

		if !retryable(err, status) {
			return nil, err
		}
		if attempt == attempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoffDelay(f.retryDelay, f.backoffFactor, attempt)):
		}
	}

	return nil, lastErr
}

// Close releases resources. The shared http.Client needs no explicit
// cleanup.
func (f *Fetcher) Close() error {
	return nil
}

// attempt performs one gated, time-boxed request. The returned status is
// non-zero only when a response was received.
func (f *Fetcher) attempt(ctx context.Context, url string) (*cardanomcp.FetchResult, int, error) {
	if err := f.sem.Acquire(ctx, 1); err != nil {
		return nil, 0, err
	}
	defer f.sem.Release(1)

	attemptCtx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(attemptCtx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, cardanomcp.Errorf(cardanomcp.EINVALID, "invalid request URL %q: %v", url, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, 0, classifyTransportError(err, url)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, resp.StatusCode, cardanomcp.Errorf(cardanomcp.EHTTPSTATUS, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, classifyTransportError(err, url)
	}

	headers := make(map[string]string, len(resp.Header))
	for key := range resp.Header {
		headers[key] = resp.Header.Get(key)
	}

	return &cardanomcp.FetchResult{
		Content:     string(body),
		ContentType: resp.Header.Get("Content-Type"),
		StatusCode:  resp.StatusCode,
		Headers:     headers,
		Timestamp:   time.Now().UTC(),
	}, resp.StatusCode, nil
}

// classifyTransportError maps a transport failure to ETIMEOUT or ENETWORK.
func classifyTransportError(err error, url string) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return &cardanomcp.Error{
			Code:    cardanomcp.ETIMEOUT,
			Message: "fetch timed out for " + url,
			Err:     err,
		}
	}
	return &cardanomcp.Error{
		Code:    cardanomcp.ENETWORK,
		Message: "request failed for " + url,
		Err:     err,
	}
}

// retryable reports whether a failed attempt should be retried. A 404 is
// always terminal.
func retryable(err error, status int) bool {
	switch cardanomcp.ErrorCode(err) {
	case cardanomcp.ENETWORK, cardanomcp.ETIMEOUT:
		return true
	case cardanomcp.EHTTPSTATUS:
		return status != http.StatusNotFound
	default:
		return false
	}
}

// backoffDelay grows the base delay by the multiplicative factor per
// completed attempt.
func backoffDelay(base time.Duration, factor float64, attempt int) time.Duration {
	delay := float64(base)
	for i := 0; i < attempt; i++ {
		delay *= factor
	}
	return time.Duration(delay)
}
