// Package robusthttp builds the retrying HTTP client used to reach the Cohere API.
package robusthttp

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-retryablehttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Defaults for NewClient.
const (
	DefaultMaxRetries   = 3
	DefaultRetryWaitMin = 1 * time.Second
	DefaultRetryWaitMax = 10 * time.Second
	DefaultTimeout      = 120 * time.Second
)

// LeveledSlog adapts slog to retryablehttp.LeveledLogger.
type LeveledSlog struct {
	inner *slog.Logger
}

// Error is logged as WARN: an attempt failing is expected while retries remain.
func (l LeveledSlog) Error(msg string, keysAndValues ...any) {
	l.inner.Warn(msg, keysAndValues...)
}

func (l LeveledSlog) Warn(msg string, keysAndValues ...any) {
	l.inner.Warn(msg, keysAndValues...)
}

func (l LeveledSlog) Info(msg string, keysAndValues ...any) {
	l.inner.Info(msg, keysAndValues...)
}

func (l LeveledSlog) Debug(msg string, keysAndValues ...any) {
	l.inner.Debug(msg, keysAndValues...)
}

type settings struct {
	retry   *retryablehttp.Client
	timeout time.Duration
}

// Option configures the client built by NewClient.
type Option func(*settings)

// WithMaxRetries sets the maximum number of retries. Zero disables retrying.
func WithMaxRetries(maxRetries int) Option {
	return func(s *settings) {
		s.retry.RetryMax = maxRetries
	}
}

// WithRetryWaitMin sets the minimum wait time between retries.
func WithRetryWaitMin(waitMin time.Duration) Option {
	return func(s *settings) {
		s.retry.RetryWaitMin = waitMin
	}
}

// WithRetryWaitMax sets the maximum wait time between retries.
func WithRetryWaitMax(waitMax time.Duration) Option {
	return func(s *settings) {
		s.retry.RetryWaitMax = waitMax
	}
}

// WithLogger sets the logger used for retry attempts.
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		s.retry.Logger = retryablehttp.LeveledLogger(LeveledSlog{inner: logger})
	}
}

// WithTransport replaces the underlying transport.
func WithTransport(transport http.RoundTripper) Option {
	return func(s *settings) {
		s.retry.HTTPClient.Transport = transport
	}
}

// WithRetryPolicy sets the policy deciding whether a response is retried.
func WithRetryPolicy(policy retryablehttp.CheckRetry) Option {
	return func(s *settings) {
		s.retry.CheckRetry = policy
	}
}

// WithTimeout bounds a whole request, response body included. Zero means no limit.
func WithTimeout(timeout time.Duration) Option {
	return func(s *settings) {
		s.timeout = timeout
	}
}

// NewClient returns a stdlib *http.Client backed by retryablehttp over a
// pooled, traced transport.
//
// Connection errors, 429 and 5xx (except 501) are retried. Waits honor a
// Retry-After header when the server sends one. Once retries are exhausted
// the last response is handed back unchanged so callers can decode the
// error body.
func NewClient(options ...Option) *http.Client {
	retryClient := retryablehttp.NewClient()
	retryClient.HTTPClient.Transport = otelhttp.NewTransport(cleanhttp.DefaultPooledTransport())
	retryClient.RetryMax = DefaultMaxRetries
	retryClient.RetryWaitMin = DefaultRetryWaitMin
	retryClient.RetryWaitMax = DefaultRetryWaitMax
	retryClient.Logger = retryablehttp.LeveledLogger(LeveledSlog{inner: slog.Default().With("subsystem", "robusthttp")})
	retryClient.CheckRetry = DefaultRetryPolicy
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	s := &settings{retry: retryClient, timeout: DefaultTimeout}
	for _, option := range options {
		option(s)
	}

	client := retryClient.StandardClient()
	client.Timeout = s.timeout
	return client
}

// DefaultRetryPolicy retries what retryablehttp.DefaultRetryPolicy retries,
// which includes 429 Too Many Requests.
func DefaultRetryPolicy(ctx context.Context, resp *http.Response, err error) (bool, error) {
	return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
}

// NoThrottleRetryPolicy leaves 429 responses to the caller.
func NoThrottleRetryPolicy(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if err == nil && resp.StatusCode == http.StatusTooManyRequests {
		return false, nil
	}
	return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
}
