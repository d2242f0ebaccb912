// Package http builds the retrying HTTP client shared by every node
// connection. It wraps HashiCorp's retryablehttp.Client, exposes functional
// options for timeouts and retry behavior, and can route the client's
// internal logging through the application logger.
package http

import (
	"context"
	"time"

	"github.com/gabapcia/chaindiff/internal/pkg/logger"

	"github.com/hashicorp/go-retryablehttp"
)

// config holds internal settings for the HTTP client.
type config struct {
	timeout      time.Duration // maximum duration for a single HTTP request
	retryWaitMin time.Duration // minimum delay between retry attempts
	retryWaitMax time.Duration // maximum delay between retry attempts
	retryMax     int           // maximum number of retries after the first attempt
	logRequests  bool          // forward retryablehttp logs to the application logger
}

// Option defines a functional option for configuring the HTTP client.
type Option func(*config)

// NewClient creates a retryablehttp.Client configured with the provided
// options. Defaults:
//
//   - timeout:      5 seconds
//   - retryWaitMin: 1 second
//   - retryWaitMax: 5 seconds
//   - retryMax:     0 (a single attempt per request)
//
// The final response is always handed back to the caller, even when it
// carries a retryable status, so that the caller can decode node errors.
func NewClient(opts ...Option) *retryablehttp.Client {
	cfg := config{
		timeout:      5 * time.Second,
		retryWaitMin: 1 * time.Second,
		retryWaitMax: 5 * time.Second,
		retryMax:     0,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	client := retryablehttp.NewClient()
	client.Logger = nil
	if cfg.logRequests {
		client.Logger = leveledLogger{}
	}
	client.HTTPClient.Timeout = cfg.timeout
	client.RetryWaitMin = cfg.retryWaitMin
	client.RetryWaitMax = cfg.retryWaitMax
	client.RetryMax = cfg.retryMax
	client.ErrorHandler = retryablehttp.PassthroughErrorHandler
	return client
}

// WithTimeout sets the maximum duration allowed for a single HTTP request.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}

// WithRetryWaitMin sets the minimum delay between retry attempts.
func WithRetryWaitMin(d time.Duration) Option {
	return func(c *config) {
		c.retryWaitMin = d
	}
}

// WithRetryWaitMax sets the maximum delay between retry attempts.
func WithRetryWaitMax(d time.Duration) Option {
	return func(c *config) {
		c.retryWaitMax = d
	}
}

// WithRetryMax sets the number of retries performed after a failed attempt.
func WithRetryMax(n int) Option {
	return func(c *config) {
		c.retryMax = n
	}
}

// WithRequestLogging forwards the client's request and retry logs to the
// application logger at debug level (errors stay at error level).
func WithRequestLogging() Option {
	return func(c *config) {
		c.logRequests = true
	}
}

// leveledLogger adapts the package logger to retryablehttp.LeveledLogger.
type leveledLogger struct{}

var _ retryablehttp.LeveledLogger = leveledLogger{}

func (leveledLogger) Error(msg string, keysAndValues ...any) {
	logger.Error(context.Background(), msg, keysAndValues...)
}

func (leveledLogger) Warn(msg string, keysAndValues ...any) {
	logger.Warn(context.Background(), msg, keysAndValues...)
}

func (leveledLogger) Info(msg string, keysAndValues ...any) {
	logger.Debug(context.Background(), msg, keysAndValues...)
}

func (leveledLogger) Debug(msg string, keysAndValues ...any) {
	logger.Debug(context.Background(), msg, keysAndValues...)
}
