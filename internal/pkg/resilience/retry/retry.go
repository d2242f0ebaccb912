// Package retry runs operations with exponential backoff. It wraps the
// retry-go package from Avast behind a small interface so that callers can
// be tested with a mock and configured with functional options.
//
// Basic usage:
//
//	r := retry.New(retry.WithAttempts(5))
//	err := r.Execute(ctx, func() error {
//	    return someOperation(ctx)
//	})
package retry

import (
	"context"
	"time"

	retry "github.com/avast/retry-go/v4"
)

// Retry executes an operation until it succeeds, the attempts run out, or
// the context is done.
type Retry interface {
	// Execute runs operation and retries it on error. It returns nil on
	// success, the last error once all attempts fail, or the context error
	// when ctx is canceled while waiting between attempts.
	//
	// operation must be safe to call more than once.
	Execute(ctx context.Context, operation func() error) error
}

// OnRetryFunc is invoked after every failed attempt, the last one included.
// attempt is zero-based.
type OnRetryFunc func(attempt uint, err error)

// config holds internal settings for the retry mechanism.
type config struct {
	attempts uint          // total number of attempts, including the first one
	delay    time.Duration // base delay, doubled on every retry
	maxDelay time.Duration // upper bound for a single delay
	onRetry  OnRetryFunc   // optional hook called between attempts
}

// Option configures the retry mechanism.
type Option func(*config)

// retrier implements Retry using retry-go.
type retrier struct {
	cfg config
}

var _ Retry = (*retrier)(nil)

// New creates a Retry configured with the provided options. Defaults:
//
//   - attempts: 3
//   - delay:    1 second
//   - maxDelay: 5 seconds
func New(opts ...Option) Retry {
	cfg := config{
		attempts: 3,
		delay:    1 * time.Second,
		maxDelay: 5 * time.Second,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &retrier{
		cfg: cfg,
	}
}

// Execute implements Retry.
func (r *retrier) Execute(ctx context.Context, operation func() error) error {
	options := []retry.Option{
		retry.Attempts(r.cfg.attempts),
		retry.Delay(r.cfg.delay),
		retry.MaxDelay(r.cfg.maxDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.Context(ctx),
	}
	if r.cfg.onRetry != nil {
		options = append(options, retry.OnRetry(retry.OnRetryFunc(r.cfg.onRetry)))
	}

	return retry.Do(operation, options...)
}

// WithAttempts sets the total number of attempts, including the first one.
// Zero means retry until the context is done.
func WithAttempts(n uint) Option {
	return func(c *config) {
		c.attempts = n
	}
}

// WithDelay sets the base delay between attempts.
func WithDelay(d time.Duration) Option {
	return func(c *config) {
		c.delay = d
	}
}

// WithMaxDelay caps the exponential growth of the delay.
func WithMaxDelay(d time.Duration) Option {
	return func(c *config) {
		c.maxDelay = d
	}
}

// WithOnRetry registers a hook called after every failed attempt.
func WithOnRetry(f OnRetryFunc) Option {
	return func(c *config) {
		c.onRetry = f
	}
}
