package chain

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const (
	// DefaultMaxRetries bounds retry attempts after the initial invocation.
	DefaultMaxRetries = 3
	// DefaultInitialInterval is the first backoff delay.
	DefaultInitialInterval = 100 * time.Millisecond
	// DefaultMaxInterval caps the backoff delay growth.
	DefaultMaxInterval = 10 * time.Second
)

// RetryOption configures a retry wrapper.
type RetryOption func(*retry)

// WithMaxRetries sets the number of retries after the first attempt.
func WithMaxRetries(n uint64) RetryOption {
	return func(r *retry) { r.maxRetries = n }
}

// WithInitialInterval sets the first backoff delay.
func WithInitialInterval(d time.Duration) RetryOption {
	return func(r *retry) { r.initialInterval = d }
}

// WithRetryIf restricts retries to errors matching the predicate. By default
// every error is retried.
func WithRetryIf(pred func(error) bool) RetryOption {
	return func(r *retry) { r.retryIf = pred }
}

// retry re-invokes a step on failure with exponential backoff.
type retry struct {
	inner           Runnable
	maxRetries      uint64
	initialInterval time.Duration
	retryIf         func(error) bool
}

// Retry wraps r so failed invocations are retried with exponential backoff.
// Context cancellation stops the retry loop between attempts.
func Retry(r Runnable, opts ...RetryOption) Runnable {
	w := &retry{
		inner:           r,
		maxRetries:      DefaultMaxRetries,
		initialInterval: DefaultInitialInterval,
		retryIf:         func(error) bool { return true },
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func (r *retry) Name() string {
	return fmt.Sprintf("retry[%s x%d]", r.inner.Name(), r.maxRetries)
}

func (r *retry) Invoke(ctx context.Context, input any) (any, error) {
	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = r.initialInterval
	eb.MaxInterval = DefaultMaxInterval
	eb.MaxElapsedTime = 0 // attempts bounded by count, not wall clock
	eb.Reset()

	policy := backoff.WithContext(backoff.WithMaxRetries(eb, r.maxRetries), ctx)

	var out any
	operation := func() error {
		result, err := r.inner.Invoke(ctx, input)
		if err != nil {
			if !r.retryIf(err) {
				return backoff.Permanent(err)
			}
			return err
		}
		out = result
		return nil
	}

	if err := backoff.Retry(operation, policy); err != nil {
		return nil, fmt.Errorf("retry exhausted for %s: %w", r.inner.Name(), err)
	}
	return out, nil
}
