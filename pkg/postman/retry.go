package postman

import (
	"context"
	"errors"
	"time"
)

// BackoffFunc computes the delay before the next attempt. attempt is the
// number of the attempt that just failed, starting at 1. err is the failure
// that triggered the retry.
type BackoffFunc func(attempt int, err error) time.Duration

// RetryPolicy controls how Retry re-executes a failing operation.
//
// The operation must be idempotent from the caller's perspective: a call that
// partially succeeded before a network drop may be executed again. This layer
// does not deduplicate side effects.
type RetryPolicy struct {
	// MaxRetries is the number of re-executions after the initial attempt,
	// so an operation runs at most MaxRetries+1 times.
	MaxRetries int
	// Retryable decides whether a failure is worth retrying. Nil means
	// IsRetryable (network, timeout, rate limit, server).
	Retryable func(err error) bool
	// Backoff computes the sleep before the next attempt. Nil means
	// ExponentialBackoff(1s, 30s).
	Backoff BackoffFunc
}

// DefaultRetryPolicy returns the policy used by the client: three retries,
// taxonomy-driven retryability, exponential backoff.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxRetries: 3,
		Retryable:  IsRetryable,
		Backoff:    ExponentialBackoff(time.Second, 30*time.Second),
	}
}

// ExponentialBackoff returns a BackoffFunc that doubles the base delay on
// each attempt, capped at maxDelay. Rate-limit errors that carried a
// Retry-After header sleep for that duration instead.
func ExponentialBackoff(base, maxDelay time.Duration) BackoffFunc {
	return func(attempt int, err error) time.Duration {
		if delay := rateLimitDelay(err); delay > 0 {
			return delay
		}

		delay := base << (attempt - 1)
		if delay > maxDelay || delay <= 0 {
			return maxDelay
		}

		return delay
	}
}

// FixedBackoff returns a BackoffFunc that always sleeps for delay.
func FixedBackoff(delay time.Duration) BackoffFunc {
	return func(int, error) time.Duration {
		return delay
	}
}

// rateLimitDelay extracts the server-requested delay from a RateLimit error.
func rateLimitDelay(err error) time.Duration {
	apiErr := &Error{}
	if errors.As(err, &apiErr) && apiErr.Kind == ErrorKindRateLimit {
		return apiErr.RetryAfter
	}

	return 0
}

// Retry executes op up to policy.MaxRetries+1 times, sleeping between
// attempts, and returns the first success. Failures the policy deems
// non-retryable propagate immediately; once attempts are exhausted the last
// observed error is returned unchanged.
//
// Retries are sequential and block the calling goroutine for the duration of
// backoff sleeps; ctx cancels the sleep, not an in-flight op.
func Retry[T any](ctx context.Context, policy RetryPolicy, op func() (T, error)) (T, error) {
	retryable := policy.Retryable
	if retryable == nil {
		retryable = IsRetryable
	}

	backoff := policy.Backoff
	if backoff == nil {
		backoff = ExponentialBackoff(time.Second, 30*time.Second)
	}

	// The operation always runs at least once, even under a negative
	// MaxRetries.
	attempts := policy.MaxRetries + 1
	if attempts < 1 {
		attempts = 1
	}

	var (
		result  T
		lastErr error
	)

	for attempt := 1; attempt <= attempts; attempt++ {
		result, lastErr = op()
		if lastErr == nil {
			return result, nil
		}

		if !retryable(lastErr) {
			return result, lastErr
		}

		if attempt == attempts {
			break
		}

		select {
		case <-ctx.Done():
			return result, ctx.Err()
		case <-time.After(backoff(attempt, lastErr)):
		}
	}

	return result, lastErr
}
