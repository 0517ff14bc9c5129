package postman_test

import (
	"context"
	"testing"
	"time"

	"github.com/postlane-io/postman-client/pkg/postman"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fastPolicy keeps retry tests quick by eliminating backoff sleeps.
func fastPolicy(maxRetries int) postman.RetryPolicy {
	return postman.RetryPolicy{
		MaxRetries: maxRetries,
		Backoff:    postman.FixedBackoff(time.Millisecond),
	}
}

func TestRetry(t *testing.T) {
	t.Parallel()

	t.Run("succeeds after transient failures", func(t *testing.T) {
		t.Parallel()

		calls := 0
		result, err := postman.Retry(context.Background(), fastPolicy(3), func() (string, error) {
			calls++
			if calls < 3 {
				return "", postman.ClassifyResponse(503, nil, nil)
			}

			return "done", nil
		})

		require.NoError(t, err)
		assert.Equal(t, "done", result)
		assert.Equal(t, 3, calls)
	})

	t.Run("non-retryable error propagates immediately", func(t *testing.T) {
		t.Parallel()

		notFound := postman.ClassifyResponse(404, nil, nil)

		calls := 0
		_, err := postman.Retry(context.Background(), fastPolicy(3), func() (string, error) {
			calls++

			return "", notFound
		})

		require.Error(t, err)
		assert.Equal(t, 1, calls)
		assert.Same(t, notFound, err.(*postman.Error))
	})

	t.Run("exhausted attempts return last error unchanged", func(t *testing.T) {
		t.Parallel()

		serverErr := postman.ClassifyResponse(500, nil, nil)

		calls := 0
		_, err := postman.Retry(context.Background(), fastPolicy(3), func() (int, error) {
			calls++

			return 0, serverErr
		})

		require.Error(t, err)
		assert.Equal(t, 4, calls)
		assert.Same(t, serverErr, err.(*postman.Error))
	})

	t.Run("zero retries runs op once", func(t *testing.T) {
		t.Parallel()

		calls := 0
		_, err := postman.Retry(context.Background(), fastPolicy(0), func() (int, error) {
			calls++

			return 0, postman.ClassifyResponse(503, nil, nil)
		})

		require.Error(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("negative retries still runs op once", func(t *testing.T) {
		t.Parallel()

		serverErr := postman.ClassifyResponse(503, nil, nil)

		calls := 0
		_, err := postman.Retry(context.Background(), fastPolicy(-1), func() (int, error) {
			calls++

			return 0, serverErr
		})

		require.Error(t, err)
		assert.Equal(t, 1, calls)
		assert.Same(t, serverErr, err.(*postman.Error))
	})

	t.Run("context cancellation stops backoff sleep", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())

		policy := postman.RetryPolicy{
			MaxRetries: 3,
			Backoff:    postman.FixedBackoff(10 * time.Second),
		}

		calls := 0
		start := time.Now()
		_, err := postman.Retry(ctx, policy, func() (int, error) {
			calls++
			cancel()

			return 0, postman.ClassifyResponse(503, nil, nil)
		})

		require.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, calls)
		assert.Less(t, time.Since(start), time.Second)
	})

	t.Run("custom retryable predicate", func(t *testing.T) {
		t.Parallel()

		policy := postman.RetryPolicy{
			MaxRetries: 2,
			Retryable:  func(error) bool { return false },
			Backoff:    postman.FixedBackoff(time.Millisecond),
		}

		calls := 0
		_, err := postman.Retry(context.Background(), policy, func() (int, error) {
			calls++

			return 0, postman.ClassifyResponse(503, nil, nil)
		})

		require.Error(t, err)
		assert.Equal(t, 1, calls)
	})
}

func TestExponentialBackoff(t *testing.T) {
	t.Parallel()

	backoff := postman.ExponentialBackoff(time.Second, 10*time.Second)

	t.Run("doubles per attempt and caps", func(t *testing.T) {
		t.Parallel()

		serverErr := postman.ClassifyResponse(500, nil, nil)

		assert.Equal(t, time.Second, backoff(1, serverErr))
		assert.Equal(t, 2*time.Second, backoff(2, serverErr))
		assert.Equal(t, 4*time.Second, backoff(3, serverErr))
		assert.Equal(t, 8*time.Second, backoff(4, serverErr))
		assert.Equal(t, 10*time.Second, backoff(5, serverErr))
	})

	t.Run("honors Retry-After on rate limit errors", func(t *testing.T) {
		t.Parallel()

		rateLimited := &postman.Error{
			Kind:       postman.ErrorKindRateLimit,
			StatusCode: 429,
			RetryAfter: 42 * time.Second,
		}

		assert.Equal(t, 42*time.Second, backoff(1, rateLimited))
	})

	t.Run("rate limit without Retry-After uses schedule", func(t *testing.T) {
		t.Parallel()

		rateLimited := postman.ClassifyResponse(429, nil, nil)
		assert.Equal(t, 2*time.Second, backoff(2, rateLimited))
	})
}

func TestDefaultRetryPolicy(t *testing.T) {
	t.Parallel()

	policy := postman.DefaultRetryPolicy()
	assert.Equal(t, 3, policy.MaxRetries)
	assert.True(t, policy.Retryable(postman.ClassifyResponse(503, nil, nil)))
	assert.False(t, policy.Retryable(postman.ClassifyResponse(404, nil, nil)))
}
