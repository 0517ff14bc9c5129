package postman_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/postlane-io/postman-client/pkg/postman"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyResponse_StatusMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		status    int
		wantKind  postman.ErrorKind
		retryable bool
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, wantKind: postman.ErrorKindAuthentication},
		{name: "forbidden", status: http.StatusForbidden, wantKind: postman.ErrorKindPermission},
		{name: "not found", status: http.StatusNotFound, wantKind: postman.ErrorKindNotFound},
		{name: "bad request", status: http.StatusBadRequest, wantKind: postman.ErrorKindValidation},
		{name: "unprocessable entity", status: http.StatusUnprocessableEntity, wantKind: postman.ErrorKindValidation},
		{name: "too many requests", status: http.StatusTooManyRequests, wantKind: postman.ErrorKindRateLimit, retryable: true},
		{name: "internal server error", status: http.StatusInternalServerError, wantKind: postman.ErrorKindServer, retryable: true},
		{name: "bad gateway", status: http.StatusBadGateway, wantKind: postman.ErrorKindServer, retryable: true},
		{name: "service unavailable", status: http.StatusServiceUnavailable, wantKind: postman.ErrorKindServer, retryable: true},
		{name: "unmapped status", status: http.StatusTeapot, wantKind: postman.ErrorKindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := postman.ClassifyResponse(tt.status, nil, nil)
			require.NotNil(t, err)
			assert.Equal(t, tt.wantKind, err.Kind)
			assert.Equal(t, tt.status, err.StatusCode)
			assert.Equal(t, tt.retryable, err.Retryable())
			assert.NotEmpty(t, err.Message)
		})
	}
}

func TestClassifyResponse_MessageExtraction(t *testing.T) {
	t.Parallel()

	t.Run("uses error envelope message", func(t *testing.T) {
		t.Parallel()

		body := []byte(`{"error":{"name":"instanceNotFoundError","message":"Collection not found"}}`)
		err := postman.ClassifyResponse(http.StatusNotFound, nil, body)
		assert.Equal(t, "Collection not found", err.Message)
	})

	t.Run("envelope without name", func(t *testing.T) {
		t.Parallel()

		body := []byte(`{"error":{"message":"Collection not found"}}`)
		err := postman.ClassifyResponse(http.StatusNotFound, nil, body)
		assert.Equal(t, "Collection not found", err.Message)
	})

	t.Run("falls back to raw body text", func(t *testing.T) {
		t.Parallel()

		err := postman.ClassifyResponse(http.StatusBadGateway, nil, []byte("upstream connect error"))
		assert.Equal(t, "upstream connect error", err.Message)
	})

	t.Run("falls back to generic message on empty body", func(t *testing.T) {
		t.Parallel()

		err := postman.ClassifyResponse(http.StatusUnauthorized, nil, nil)
		assert.Equal(t, "authentication failed: API key is invalid or missing", err.Message)
	})

	t.Run("error string includes status code", func(t *testing.T) {
		t.Parallel()

		err := postman.ClassifyResponse(http.StatusNotFound, nil, []byte(`{"error":{"message":"gone"}}`))
		assert.Equal(t, "[404] gone", err.Error())
	})
}

func TestClassifyResponse_RetryAfter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		status     int
		retryAfter string
		want       time.Duration
	}{
		{name: "parses seconds", status: http.StatusTooManyRequests, retryAfter: "30", want: 30 * time.Second},
		{name: "absent header", status: http.StatusTooManyRequests, retryAfter: "", want: 0},
		{name: "unparsable header", status: http.StatusTooManyRequests, retryAfter: "soon", want: 0},
		{name: "fractional seconds rejected", status: http.StatusTooManyRequests, retryAfter: "1.5", want: 0},
		{name: "negative value", status: http.StatusTooManyRequests, retryAfter: "-5", want: 0},
		{name: "ignored for non rate limit", status: http.StatusInternalServerError, retryAfter: "30", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			headers := http.Header{}
			if tt.retryAfter != "" {
				headers.Set("Retry-After", tt.retryAfter)
			}

			err := postman.ClassifyResponse(tt.status, headers, nil)
			assert.Equal(t, tt.want, err.RetryAfter)
		})
	}
}

func TestErrorPredicates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		err       error
		predicate func(error) bool
	}{
		{name: "authentication", err: postman.ClassifyResponse(401, nil, nil), predicate: postman.IsAuthentication},
		{name: "permission", err: postman.ClassifyResponse(403, nil, nil), predicate: postman.IsPermission},
		{name: "not found", err: postman.ClassifyResponse(404, nil, nil), predicate: postman.IsNotFound},
		{name: "validation", err: postman.ClassifyResponse(422, nil, nil), predicate: postman.IsValidation},
		{name: "rate limit", err: postman.ClassifyResponse(429, nil, nil), predicate: postman.IsRateLimit},
		{name: "server", err: postman.ClassifyResponse(500, nil, nil), predicate: postman.IsServer},
		{name: "network", err: postman.NewNetworkError(nil), predicate: postman.IsNetwork},
		{name: "timeout", err: postman.NewTimeoutError(time.Second, nil), predicate: postman.IsTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.True(t, tt.predicate(tt.err))
		})
	}

	t.Run("matches through wrapping", func(t *testing.T) {
		t.Parallel()

		wrapped := fmt.Errorf("getting collection: %w", postman.ClassifyResponse(404, nil, nil))
		assert.True(t, postman.IsNotFound(wrapped))
		assert.False(t, postman.IsServer(wrapped))
	})

	t.Run("plain errors never match", func(t *testing.T) {
		t.Parallel()

		plain := fmt.Errorf("connection reset")
		assert.False(t, postman.IsNotFound(plain))
		assert.False(t, postman.IsRetryable(plain))
	})
}

func TestNewNetworkError(t *testing.T) {
	t.Parallel()

	cause := fmt.Errorf("dial tcp: connection refused")
	err := postman.NewNetworkError(cause)

	assert.Equal(t, postman.ErrorKindNetwork, err.Kind)
	assert.Zero(t, err.StatusCode)
	assert.Contains(t, err.Message, "connection refused")
	assert.ErrorIs(t, err, cause)
	assert.True(t, err.Retryable())
}

func TestNewTimeoutError(t *testing.T) {
	t.Parallel()

	err := postman.NewTimeoutError(30*time.Second, nil)

	assert.Equal(t, postman.ErrorKindTimeout, err.Kind)
	assert.Zero(t, err.StatusCode)
	assert.Contains(t, err.Message, "30s")
	assert.True(t, err.Retryable())
}
