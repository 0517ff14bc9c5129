package commands

import (
	"testing"
	"time"

	"github.com/postlane-io/postman-client/pkg/postman"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVariables(t *testing.T) {
	t.Parallel()

	t.Run("parses pairs", func(t *testing.T) {
		t.Parallel()

		values, err := parseVariables([]string{"base_url=https://api.example.com", "api_key=secret-1"})
		require.NoError(t, err)
		assert.Equal(t, map[string]string{
			"base_url": "https://api.example.com",
			"api_key":  "secret-1",
		}, values)
	})

	t.Run("value may contain equals sign", func(t *testing.T) {
		t.Parallel()

		values, err := parseVariables([]string{"query=a=b"})
		require.NoError(t, err)
		assert.Equal(t, "a=b", values["query"])
	})

	t.Run("rejects missing separator", func(t *testing.T) {
		t.Parallel()

		_, err := parseVariables([]string{"no-separator"})
		require.Error(t, err)
	})

	t.Run("rejects empty key", func(t *testing.T) {
		t.Parallel()

		_, err := parseVariables([]string{"=value"})
		require.Error(t, err)
	})
}

func TestMaskAPIKey(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "PMAK-...cdef", maskAPIKey("PMAK-1234567890abcdef"))
	assert.Equal(t, "***", maskAPIKey("short"))
}

func TestDisplayValue(t *testing.T) {
	t.Parallel()

	secret := postman.EnvironmentValue{Key: "api_key", Value: "secret-1", Type: postman.VariableTypeSecret}
	assert.Equal(t, "***", displayValue(secret))

	plain := postman.EnvironmentValue{Key: "base_url", Value: "https://api.example.com", Type: postman.VariableTypeDefault}
	assert.Equal(t, "https://api.example.com", displayValue(plain))
}

func TestFormatTime(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "N/A", formatTime(time.Time{}))

	when := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	assert.Equal(t, "2025-03-14 09:30", formatTime(when))
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "short", truncate("short"))

	long := truncate(string(make([]byte, 100)))
	assert.Len(t, long, 60)
	assert.Equal(t, "...", long[57:])
}
