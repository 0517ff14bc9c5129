package postmanclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/postlane-io/postman-client/pkg/postman"
	"github.com/postlane-io/postman-client/pkg/postmanclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()
	t.Run("creates client with config", func(t *testing.T) {
		t.Parallel()

		config := &postman.Config{
			APIKey: "PMAK-test-key",
		}

		client, err := postmanclient.New(context.Background(), config)
		require.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("nil config", func(t *testing.T) {
		t.Parallel()

		client, err := postmanclient.New(context.Background(), nil)
		require.ErrorIs(t, err, postman.ErrConfigRequired)
		assert.Nil(t, client)
	})

	t.Run("normalizes base URL", func(t *testing.T) {
		t.Parallel()

		config := &postman.Config{
			APIKey:  "PMAK-test-key",
			BaseURL: "api.example.com/",
		}

		_, err := postmanclient.New(context.Background(), config)
		require.NoError(t, err)
		assert.Equal(t, "https://api.example.com", config.BaseURL)
	})

	t.Run("rejects missing API key", func(t *testing.T) {
		t.Parallel()

		client, err := postmanclient.New(context.Background(), &postman.Config{})
		require.ErrorIs(t, err, postman.ErrAPIKeyMissing)
		assert.Nil(t, client)
	})

	t.Run("rejects malformed API key", func(t *testing.T) {
		t.Parallel()

		client, err := postmanclient.New(context.Background(), &postman.Config{APIKey: "swapped-key"})
		require.ErrorIs(t, err, postman.ErrAPIKeyFormat)
		assert.Nil(t, client)
	})
}

func TestNewWithAPIKey(t *testing.T) {
	t.Parallel()

	client, err := postmanclient.NewWithAPIKey(context.Background(), "PMAK-test-key")
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestNewWithWorkspace(t *testing.T) {
	t.Parallel()

	client, err := postmanclient.NewWithWorkspace(context.Background(), "PMAK-test-key", "ws-123")
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestNewFromEnv(t *testing.T) {
	t.Run("reads configuration from environment", func(t *testing.T) {
		t.Setenv("POSTMAN_API_KEY", "PMAK-env-key")
		t.Setenv("POSTMAN_WORKSPACE_ID", "ws-env")
		t.Setenv("POSTMAN_TIMEOUT", "15")
		t.Setenv("POSTMAN_MAX_RETRIES", "2")
		t.Setenv("POSTMAN_RATE_LIMIT_DELAY", "5")

		client, err := postmanclient.NewFromEnv(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("missing API key", func(t *testing.T) {
		t.Setenv("POSTMAN_API_KEY", "")

		client, err := postmanclient.NewFromEnv(context.Background())
		require.ErrorIs(t, err, postman.ErrAPIKeyMissing)
		assert.Nil(t, client)
	})

	t.Run("invalid timeout", func(t *testing.T) {
		t.Setenv("POSTMAN_API_KEY", "PMAK-env-key")
		t.Setenv("POSTMAN_TIMEOUT", "not-a-number")

		client, err := postmanclient.NewFromEnv(context.Background())
		require.Error(t, err)
		assert.Nil(t, client)
	})
}

func TestClientIntegration(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		switch request.URL.Path {
		case "/workspaces":
			_ = json.NewEncoder(writer).Encode(map[string]interface{}{
				"workspaces": []map[string]string{
					{"id": "ws-1", "name": "Team Workspace", "type": "team"},
				},
			})
		default:
			writer.WriteHeader(http.StatusNotFound)
			_, _ = writer.Write([]byte(`{"error":{"name":"instanceNotFoundError","message":"Not found"}}`))
		}
	}))
	defer server.Close()

	client, err := postmanclient.New(context.Background(), &postman.Config{
		APIKey:  "PMAK-test-key",
		BaseURL: server.URL,
	})
	require.NoError(t, err)

	workspaces, err := client.Workspaces().List(context.Background())
	require.NoError(t, err)
	require.Len(t, workspaces, 1)
	assert.Equal(t, "Team Workspace", workspaces[0].Name)

	_, err = client.Collections().Get(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, postman.IsNotFound(err))
}
