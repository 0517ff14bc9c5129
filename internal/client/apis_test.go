package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/postlane-io/postman-client/pkg/postman"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIsClient_CRUD(t *testing.T) {
	t.Parallel()
	t.Run("list", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/apis", request.URL.Path)
			_ = json.NewEncoder(writer).Encode(map[string]interface{}{
				"apis": []map[string]string{
					{"id": "api-1", "name": "Payments API"},
				},
			})
		}))
		defer server.Close()

		client := NewTestClient(server.URL)

		apis, err := client.APIs().List(context.Background(), "")
		require.NoError(t, err)
		require.Len(t, apis, 1)
		assert.Equal(t, "Payments API", apis[0].Name)
	})

	t.Run("create in workspace", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/apis", request.URL.Path)
			assert.Equal(t, "POST", request.Method)
			assert.Equal(t, "ws-123", request.URL.Query().Get("workspace"))

			var body struct {
				API postman.APICreateRequest `json:"api"`
			}

			err := json.NewDecoder(request.Body).Decode(&body)
			assert.NoError(t, err)
			assert.Equal(t, "Payments API", body.API.Name)

			_ = json.NewEncoder(writer).Encode(map[string]interface{}{
				"api": map[string]string{"id": "api-1", "name": "Payments API"},
			})
		}))
		defer server.Close()

		client := NewTestClient(server.URL)

		api, err := client.APIs().Create(context.Background(), "ws-123", &postman.APICreateRequest{
			Name:    "Payments API",
			Summary: "Core payments service",
		})
		require.NoError(t, err)
		assert.Equal(t, "api-1", api.ID)
	})

	t.Run("update", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/apis/api-1", request.URL.Path)
			assert.Equal(t, "PUT", request.Method)

			_ = json.NewEncoder(writer).Encode(map[string]interface{}{
				"api": map[string]string{"id": "api-1", "name": "Payments API v2"},
			})
		}))
		defer server.Close()

		client := NewTestClient(server.URL)

		api, err := client.APIs().Update(context.Background(), "api-1", &postman.APICreateRequest{Name: "Payments API v2"})
		require.NoError(t, err)
		assert.Equal(t, "Payments API v2", api.Name)
	})

	RunGetTests(t, []TestGetOperation[postman.API]{
		{
			Name:         "successful get",
			UID:          "api-1",
			ExpectedPath: "/apis/api-1",
			StatusCode:   http.StatusOK,
			Response: map[string]interface{}{
				"api": map[string]string{"id": "api-1", "name": "Payments API"},
			},
		},
	}, func(client *Client) func(context.Context, string) (*postman.API, error) {
		return client.APIs().Get
	})

	RunDeleteTests(t, []TestDeleteOperation{
		{
			Name:         "successful delete",
			UID:          "api-1",
			ExpectedPath: "/apis/api-1",
			StatusCode:   http.StatusOK,
		},
	}, func(client *Client) func(context.Context, string) error {
		return client.APIs().Delete
	})
}

func TestAPIsClient_Versions(t *testing.T) {
	t.Parallel()
	t.Run("list versions", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/apis/api-1/versions", request.URL.Path)
			_ = json.NewEncoder(writer).Encode(map[string]interface{}{
				"versions": []map[string]string{
					{"id": "ver-1", "name": "1.0.0"},
					{"id": "ver-2", "name": "2.0.0"},
				},
			})
		}))
		defer server.Close()

		client := NewTestClient(server.URL)

		versions, err := client.APIs().Versions(context.Background(), "api-1")
		require.NoError(t, err)
		require.Len(t, versions, 2)
		assert.Equal(t, "2.0.0", versions[1].Name)
	})

	t.Run("get single version", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/apis/api-1/versions/ver-1", request.URL.Path)
			_ = json.NewEncoder(writer).Encode(map[string]interface{}{
				"version": map[string]string{"id": "ver-1", "name": "1.0.0", "api": "api-1"},
			})
		}))
		defer server.Close()

		client := NewTestClient(server.URL)

		version, err := client.APIs().Version(context.Background(), "api-1", "ver-1")
		require.NoError(t, err)
		assert.Equal(t, "1.0.0", version.Name)
		assert.Equal(t, "api-1", version.API)
	})

	t.Run("list schemas", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/apis/api-1/versions/ver-1/schemas", request.URL.Path)
			_ = json.NewEncoder(writer).Encode(map[string]interface{}{
				"schemas": []map[string]interface{}{
					{"id": "schema-1", "type": "openapi3", "language": "yaml"},
				},
			})
		}))
		defer server.Close()

		client := NewTestClient(server.URL)

		schemas, err := client.APIs().Schemas(context.Background(), "api-1", "ver-1")
		require.NoError(t, err)
		require.Len(t, schemas, 1)
		assert.Equal(t, "openapi3", schemas[0].Type)
	})
}
