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

func TestMocksClient_CRUD(t *testing.T) {
	t.Parallel()
	t.Run("list scoped to workspace", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/mocks", request.URL.Path)
			assert.Equal(t, "ws-123", request.URL.Query().Get("workspace"))

			_ = json.NewEncoder(writer).Encode(map[string]interface{}{
				"mocks": []map[string]interface{}{
					{"id": "mock-1", "name": "Payments Mock", "mockUrl": "https://mock-1.mock.pstmn.io"},
				},
			})
		}))
		defer server.Close()

		client := NewTestClient(server.URL)

		mocks, err := client.Mocks().List(context.Background(), "ws-123")
		require.NoError(t, err)
		require.Len(t, mocks, 1)
		assert.Equal(t, "https://mock-1.mock.pstmn.io", mocks[0].MockURL)
	})

	t.Run("create", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/mocks", request.URL.Path)
			assert.Equal(t, "POST", request.Method)

			var body struct {
				Mock postman.MockCreateRequest `json:"mock"`
			}

			err := json.NewDecoder(request.Body).Decode(&body)
			assert.NoError(t, err)
			assert.Equal(t, "Payments Mock", body.Mock.Name)
			assert.Equal(t, "owner-col-1", body.Mock.CollectionUID)
			assert.True(t, body.Mock.Private)

			_ = json.NewEncoder(writer).Encode(map[string]interface{}{
				"mock": map[string]interface{}{"id": "mock-1", "name": "Payments Mock", "private": true},
			})
		}))
		defer server.Close()

		client := NewTestClient(server.URL)

		mock, err := client.Mocks().Create(context.Background(), &postman.MockCreateRequest{
			Name:          "Payments Mock",
			CollectionUID: "owner-col-1",
			Private:       true,
		})
		require.NoError(t, err)
		assert.Equal(t, "mock-1", mock.ID)
		assert.True(t, mock.Private)
	})

	t.Run("update", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/mocks/mock-1", request.URL.Path)
			assert.Equal(t, "PUT", request.Method)

			_ = json.NewEncoder(writer).Encode(map[string]interface{}{
				"mock": map[string]string{"id": "mock-1", "name": "Payments Mock v2"},
			})
		}))
		defer server.Close()

		client := NewTestClient(server.URL)

		mock, err := client.Mocks().Update(context.Background(), "mock-1", &postman.MockCreateRequest{Name: "Payments Mock v2"})
		require.NoError(t, err)
		assert.Equal(t, "Payments Mock v2", mock.Name)
	})

	RunGetTests(t, []TestGetOperation[postman.Mock]{
		{
			Name:         "successful get",
			UID:          "mock-1",
			ExpectedPath: "/mocks/mock-1",
			StatusCode:   http.StatusOK,
			Response: map[string]interface{}{
				"mock": map[string]string{"id": "mock-1", "name": "Payments Mock"},
			},
		},
		{
			Name:         "mock not found",
			UID:          "missing",
			ExpectedPath: "/mocks/missing",
			StatusCode:   http.StatusNotFound,
			WantErr:      true,
			ErrMessage:   "getting mock",
		},
	}, func(client *Client) func(context.Context, string) (*postman.Mock, error) {
		return client.Mocks().Get
	})

	RunDeleteTests(t, []TestDeleteOperation{
		{
			Name:         "successful delete",
			UID:          "mock-1",
			ExpectedPath: "/mocks/mock-1",
			StatusCode:   http.StatusOK,
		},
	}, func(client *Client) func(context.Context, string) error {
		return client.Mocks().Delete
	})
}
