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

func TestWorkspacesClient_List(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/workspaces", request.URL.Path)
		_ = json.NewEncoder(writer).Encode(map[string]interface{}{
			"workspaces": []map[string]string{
				{"id": "ws-1", "name": "Team Workspace", "type": "team"},
				{"id": "ws-2", "name": "Personal", "type": "personal"},
			},
		})
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	workspaces, err := client.Workspaces().List(context.Background())
	require.NoError(t, err)
	require.Len(t, workspaces, 2)
	assert.Equal(t, "team", workspaces[0].Type)
}

func TestWorkspacesClient_Get(t *testing.T) {
	t.Parallel()
	RunGetTests(t, []TestGetOperation[postman.Workspace]{
		{
			Name:         "successful get",
			UID:          "ws-1",
			ExpectedPath: "/workspaces/ws-1",
			StatusCode:   http.StatusOK,
			Response: map[string]interface{}{
				"workspace": map[string]string{"id": "ws-1", "name": "Team Workspace"},
			},
		},
		{
			Name:         "workspace not found",
			UID:          "missing",
			ExpectedPath: "/workspaces/missing",
			StatusCode:   http.StatusNotFound,
			WantErr:      true,
			ErrMessage:   "getting workspace",
		},
	}, func(client *Client) func(context.Context, string) (*postman.Workspace, error) {
		return client.Workspaces().Get
	})
}
