package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/postlane-io/postman-client/internal/http"
	"github.com/postlane-io/postman-client/pkg/postman"
)

// WorkspacesClient implements postman.WorkspacesClient.
type WorkspacesClient struct {
	httpClient *http.Client
}

// NewWorkspacesClient creates a new workspaces client.
func NewWorkspacesClient(httpClient *http.Client) *WorkspacesClient {
	return &WorkspacesClient{
		httpClient: httpClient,
	}
}

// List implements postman.WorkspacesClient.List.
func (c *WorkspacesClient) List(ctx context.Context) ([]postman.Workspace, error) {
	resp, err := c.httpClient.Get(ctx, "/workspaces", nil)
	if err != nil {
		return nil, fmt.Errorf("listing workspaces: %w", err)
	}

	var result struct {
		Workspaces []postman.Workspace `json:"workspaces"`
	}

	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing workspaces list response: %w", err)
	}

	return result.Workspaces, nil
}

// Get implements postman.WorkspacesClient.Get.
func (c *WorkspacesClient) Get(ctx context.Context, id string) (*postman.Workspace, error) {
	path := fmt.Sprintf("/workspaces/%s", id)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting workspace: %w", err)
	}

	var result struct {
		Workspace postman.Workspace `json:"workspace"`
	}

	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing workspace response: %w", err)
	}

	return &result.Workspace, nil
}
