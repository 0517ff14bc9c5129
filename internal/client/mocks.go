package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/postlane-io/postman-client/internal/http"
	"github.com/postlane-io/postman-client/pkg/postman"
)

// MocksClient implements postman.MocksClient.
type MocksClient struct {
	httpClient *http.Client
	workspace  func(string) string
}

// NewMocksClient creates a new mocks client.
func NewMocksClient(httpClient *http.Client, workspace func(string) string) *MocksClient {
	return &MocksClient{
		httpClient: httpClient,
		workspace:  workspace,
	}
}

// List implements postman.MocksClient.List.
func (c *MocksClient) List(ctx context.Context, workspaceID string) ([]postman.Mock, error) {
	resp, err := c.httpClient.Get(ctx, "/mocks", workspaceQuery(c.workspace(workspaceID)))
	if err != nil {
		return nil, fmt.Errorf("listing mocks: %w", err)
	}

	var result struct {
		Mocks []postman.Mock `json:"mocks"`
	}

	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing mocks list response: %w", err)
	}

	return result.Mocks, nil
}

// Get implements postman.MocksClient.Get.
func (c *MocksClient) Get(ctx context.Context, id string) (*postman.Mock, error) {
	path := fmt.Sprintf("/mocks/%s", id)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting mock: %w", err)
	}

	var result struct {
		Mock postman.Mock `json:"mock"`
	}

	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing mock response: %w", err)
	}

	return &result.Mock, nil
}

// Create implements postman.MocksClient.Create.
func (c *MocksClient) Create(ctx context.Context, request *postman.MockCreateRequest) (*postman.Mock, error) {
	resp, err := c.httpClient.Post(ctx, "/mocks", map[string]interface{}{"mock": request})
	if err != nil {
		return nil, fmt.Errorf("creating mock: %w", err)
	}

	var result struct {
		Mock postman.Mock `json:"mock"`
	}

	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing mock response: %w", err)
	}

	return &result.Mock, nil
}

// Update implements postman.MocksClient.Update.
func (c *MocksClient) Update(ctx context.Context, id string, request *postman.MockCreateRequest) (*postman.Mock, error) {
	path := fmt.Sprintf("/mocks/%s", id)

	resp, err := c.httpClient.Put(ctx, path, map[string]interface{}{"mock": request})
	if err != nil {
		return nil, fmt.Errorf("updating mock: %w", err)
	}

	var result struct {
		Mock postman.Mock `json:"mock"`
	}

	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing mock response: %w", err)
	}

	return &result.Mock, nil
}

// Delete implements postman.MocksClient.Delete.
func (c *MocksClient) Delete(ctx context.Context, id string) error {
	path := fmt.Sprintf("/mocks/%s", id)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting mock: %w", err)
	}

	return nil
}
