package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/postlane-io/postman-client/internal/http"
	"github.com/postlane-io/postman-client/pkg/postman"
)

// APIsClient implements postman.APIsClient.
type APIsClient struct {
	httpClient *http.Client
	workspace  func(string) string
}

// NewAPIsClient creates a new APIs client.
func NewAPIsClient(httpClient *http.Client, workspace func(string) string) *APIsClient {
	return &APIsClient{
		httpClient: httpClient,
		workspace:  workspace,
	}
}

// List implements postman.APIsClient.List.
func (c *APIsClient) List(ctx context.Context, workspaceID string) ([]postman.API, error) {
	resp, err := c.httpClient.Get(ctx, "/apis", workspaceQuery(c.workspace(workspaceID)))
	if err != nil {
		return nil, fmt.Errorf("listing APIs: %w", err)
	}

	var result struct {
		APIs []postman.API `json:"apis"`
	}

	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing APIs list response: %w", err)
	}

	return result.APIs, nil
}

// Get implements postman.APIsClient.Get.
func (c *APIsClient) Get(ctx context.Context, id string) (*postman.API, error) {
	path := fmt.Sprintf("/apis/%s", id)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting API: %w", err)
	}

	var result struct {
		API postman.API `json:"api"`
	}

	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing API response: %w", err)
	}

	return &result.API, nil
}

// Create implements postman.APIsClient.Create.
func (c *APIsClient) Create(ctx context.Context, workspaceID string, request *postman.APICreateRequest) (*postman.API, error) {
	path := "/apis"
	if workspace := c.workspace(workspaceID); workspace != "" {
		path += "?" + workspaceQuery(workspace).Encode()
	}

	resp, err := c.httpClient.Post(ctx, path, map[string]interface{}{"api": request})
	if err != nil {
		return nil, fmt.Errorf("creating API: %w", err)
	}

	var result struct {
		API postman.API `json:"api"`
	}

	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing API response: %w", err)
	}

	return &result.API, nil
}

// Update implements postman.APIsClient.Update.
func (c *APIsClient) Update(ctx context.Context, id string, request *postman.APICreateRequest) (*postman.API, error) {
	path := fmt.Sprintf("/apis/%s", id)

	resp, err := c.httpClient.Put(ctx, path, map[string]interface{}{"api": request})
	if err != nil {
		return nil, fmt.Errorf("updating API: %w", err)
	}

	var result struct {
		API postman.API `json:"api"`
	}

	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing API response: %w", err)
	}

	return &result.API, nil
}

// Delete implements postman.APIsClient.Delete.
func (c *APIsClient) Delete(ctx context.Context, id string) error {
	path := fmt.Sprintf("/apis/%s", id)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting API: %w", err)
	}

	return nil
}

// Versions implements postman.APIsClient.Versions.
func (c *APIsClient) Versions(ctx context.Context, id string) ([]postman.APIVersion, error) {
	path := fmt.Sprintf("/apis/%s/versions", id)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing API versions: %w", err)
	}

	var result struct {
		Versions []postman.APIVersion `json:"versions"`
	}

	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing API versions response: %w", err)
	}

	return result.Versions, nil
}

// Version implements postman.APIsClient.Version.
func (c *APIsClient) Version(ctx context.Context, id, versionID string) (*postman.APIVersion, error) {
	path := fmt.Sprintf("/apis/%s/versions/%s", id, versionID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting API version: %w", err)
	}

	var result struct {
		Version postman.APIVersion `json:"version"`
	}

	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing API version response: %w", err)
	}

	return &result.Version, nil
}

// Schemas implements postman.APIsClient.Schemas.
func (c *APIsClient) Schemas(ctx context.Context, id, versionID string) ([]postman.APISchema, error) {
	path := fmt.Sprintf("/apis/%s/versions/%s/schemas", id, versionID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing API schemas: %w", err)
	}

	var result struct {
		Schemas []postman.APISchema `json:"schemas"`
	}

	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing API schemas response: %w", err)
	}

	return result.Schemas, nil
}
