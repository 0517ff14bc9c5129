package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/postlane-io/postman-client/internal/constants"
	"github.com/postlane-io/postman-client/internal/http"
	"github.com/postlane-io/postman-client/pkg/postman"
)

// MonitorsClient implements postman.MonitorsClient.
type MonitorsClient struct {
	httpClient *http.Client
	workspace  func(string) string
}

// NewMonitorsClient creates a new monitors client.
func NewMonitorsClient(httpClient *http.Client, workspace func(string) string) *MonitorsClient {
	return &MonitorsClient{
		httpClient: httpClient,
		workspace:  workspace,
	}
}

// List implements postman.MonitorsClient.List.
func (c *MonitorsClient) List(ctx context.Context, workspaceID string) ([]postman.Monitor, error) {
	resp, err := c.httpClient.Get(ctx, "/monitors", workspaceQuery(c.workspace(workspaceID)))
	if err != nil {
		return nil, fmt.Errorf("listing monitors: %w", err)
	}

	var result struct {
		Monitors []postman.Monitor `json:"monitors"`
	}

	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing monitors list response: %w", err)
	}

	return result.Monitors, nil
}

// Get implements postman.MonitorsClient.Get.
func (c *MonitorsClient) Get(ctx context.Context, id string) (*postman.Monitor, error) {
	path := fmt.Sprintf("/monitors/%s", id)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting monitor: %w", err)
	}

	var result struct {
		Monitor postman.Monitor `json:"monitor"`
	}

	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing monitor response: %w", err)
	}

	return &result.Monitor, nil
}

// Create implements postman.MonitorsClient.Create.
func (c *MonitorsClient) Create(ctx context.Context, request *postman.MonitorCreateRequest) (*postman.Monitor, error) {
	resp, err := c.httpClient.Post(ctx, "/monitors", map[string]interface{}{"monitor": request})
	if err != nil {
		return nil, fmt.Errorf("creating monitor: %w", err)
	}

	var result struct {
		Monitor postman.Monitor `json:"monitor"`
	}

	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing monitor response: %w", err)
	}

	return &result.Monitor, nil
}

// Update implements postman.MonitorsClient.Update.
func (c *MonitorsClient) Update(ctx context.Context, id string, request *postman.MonitorCreateRequest) (*postman.Monitor, error) {
	path := fmt.Sprintf("/monitors/%s", id)

	resp, err := c.httpClient.Put(ctx, path, map[string]interface{}{"monitor": request})
	if err != nil {
		return nil, fmt.Errorf("updating monitor: %w", err)
	}

	var result struct {
		Monitor postman.Monitor `json:"monitor"`
	}

	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing monitor response: %w", err)
	}

	return &result.Monitor, nil
}

// Delete implements postman.MonitorsClient.Delete.
func (c *MonitorsClient) Delete(ctx context.Context, id string) error {
	path := fmt.Sprintf("/monitors/%s", id)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting monitor: %w", err)
	}

	return nil
}

// Runs implements postman.MonitorsClient.Runs. A non-positive limit falls
// back to the default.
func (c *MonitorsClient) Runs(ctx context.Context, id string, limit int) ([]postman.MonitorRun, error) {
	if limit <= 0 {
		limit = constants.DefaultRunLimit
	}

	path := fmt.Sprintf("/monitors/%s/runs", id)
	query := url.Values{"limit": []string{strconv.Itoa(limit)}}

	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("listing monitor runs: %w", err)
	}

	var result struct {
		Runs []postman.MonitorRun `json:"runs"`
	}

	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing monitor runs response: %w", err)
	}

	return result.Runs, nil
}
