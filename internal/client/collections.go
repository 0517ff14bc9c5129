package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/postlane-io/postman-client/internal/constants"
	"github.com/postlane-io/postman-client/internal/http"
	"github.com/postlane-io/postman-client/pkg/postman"
)

// CollectionsClient implements postman.CollectionsClient.
type CollectionsClient struct {
	httpClient *http.Client
	workspace  func(string) string
}

// NewCollectionsClient creates a new collections client.
func NewCollectionsClient(httpClient *http.Client, workspace func(string) string) *CollectionsClient {
	return &CollectionsClient{
		httpClient: httpClient,
		workspace:  workspace,
	}
}

// workspaceQuery builds the ?workspace= query for the resolved workspace,
// or nil when no workspace is configured.
func workspaceQuery(workspaceID string) url.Values {
	if workspaceID == "" {
		return nil
	}

	return url.Values{constants.WorkspaceParam: []string{workspaceID}}
}

// List implements postman.CollectionsClient.List.
func (c *CollectionsClient) List(ctx context.Context, workspaceID string) ([]postman.Collection, error) {
	resp, err := c.httpClient.Get(ctx, "/collections", workspaceQuery(c.workspace(workspaceID)))
	if err != nil {
		return nil, fmt.Errorf("listing collections: %w", err)
	}

	var result struct {
		Collections []postman.Collection `json:"collections"`
	}

	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing collections list response: %w", err)
	}

	return result.Collections, nil
}

// Get implements postman.CollectionsClient.Get.
func (c *CollectionsClient) Get(ctx context.Context, uid string) (*postman.CollectionDetail, error) {
	path := fmt.Sprintf("/collections/%s", uid)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting collection: %w", err)
	}

	var result struct {
		Collection postman.CollectionDetail `json:"collection"`
	}

	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing collection response: %w", err)
	}

	return &result.Collection, nil
}

// Create implements postman.CollectionsClient.Create.
func (c *CollectionsClient) Create(ctx context.Context, workspaceID string, collection *postman.CollectionDetail) (*postman.Collection, error) {
	path := "/collections"
	if workspace := c.workspace(workspaceID); workspace != "" {
		path += "?" + workspaceQuery(workspace).Encode()
	}

	resp, err := c.httpClient.Post(ctx, path, map[string]interface{}{"collection": collection})
	if err != nil {
		return nil, fmt.Errorf("creating collection: %w", err)
	}

	var result struct {
		Collection postman.Collection `json:"collection"`
	}

	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing collection response: %w", err)
	}

	return &result.Collection, nil
}

// Update implements postman.CollectionsClient.Update.
func (c *CollectionsClient) Update(ctx context.Context, uid string, collection *postman.CollectionDetail) (*postman.Collection, error) {
	path := fmt.Sprintf("/collections/%s", uid)

	resp, err := c.httpClient.Put(ctx, path, map[string]interface{}{"collection": collection})
	if err != nil {
		return nil, fmt.Errorf("updating collection: %w", err)
	}

	var result struct {
		Collection postman.Collection `json:"collection"`
	}

	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing collection response: %w", err)
	}

	return &result.Collection, nil
}

// Delete implements postman.CollectionsClient.Delete.
func (c *CollectionsClient) Delete(ctx context.Context, uid string) error {
	path := fmt.Sprintf("/collections/%s", uid)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting collection: %w", err)
	}

	return nil
}

// Fork implements postman.CollectionsClient.Fork.
func (c *CollectionsClient) Fork(ctx context.Context, uid, label, workspaceID string) (*postman.Collection, error) {
	path := fmt.Sprintf("/collections/%s/forks", uid)
	payload := map[string]interface{}{}

	if label != "" {
		payload["label"] = label
	}

	if workspace := c.workspace(workspaceID); workspace != "" {
		payload[constants.WorkspaceParam] = workspace
	}

	resp, err := c.httpClient.Post(ctx, path, payload)
	if err != nil {
		return nil, fmt.Errorf("forking collection: %w", err)
	}

	var result struct {
		Fork postman.Collection `json:"fork"`
	}

	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing fork response: %w", err)
	}

	return &result.Fork, nil
}

// Duplicate implements postman.CollectionsClient.Duplicate. The copy is
// standalone: it resets collection identity and carries no fork lineage.
func (c *CollectionsClient) Duplicate(ctx context.Context, uid, name, workspaceID string) (*postman.Collection, error) {
	original, err := c.Get(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("duplicating collection: %w", err)
	}

	duplicate := *original
	duplicate.Info.UID = ""
	duplicate.Info.PostmanID = ""
	duplicate.Fork = nil
	duplicate.Meta = nil

	if name != "" {
		duplicate.Info.Name = name
	} else {
		originalName := original.Info.Name
		if originalName == "" {
			originalName = "Collection"
		}

		duplicate.Info.Name = originalName + " Copy"
	}

	created, err := c.Create(ctx, workspaceID, &duplicate)
	if err != nil {
		return nil, fmt.Errorf("duplicating collection: %w", err)
	}

	return created, nil
}

// CreatePullRequest implements postman.CollectionsClient.CreatePullRequest.
func (c *CollectionsClient) CreatePullRequest(ctx context.Context, uid string, request *postman.PullRequestCreateRequest) (*postman.PullRequest, error) {
	path := fmt.Sprintf("/collections/%s/pull-requests", uid)

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("creating pull request: %w", err)
	}

	var result struct {
		PullRequest postman.PullRequest `json:"pull_request"`
	}

	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing pull request response: %w", err)
	}

	return &result.PullRequest, nil
}

// ListPullRequests implements postman.CollectionsClient.ListPullRequests.
func (c *CollectionsClient) ListPullRequests(ctx context.Context, uid, status string) ([]postman.PullRequest, error) {
	path := fmt.Sprintf("/collections/%s/pull-requests", uid)

	var query url.Values
	if status != "" {
		query = url.Values{"status": []string{status}}
	}

	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("listing pull requests: %w", err)
	}

	var result struct {
		PullRequests []postman.PullRequest `json:"pull_requests"`
	}

	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing pull requests response: %w", err)
	}

	return result.PullRequests, nil
}

// MergePullRequest implements postman.CollectionsClient.MergePullRequest.
func (c *CollectionsClient) MergePullRequest(ctx context.Context, uid, pullRequestID string) (*postman.PullRequest, error) {
	path := fmt.Sprintf("/collections/%s/pull-requests/%s/merge", uid, pullRequestID)

	resp, err := c.httpClient.Post(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("merging pull request: %w", err)
	}

	var result struct {
		PullRequest postman.PullRequest `json:"pull_request"`
	}

	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing pull request response: %w", err)
	}

	return &result.PullRequest, nil
}
