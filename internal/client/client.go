// Package client implements the postman.Client interface on top of the
// internal HTTP layer.
package client

import (
	"context"

	"github.com/postlane-io/postman-client/internal/constants"
	"github.com/postlane-io/postman-client/internal/http"
	"github.com/postlane-io/postman-client/pkg/postman"
)

// Client implements the postman.Client interface.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	workspaceID string
	logger      postman.Logger

	// Resource clients
	collections  postman.CollectionsClient
	environments postman.EnvironmentsClient
	monitors     postman.MonitorsClient
	mocks        postman.MocksClient
	apis         postman.APIsClient
	workspaces   postman.WorkspacesClient
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *postman.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.RateLimitDelay > 0 {
		httpOpts = append(httpOpts, http.WithRateLimitDelay(config.RateLimitDelay))
	}

	if config.RetryMax > 0 || config.RetryWaitMin > 0 || config.RetryWaitMax > 0 {
		httpOpts = append(httpOpts, retryOption(config))
	}

	return httpOpts
}

func retryOption(config *postman.Config) http.Option {
	retryMax := config.RetryMax
	retryWaitMin := config.RetryWaitMin
	retryWaitMax := config.RetryWaitMax

	if retryWaitMin <= 0 {
		retryWaitMin = constants.DefaultRetryWaitMin
	}

	if retryWaitMax <= 0 {
		retryWaitMax = constants.DefaultRetryWaitMax
	}

	return http.WithRetryConfig(retryMax, retryWaitMin, retryWaitMax)
}

// New creates a new Postman API client. The context is accepted for symmetry
// with future eager validation; construction itself performs no I/O.
func New(_ context.Context, config *postman.Config) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = postman.DefaultBaseURL
	}

	httpOpts := createHTTPClientOptions(config)
	httpClient := http.NewClient(baseURL, config.APIKey, httpOpts...)

	client := &Client{
		httpClient:  httpClient,
		baseURL:     baseURL,
		workspaceID: config.WorkspaceID,
		logger:      config.Logger,
	}

	client.initializeResourceClients()

	return client, nil
}

// APIVersion implements postman.Client.APIVersion.
func (c *Client) APIVersion() string {
	return c.httpClient.APIVersion()
}

// workspace resolves a per-call workspace against the configured default.
func (c *Client) workspace(workspaceID string) string {
	if workspaceID != "" {
		return workspaceID
	}

	return c.workspaceID
}

// Resource client accessors

// Collections implements postman.Client.Collections.
func (c *Client) Collections() postman.CollectionsClient {
	return c.collections
}

// Environments implements postman.Client.Environments.
func (c *Client) Environments() postman.EnvironmentsClient {
	return c.environments
}

// Monitors implements postman.Client.Monitors.
func (c *Client) Monitors() postman.MonitorsClient {
	return c.monitors
}

// Mocks implements postman.Client.Mocks.
func (c *Client) Mocks() postman.MocksClient {
	return c.mocks
}

// APIs implements postman.Client.APIs.
func (c *Client) APIs() postman.APIsClient {
	return c.apis
}

// Workspaces implements postman.Client.Workspaces.
func (c *Client) Workspaces() postman.WorkspacesClient {
	return c.workspaces
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.collections = NewCollectionsClient(c.httpClient, c.workspace)
	c.environments = NewEnvironmentsClient(c.httpClient, c.workspace)
	c.monitors = NewMonitorsClient(c.httpClient, c.workspace)
	c.mocks = NewMocksClient(c.httpClient, c.workspace)
	c.apis = NewAPIsClient(c.httpClient, c.workspace)
	c.workspaces = NewWorkspacesClient(c.httpClient)
}
