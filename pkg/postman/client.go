package postman

import (
	"context"
	"strings"
	"time"
)

// Client is the top-level interface for talking to the Postman API.
type Client interface {
	Collections() CollectionsClient
	Environments() EnvironmentsClient
	Monitors() MonitorsClient
	Mocks() MocksClient
	APIs() APIsClient
	Workspaces() WorkspacesClient

	// APIVersion returns the detected API version label, or the empty
	// string before the first completed request.
	APIVersion() string
}

// CollectionsClient manages collections, forks, and pull requests.
type CollectionsClient interface {
	List(ctx context.Context, workspaceID string) ([]Collection, error)
	Get(ctx context.Context, uid string) (*CollectionDetail, error)
	Create(ctx context.Context, workspaceID string, collection *CollectionDetail) (*Collection, error)
	Update(ctx context.Context, uid string, collection *CollectionDetail) (*Collection, error)
	Delete(ctx context.Context, uid string) error

	// Fork creates an independent copy with retained lineage. Requires a
	// v10+ API.
	Fork(ctx context.Context, uid, label, workspaceID string) (*Collection, error)
	// Duplicate creates a standalone copy without fork lineage.
	Duplicate(ctx context.Context, uid, name, workspaceID string) (*Collection, error)

	CreatePullRequest(ctx context.Context, uid string, request *PullRequestCreateRequest) (*PullRequest, error)
	ListPullRequests(ctx context.Context, uid, status string) ([]PullRequest, error)
	MergePullRequest(ctx context.Context, uid, pullRequestID string) (*PullRequest, error)
}

// EnvironmentsClient manages environments and their variables.
type EnvironmentsClient interface {
	List(ctx context.Context, workspaceID string) ([]Environment, error)
	Get(ctx context.Context, uid string) (*Environment, error)
	// Create builds an environment from name/value pairs, detecting secret
	// variables from their names.
	Create(ctx context.Context, workspaceID, name string, values map[string]string) (*Environment, error)
	// CreateWithValues uses explicitly typed variables; variables without a
	// type go through secret detection.
	CreateWithValues(ctx context.Context, workspaceID, name string, values []EnvironmentValue) (*Environment, error)
	// Update applies a partial update: a non-empty name renames, values
	// merge into the existing variable set. Existing secret types are
	// preserved.
	Update(ctx context.Context, uid, name string, values map[string]string) (*Environment, error)
	Delete(ctx context.Context, uid string) error
	// Duplicate copies an environment including all variables, preserving
	// secret types.
	Duplicate(ctx context.Context, uid, name, workspaceID string) (*Environment, error)
}

// MonitorsClient manages monitors and their run history.
type MonitorsClient interface {
	List(ctx context.Context, workspaceID string) ([]Monitor, error)
	Get(ctx context.Context, id string) (*Monitor, error)
	Create(ctx context.Context, request *MonitorCreateRequest) (*Monitor, error)
	Update(ctx context.Context, id string, request *MonitorCreateRequest) (*Monitor, error)
	Delete(ctx context.Context, id string) error
	Runs(ctx context.Context, id string, limit int) ([]MonitorRun, error)
}

// MocksClient manages mock servers.
type MocksClient interface {
	List(ctx context.Context, workspaceID string) ([]Mock, error)
	Get(ctx context.Context, id string) (*Mock, error)
	Create(ctx context.Context, request *MockCreateRequest) (*Mock, error)
	Update(ctx context.Context, id string, request *MockCreateRequest) (*Mock, error)
	Delete(ctx context.Context, id string) error
}

// APIsClient manages API definitions, their versions, and schemas.
type APIsClient interface {
	List(ctx context.Context, workspaceID string) ([]API, error)
	Get(ctx context.Context, id string) (*API, error)
	Create(ctx context.Context, workspaceID string, request *APICreateRequest) (*API, error)
	Update(ctx context.Context, id string, request *APICreateRequest) (*API, error)
	Delete(ctx context.Context, id string) error
	Versions(ctx context.Context, id string) ([]APIVersion, error)
	Version(ctx context.Context, id, versionID string) (*APIVersion, error)
	Schemas(ctx context.Context, id, versionID string) ([]APISchema, error)
}

// WorkspacesClient reads workspaces.
type WorkspacesClient interface {
	List(ctx context.Context) ([]Workspace, error)
	Get(ctx context.Context, id string) (*Workspace, error)
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// DefaultBaseURL is the production Postman API host.
const DefaultBaseURL = "https://api.getpostman.com"

// Config represents client configuration.
//
// A Config is validated once at client construction and treated as immutable
// afterwards. Sharing a client across goroutines is safe only because no
// per-call state outlives a call; the detected API version label is
// write-once under an internal guard.
type Config struct {
	// APIKey authenticates every request. Required; must start with
	// APIKeyPrefix. Validation fails before any network activity.
	APIKey string
	// BaseURL overrides the API host, mainly for tests. Defaults to
	// DefaultBaseURL. A trailing slash is trimmed and https:// assumed
	// when no scheme is present.
	BaseURL string
	// WorkspaceID scopes list/create operations when the per-call
	// workspace argument is empty.
	WorkspaceID string

	// HTTPTimeout bounds each HTTP round trip. Defaults to 30s. A request
	// exceeding it fails with a Timeout error.
	HTTPTimeout time.Duration
	// RetryMax is the number of retries after the initial attempt for
	// transient failures (connection errors, timeouts, 429, 5xx).
	// Defaults to 3.
	RetryMax int
	// RetryWaitMin is the base backoff between retries. Defaults to 1s.
	RetryWaitMin time.Duration
	// RetryWaitMax caps the backoff. Defaults to 30s.
	RetryWaitMax time.Duration
	// RateLimitDelay is slept before retrying a rate-limited request when
	// the response carried no Retry-After header. Defaults to 60s.
	RateLimitDelay time.Duration

	// Debug enables verbose HTTP request/response logging when a Logger
	// is provided.
	Debug bool
	// Logger is the optional structured logger used by the HTTP layer.
	Logger Logger
	// UserAgent overrides the default User-Agent header.
	UserAgent string
}

// Validate checks required configuration. It is called by the client
// constructors; a missing or malformed API key is fatal before any request
// is attempted.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return ErrAPIKeyMissing
	}

	if !strings.HasPrefix(c.APIKey, APIKeyPrefix) {
		return ErrAPIKeyFormat
	}

	return nil
}
