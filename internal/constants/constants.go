package constants

import "time"

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second
)

// Retry behavior.
const (
	// DefaultRetryMax is the default number of retries after the initial
	// attempt.
	DefaultRetryMax = 3

	// DefaultRetryWaitMin is the base wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 30 * time.Second

	// DefaultRateLimitDelay is slept before retrying a rate-limited
	// request that carried no Retry-After header.
	DefaultRateLimitDelay = 60 * time.Second
)

// HTTP headers.
const (
	// APIKeyHeader carries the Postman API key on every request.
	APIKeyHeader = "X-API-Key"

	// APIVersionHeader advertises the serving API version when present.
	APIVersionHeader = "X-API-Version"

	// ContentTypeHeader names the request body media type.
	ContentTypeHeader = "Content-Type"

	// ContentTypeJSON is the media type for JSON request bodies.
	ContentTypeJSON = "application/json"
)

// Query parameters.
const (
	// WorkspaceParam scopes list and create operations to a workspace.
	WorkspaceParam = "workspace"
)

// Environment variable names read by the env-based constructors.
const (
	EnvAPIKey         = "POSTMAN_API_KEY"
	EnvWorkspaceID    = "POSTMAN_WORKSPACE_ID"
	EnvBaseURL        = "POSTMAN_BASE_URL"
	EnvTimeout        = "POSTMAN_TIMEOUT"
	EnvMaxRetries     = "POSTMAN_MAX_RETRIES"
	EnvRateLimitDelay = "POSTMAN_RATE_LIMIT_DELAY"
)

// Pagination and display limits.
const (
	// DefaultRunLimit is the default number of monitor runs returned.
	DefaultRunLimit = 10

	// StringTruncationLength is the default length for truncating strings
	// in table output.
	StringTruncationLength = 60
)

// UI and display constants.
const (
	// NotAvailable is used when information is not available.
	NotAvailable = "N/A"

	// MaskedSecret is used to hide sensitive values in output.
	MaskedSecret = "***"
)

// Format constants.
const (
	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"

	// FormatTable for tabular output format.
	FormatTable = "table"
)

// Mathematical and calculation constants.
const (
	// JSONIndentSize is the number of spaces for JSON indentation.
	JSONIndentSize = 2
)
