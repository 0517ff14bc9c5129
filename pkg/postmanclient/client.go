// Package postmanclient provides the main entry point for creating Postman
// API clients.
package postmanclient

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/postlane-io/postman-client/internal/client"
	"github.com/postlane-io/postman-client/internal/constants"
	"github.com/postlane-io/postman-client/pkg/postman"
)

// New creates a new Postman API client from the given configuration.
func New(ctx context.Context, config *postman.Config) (postman.Client, error) {
	if config == nil {
		return nil, postman.ErrConfigRequired
	}

	// Normalize base URL
	if config.BaseURL != "" {
		baseURL := strings.TrimSuffix(config.BaseURL, "/")
		if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
			baseURL = "https://" + baseURL
		}

		config.BaseURL = baseURL
	}

	// Use the internal client implementation
	apiClient, err := client.New(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return apiClient, nil
}

// NewWithAPIKey creates a new client with just an API key.
func NewWithAPIKey(ctx context.Context, apiKey string) (postman.Client, error) {
	return New(ctx, &postman.Config{
		APIKey: apiKey,
	})
}

// NewWithWorkspace creates a new client scoped to a default workspace.
func NewWithWorkspace(ctx context.Context, apiKey, workspaceID string) (postman.Client, error) {
	return New(ctx, &postman.Config{
		APIKey:      apiKey,
		WorkspaceID: workspaceID,
	})
}

// NewFromEnv creates a new client from environment variables. A .env file in
// the working directory is loaded first when present; real environment
// variables take precedence over it.
//
// Recognized variables: POSTMAN_API_KEY (required), POSTMAN_WORKSPACE_ID,
// POSTMAN_BASE_URL, POSTMAN_TIMEOUT (seconds), POSTMAN_MAX_RETRIES,
// POSTMAN_RATE_LIMIT_DELAY (seconds).
func NewFromEnv(ctx context.Context) (postman.Client, error) {
	// Missing .env is not an error
	_ = godotenv.Load()

	config := &postman.Config{
		APIKey:      os.Getenv(constants.EnvAPIKey),
		WorkspaceID: os.Getenv(constants.EnvWorkspaceID),
		BaseURL:     os.Getenv(constants.EnvBaseURL),
	}

	if timeout, err := envSeconds(constants.EnvTimeout); err != nil {
		return nil, err
	} else if timeout > 0 {
		config.HTTPTimeout = timeout
	}

	if raw := os.Getenv(constants.EnvMaxRetries); raw != "" {
		retries, err := strconv.Atoi(raw)
		if err != nil || retries < 0 {
			return nil, fmt.Errorf("parsing %s %q: %w", constants.EnvMaxRetries, raw, errInvalidEnvValue)
		}

		config.RetryMax = retries
	}

	if delay, err := envSeconds(constants.EnvRateLimitDelay); err != nil {
		return nil, err
	} else if delay > 0 {
		config.RateLimitDelay = delay
	}

	return New(ctx, config)
}

var errInvalidEnvValue = errors.New("invalid value")

func envSeconds(name string) (time.Duration, error) {
	raw := os.Getenv(name)
	if raw == "" {
		return 0, nil
	}

	seconds, err := strconv.Atoi(raw)
	if err != nil || seconds <= 0 {
		return 0, fmt.Errorf("parsing %s %q: %w", name, raw, errInvalidEnvValue)
	}

	return time.Duration(seconds) * time.Second, nil
}
