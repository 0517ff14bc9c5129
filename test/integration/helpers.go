//go:build integration

package integration

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/postlane-io/postman-client/pkg/postman"
	"github.com/postlane-io/postman-client/pkg/postmanclient"
)

// TestConfig holds configuration for integration tests
type TestConfig struct {
	APIKey      string
	WorkspaceID string
	Verbose     bool
}

// LoadTestConfig loads configuration from environment variables
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		APIKey:      os.Getenv("POSTMAN_API_KEY"),
		WorkspaceID: os.Getenv("POSTMAN_TEST_WORKSPACE_ID"),
		Verbose:     os.Getenv("POSTMAN_VERBOSE") == "true",
	}
}

// SkipIfMissingConfig skips the test when no API key is configured
func (c *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	if c.APIKey == "" {
		t.Skip("Skipping integration test: POSTMAN_API_KEY not set")
	}
}

// NewClient creates a client for the configured account
func (c *TestConfig) NewClient(t *testing.T) postman.Client {
	t.Helper()

	client, err := postmanclient.New(context.Background(), &postman.Config{
		APIKey:      c.APIKey,
		WorkspaceID: c.WorkspaceID,
		Debug:       c.Verbose,
	})
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}

	return client
}

// GenerateTestName produces a unique name so parallel runs do not collide
func GenerateTestName(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}
