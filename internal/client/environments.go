package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/postlane-io/postman-client/internal/http"
	"github.com/postlane-io/postman-client/pkg/postman"
)

// EnvironmentsClient implements postman.EnvironmentsClient.
type EnvironmentsClient struct {
	httpClient *http.Client
	workspace  func(string) string
}

// NewEnvironmentsClient creates a new environments client.
func NewEnvironmentsClient(httpClient *http.Client, workspace func(string) string) *EnvironmentsClient {
	return &EnvironmentsClient{
		httpClient: httpClient,
		workspace:  workspace,
	}
}

// List implements postman.EnvironmentsClient.List.
func (c *EnvironmentsClient) List(ctx context.Context, workspaceID string) ([]postman.Environment, error) {
	resp, err := c.httpClient.Get(ctx, "/environments", workspaceQuery(c.workspace(workspaceID)))
	if err != nil {
		return nil, fmt.Errorf("listing environments: %w", err)
	}

	var result struct {
		Environments []postman.Environment `json:"environments"`
	}

	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing environments list response: %w", err)
	}

	return result.Environments, nil
}

// Get implements postman.EnvironmentsClient.Get.
func (c *EnvironmentsClient) Get(ctx context.Context, uid string) (*postman.Environment, error) {
	path := fmt.Sprintf("/environments/%s", uid)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting environment: %w", err)
	}

	var result struct {
		Environment postman.Environment `json:"environment"`
	}

	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing environment response: %w", err)
	}

	return &result.Environment, nil
}

// Create implements postman.EnvironmentsClient.Create. Variable types are
// detected from the variable names.
func (c *EnvironmentsClient) Create(ctx context.Context, workspaceID, name string, values map[string]string) (*postman.Environment, error) {
	variables := make([]postman.EnvironmentValue, 0, len(values))
	for key, value := range values {
		variables = append(variables, postman.EnvironmentValue{
			Key:     key,
			Value:   value,
			Type:    postman.DetectVariableType(key),
			Enabled: true,
		})
	}

	return c.create(ctx, workspaceID, name, variables)
}

// CreateWithValues implements postman.EnvironmentsClient.CreateWithValues.
// Variables without an explicit type go through secret detection.
func (c *EnvironmentsClient) CreateWithValues(ctx context.Context, workspaceID, name string, values []postman.EnvironmentValue) (*postman.Environment, error) {
	variables := make([]postman.EnvironmentValue, 0, len(values))

	for _, value := range values {
		if value.Type == "" {
			value.Type = postman.DetectVariableType(value.Key)
		}

		variables = append(variables, value)
	}

	return c.create(ctx, workspaceID, name, variables)
}

func (c *EnvironmentsClient) create(ctx context.Context, workspaceID, name string, variables []postman.EnvironmentValue) (*postman.Environment, error) {
	path := "/environments"
	if workspace := c.workspace(workspaceID); workspace != "" {
		path += "?" + workspaceQuery(workspace).Encode()
	}

	payload := map[string]interface{}{
		"environment": map[string]interface{}{
			"name":   name,
			"values": variables,
		},
	}

	resp, err := c.httpClient.Post(ctx, path, payload)
	if err != nil {
		return nil, fmt.Errorf("creating environment: %w", err)
	}

	var result struct {
		Environment postman.Environment `json:"environment"`
	}

	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing environment response: %w", err)
	}

	return &result.Environment, nil
}

// Update implements postman.EnvironmentsClient.Update. It reads the current
// environment and merges the given values into its variable set: existing
// variables keep their position and type (a variable already marked secret
// stays secret), new variables are appended with detected types.
func (c *EnvironmentsClient) Update(ctx context.Context, uid, name string, values map[string]string) (*postman.Environment, error) {
	current, err := c.Get(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("updating environment: %w", err)
	}

	if name != "" {
		current.Name = name
	}

	if len(values) > 0 {
		current.Values = mergeEnvironmentValues(current.Values, values)
	}

	path := fmt.Sprintf("/environments/%s", uid)
	payload := map[string]interface{}{
		"environment": map[string]interface{}{
			"name":   current.Name,
			"values": current.Values,
		},
	}

	resp, err := c.httpClient.Put(ctx, path, payload)
	if err != nil {
		return nil, fmt.Errorf("updating environment: %w", err)
	}

	var result struct {
		Environment postman.Environment `json:"environment"`
	}

	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing environment response: %w", err)
	}

	return &result.Environment, nil
}

func mergeEnvironmentValues(current []postman.EnvironmentValue, updates map[string]string) []postman.EnvironmentValue {
	merged := make([]postman.EnvironmentValue, len(current))
	copy(merged, current)

	index := make(map[string]int, len(merged))
	for i, variable := range merged {
		index[variable.Key] = i
	}

	for key, value := range updates {
		if i, ok := index[key]; ok {
			merged[i].Value = value

			if merged[i].Type != postman.VariableTypeSecret {
				merged[i].Type = postman.DetectVariableType(key)
			}

			continue
		}

		merged = append(merged, postman.EnvironmentValue{
			Key:     key,
			Value:   value,
			Type:    postman.DetectVariableType(key),
			Enabled: true,
		})
	}

	return merged
}

// Delete implements postman.EnvironmentsClient.Delete.
func (c *EnvironmentsClient) Delete(ctx context.Context, uid string) error {
	path := fmt.Sprintf("/environments/%s", uid)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting environment: %w", err)
	}

	return nil
}

// Duplicate implements postman.EnvironmentsClient.Duplicate. All variables
// are copied with their types intact, so secrets stay secrets.
func (c *EnvironmentsClient) Duplicate(ctx context.Context, uid, name, workspaceID string) (*postman.Environment, error) {
	original, err := c.Get(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("duplicating environment: %w", err)
	}

	if name == "" {
		name = original.Name + " Copy"
	}

	created, err := c.CreateWithValues(ctx, workspaceID, name, original.Values)
	if err != nil {
		return nil, fmt.Errorf("duplicating environment: %w", err)
	}

	return created, nil
}
