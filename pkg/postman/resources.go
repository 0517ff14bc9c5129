package postman

import (
	"encoding/json"
	"time"
)

// Collection represents a collection as returned by list endpoints.
type Collection struct {
	ID        string          `json:"id"                  yaml:"id"`
	UID       string          `json:"uid"                 yaml:"uid"`
	Name      string          `json:"name"                yaml:"name"`
	Owner     string          `json:"owner,omitempty"     yaml:"owner,omitempty"`
	CreatedAt time.Time       `json:"createdAt,omitempty" yaml:"created_at,omitempty"`
	UpdatedAt time.Time       `json:"updatedAt,omitempty" yaml:"updated_at,omitempty"`
	IsPublic  bool            `json:"isPublic,omitempty"  yaml:"is_public,omitempty"`
	Fork      *CollectionFork `json:"fork,omitempty"      yaml:"fork,omitempty"`
}

// CollectionFork carries the lineage metadata of a forked collection.
type CollectionFork struct {
	Label     string    `json:"label"               yaml:"label"`
	CreatedAt time.Time `json:"createdAt,omitempty" yaml:"created_at,omitempty"`
	From      string    `json:"from,omitempty"      yaml:"from,omitempty"`
}

// CollectionInfo is the metadata block of a collection document.
type CollectionInfo struct {
	PostmanID   string `json:"_postman_id,omitempty" yaml:"postman_id,omitempty"`
	UID         string `json:"uid,omitempty"         yaml:"uid,omitempty"`
	Name        string `json:"name"                  yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Schema      string `json:"schema,omitempty"      yaml:"schema,omitempty"`
}

// CollectionDetail is a full collection document. Items are kept as raw JSON:
// modeling the complete collection schema is out of scope for this client,
// and passing items through untouched keeps round trips lossless.
type CollectionDetail struct {
	Info      CollectionInfo    `json:"info"               yaml:"info"`
	Items     []json.RawMessage `json:"item,omitempty"     yaml:"item,omitempty"`
	Variables []Variable        `json:"variable,omitempty" yaml:"variable,omitempty"`
	Fork      *CollectionFork   `json:"fork,omitempty"     yaml:"fork,omitempty"`
	Meta      json.RawMessage   `json:"meta,omitempty"     yaml:"meta,omitempty"`
}

// Variable is a collection-level variable.
type Variable struct {
	Key     string `json:"key"               yaml:"key"`
	Value   string `json:"value"             yaml:"value"`
	Type    string `json:"type,omitempty"    yaml:"type,omitempty"`
	Enabled bool   `json:"enabled,omitempty" yaml:"enabled,omitempty"`
}

// PullRequest represents a pull request proposing to merge a fork back into
// its parent collection.
type PullRequest struct {
	ID          string    `json:"id"                    yaml:"id"`
	Title       string    `json:"title"                 yaml:"title"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	Status      string    `json:"status,omitempty"      yaml:"status,omitempty"`
	Source      string    `json:"source,omitempty"      yaml:"source,omitempty"`
	Destination string    `json:"destination,omitempty" yaml:"destination,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitempty"   yaml:"created_at,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty"   yaml:"updated_at,omitempty"`
}

// PullRequestCreateRequest describes a pull request to open against a
// collection. Source is the UID of the forked collection.
type PullRequestCreateRequest struct {
	Source      string   `json:"source"`
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	Reviewers   []string `json:"reviewers,omitempty"`
}

// EnvironmentValue is one variable inside an environment. Type is
// VariableTypeDefault or VariableTypeSecret.
type EnvironmentValue struct {
	Key     string `json:"key"            yaml:"key"`
	Value   string `json:"value"          yaml:"value"`
	Type    string `json:"type,omitempty" yaml:"type,omitempty"`
	Enabled bool   `json:"enabled"        yaml:"enabled"`
}

// Environment represents an environment. Values is only populated by get
// endpoints; list endpoints return the summary fields.
type Environment struct {
	ID        string             `json:"id"                  yaml:"id"`
	UID       string             `json:"uid,omitempty"       yaml:"uid,omitempty"`
	Name      string             `json:"name"                yaml:"name"`
	Owner     string             `json:"owner,omitempty"     yaml:"owner,omitempty"`
	IsPublic  bool               `json:"isPublic,omitempty"  yaml:"is_public,omitempty"`
	CreatedAt time.Time          `json:"createdAt,omitempty" yaml:"created_at,omitempty"`
	UpdatedAt time.Time          `json:"updatedAt,omitempty" yaml:"updated_at,omitempty"`
	Values    []EnvironmentValue `json:"values,omitempty"    yaml:"values,omitempty"`
}

// MonitorSchedule configures when a monitor runs.
type MonitorSchedule struct {
	Cron     string    `json:"cron"              yaml:"cron"`
	Timezone string    `json:"timezone"          yaml:"timezone"`
	NextRun  time.Time `json:"nextRun,omitempty" yaml:"next_run,omitempty"`
}

// Monitor represents a scheduled collection run.
type Monitor struct {
	ID             string           `json:"id"                       yaml:"id"`
	UID            string           `json:"uid,omitempty"            yaml:"uid,omitempty"`
	Name           string           `json:"name"                     yaml:"name"`
	Owner          string           `json:"owner,omitempty"          yaml:"owner,omitempty"`
	CollectionUID  string           `json:"collectionUid,omitempty"  yaml:"collection_uid,omitempty"`
	EnvironmentUID string           `json:"environmentUid,omitempty" yaml:"environment_uid,omitempty"`
	Schedule       *MonitorSchedule `json:"schedule,omitempty"       yaml:"schedule,omitempty"`
}

// MonitorCreateRequest describes a monitor to create or update.
type MonitorCreateRequest struct {
	Name           string           `json:"name"`
	CollectionUID  string           `json:"collection,omitempty"`
	EnvironmentUID string           `json:"environment,omitempty"`
	Schedule       *MonitorSchedule `json:"schedule,omitempty"`
}

// MonitorRunStats summarizes assertion and request outcomes of one run.
type MonitorRunStats struct {
	Assertions struct {
		Total  int `json:"total"  yaml:"total"`
		Failed int `json:"failed" yaml:"failed"`
	} `json:"assertions" yaml:"assertions"`
	Requests struct {
		Total  int `json:"total"  yaml:"total"`
		Failed int `json:"failed" yaml:"failed"`
	} `json:"requests" yaml:"requests"`
}

// MonitorRun is one entry of a monitor's run history.
type MonitorRun struct {
	ID         string           `json:"id"                   yaml:"id"`
	Status     string           `json:"status"               yaml:"status"`
	StartedAt  time.Time        `json:"startedAt,omitempty"  yaml:"started_at,omitempty"`
	FinishedAt time.Time        `json:"finishedAt,omitempty" yaml:"finished_at,omitempty"`
	Stats      *MonitorRunStats `json:"stats,omitempty"      yaml:"stats,omitempty"`
}

// Mock represents a mock server backed by a collection.
type Mock struct {
	ID             string    `json:"id"                       yaml:"id"`
	UID            string    `json:"uid,omitempty"            yaml:"uid,omitempty"`
	Name           string    `json:"name"                     yaml:"name"`
	Owner          string    `json:"owner,omitempty"          yaml:"owner,omitempty"`
	CollectionUID  string    `json:"collection,omitempty"     yaml:"collection,omitempty"`
	EnvironmentUID string    `json:"environment,omitempty"    yaml:"environment,omitempty"`
	MockURL        string    `json:"mockUrl,omitempty"        yaml:"mock_url,omitempty"`
	Private        bool      `json:"private,omitempty"        yaml:"private,omitempty"`
	CreatedAt      time.Time `json:"createdAt,omitempty"      yaml:"created_at,omitempty"`
	UpdatedAt      time.Time `json:"updatedAt,omitempty"      yaml:"updated_at,omitempty"`
}

// MockCreateRequest describes a mock server to create or update.
type MockCreateRequest struct {
	Name           string `json:"name"`
	CollectionUID  string `json:"collection"`
	EnvironmentUID string `json:"environment,omitempty"`
	Private        bool   `json:"private,omitempty"`
}

// API represents an API definition.
type API struct {
	ID          string    `json:"id"                    yaml:"id"`
	Name        string    `json:"name"                  yaml:"name"`
	Summary     string    `json:"summary,omitempty"     yaml:"summary,omitempty"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitempty"   yaml:"created_at,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty"   yaml:"updated_at,omitempty"`
	CreatedBy   string    `json:"createdBy,omitempty"   yaml:"created_by,omitempty"`
}

// APICreateRequest describes an API definition to create or update.
type APICreateRequest struct {
	Name        string `json:"name"`
	Summary     string `json:"summary,omitempty"`
	Description string `json:"description,omitempty"`
}

// APIVersion is one published version of an API definition.
type APIVersion struct {
	ID        string    `json:"id"                  yaml:"id"`
	Name      string    `json:"name"                yaml:"name"`
	API       string    `json:"api,omitempty"       yaml:"api,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty" yaml:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty" yaml:"updated_at,omitempty"`
}

// APISchema is a schema document attached to an API version. The schema
// content is passed through untouched.
type APISchema struct {
	ID       string          `json:"id"                 yaml:"id"`
	Type     string          `json:"type,omitempty"     yaml:"type,omitempty"`
	Language string          `json:"language,omitempty" yaml:"language,omitempty"`
	Schema   json.RawMessage `json:"schema,omitempty"   yaml:"schema,omitempty"`
}

// Workspace represents a workspace.
type Workspace struct {
	ID          string `json:"id"                    yaml:"id"`
	Name        string `json:"name"                  yaml:"name"`
	Type        string `json:"type,omitempty"        yaml:"type,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Visibility  string `json:"visibility,omitempty"  yaml:"visibility,omitempty"`
}
