package constants

import "errors"

// CLI configuration errors.
var (
	ErrNoAPIKeyConfigured = errors.New("no API key configured, use 'postman login' or set POSTMAN_API_KEY")
	ErrEmptyAPIKey        = errors.New("API key must not be empty")
)

// Validation errors.
var (
	ErrInvalidOutputFormat = errors.New("invalid output format, expected json, yaml, or table")
	ErrInvalidRunLimit     = errors.New("run limit must be a positive integer")
)

// Required field errors.
var (
	ErrCollectionRequired  = errors.New("--collection flag is required")
	ErrNameRequired        = errors.New("--name flag is required")
	ErrSourceRequired      = errors.New("--source flag is required")
	ErrTitleRequired       = errors.New("--title flag is required")
	ErrReviewersRequired   = errors.New("--reviewers flag is required")
	ErrEnvironmentRequired = errors.New("--environment flag is required")
)
