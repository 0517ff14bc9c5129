package postman

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// ErrorKind identifies the failure class of an API call. The set is closed:
// every failure a client method can return maps to exactly one kind.
type ErrorKind string

const (
	ErrorKindAuthentication ErrorKind = "authentication"
	ErrorKindPermission     ErrorKind = "permission"
	ErrorKindNotFound       ErrorKind = "not_found"
	ErrorKindValidation     ErrorKind = "validation"
	ErrorKindRateLimit      ErrorKind = "rate_limit"
	ErrorKindServer         ErrorKind = "server"
	ErrorKindNetwork        ErrorKind = "network"
	ErrorKindTimeout        ErrorKind = "timeout"
	ErrorKindUnknown        ErrorKind = "unknown"
)

// Error is the typed error returned for any failed API call.
//
// StatusCode is zero for transport-level failures (Network, Timeout).
// RetryAfter is only set for RateLimit errors that carried a Retry-After
// header. Err holds the originating transport error, if any.
type Error struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
	RetryAfter time.Duration
	Err        error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("[%d] %s", e.StatusCode, e.Message)
	}

	return e.Message
}

// Unwrap returns the originating transport error, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// Retryable reports whether the error belongs to a transient failure class:
// network failures, timeouts, rate limiting, and server-side 5xx.
func (e *Error) Retryable() bool {
	switch e.Kind {
	case ErrorKindNetwork, ErrorKindTimeout, ErrorKindRateLimit, ErrorKindServer:
		return true
	default:
		return false
	}
}

// Static errors for configuration validation.
var (
	ErrConfigRequired = errors.New("config is required")
	ErrAPIKeyMissing  = errors.New("API key is required (set POSTMAN_API_KEY or Config.APIKey)")
	ErrAPIKeyFormat   = errors.New(`API key is malformed (keys start with "` + APIKeyPrefix + `")`)
)

// APIKeyPrefix is the fixed prefix of valid Postman API keys.
const APIKeyPrefix = "PMAK-"

// errorEnvelope is the error body shape used by the Postman API.
type errorEnvelope struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// genericMessage returns the fixed fallback message for a kind.
func genericMessage(kind ErrorKind) string {
	switch kind {
	case ErrorKindAuthentication:
		return "authentication failed: API key is invalid or missing"
	case ErrorKindPermission:
		return "insufficient permissions for this operation"
	case ErrorKindNotFound:
		return "the requested resource was not found"
	case ErrorKindValidation:
		return "request validation failed"
	case ErrorKindRateLimit:
		return "API rate limit exceeded"
	case ErrorKindServer:
		return "server error, typically a temporary issue"
	case ErrorKindNetwork:
		return "failed to connect to the API"
	case ErrorKindTimeout:
		return "API request timed out"
	default:
		return "API request failed"
	}
}

// kindForStatus maps an HTTP status code to an error kind.
func kindForStatus(status int) ErrorKind {
	switch {
	case status == http.StatusUnauthorized:
		return ErrorKindAuthentication
	case status == http.StatusForbidden:
		return ErrorKindPermission
	case status == http.StatusNotFound:
		return ErrorKindNotFound
	case status == http.StatusBadRequest, status == http.StatusUnprocessableEntity:
		return ErrorKindValidation
	case status == http.StatusTooManyRequests:
		return ErrorKindRateLimit
	case status >= 500 && status <= 599:
		return ErrorKindServer
	default:
		return ErrorKindUnknown
	}
}

// messageFromBody extracts a human-readable message from an error response
// body. It tries the API's {"error":{"message":...}} envelope first, then
// falls back to the raw body text, then to the kind's fixed template.
func messageFromBody(kind ErrorKind, body []byte) string {
	var envelope errorEnvelope

	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error.Message != "" {
		return envelope.Error.Message
	}

	text := strings.TrimSpace(string(body))
	if text != "" && utf8.ValidString(text) {
		return text
	}

	return genericMessage(kind)
}

// ClassifyResponse maps a completed non-2xx response to exactly one Error.
// It never fails: unmapped status codes produce ErrorKindUnknown.
func ClassifyResponse(status int, headers http.Header, body []byte) *Error {
	kind := kindForStatus(status)

	apiErr := &Error{
		Kind:       kind,
		StatusCode: status,
		Message:    messageFromBody(kind, body),
	}

	if kind == ErrorKindRateLimit {
		apiErr.RetryAfter = RetryAfterDelay(headers)
	}

	return apiErr
}

// RetryAfterDelay parses a Retry-After header as delay-seconds. Zero if
// absent or unparsable.
func RetryAfterDelay(headers http.Header) time.Duration {
	if headers == nil {
		return 0
	}

	raw := headers.Get("Retry-After")
	if raw == "" {
		return 0
	}

	seconds, err := strconv.Atoi(raw)
	if err != nil || seconds < 0 {
		return 0
	}

	return time.Duration(seconds) * time.Second
}

// NewNetworkError wraps a transport failure as a Network error.
func NewNetworkError(err error) *Error {
	message := genericMessage(ErrorKindNetwork)
	if err != nil {
		message = fmt.Sprintf("%s: %v", message, err)
	}

	return &Error{Kind: ErrorKindNetwork, Message: message, Err: err}
}

// NewTimeoutError wraps an exceeded time budget as a Timeout error.
func NewTimeoutError(timeout time.Duration, err error) *Error {
	message := genericMessage(ErrorKindTimeout)
	if timeout > 0 {
		message = fmt.Sprintf("%s after %s", message, timeout)
	}

	return &Error{Kind: ErrorKindTimeout, Message: message, Err: err}
}

// isKind checks whether err is a *Error of the given kind.
func isKind(err error, kind ErrorKind) bool {
	apiErr := &Error{}
	if errors.As(err, &apiErr) {
		return apiErr.Kind == kind
	}

	return false
}

// IsAuthentication checks if the error is an authentication error (401).
func IsAuthentication(err error) bool {
	return isKind(err, ErrorKindAuthentication)
}

// IsPermission checks if the error is a permission error (403).
func IsPermission(err error) bool {
	return isKind(err, ErrorKindPermission)
}

// IsNotFound checks if the error is a resource-not-found error (404).
func IsNotFound(err error) bool {
	return isKind(err, ErrorKindNotFound)
}

// IsValidation checks if the error is a validation error (400/422).
func IsValidation(err error) bool {
	return isKind(err, ErrorKindValidation)
}

// IsRateLimit checks if the error is a rate-limit error (429).
func IsRateLimit(err error) bool {
	return isKind(err, ErrorKindRateLimit)
}

// IsServer checks if the error is a server error (5xx).
func IsServer(err error) bool {
	return isKind(err, ErrorKindServer)
}

// IsNetwork checks if the error is a network connectivity error.
func IsNetwork(err error) bool {
	return isKind(err, ErrorKindNetwork)
}

// IsTimeout checks if the error is a request timeout error.
func IsTimeout(err error) bool {
	return isKind(err, ErrorKindTimeout)
}

// IsRetryable reports whether err is a transient failure worth retrying.
// Non-*Error values are never retryable.
func IsRetryable(err error) bool {
	apiErr := &Error{}
	if errors.As(err, &apiErr) {
		return apiErr.Retryable()
	}

	return false
}
