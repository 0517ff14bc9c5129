// Package http provides the internal HTTP client used to communicate with
// the Postman API. It handles authentication, retries with backoff, rate
// limiting, API version detection, and error classification.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/postlane-io/postman-client/internal/constants"
	"github.com/postlane-io/postman-client/pkg/postman"
)

// Request represents an HTTP request to the Postman API.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Headers map[string]string
	Body    interface{}
}

// Response represents an HTTP response from the Postman API.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Client is the internal HTTP client. It is safe for concurrent use; each
// call builds its own request and the only mutable state, the detected API
// version, is written once under versionOnce.
type Client struct {
	baseURL        string
	apiKey         string
	httpClient     *retryablehttp.Client
	userAgent      string
	logger         postman.Logger
	debug          bool
	rateLimitDelay time.Duration

	versionOnce sync.Once
	version     atomic.Value
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for debug and warning output.
func WithLogger(logger postman.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging through the configured logger.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithRetryConfig adjusts the retry count and backoff bounds.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = retryMax
		c.httpClient.RetryWaitMin = waitMin
		c.httpClient.RetryWaitMax = waitMax
	}
}

// WithRateLimitDelay sets the wait before retrying a rate-limited request
// when the response carried no Retry-After header.
func WithRateLimitDelay(delay time.Duration) Option {
	return func(c *Client) {
		c.rateLimitDelay = delay
	}
}

// WithTimeout bounds each HTTP round trip.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient.Timeout = timeout
	}
}

// NewClient creates a new HTTP client for the given API endpoint.
func NewClient(baseURL, apiKey string, options ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = constants.DefaultRetryMax
	retryClient.RetryWaitMin = constants.DefaultRetryWaitMin
	retryClient.RetryWaitMax = constants.DefaultRetryWaitMax
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout
	retryClient.Logger = nil
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	client := &Client{
		baseURL:        strings.TrimSuffix(baseURL, "/"),
		apiKey:         apiKey,
		httpClient:     retryClient,
		userAgent:      "postman-client/1.0",
		rateLimitDelay: constants.DefaultRateLimitDelay,
	}

	retryClient.CheckRetry = client.checkRetry
	retryClient.Backoff = client.backoff

	for _, option := range options {
		option(client)
	}

	return client
}

// checkRetry retries transport failures, rate limiting, and server errors.
// Anything else, including other 4xx responses, fails immediately.
func (c *Client) checkRetry(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}

	if err != nil {
		return true, nil
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return true, nil
	}

	if resp.StatusCode >= 500 && resp.StatusCode <= 599 {
		return true, nil
	}

	return false, nil
}

// backoff honors Retry-After on rate-limited responses and falls back to
// the configured rate limit delay; other retryable failures use capped
// exponential backoff.
func (c *Client) backoff(minWait, maxWait time.Duration, attemptNum int, resp *http.Response) time.Duration {
	if resp != nil && resp.StatusCode == http.StatusTooManyRequests {
		if delay := postman.RetryAfterDelay(resp.Header); delay > 0 {
			return delay
		}

		return c.rateLimitDelay
	}

	wait := time.Duration(math.Pow(2, float64(attemptNum))) * minWait
	if wait > maxWait {
		wait = maxWait
	}

	return wait
}

// Do executes an HTTP request and returns the response. Responses with
// status >= 400 return both the response and a classified *postman.Error,
// so callers can inspect the raw body when they need to.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	fullURL := c.baseURL + req.Path
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	var bodyBytes []byte

	if req.Body != nil {
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}

		bodyBytes = data
	}

	var rawBody interface{}
	if bodyBytes != nil {
		rawBody = bodyBytes
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, rawBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set(constants.APIKeyHeader, c.apiKey)
	httpReq.Header.Set("Accept", constants.ContentTypeJSON)
	httpReq.Header.Set("User-Agent", c.userAgent)

	if bodyBytes != nil {
		httpReq.Header.Set(constants.ContentTypeHeader, constants.ContentTypeJSON)
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    fullURL,
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, c.classifyTransportError(err)
	}
	defer func() { _ = httpResp.Body.Close() }()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"status": resp.StatusCode,
			"url":    fullURL,
		})
	}

	c.detectVersion(resp)

	if resp.StatusCode >= 400 {
		return resp, postman.ClassifyResponse(resp.StatusCode, resp.Headers, resp.Body)
	}

	return resp, nil
}

// classifyTransportError maps errors from the transport itself onto the
// error taxonomy. Context deadlines and net timeouts become Timeout errors,
// everything else a Network error.
func (c *Client) classifyTransportError(err error) error {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return postman.NewTimeoutError(c.httpClient.HTTPClient.Timeout, err)
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return postman.NewTimeoutError(c.httpClient.HTTPClient.Timeout, err)
	}

	return postman.NewNetworkError(err)
}

// detectVersion inspects the first completed response exactly once. The
// label never changes afterwards, even if later responses would classify
// differently.
func (c *Client) detectVersion(resp *Response) {
	c.versionOnce.Do(func() {
		version := postman.DetectAPIVersion(resp.Headers, resp.Body)
		c.version.Store(version)

		if c.logger != nil && !postman.IsCurrentAPIVersion(version) {
			c.logger.Warn("Postman API version appears to be older than v10; some operations such as collection forking may not be available", map[string]interface{}{
				"detected_version": version,
			})
		}
	})
}

// APIVersion returns the detected API version label, or the empty string
// before the first completed request.
func (c *Client) APIVersion() string {
	version, _ := c.version.Load().(string)

	return version
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post performs a POST request.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// Put performs a PUT request.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Body: body})
}

// Patch performs a PATCH request.
func (c *Client) Patch(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPatch, Path: path, Body: body})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path})
}
