package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"

	"github.com/google/uuid"

	"github.com/vedicvision/vvadmin/internal/log"
	"github.com/vedicvision/vvadmin/internal/version"
)

// Client is the VedicVision backend API client. All requests carry the
// session cookie held by the client's cookie jar; there are no retries and
// no client-enforced timeout beyond the transport defaults.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	logger *log.Logger

	// onAuthRejected fires once per 401 response so the session store can
	// clear local state. Set via SetAuthRejectedHandler.
	onAuthRejected func()
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client (used by tests)
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.HTTPClient = hc
	}
}

// WithLogger sets the client logger
func WithLogger(logger *log.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a new backend API client
func NewClient(baseURL string, opts ...Option) *Client {
	jar, _ := cookiejar.New(nil)
	c := &Client{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Jar: jar,
		},
		logger: log.DefaultLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.HTTPClient.Jar == nil {
		c.HTTPClient.Jar = jar
	}
	return c
}

// SetAuthRejectedHandler registers the hook invoked when the backend
// rejects a request as unauthenticated
func (c *Client) SetAuthRejectedHandler(fn func()) {
	c.onAuthRejected = fn
}

// doRequest performs a single HTTP round trip with session credentials
func (c *Client) doRequest(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	req.Header.Set("User-Agent", version.UserAgent())

	c.logger.Debug("backend request", "method", method, "path", path, "request_id", requestID)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to perform request: %w", err)
	}

	c.logger.Debug("backend response", "path", path, "status", resp.StatusCode, "request_id", requestID)

	return resp, nil
}

// errorResponse represents a backend error body
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// parseResponse decodes the response body into target and normalizes
// failures into *APIError. A 401 fires the auth-rejected hook exactly once
// for this response before the error is returned.
func (c *Client) parseResponse(resp *http.Response, target interface{}) error {
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)

		apiErr := &APIError{Status: resp.StatusCode}

		var errResp errorResponse
		if err := json.Unmarshal(body, &errResp); err == nil {
			if errResp.Message != "" {
				apiErr.Message = errResp.Message
			} else if errResp.Error != "" {
				apiErr.Message = errResp.Error
			}
		}
		if apiErr.Message == "" {
			apiErr.Message = fmt.Sprintf("request failed with status %d", resp.StatusCode)
		}

		if resp.StatusCode == http.StatusUnauthorized && c.onAuthRejected != nil {
			c.onAuthRejected()
		}

		return apiErr
	}

	if target != nil {
		if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// Health checks the backend health endpoint
func (c *Client) Health(ctx context.Context) error {
	resp, err := c.doRequest(ctx, http.MethodGet, "/health", nil)
	if err != nil {
		return err
	}
	return c.parseResponse(resp, nil)
}
