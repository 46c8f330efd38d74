package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/vedicvision/vvadmin/internal/version"
)

// RawMethods are the HTTP methods the request console accepts
var RawMethods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodDelete,
	http.MethodPatch,
}

// ValidRawMethod reports whether the console accepts the method
func ValidRawMethod(method string) bool {
	for _, m := range RawMethods {
		if m == method {
			return true
		}
	}
	return false
}

// RawResponse is an unprocessed backend reply. The request console shows
// it verbatim, failures included.
type RawResponse struct {
	Status     int
	StatusText string
	Headers    http.Header
	Body       []byte
}

// OK reports whether the status is in the 2xx range
func (r *RawResponse) OK() bool {
	return r.Status >= 200 && r.Status < 300
}

// PrettyBody re-indents the body when it is JSON, otherwise returns it as-is
func (r *RawResponse) PrettyBody() string {
	if len(r.Body) == 0 {
		return ""
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, r.Body, "", "  "); err != nil {
		return string(r.Body)
	}
	return buf.String()
}

// Raw sends an arbitrary request with the session credentials attached and
// returns the reply without normalizing errors: non-2xx statuses are
// reported, not converted to *APIError, and the auth-rejected hook stays
// out of the way. A non-empty body must be valid JSON.
func (c *Client) Raw(ctx context.Context, method, path string, body []byte) (*RawResponse, error) {
	if !ValidRawMethod(method) {
		return nil, fmt.Errorf("unsupported method %q", method)
	}
	if len(body) > 0 && !json.Valid(body) {
		return nil, fmt.Errorf("request body is not valid JSON")
	}

	var reqBody io.Reader
	if len(body) > 0 {
		reqBody = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	req.Header.Set("User-Agent", version.UserAgent())

	c.logger.Debug("raw backend request", "method", method, "path", path, "request_id", requestID)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to perform request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	return &RawResponse{
		Status:     resp.StatusCode,
		StatusText: http.StatusText(resp.StatusCode),
		Headers:    resp.Header,
		Body:       data,
	}, nil
}
