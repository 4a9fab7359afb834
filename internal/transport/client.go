package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/recruitdesk/recruitdesk/internal/metrics"
)

// ErrTimeout is returned when a backend request exceeds the per-request
// deadline. Every request is bounded; a backend that never answers can not
// leave the caller pending forever.
var ErrTimeout = errors.New("backend request timed out")

// DefaultTimeout bounds a single backend request when no timeout is configured.
const DefaultTimeout = 15 * time.Second

// TokenSource supplies the bearer credential attached to every request.
// An empty token means the request goes out unauthenticated.
type TokenSource interface {
	Token() string
}

// APIError is a non-2xx response from the recruitment backend, carrying the
// backend's machine-readable error code and message when it sent one.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Message)
	}
	if e.Code != "" {
		return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Code)
	}
	return fmt.Sprintf("backend returned %d", e.StatusCode)
}

// errorBody is the backend's error envelope.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Client issues authenticated JSON requests against the recruitment backend.
// It performs exactly one HTTP call per operation: no retries, no caching.
type Client struct {
	baseURL    string
	tokens     TokenSource
	httpClient *http.Client
	timeout    time.Duration
	logger     *zap.Logger
}

// NewClient creates a backend client. baseURL is normalized (trailing slash
// trimmed); tokens may be nil for an unauthenticated client; a non-positive
// timeout falls back to DefaultTimeout.
func NewClient(baseURL string, tokens TokenSource, timeout time.Duration, logger *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		tokens:     tokens,
		httpClient: &http.Client{},
		timeout:    timeout,
		logger:     logger,
	}
}

// Get issues a GET request and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// Post issues a POST request with a JSON body and decodes the response into out.
func (c *Client) Post(ctx context.Context, path string, in, out any) error {
	return c.do(ctx, http.MethodPost, path, in, out)
}

// Put issues a PUT request with an optional JSON body and decodes the response into out.
func (c *Client) Put(ctx context.Context, path string, in, out any) error {
	return c.do(ctx, http.MethodPut, path, in, out)
}

// Delete issues a DELETE request and discards any response body.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	resource := resourceLabel(path)

	var body io.Reader
	if in != nil {
		encoded, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s %s request: %w", method, path, err)
		}
		body = bytes.NewReader(encoded)
	}

	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("create %s %s request: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	elapsed := time.Since(start)
	metrics.BackendRequestDuration.WithLabelValues(resource).Observe(elapsed.Seconds())

	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			metrics.BackendRequestsTotal.WithLabelValues(resource, "timeout").Inc()
			return fmt.Errorf("%s %s after %s: %w", method, path, c.timeout, ErrTimeout)
		}
		metrics.BackendRequestsTotal.WithLabelValues(resource, "transport_error").Inc()
		return fmt.Errorf("send %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.BackendRequestsTotal.WithLabelValues(resource, "transport_error").Inc()
		return fmt.Errorf("read %s %s response: %w", method, path, err)
	}

	c.logger.Debug("backend request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", elapsed),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.BackendRequestsTotal.WithLabelValues(resource, "api_error").Inc()
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var parsed errorBody
		if jsonErr := json.Unmarshal(payload, &parsed); jsonErr == nil {
			apiErr.Code = parsed.Error
			apiErr.Message = parsed.Message
		} else {
			apiErr.Message = strings.TrimSpace(string(payload))
		}
		return apiErr
	}

	metrics.BackendRequestsTotal.WithLabelValues(resource, "success").Inc()

	if out != nil && len(payload) > 0 {
		if err := json.Unmarshal(payload, out); err != nil {
			return fmt.Errorf("decode %s %s response: %w", method, path, err)
		}
	}
	return nil
}

// resourceLabel collapses a request path to its role-scoped resource prefix
// ("/admin/Applications/42" -> "admin/Applications") to keep metric
// cardinality bounded.
func resourceLabel(path string) string {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) > 2 {
		parts = parts[:2]
	}
	return strings.Join(parts, "/")
}
