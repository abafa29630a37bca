package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Client is the HTTP client for the WorkMate backend API. It performs no
// retries; failures surface to the caller classified by the sentinels in
// errors.go.
type Client struct {
	baseURL string
	httpc   *http.Client
	logger  *zap.Logger
}

// New returns a client rooted at baseURL (scheme://host, without the /api
// prefix; paths carry it).
func New(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// errorEnvelope is the backend's failure body: {"error": "..."}.
type errorEnvelope struct {
	Error string `json:"error"`
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		c.logger.Debug("backend request failed", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("%w: %s %s: %v", ErrNetwork, method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read body: %v", ErrNetwork, err)
	}

	if resp.StatusCode >= 400 {
		return c.statusError(resp.StatusCode, data, method, path)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: decode %s %s: %v", ErrMalformedResponse, method, path, err)
	}
	return nil
}

// statusError maps a non-2xx status onto the error taxonomy, carrying the
// backend's message when one was provided.
func (c *Client) statusError(status int, body []byte, method, path string) error {
	var env errorEnvelope
	msg := http.StatusText(status)
	if err := json.Unmarshal(body, &env); err == nil && env.Error != "" {
		msg = env.Error
	}

	var class error
	switch {
	case status == http.StatusUnauthorized:
		class = ErrInvalidCredentials
	case status == http.StatusNotFound:
		class = ErrNotFound
	case status >= 500:
		class = ErrBackend
	default:
		class = ErrInvalidInput
	}
	c.logger.Debug("backend rejected request",
		zap.String("method", method), zap.String("path", path),
		zap.Int("status", status), zap.String("message", msg))
	return fmt.Errorf("%w: %s", class, msg)
}

// Health checks the backend's root health endpoint.
func (c *Client) Health(ctx context.Context) error {
	var out struct {
		Status string `json:"status"`
	}
	return c.get(ctx, "/health", &out)
}
