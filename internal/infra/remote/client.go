// Package remote contains the concrete implementation of the data service
// contract as an HTTP/JSON client.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"gather/config"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// maxErrorBodyBytes bounds how much of an offending payload is kept when a
// decode fails; enough for diagnosis without logging whole responses.
const maxErrorBodyBytes = 512

// StatusError reports a non-2xx response from the remote data service.
type StatusError struct {
	Method string
	Path   string
	Code   int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s returned status %d", e.Method, e.Path, e.Code)
}

// Client is the shared HTTP transport for every repository implementation.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

// NewClient builds the shared transport from config. The timeout applies to
// the full request/response cycle; there is no retry layer.
func NewClient(cfg *config.Config, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.Remote.BaseURL, "/"),
		http: &http.Client{
			Timeout: cfg.Remote.Timeout,
		},
		logger: logger,
	}
}

// NewClientWithBase builds a transport against an explicit base URL. Used by
// tests and tools that bypass the config layer.
func NewClientWithBase(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// joinIDs renders an id set as the comma-joined path segment the bulk routes
// expect.
func joinIDs(ids []int) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, strconv.Itoa(id))
	}

	return strings.Join(parts, ",")
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) postJSON(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) putJSON(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

func (c *Client) deleteJSON(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// do performs one round-trip. Non-2xx statuses become StatusError; decode
// failures are wrapped together with a truncated copy of the offending
// payload.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return errors.Wrapf(err, "encode %s %s request", method, path)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.New().String())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s", method, path)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{Method: method, Path: path, Code: resp.StatusCode}
	}

	if out == nil {
		return nil
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrapf(err, "read %s %s response", method, path)
	}

	if err := json.Unmarshal(payload, out); err != nil {
		snippet := payload
		if len(snippet) > maxErrorBodyBytes {
			snippet = snippet[:maxErrorBodyBytes]
		}
		c.logger.Error("Failed to decode remote response",
			slog.String("method", method),
			slog.String("path", path),
			slog.String("payload", string(snippet)),
		)

		return errors.Wrapf(err, "decode %s %s response", method, path)
	}

	return nil
}
