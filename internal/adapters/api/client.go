package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
)

// Sentinel errors mapped from backend response codes. Handlers branch on
// these to pick between an inline form error and the generic 500 path.
var (
	ErrNotFound     = errors.New("resource not found")
	ErrConflict     = errors.New("conflicting state")
	ErrUnauthorized = errors.New("not authorized")
	ErrUnavailable  = errors.New("backend unavailable")
)

// Client is a minimal JSON client for one backend base URL. All requests
// carry a bearer token and a correlation ID.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// NewClient creates a Client for the given base URL and bearer token.
// PRE: baseURL has no trailing slash ambiguity issues (it is trimmed)
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: trimSlash(baseURL),
		token:   token,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// errorBody is the backend's error envelope. Missing or malformed envelopes
// degrade to the bare status text.
type errorBody struct {
	Error string `json:"error"`
}

// do performs one round trip. body (if non-nil) is JSON-encoded; out (if
// non-nil) receives the decoded response body.
// POST: non-2xx responses return a sentinel error wrapped with the backend message
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	requestID := uuid.New().String()
	req.Header.Set("X-Request-ID", requestID)

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		slog.Error("backend_request_failed", "method", method, "path", path, "request_id", requestID, "error", err)
		return fmt.Errorf("%s %s: %w", method, path, ErrUnavailable)
	}
	defer resp.Body.Close()

	slog.Debug("backend_request", "method", method, "path", path,
		"status", resp.StatusCode, "request_id", requestID, "duration_ms", time.Since(started).Milliseconds())

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.mapStatus(resp, method, path)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

func (c *Client) mapStatus(resp *http.Response, method, path string) error {
	var eb errorBody
	_ = json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&eb)
	msg := eb.Error
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}

	var sentinel error
	switch {
	case resp.StatusCode == http.StatusNotFound:
		sentinel = ErrNotFound
	case resp.StatusCode == http.StatusConflict:
		sentinel = ErrConflict
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		sentinel = ErrUnauthorized
	default:
		sentinel = ErrUnavailable
	}
	return fmt.Errorf("%s %s: %s: %w", method, path, msg, sentinel)
}

func trimSlash(s string) string {
	for len(s) > 0 && s[len(s)-1] == '/' {
		s = s[:len(s)-1]
	}
	return s
}
