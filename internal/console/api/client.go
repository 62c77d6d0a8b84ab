// Package api is the HTTP adapter for the remote user-management service.
// It owns request encoding, bearer-token attachment, and the mapping of
// transport failures onto the package's sentinel errors.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// TokenSource supplies the current session token, or "" when anonymous.
// The adapter only reads the token; it never writes it.
type TokenSource func() string

// Client talks JSON over HTTP to the user-management service.
// Requests are not retried and carry no client-side timeout; callers
// control cancellation through the context.
type Client struct {
	baseURL string
	http    *http.Client
	token   TokenSource
}

// New returns a Client for the given base URL (e.g. "http://localhost:8080/api").
// token may be nil for a client that never authenticates.
func New(baseURL string, token TokenSource) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		token:   token,
	}
}

// errorBody is the error envelope the server uses for non-2xx responses.
type errorBody struct {
	Error string `json:"error"`
}

// request performs one round trip. A non-nil body is JSON-encoded; a non-nil
// out receives the decoded response body. Non-2xx statuses and transport
// failures come back as errors from this package's taxonomy.
func (c *Client) request(ctx context.Context, method, path string, body, out any) error {
	var payload io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		payload = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != nil {
		if t := c.token(); t != "" {
			req.Header.Set("Authorization", "Bearer "+t)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		_ = json.NewDecoder(resp.Body).Decode(&eb)
		return newStatusError(resp.StatusCode, eb.Error)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}
