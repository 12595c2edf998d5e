// Package api is the client for the remote part-time-job REST API. It owns
// the request plumbing — JSON encoding, the response envelope, bearer-token
// injection — and exposes one method per endpoint. All persistence and
// business rules live behind these calls, server-side.
package api

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
)

const httpTimeout = 15 * time.Second

// genericFailure is shown when the server gives no usable message.
const genericFailure = "Yêu cầu thất bại. Vui lòng thử lại."

// TokenSource supplies the current bearer token ("" when anonymous).
// The session store implements it.
type TokenSource interface {
	Token() string
}

// APIError is a request the server answered but rejected. Message carries the
// server-provided text when present, else a generic fallback, and is meant to
// be surfaced to the user unchanged.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d: %s", e.StatusCode, e.Message)
}

// envelope is the response convention used by every endpoint:
// { success: bool, data: {...}, message?: string }.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// Client issues requests against a single base URL.
type Client struct {
	baseURL string
	tokens  TokenSource
	client  *http.Client
}

// NewClient constructs a Client. tokens may be nil for a client that never
// authenticates.
func NewClient(baseURL string, tokens TokenSource) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		tokens:  tokens,
		client:  &http.Client{Timeout: httpTimeout},
	}
}

// request performs one round trip: body is JSON-encoded when non-nil, the
// envelope is unwrapped, and data is decoded into out when non-nil. Non-2xx
// statuses and success:false both come back as *APIError.
func (c *Client) request(ctx context.Context, method, path string, body, out any) error {
	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		payload = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("http %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}

	var env envelope
	if jsonErr := json.Unmarshal(raw, &env); jsonErr != nil {
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return &APIError{StatusCode: resp.StatusCode, Message: genericFailure}
		}
		return fmt.Errorf("decode response: %w", jsonErr)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 || !env.Success {
		msg := env.Message
		if msg == "" {
			msg = genericFailure
		}
		return &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode data: %w", err)
		}
	}
	return nil
}

// Message extracts the user-facing text from any error produced by this
// package, falling back to a generic string for transport failures.
func Message(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return genericFailure
}
