package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/habtamu/memberdesk/internal/pkg/apperrors"
)

// Client calls the membership API. Each console session owns one Client
// so the cookie jar carries that session's upstream credentials on every
// request; no bearer token is ever attached.
//
// All failures are normalized through apperrors before they reach a
// caller: the transport's error types never escape this package.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client with its own cookie jar and a bounded
// per-request timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	jar, _ := cookiejar.New(nil)
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout: timeout,
			Jar:     jar,
		},
	}
}

// Get performs a GET and decodes the response payload into out.
func (c *Client) Get(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// Post performs a POST with a JSON body and decodes the payload into out.
func (c *Client) Post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

// Put performs a PUT with a JSON body and decodes the payload into out.
func (c *Client) Put(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

// Delete performs a DELETE and decodes the payload into out.
func (c *Client) Delete(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodDelete, path, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return apperrors.NewRemoteError(apperrors.ErrSetup, "Request setup error")
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return apperrors.NewRemoteError(apperrors.ErrSetup, "Request setup error")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		var ue *url.Error
		if errors.As(err, &ue) && ue.Timeout() {
			return apperrors.NewRemoteError(apperrors.ErrTimeout, "Request timed out")
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return apperrors.NewRemoteError(apperrors.ErrTimeout, "Request timed out")
		}
		return apperrors.NewRemoteError(apperrors.ErrNetwork, "Network error - no response received")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperrors.NewRemoteError(apperrors.ErrNetwork, "Network error - no response received")
	}

	// Anything outside 2xx is a failure; payloads are only decoded on
	// success. The API never redirects, so an unfollowed 3xx is a fault.
	if resp.StatusCode >= 300 {
		return apperrors.NewRemoteError(apperrors.ErrRequestFailed, errorMessage(raw))
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return apperrors.NewRemoteError(apperrors.ErrRequestFailed, "Request failed")
		}
	}

	return nil
}

// errorMessage pulls the message field out of a structured error body,
// falling back to generic text when the server sent none.
func errorMessage(raw []byte) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err == nil && body.Message != "" {
		return body.Message
	}
	return "Request failed"
}
