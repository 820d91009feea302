package taskie

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Client is the HTTP wrapper for the Taskie REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Taskie client. A nil httpClient gets a plain client
// with DefaultTimeout; use NewHTTPClient for logging and auth.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// BaseURL returns the server root the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// do performs one exchange and decodes a 2xx body into out.
// Transport errors are wrapped as-is; empty bodies, undecodable bodies and
// non-2xx statuses all end up matching ErrNoData.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal %s request: %w", path, err)
		}
		body = bytes.NewReader(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("failed to build %s request: %w", path, err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if in != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call taskie %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read taskie %s response: %w", path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{StatusCode: resp.StatusCode, Message: messageFrom(raw)}
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return fmt.Errorf("%w: empty %s response", ErrNoData, path)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: failed to decode %s response: %v", ErrNoData, path, err)
	}
	return nil
}

// messageFrom pulls a "message" field out of an error body, if any.
func messageFrom(raw []byte) string {
	var m messageResponse
	if err := json.Unmarshal(raw, &m); err != nil || m.Message == nil {
		return strings.TrimSpace(string(raw))
	}
	return *m.Message
}
