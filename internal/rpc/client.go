// Package rpc is a minimal client for a kubo-style /api/v0 RPC endpoint:
// POST-only verbs, JSON error bodies, NDJSON streams, and multibase topic
// encoding for the pubsub commands. There is deliberately no retry or
// backoff; transport failures surface directly to the caller.
package rpc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
)

// Client issues requests against a daemon API base URL such as
// "http://localhost:5001/api/v0".
type Client struct {
	base *url.URL
	http *http.Client
}

// NewClient parses apiURL and wraps httpClient. A nil httpClient gets a
// fresh http.Client with no timeout, so streaming commands stay open.
func NewClient(apiURL string, httpClient *http.Client) (*Client, error) {
	if strings.TrimSpace(apiURL) == "" {
		return nil, errors.New("rpc: API address is required")
	}
	base, err := url.Parse(strings.TrimSuffix(apiURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("rpc: invalid API address: %w", err)
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{base: base, http: httpClient}, nil
}

// Post issues a POST to command (e.g. "name/resolve") with the given query
// and returns the raw response. Statuses >= 400 are decoded into *APIError
// and the body is closed.
func (c *Client) Post(ctx context.Context, command string, query url.Values) (*http.Response, error) {
	return c.do(ctx, command, query, "", nil)
}

// PostFile issues a POST carrying data as a multipart "file" part, the
// shape the pubsub publish command expects.
func (c *Client) PostFile(ctx context.Context, command string, query url.Values, data []byte) (*http.Response, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "data")
	if err != nil {
		return nil, fmt.Errorf("rpc: build multipart body: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return nil, fmt.Errorf("rpc: build multipart body: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("rpc: build multipart body: %w", err)
	}
	return c.do(ctx, command, query, mw.FormDataContentType(), &body)
}

func (c *Client) do(ctx context.Context, command string, query url.Values, contentType string, body io.Reader) (*http.Response, error) {
	u := *c.base
	u.Path = strings.TrimSuffix(u.Path, "/") + "/" + command
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), body)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		return nil, decodeError(resp)
	}
	return resp, nil
}

// Drain discards the remainder of a response body and closes it, so the
// underlying connection can be reused.
func Drain(body io.ReadCloser) {
	if body == nil {
		return
	}
	_, _ = io.Copy(io.Discard, body)
	_ = body.Close()
}
