package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
)

// TokenSource yields the current access token for protected requests.
// A missing token does not block the call; the server answers 401 and
// the resulting APIError drives the login prompt.
type TokenSource interface {
	AccessToken() (string, bool)
}

// Client is the shared HTTP core behind every resource client. It
// builds the target URL from the configured base, attaches the bearer
// credential on protected operations, and turns non-2xx responses
// into classified APIErrors carrying the server's own message text.
type Client struct {
	baseURL string
	httpc   *http.Client
	tokens  TokenSource
}

// NewClient creates a REST core for the given API base URL.
// tokens may be nil for a client that only performs public calls.
func NewClient(baseURL string, tokens TokenSource, httpc *http.Client) *Client {
	if httpc == nil {
		httpc = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		httpc:   httpc,
		tokens:  tokens,
	}
}

// BaseURL returns the configured API base.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Request describes one API operation.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   any
	// Authed marks protected operations. The access token is attached
	// when present; the request is still sent without one.
	Authed bool
}

// Do performs the request and decodes a 2xx JSON response into out
// (out may be nil for endpoints whose body the caller discards).
// Idempotent GETs are retried with exponential backoff on transport
// errors, 429 and 5xx; mutations are never retried.
func (c *Client) Do(ctx context.Context, rq Request, out any) error {
	if rq.Method == http.MethodGet {
		return retry.Do(
			func() error { return c.doOnce(ctx, rq, out) },
			retry.Context(ctx),
			retry.Attempts(3),
			retry.Delay(300*time.Millisecond),
			retry.DelayType(retry.BackOffDelay),
			retry.LastErrorOnly(true),
			retry.RetryIf(isTransient),
		)
	}
	return c.doOnce(ctx, rq, out)
}

func (c *Client) doOnce(ctx context.Context, rq Request, out any) error {
	endpoint := c.baseURL + rq.Path
	if len(rq.Query) > 0 {
		endpoint += "?" + rq.Query.Encode()
	}

	var bodyReader io.Reader
	if rq.Body != nil {
		payload, err := json.Marshal(rq.Body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, rq.Method, endpoint, bodyReader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if rq.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if rq.Authed && c.tokens != nil {
		if token, ok := c.tokens.AccessToken(); ok {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("api request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return NewAPIError(resp.StatusCode, readErrorMessage(resp))
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// Get performs a public GET.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.Do(ctx, Request{Method: http.MethodGet, Path: path, Query: query}, out)
}

// GetAuthed performs a bearer-authenticated GET.
func (c *Client) GetAuthed(ctx context.Context, path string, query url.Values, out any) error {
	return c.Do(ctx, Request{Method: http.MethodGet, Path: path, Query: query, Authed: true}, out)
}

// Post performs a public POST with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, Request{Method: http.MethodPost, Path: path, Body: body}, out)
}

// PostAuthed performs a bearer-authenticated POST with a JSON body.
func (c *Client) PostAuthed(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, Request{Method: http.MethodPost, Path: path, Body: body, Authed: true}, out)
}

// PutAuthed performs a bearer-authenticated PUT with a JSON body.
func (c *Client) PutAuthed(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, Request{Method: http.MethodPut, Path: path, Body: body, Authed: true}, out)
}

// PatchAuthed performs a bearer-authenticated PATCH with a JSON body.
func (c *Client) PatchAuthed(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, Request{Method: http.MethodPatch, Path: path, Body: body, Authed: true}, out)
}

// DeleteAuthed performs a bearer-authenticated DELETE.
func (c *Client) DeleteAuthed(ctx context.Context, path string) error {
	return c.Do(ctx, Request{Method: http.MethodDelete, Path: path, Authed: true}, nil)
}

// readErrorMessage extracts the server's error text from a failed
// response. The backend wraps messages as {"detail": "..."} (or
// occasionally "message"/"error"); plain-text bodies pass through
// unchanged so the APIError message always equals what the server
// actually said.
func readErrorMessage(resp *http.Response) string {
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil || len(bytes.TrimSpace(raw)) == 0 {
		return resp.Status
	}

	var envelope struct {
		Detail  string `json:"detail"`
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil {
		switch {
		case envelope.Detail != "":
			return envelope.Detail
		case envelope.Message != "":
			return envelope.Message
		case envelope.Error != "":
			return envelope.Error
		}
	}
	return strings.TrimSpace(string(raw))
}

func isTransient(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status == http.StatusTooManyRequests || apiErr.Status >= 500
	}
	// Transport-level failure.
	return true
}
