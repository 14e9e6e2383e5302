// Package client is the HTTP client for the dealership API. It
// injects the session bearer token on every request and applies a
// single cross-cutting policy to authentication-rejected responses:
// the local session is cleared and the configured hook fires, no
// matter which call triggered the 401.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/gescar/dealership-system/pkg/session"
)

const (
	defaultBaseURL = "http://localhost:8080"
	defaultTimeout = 15 * time.Second

	envBaseURL = "GESCAR_API_URL"
)

// ErrAuthRejected marks responses with an authentication-rejected
// status. By the time a caller sees it the session has already been
// cleared.
var ErrAuthRejected = errors.New("authentication rejected")

// RequestFailure describes a call that did not succeed: a transport
// error, a non-2xx status, or an undecodable body.
type RequestFailure struct {
	Op         string
	StatusCode int
	Message    string
	Err        error
}

func (f *RequestFailure) Error() string {
	switch {
	case f.Err != nil:
		return fmt.Sprintf("%s: %v", f.Op, f.Err)
	case f.Message != "":
		return fmt.Sprintf("%s: status %d: %s", f.Op, f.StatusCode, f.Message)
	default:
		return fmt.Sprintf("%s: status %d", f.Op, f.StatusCode)
	}
}

func (f *RequestFailure) Unwrap() error { return f.Err }

// Client talks to the dealership API.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	store          *session.Store
	onAuthRejected func()
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithSessionStore sets the store the bearer token is read from and
// the 401 policy clears.
func WithSessionStore(s *session.Store) Option {
	return func(c *Client) { c.store = s }
}

// WithAuthRejectedHook registers a callback invoked after any 401
// response, once the session has been cleared. The navigation layer
// uses it to force a redirect to the login entry point.
func WithAuthRejectedHook(fn func()) Option {
	return func(c *Client) { c.onAuthRejected = fn }
}

// New builds a Client for baseURL. An empty baseURL falls back to the
// GESCAR_API_URL environment variable, then to the local default.
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = os.Getenv(envBaseURL)
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type errorEnvelope struct {
	Error string `json:"error"`
}

// do performs one API call: marshal body, attach the bearer token if
// a session exists, execute, enforce the 401 policy, and decode into
// out when a destination is given.
func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return &RequestFailure{Op: op, Err: fmt.Errorf("encode request: %w", err)}
		}
		reqBody = bytes.NewReader(encoded)
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reqBody)
	if err != nil {
		return &RequestFailure{Op: op, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.store != nil {
		if token, _ := c.store.Load(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &RequestFailure{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		if c.store != nil {
			_ = c.store.Clear()
		}
		if c.onAuthRejected != nil {
			c.onAuthRejected()
		}
		return &RequestFailure{Op: op, StatusCode: resp.StatusCode, Err: ErrAuthRejected}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var envelope errorEnvelope
		_ = json.NewDecoder(resp.Body).Decode(&envelope)
		return &RequestFailure{Op: op, StatusCode: resp.StatusCode, Message: envelope.Error}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &RequestFailure{Op: op, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}
