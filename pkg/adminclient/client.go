// Package adminclient is a typed client for the back-office REST API.
package adminclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	LoginPath      = "/login"
	apiPrefix      = "/api/v1"
	adminPrefix    = apiPrefix + "/super-admin"
	defaultTimeout = 10 * time.Second
)

type Option func(*Client)

// WithHTTPClient replaces the default client. Its timeout is kept.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// WithTokenStores sets where tokens live. Either may be nil to keep the
// default in-memory store.
func WithTokenStores(session, persistent TokenStore) Option {
	return func(c *Client) {
		if session != nil {
			c.tokens.session = session
		}
		if persistent != nil {
			c.tokens.persistent = persistent
		}
	}
}

// WithUnauthorizedHandler is called with the login path after any 401.
func WithUnauthorizedHandler(fn func(redirect string)) Option {
	return func(c *Client) { c.onUnauthorized = fn }
}

type Client struct {
	baseURL        string
	http           *http.Client
	tokens         tokenChain
	onUnauthorized func(redirect string)
}

func New(baseURL string, opts ...Option) *Client {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if trimmed == "" {
		trimmed = "http://localhost:8080"
	}

	c := &Client{
		baseURL:        trimmed,
		http:           &http.Client{Timeout: defaultTimeout},
		tokens:         tokenChain{session: NewMemoryStore(), persistent: NewMemoryStore()},
		onUnauthorized: func(string) {},
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Token returns the bearer token currently in use, "" when logged out.
func (c *Client) Token() (string, error) {
	return c.tokens.load()
}

func (c *Client) newRequest(ctx context.Context, method, endpoint string, query url.Values, body interface{}) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("json.Marshal -> %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	target := c.baseURL + endpoint
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("http.NewRequestWithContext -> %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	token, err := c.tokens.load()
	if err != nil {
		return nil, fmt.Errorf("c.tokens.load -> %w", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return req, nil
}

// raw performs the call and returns the body of a 2xx answer.
func (c *Client) raw(ctx context.Context, method, endpoint string, query url.Values, body interface{}) ([]byte, error) {
	req, err := c.newRequest(ctx, method, endpoint, query, body)
	if err != nil {
		return nil, err
	}

	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("c.http.Do -> %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusUnauthorized {
		c.unauthorized()
	}
	failed := res.StatusCode < 200 || res.StatusCode >= 300

	payload, err := io.ReadAll(res.Body)
	if err != nil {
		if failed {
			// the status alone still tells what went wrong
			return nil, parseAPIError(res.StatusCode, nil)
		}
		return nil, fmt.Errorf("io.ReadAll -> %w", err)
	}
	if failed {
		return nil, parseAPIError(res.StatusCode, payload)
	}

	return payload, nil
}

func (c *Client) do(ctx context.Context, method, endpoint string, query url.Values, body, out interface{}) error {
	payload, err := c.raw(ctx, method, endpoint, query, body)
	if err != nil {
		return err
	}
	if out == nil || len(payload) == 0 {
		return nil
	}
	if err = json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("json.Unmarshal -> %w", err)
	}

	return nil
}

func (c *Client) unauthorized() {
	if err := c.tokens.clear(); err != nil {
		zap.L().Warn("failed to clear stored tokens", zap.Error(err))
	}
	c.onUnauthorized(LoginPath)
}

func restaurantPath(id uint, parts ...string) string {
	p := fmt.Sprintf("%s/restaurants/%d", adminPrefix, id)
	for _, part := range parts {
		p += "/" + part
	}

	return p
}
