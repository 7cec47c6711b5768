package backend

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
	"sync"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"
)

const defaultTimeout = 30 * time.Second

// Client is the HTTP wrapper for the remote workspace REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	userAgent  string

	mu    sync.RWMutex
	hooks []UnauthorizedHook
}

// NewClient creates a client for the API rooted at baseURL,
// e.g. "http://localhost:8000/api".
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the API root the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// OnUnauthorized registers a hook fired on every 401.
func (c *Client) OnUnauthorized(h UnauthorizedHook) {
	if h == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hooks = append(c.hooks, h)
}

// Get calls GET path and decodes the (possibly enveloped) body into out.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	raw, err := c.do(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return err
	}
	return decodeEnvelope(raw, out)
}

// Post calls POST path with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	raw, err := c.do(ctx, http.MethodPost, path, nil, body)
	if err != nil {
		return err
	}
	return decodeEnvelope(raw, out)
}

// Put calls PUT path with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	raw, err := c.do(ctx, http.MethodPut, path, nil, body)
	if err != nil {
		return err
	}
	return decodeEnvelope(raw, out)
}

// Delete calls DELETE path.
func (c *Client) Delete(ctx context.Context, path string, out any) error {
	raw, err := c.do(ctx, http.MethodDelete, path, nil, nil)
	if err != nil {
		return err
	}
	return decodeEnvelope(raw, out)
}

// GetList calls GET path and decodes a collection into out, which must be a
// pointer to a slice. The collection may be a bare array, or an object holding
// the array under key (or under data) next to an optional total_pages.
// totalPages is 1 when the server does not report it.
func (c *Client) GetList(ctx context.Context, path string, query url.Values, key string, out any) (int, error) {
	raw, err := c.do(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return 0, err
	}
	return decodeList(raw, key, out)
}

// GetReport calls GET path, decodes the body into out and keeps every field
// of the payload in raw for display of keys out does not name.
func (c *Client) GetReport(ctx context.Context, path string, query url.Values, out any, raw *map[string]any) error {
	body, err := c.do(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return err
	}
	if err := decodeEnvelope(body, out); err != nil {
		return err
	}
	if raw == nil {
		return nil
	}
	return decodeEnvelope(body, raw)
}

// GetRaw calls GET path and returns the body untouched with its content type.
// Used for file exports.
func (c *Client) GetRaw(ctx context.Context, path string, query url.Values) ([]byte, string, error) {
	resp, err := c.send(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read backend response: %w", err)
	}
	if err := c.checkStatus(ctx, resp.StatusCode, raw); err != nil {
		return nil, "", err
	}
	return raw, resp.Header.Get("Content-Type"), nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) ([]byte, error) {
	resp, err := c.send(ctx, method, path, query, body)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read backend response: %w", err)
	}
	if err := c.checkStatus(ctx, resp.StatusCode, raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func (c *Client) send(ctx context.Context, method, path string, query url.Values, body any) (*http.Response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("backend rate limiter: %w", err)
		}
	}

	endpoint := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal %s %s request: %w", method, path, err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s %s request: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.clientFor(ctx).Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call backend %s %s: %w", method, path, err)
	}
	return resp, nil
}

// clientFor returns an HTTP client that attaches the context's bearer token.
func (c *Client) clientFor(ctx context.Context) *http.Client {
	base := c.httpClient.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	transport := otelhttp.NewTransport(base)

	token := TokenFromContext(ctx)
	if token == "" {
		return &http.Client{Transport: transport, Timeout: c.httpClient.Timeout}
	}

	return &http.Client{
		Transport: &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"}),
			Base:   transport,
		},
		Timeout: c.httpClient.Timeout,
	}
}

func (c *Client) checkStatus(ctx context.Context, status int, raw []byte) error {
	if status >= 200 && status < 300 {
		return nil
	}

	apiErr := &APIError{StatusCode: status}
	var body errorBody
	if err := json.Unmarshal(raw, &body); err == nil {
		apiErr.Message = body.Message
		if apiErr.Message == "" {
			apiErr.Message = body.Error
		}
		apiErr.Errors = body.Errors
	} else {
		apiErr.Message = strings.TrimSpace(string(raw))
	}

	if status == http.StatusUnauthorized {
		c.fireUnauthorized(ctx)
	}
	return apiErr
}

func (c *Client) fireUnauthorized(ctx context.Context) {
	c.mu.RLock()
	hooks := make([]UnauthorizedHook, len(c.hooks))
	copy(hooks, c.hooks)
	c.mu.RUnlock()

	for _, h := range hooks {
		h(ctx)
	}
}

// Message returns the server-provided message carried by err, or fallback.
func Message(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

// StatusCode returns the remote status carried by err, or 0.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}
