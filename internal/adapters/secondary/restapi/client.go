// Package restapi is the HTTP client for the restaurant API.
package restapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"

	apperrors "github.com/lorrc/restaurant-console/internal/core/errors"
	"github.com/lorrc/restaurant-console/internal/core/ports"
	"github.com/lorrc/restaurant-console/internal/infrastructure/logging"
)

const (
	// RequestIDHeader carries the per-request correlation id.
	RequestIDHeader = "X-Request-ID"

	maxResponseBytes = 10 << 20
)

// UnauthorizedHandler is invoked once for every 401 response.
type UnauthorizedHandler = func(ctx context.Context)

// Client implements ports.APIClient over net/http.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  ports.TokenSource
	logger  *slog.Logger

	mu             sync.RWMutex
	onUnauthorized UnauthorizedHandler
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTimeout sets the per-request timeout of the default http.Client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// WithLogger sets the client logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// New creates a client for baseURL (for example http://localhost:5000/api)
// that reads bearer tokens from tokens.
func New(baseURL string, tokens ports.TokenSource, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
		tokens:  tokens,
		logger:  logging.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetUnauthorizedHandler registers the single 401 interceptor.
func (c *Client) SetUnauthorizedHandler(fn UnauthorizedHandler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onUnauthorized = fn
}

// Do implements ports.APIClient.
func (c *Client) Do(ctx context.Context, req ports.Request, out any) error {
	token := c.tokens.Token()
	if token == "" {
		return apperrors.ErrMissingToken
	}
	return c.send(ctx, req, token, out)
}

// DoPublic implements ports.APIClient.
func (c *Client) DoPublic(ctx context.Context, req ports.Request, out any) error {
	return c.send(ctx, req, "", out)
}

func (c *Client) send(ctx context.Context, req ports.Request, token string, out any) error {
	op := req.Method + " " + req.Path

	httpReq, err := c.newRequest(ctx, req, token)
	if err != nil {
		return err
	}

	start := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return &apperrors.NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return &apperrors.NetworkError{Op: op, Err: err}
	}

	c.logger.DebugContext(ctx, "api response",
		"method", req.Method,
		"path", req.Path,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
		"request_id", httpReq.Header.Get(RequestIDHeader),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		statusErr := statusError(resp.StatusCode, body)
		if resp.StatusCode == http.StatusUnauthorized && token != "" {
			c.unauthorized(ctx)
		}
		return statusErr
	}

	return decodeData(op, body, out)
}

func (c *Client) newRequest(ctx context.Context, req ports.Request, token string) (*http.Request, error) {
	target := c.baseURL + req.Path
	if len(req.Query) > 0 {
		target += "?" + req.Query.Encode()
	}

	var body io.Reader
	if req.Body != nil {
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("encode %s body: %w", req.Path, err)
		}
		body = bytes.NewReader(data)
	}

	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	if token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	requestID := logging.GetRequestID(ctx)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	httpReq.Header.Set(RequestIDHeader, requestID)

	for key, values := range req.Header {
		httpReq.Header.Del(key)
		for _, v := range values {
			httpReq.Header.Add(key, v)
		}
	}
	return httpReq, nil
}

func (c *Client) unauthorized(ctx context.Context) {
	c.mu.RLock()
	fn := c.onUnauthorized
	c.mu.RUnlock()
	if fn != nil {
		fn(ctx)
	}
}

// statusError builds the error for a non-2xx response, preferring the
// server's error field over a generic message.
func statusError(status int, body []byte) error {
	err := &apperrors.HTTPStatusError{StatusCode: status}
	if gjson.ValidBytes(body) {
		parsed := gjson.ParseBytes(body)
		err.Message = parsed.Get("error").String()
		if err.Message == "" {
			err.Message = parsed.Get("message").String()
		}
		err.Code = parsed.Get("code").String()
	}
	return err
}

// decodeData unmarshals the response into out. An envelope with a data field
// is unwrapped first.
func decodeData(op string, body []byte, out any) error {
	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if !gjson.ValidBytes(body) {
		return &apperrors.DecodeError{What: op + " response", Err: fmt.Errorf("invalid JSON")}
	}

	raw := body
	if data := gjson.GetBytes(body, "data"); data.Exists() {
		raw = []byte(data.Raw)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return &apperrors.DecodeError{What: op + " response", Err: err}
	}
	return nil
}
