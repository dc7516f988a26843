package ports

import (
	"context"
	"net/http"
	"net/url"
)

// Request describes one call against the restaurant API. Path is relative to
// the configured base URL and starts with a slash.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   any
	Header http.Header
}

// APIClient is the port the console domain modules call through.
type APIClient interface {
	// Do sends an authenticated request and decodes the response data into
	// out. It fails with ErrMissingToken before touching the network when no
	// token is available.
	Do(ctx context.Context, req Request, out any) error

	// DoPublic sends a request without a bearer token (login, register).
	DoPublic(ctx context.Context, req Request, out any) error
}

// TokenSource supplies the bearer token for authenticated requests.
type TokenSource interface {
	Token() string
}

// KeyValueStore is persistent string storage for the session.
type KeyValueStore interface {
	// Get returns the value for key and whether it was present.
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
}
