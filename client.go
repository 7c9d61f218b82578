// Package chapa is a typed Go client for the Chapa payment API. It covers
// payment initialization and verification, subaccounts, single and bulk bank
// transfers, balances, and currency swaps.
package chapa

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

const defaultBaseURL = "https://api.chapa.co/v1"

// Client calls the Chapa API with a fixed bearer token. It is safe for
// concurrent use; all methods share one underlying HTTP transport, released
// by Close.
type Client struct {
	transport  *transport
	httpClient *http.Client
	baseURL    string
	log        zerolog.Logger
	closed     atomic.Bool
}

// Option customizes the client.
type Option func(*Client)

// WithBaseURL overrides the production API root.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.baseURL = u
		}
	}
}

// WithHTTPClient supplies the HTTP client used for every request.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger attaches a logger for debug-level request tracing. By default
// nothing is logged.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) {
		c.log = l
	}
}

// New builds a Client authenticated with the given API token.
func New(token string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(token) == "" {
		return nil, errors.New("chapa: API token is required")
	}

	c := &Client{
		baseURL: defaultBaseURL,
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	c.transport = newTransport(c.httpClient, c.baseURL, token, c.log)

	return c, nil
}

// Close releases the underlying transport. Operations invoked after Close
// fail with ErrClosed; calling Close more than once is a no-op.
func (c *Client) Close() error {
	if c.closed.CompareAndSwap(false, true) {
		c.httpClient.CloseIdleConnections()
	}
	return nil
}

// call runs the shared pipeline every operation goes through: execute the
// request, decode the envelope, classify the outcome.
func (c *Client) call(ctx context.Context, method, path string, opts requestOptions) (*envelope, error) {
	if c.closed.Load() {
		return nil, ErrClosed
	}
	raw, err := c.transport.execute(ctx, method, path, opts)
	if err != nil {
		return nil, err
	}
	return decodeEnvelope(raw)
}
