package chapa

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	json "github.com/json-iterator/go"
	"github.com/rs/zerolog"
)

// RawResponse carries the HTTP status and body of a Chapa API reply.
type RawResponse struct {
	StatusCode int
	Body       []byte
}

// OK reports whether the status code is in the 2xx range.
func (r *RawResponse) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Only GET and POST are used by any Chapa operation; everything else is
// rejected before a request is built.
var supportedMethods = map[string]struct{}{
	http.MethodGet:  {},
	http.MethodPost: {},
}

type requestOptions struct {
	query   url.Values
	body    any
	headers map[string]string
}

// transport sends every request from a single point with the authorization
// headers attached.
type transport struct {
	httpClient *http.Client
	baseURL    string
	headers    map[string]string
	log        zerolog.Logger
}

func newTransport(httpClient *http.Client, baseURL, token string, log zerolog.Logger) *transport {
	return &transport{
		httpClient: httpClient,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		headers: map[string]string{
			"Authorization": "Bearer " + token,
			"Content-Type":  "application/json",
		},
		log: log,
	}
}

func (t *transport) execute(ctx context.Context, method, path string, opts requestOptions) (*RawResponse, error) {
	if _, ok := supportedMethods[method]; !ok {
		return nil, &ConfigError{Reason: fmt.Sprintf("HTTP method %q is not supported", method)}
	}

	u := t.baseURL + "/" + strings.TrimPrefix(path, "/")
	if len(opts.query) > 0 {
		u += "?" + opts.query.Encode()
	}

	var body io.Reader
	if opts.body != nil {
		data, err := json.Marshal(opts.body)
		if err != nil {
			return nil, &ConfigError{Reason: fmt.Sprintf("encode request payload: %v", err)}
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, &ConfigError{Reason: fmt.Sprintf("build request: %v", err)}
	}

	for k, v := range t.headers {
		req.Header.Set(k, v)
	}
	// Caller-supplied headers win on collision.
	for k, v := range opts.headers {
		req.Header.Set(k, v)
	}

	t.log.Debug().Str("method", method).Str("url", u).Msg("sending request")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		t.log.Error().Err(err).Str("method", method).Str("url", u).Msg("request failed")
		return nil, &TransportError{Method: method, URL: u, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Method: method, URL: u, Err: err}
	}

	t.log.Debug().Int("status", resp.StatusCode).Str("url", u).Msg("response received")

	return &RawResponse{StatusCode: resp.StatusCode, Body: data}, nil
}
