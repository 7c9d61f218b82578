package chapa

import (
	"errors"
	"fmt"
)

// ErrClosed is returned by every operation once Close has been called.
var ErrClosed = errors.New("chapa: client is closed")

// ConfigError reports misuse of the client API by the caller, such as an
// unsupported HTTP verb or a missing mandatory argument. It is raised before
// any network I/O is attempted.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "chapa: " + e.Reason
}

// TransportError wraps a network-level failure (DNS, connection refused,
// timeout). The underlying error is reachable through Unwrap; the request is
// never retried.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("chapa: %s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError reports a response body that is not valid JSON. The raw
// response is attached for diagnostics.
type DecodeError struct {
	Response *RawResponse
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("chapa: invalid JSON response (status=%d): %v", e.Response.StatusCode, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// APIError surfaces non-successful HTTP responses from Chapa. It carries the
// server-supplied message and the raw response for callers that need the
// status code or body.
type APIError struct {
	Message  string
	Response *RawResponse
}

func (e *APIError) Error() string {
	return fmt.Sprintf("chapa api error: status=%d message=%s", e.Response.StatusCode, e.Message)
}

// SchemaError reports a success payload missing a field the result type
// requires, which means the API contract drifted.
type SchemaError struct {
	Field string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("chapa: data missing %s field", e.Field)
}
