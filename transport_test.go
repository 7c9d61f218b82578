package chapa

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExecuteRejectsUnsupportedMethod(t *testing.T) {
	hits := 0
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits++
	})

	_, err := c.transport.execute(context.Background(), http.MethodDelete, "banks", requestOptions{})

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	require.Contains(t, cfgErr.Reason, "DELETE")
	require.Zero(t, hits, "no request should be attempted for an unsupported verb")
}

func TestExecuteAttachesAuthHeaders(t *testing.T) {
	var auth, contentType string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		contentType = r.Header.Get("Content-Type")
		jsonHandler(http.StatusOK, `{"message":"ok","status":"success","data":{}}`)(w, r)
	})

	_, err := c.transport.execute(context.Background(), http.MethodGet, "banks", requestOptions{})
	require.NoError(t, err)
	require.Equal(t, "Bearer test-token", auth)
	require.Equal(t, "application/json", contentType)
}

func TestExecuteExtraHeadersOverrideBase(t *testing.T) {
	var contentType, custom string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		custom = r.Header.Get("X-Request-Id")
	})

	_, err := c.transport.execute(context.Background(), http.MethodGet, "banks", requestOptions{
		headers: map[string]string{
			"Content-Type": "text/plain",
			"X-Request-Id": "req-1",
		},
	})
	require.NoError(t, err)
	require.Equal(t, "text/plain", contentType)
	require.Equal(t, "req-1", custom)
}

func TestExecuteJoinsURLWithSingleSlash(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
	}))
	t.Cleanup(srv.Close)

	c, err := New("test-token", WithBaseURL(srv.URL+"/v1/"))
	require.NoError(t, err)
	defer c.Close()

	_, err = c.transport.execute(context.Background(), http.MethodGet, "/banks", requestOptions{})
	require.NoError(t, err)
	require.Equal(t, "/v1/banks", gotPath)
}

func TestExecuteWrapsNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c, err := New("test-token", WithBaseURL(srv.URL))
	require.NoError(t, err)
	defer c.Close()

	_, err = c.transport.execute(context.Background(), http.MethodGet, "banks", requestOptions{})

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	require.Equal(t, http.MethodGet, transportErr.Method)
	require.Error(t, transportErr.Unwrap())
}
