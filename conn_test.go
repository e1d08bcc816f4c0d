package superstaq

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDial_MissingCredentials(t *testing.T) {
	t.Setenv(EnvAPIKey, "")
	_, err := Dial(WithRemoteHost("http://example.com"))
	require.Error(t, err)
	assert.IsType(t, CredentialsErr{}, err)
}

func TestDial_InvalidRemoteHost(t *testing.T) {
	tests := []struct {
		name string
		host string
	}{
		{name: "bad scheme", host: "ftp://example.com"},
		{name: "no scheme", host: "example.com"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Dial(WithAPIKey("key"), WithRemoteHost(tt.host))
			assert.Error(t, err)
		})
	}
}

func TestConn_RequestHeaders(t *testing.T) {
	var got http.Header
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		gotPath = r.URL.Path
		w.Write([]byte(`{"balance": 1}`))
	}))
	defer srv.Close()

	conn, err := Dial(WithAPIKey("key"), WithRemoteHost(srv.URL), WithClientApplication("conn-test"))
	require.NoError(t, err)

	resp, err := conn.get(context.Background(), "balance")
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, "/"+APIVersion+"/balance", gotPath)
	assert.Equal(t, "key", got.Get("Authorization"))
	assert.Equal(t, DefaultClientAppl+":conn-test", got.Get("X-Client-Name"))
	assert.NotEmpty(t, got.Get("X-Request-Id"))
}

func TestConn_PostSetsContentType(t *testing.T) {
	var contentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	conn, err := Dial(WithAPIKey("key"), WithRemoteHost(srv.URL))
	require.NoError(t, err)

	resp, err := conn.post(context.Background(), "jobs", map[string]int{"repetitions": 1})
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, "application/json", contentType)
}

func TestConn_FailurePropagatesByDefault(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	conn, err := Dial(WithAPIKey("key"), WithRemoteHost(srv.URL))
	require.NoError(t, err)

	_, err = conn.get(context.Background(), "balance")
	require.Error(t, err)
	assert.Equal(t, 1, calls)

	var httpErr HTTPErr
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusInternalServerError, httpErr.StatusCode)
}

func TestConn_Retries(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls < 3 {
			http.Error(w, "busy", http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"balance": 1}`))
	}))
	defer srv.Close()

	conn, err := Dial(WithAPIKey("key"), WithRemoteHost(srv.URL), WithRetries(3))
	require.NoError(t, err)

	resp, err := conn.get(context.Background(), "balance")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, 3, calls)
}

func TestConn_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad key", http.StatusUnauthorized)
	}))
	defer srv.Close()

	conn, err := Dial(WithAPIKey("wrong"), WithRemoteHost(srv.URL))
	require.NoError(t, err)

	_, err = conn.get(context.Background(), "balance")
	require.Error(t, err)
	assert.IsType(t, CredentialsErr{}, err)
}
