package userdirectory

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/soocrates/minishop/internal/domains/orders/ports"
)

func TestLookupUser_Found(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/users/42", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":42,"name":"Alice","email":"alice@example.com","wallet":100.0}`))
	}))
	defer server.Close()

	client, err := New(server.URL)
	require.NoError(t, err)

	outcome, err := client.LookupUser(context.Background(), 42)
	require.NoError(t, err)
	require.Equal(t, ports.UserFound, outcome)
}

func TestLookupUser_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client, err := New(server.URL)
	require.NoError(t, err)

	outcome, err := client.LookupUser(context.Background(), 7)
	require.NoError(t, err)
	require.Equal(t, ports.UserNotFound, outcome)
}

func TestLookupUser_UnexpectedStatusIsUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client, err := New(server.URL)
	require.NoError(t, err)

	_, err = client.LookupUser(context.Background(), 7)
	var upstream *ports.UpstreamError
	require.ErrorAs(t, err, &upstream)
	require.Equal(t, ports.ServiceUser, upstream.Service)
	require.Equal(t, http.StatusInternalServerError, upstream.Status)
}

func TestLookupUser_ConnectionRefusedIsUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // nothing listens anymore

	client, err := New(server.URL)
	require.NoError(t, err)

	_, err = client.LookupUser(context.Background(), 7)
	var unavailable *ports.UnavailableError
	require.ErrorAs(t, err, &unavailable)
	require.Equal(t, ports.ServiceUser, unavailable.Service)
}

func TestLookupUser_TimeoutIsUnavailable(t *testing.T) {
	block := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer func() {
		close(block)
		server.Close()
	}()

	client, err := New(server.URL, WithTimeout(50*time.Millisecond))
	require.NoError(t, err)

	_, err = client.LookupUser(context.Background(), 7)
	var unavailable *ports.UnavailableError
	require.ErrorAs(t, err, &unavailable)
}

func TestNew_RequiresBaseURL(t *testing.T) {
	_, err := New("   ")
	require.Error(t, err)
}
