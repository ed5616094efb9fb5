package inventory

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/soocrates/minishop/internal/domains/orders/ports"
)

func TestDecreaseStock_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/products/101/decrease_stock", r.URL.Path)
		var body map[string]int64
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.EqualValues(t, 2, body["quantity"])
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":101,"new_stock":3}`))
	}))
	defer server.Close()

	client, err := New(server.URL)
	require.NoError(t, err)

	result, err := client.DecreaseStock(context.Background(), 101, 2)
	require.NoError(t, err)
	require.Equal(t, ports.StockDecremented, result.Outcome)
	require.EqualValues(t, 3, result.NewStock)
}

func TestDecreaseStock_ProductMissing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client, err := New(server.URL)
	require.NoError(t, err)

	result, err := client.DecreaseStock(context.Background(), 999, 1)
	require.NoError(t, err)
	require.Equal(t, ports.StockProductMissing, result.Outcome)
}

func TestDecreaseStock_Insufficient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	client, err := New(server.URL)
	require.NoError(t, err)

	result, err := client.DecreaseStock(context.Background(), 101, 100)
	require.NoError(t, err)
	require.Equal(t, ports.StockInsufficient, result.Outcome)
}

func TestDecreaseStock_UnexpectedStatusIsUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer server.Close()

	client, err := New(server.URL)
	require.NoError(t, err)

	_, err = client.DecreaseStock(context.Background(), 101, 1)
	var upstream *ports.UpstreamError
	require.ErrorAs(t, err, &upstream)
	require.Equal(t, ports.ServiceProduct, upstream.Service)
	require.Equal(t, http.StatusTeapot, upstream.Status)
}

func TestDecreaseStock_UndecodableBodyIsUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer server.Close()

	client, err := New(server.URL)
	require.NoError(t, err)

	_, err = client.DecreaseStock(context.Background(), 101, 1)
	var upstream *ports.UpstreamError
	require.ErrorAs(t, err, &upstream)
	require.Equal(t, ports.ServiceProduct, upstream.Service)
}

func TestDecreaseStock_ConnectionRefusedIsUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client, err := New(server.URL)
	require.NoError(t, err)

	_, err = client.DecreaseStock(context.Background(), 101, 1)
	var unavailable *ports.UnavailableError
	require.ErrorAs(t, err, &unavailable)
	require.Equal(t, ports.ServiceProduct, unavailable.Service)
}

func TestDecreaseStock_TimeoutIsUnavailable(t *testing.T) {
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

	_, err = client.DecreaseStock(context.Background(), 101, 1)
	var unavailable *ports.UnavailableError
	require.ErrorAs(t, err, &unavailable)
}

func TestIncreaseStock_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/products/101/increase_stock", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":101,"new_stock":7}`))
	}))
	defer server.Close()

	client, err := New(server.URL)
	require.NoError(t, err)
	require.NoError(t, client.IncreaseStock(context.Background(), 101, 2))
}

func TestIncreaseStock_NonOKStatusIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client, err := New(server.URL)
	require.NoError(t, err)

	err = client.IncreaseStock(context.Background(), 101, 2)
	var upstream *ports.UpstreamError
	require.ErrorAs(t, err, &upstream)
}
