package remotestore

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/digistore-backend/internal/config"
)

func newTestClient(baseURL string) *Client {
	cfg := &config.Config{}
	cfg.Store.RemoteBaseURL = baseURL
	cfg.Store.RemoteAPIKey = "test-key"
	cfg.Store.RemoteTimeout = 2 * time.Second
	return NewClient(cfg)
}

func TestFlexIDAcceptsNumbersAndStrings(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{`1`, "1"},
		{`"1"`, "1"},
		{`42`, "42"},
		{`"abc-7"`, "abc-7"},
		{`null`, ""},
	}
	for _, tc := range cases {
		var id flexID
		require.NoError(t, json.Unmarshal([]byte(tc.raw), &id), "raw %s", tc.raw)
		assert.Equal(t, tc.want, string(id), "raw %s", tc.raw)
	}
}

func TestFetchProducts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("apikey"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id": 1, "name": "Netflix Premium", "price": 69000, "category": "entertainment",
			 "variants": [{"id": 10, "product_id": "1", "name": "1 Tháng", "price": 69000}]},
			{"id": "2", "name": "Spotify Premium", "price": 29000, "category": "entertainment"}
		]`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	products, err := client.FetchProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)

	// Numeric and quoted ids both land as strings
	assert.Equal(t, "1", products[0].ID)
	assert.Equal(t, "2", products[1].ID)
	require.Len(t, products[0].Variants, 1)
	assert.Equal(t, "1", products[0].Variants[0].ProductID)
}

func TestFetchProductsErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream unavailable", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.FetchProducts(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestFetchProductsNotConfigured(t *testing.T) {
	client := newTestClient("")
	assert.False(t, client.Enabled())
	_, err := client.FetchProducts(context.Background())
	require.Error(t, err)
}
