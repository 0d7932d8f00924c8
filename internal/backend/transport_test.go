package backend

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revaissue/webclient/internal/credstore"
)

func TestBearerTransport_AttachesSingleHeader(t *testing.T) {
	var gotAuth []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header["Authorization"]
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	store := credstore.NewMemoryStore()
	require.NoError(t, store.Set(context.Background(), "tok-123"))

	client := &http.Client{Transport: &BearerTransport{Store: store}}
	resp, err := client.Get(server.URL)
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck

	require.Len(t, gotAuth, 1)
	assert.Equal(t, "Bearer tok-123", gotAuth[0])
}

func TestBearerTransport_ForwardsUnchangedWithoutToken(t *testing.T) {
	var gotAuth []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header["Authorization"]
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := &http.Client{Transport: &BearerTransport{Store: credstore.NewMemoryStore()}}
	resp, err := client.Get(server.URL)
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck

	assert.Empty(t, gotAuth)
}

func TestBearerTransport_DoesNotMutateOriginalRequest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	store := credstore.NewMemoryStore()
	require.NoError(t, store.Set(context.Background(), "tok-123"))

	req, err := http.NewRequest(http.MethodGet, server.URL, nil)
	require.NoError(t, err)

	transport := &BearerTransport{Store: store}
	resp, err := transport.RoundTrip(req)
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck

	assert.Empty(t, req.Header.Get("Authorization"))
}

func TestBearerTransport_StaleTokenStillAttached(t *testing.T) {
	// Attaching an expired credential is allowed; rejecting it is the
	// remote side's responsibility.
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	store := credstore.NewMemoryStore()
	require.NoError(t, store.Set(context.Background(), "expired-tok"))

	client := &http.Client{Transport: &BearerTransport{Store: store}}
	resp, err := client.Get(server.URL)
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck

	assert.Equal(t, "Bearer expired-tok", gotAuth)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
