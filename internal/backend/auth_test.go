package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/revaissue/webclient/internal/config"
	"github.com/revaissue/webclient/internal/credstore"
)

func testBackendConfig(url string) config.BackendConfig {
	return config.BackendConfig{
		BaseURL:       url,
		LoginPath:     "/users/login",
		AccountPath:   "/users/create-account",
		AuthProbePath: "/auth/admin",
	}
}

func TestAuthClient_Login(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/users/login", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if body["username"] == "alice" && body["password"] == "pw" {
			_ = json.NewEncoder(w).Encode(map[string]string{"token": "issued-token"})
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	cfg := testBackendConfig(server.URL)
	client := NewClient(cfg, credstore.NewMemoryStore(), zap.NewNop())
	authClient := NewAuthClient(client, cfg)

	resp, err := authClient.Login(context.Background(), "alice", "pw")
	require.NoError(t, err)
	assert.Equal(t, "issued-token", resp.Token)

	_, err = authClient.Login(context.Background(), "alice", "wrong")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
}

func TestAuthClient_CreateAccount(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/users/create-account", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "bob", body["username"])
		assert.Equal(t, "bob@example.com", body["email"])
		assert.Equal(t, "DEVELOPER", body["role"])

		_, _ = w.Write([]byte("account created"))
	}))
	defer server.Close()

	cfg := testBackendConfig(server.URL)
	client := NewClient(cfg, credstore.NewMemoryStore(), zap.NewNop())
	authClient := NewAuthClient(client, cfg)

	message, err := authClient.CreateAccount(context.Background(), "bob", "pw", "bob@example.com", "DEVELOPER")
	require.NoError(t, err)
	assert.Equal(t, "account created", message)
}

func TestAuthClient_ProbeReportsStatus(t *testing.T) {
	status := http.StatusNoContent
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/admin", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(status)
	}))
	defer server.Close()

	store := credstore.NewMemoryStore()
	require.NoError(t, store.Set(context.Background(), "tok"))

	cfg := testBackendConfig(server.URL)
	client := NewClient(cfg, store, zap.NewNop())
	authClient := NewAuthClient(client, cfg)

	got, err := authClient.Probe(context.Background())
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, got)
	assert.Equal(t, "Bearer tok", gotAuth)

	status = http.StatusForbidden
	got, err = authClient.Probe(context.Background())
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, got)
}

func TestAuthClient_ProbeTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close() // refuse connections

	cfg := testBackendConfig(server.URL)
	client := NewClient(cfg, credstore.NewMemoryStore(), zap.NewNop())
	authClient := NewAuthClient(client, cfg)

	_, err := authClient.Probe(context.Background())
	require.Error(t, err)
}
