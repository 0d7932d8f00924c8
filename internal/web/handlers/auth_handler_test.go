package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/revaissue/webclient/internal/auth"
	"github.com/revaissue/webclient/internal/backend"
	"github.com/revaissue/webclient/internal/config"
	"github.com/revaissue/webclient/internal/credstore"
	"github.com/revaissue/webclient/internal/session"
)

func mintToken(t *testing.T, sub, username, role string, exp time.Time) string {
	t.Helper()
	claims := &auth.Claims{
		SubjectID: sub,
		Username:  username,
		Role:      role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	return signed
}

func TestLogin_HappyPath(t *testing.T) {
	issued := mintToken(t, "1", "alice", "ADMIN", time.Now().Add(time.Hour))

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if body["username"] == "alice" && body["password"] == "pw" {
			_ = json.NewEncoder(w).Encode(map[string]string{"token": issued})
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	cfg := config.BackendConfig{BaseURL: server.URL, LoginPath: "/users/login"}
	store := credstore.NewMemoryStore()
	client := backend.NewClient(cfg, store, zap.NewNop())
	authClient := backend.NewAuthClient(client, cfg)
	oracle := session.NewOracle(store, authClient, zap.NewNop())

	app := fiber.New()
	handler := NewAuthHandler(oracle, authClient, nil)
	app.Post("/login", handler.Login)

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"username":"alice","password":"pw"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var payload struct {
		Data struct {
			Authenticated bool              `json:"authenticated"`
			Principal     session.Principal `json:"principal"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.True(t, payload.Data.Authenticated)
	assert.Equal(t, session.Principal{ID: "1", Username: "alice", Email: "", Role: auth.RoleAdmin}, payload.Data.Principal)

	stored, err := store.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, issued, stored)
	assert.True(t, oracle.IsAuthenticated(context.Background()))
}

func TestLogin_RejectionShowsGenericMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "user alice is locked out until friday", http.StatusUnauthorized)
	}))
	defer server.Close()

	cfg := config.BackendConfig{BaseURL: server.URL, LoginPath: "/users/login"}
	store := credstore.NewMemoryStore()
	client := backend.NewClient(cfg, store, zap.NewNop())
	authClient := backend.NewAuthClient(client, cfg)
	oracle := session.NewOracle(store, authClient, zap.NewNop())

	app := fiber.New()
	handler := NewAuthHandler(oracle, authClient, nil)
	app.Post("/login", handler.Login)

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"username":"alice","password":"bad"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	// Whatever the backend said, the user sees the generic message.
	assert.Equal(t, "invalid username or password", string(body))
	assert.NotContains(t, string(body), "locked out")

	_, err = store.Get(context.Background())
	assert.ErrorIs(t, err, credstore.ErrNoCredential)
}

func TestLogout_ClearsStoreAndRedirects(t *testing.T) {
	store := credstore.NewMemoryStore()
	require.NoError(t, store.Set(context.Background(), mintToken(t, "1", "alice", "ADMIN", time.Now().Add(time.Hour))))

	oracle := session.NewOracle(store, nil, zap.NewNop())
	app := fiber.New()
	handler := NewAuthHandler(oracle, nil, nil)
	app.Post("/logout", handler.Logout)

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/logout", nil))
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))

	_, err = store.Get(context.Background())
	assert.ErrorIs(t, err, credstore.ErrNoCredential)
}
