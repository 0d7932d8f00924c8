package session

import (
	"context"
	"errors"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/revaissue/webclient/internal/auth"
	"github.com/revaissue/webclient/internal/backend"
	"github.com/revaissue/webclient/internal/credstore"
)

type fakeIssuer struct {
	resp  *backend.TokenTransport
	err   error
	calls int
}

func (f *fakeIssuer) Login(_ context.Context, _, _ string) (*backend.TokenTransport, error) {
	f.calls++
	return f.resp, f.err
}

func mintToken(t *testing.T, sub, username, role string, exp *time.Time) string {
	t.Helper()
	claims := &auth.Claims{SubjectID: sub, Username: username, Role: role}
	if exp != nil {
		claims.ExpiresAt = jwt.NewNumericDate(*exp)
	}
	token := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	return signed
}

func newOracle(t *testing.T, issuer TokenIssuer) (*Oracle, credstore.Store) {
	t.Helper()
	store := credstore.NewMemoryStore()
	return NewOracle(store, issuer, zap.NewNop()), store
}

func TestLogin_StoresTokenAndForwardsResult(t *testing.T) {
	ctx := context.Background()
	exp := time.Now().Add(time.Hour)
	token := mintToken(t, "1", "alice", "ADMIN", &exp)

	issuer := &fakeIssuer{resp: &backend.TokenTransport{Token: token}}
	oracle, store := newOracle(t, issuer)

	resp, err := oracle.Login(ctx, "alice", "pw")
	require.NoError(t, err)
	assert.Equal(t, token, resp.Token)

	stored, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, token, stored)

	assert.True(t, oracle.IsAuthenticated(ctx))
	principal, ok := oracle.CurrentPrincipal(ctx)
	require.True(t, ok)
	assert.Equal(t, Principal{ID: "1", Username: "alice", Email: "", Role: auth.RoleAdmin}, principal)
}

func TestLogin_FailurePropagatesWithoutRetry(t *testing.T) {
	ctx := context.Background()
	rejection := &backend.APIError{StatusCode: 401, Body: "bad credentials"}
	issuer := &fakeIssuer{err: rejection}
	oracle, store := newOracle(t, issuer)

	_, err := oracle.Login(ctx, "alice", "wrong")
	var apiErr *backend.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, rejection, apiErr)
	assert.Equal(t, 1, issuer.calls)

	_, err = store.Get(ctx)
	assert.ErrorIs(t, err, credstore.ErrNoCredential)
}

func TestIsAuthenticated_EmptyStore(t *testing.T) {
	oracle, _ := newOracle(t, &fakeIssuer{})
	assert.False(t, oracle.IsAuthenticated(context.Background()))
}

func TestIsAuthenticated_MalformedToken(t *testing.T) {
	ctx := context.Background()
	oracle, store := newOracle(t, &fakeIssuer{})
	require.NoError(t, store.Set(ctx, "not-a-token"))

	assert.False(t, oracle.IsAuthenticated(ctx))
	_, ok := oracle.CurrentPrincipal(ctx)
	assert.False(t, ok)
}

func TestIsAuthenticated_ExpirySemantics(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("exp in the future", func(t *testing.T) {
		oracle, store := newOracle(t, &fakeIssuer{})
		oracle.now = func() time.Time { return now }
		exp := now.Add(time.Hour)
		require.NoError(t, store.Set(ctx, mintToken(t, "1", "alice", "ADMIN", &exp)))
		assert.True(t, oracle.IsAuthenticated(ctx))
	})

	t.Run("exp in the past", func(t *testing.T) {
		oracle, store := newOracle(t, &fakeIssuer{})
		oracle.now = func() time.Time { return now }
		exp := now.Add(-10 * time.Second)
		require.NoError(t, store.Set(ctx, mintToken(t, "1", "alice", "ADMIN", &exp)))
		assert.False(t, oracle.IsAuthenticated(ctx))
	})

	t.Run("no exp means valid indefinitely", func(t *testing.T) {
		oracle, store := newOracle(t, &fakeIssuer{})
		oracle.now = func() time.Time { return now.Add(1000 * time.Hour) }
		require.NoError(t, store.Set(ctx, mintToken(t, "1", "alice", "ADMIN", nil)))
		assert.True(t, oracle.IsAuthenticated(ctx))
	})
}

func TestLazyExpiry_StaleTokenStaysInStore(t *testing.T) {
	ctx := context.Background()
	oracle, store := newOracle(t, &fakeIssuer{})

	exp := time.Now().Add(-10 * time.Second)
	token := mintToken(t, "1", "alice", "ADMIN", &exp)
	require.NoError(t, store.Set(ctx, token))

	// Expiry is detected, not purged: validity checks report logged
	// out while the stale token remains until an explicit logout.
	assert.False(t, oracle.IsAuthenticated(ctx))
	stored, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, token, stored)

	require.NoError(t, oracle.Logout(ctx))
	_, err = store.Get(ctx)
	assert.ErrorIs(t, err, credstore.ErrNoCredential)
}

func TestResolve_RoleNormalization(t *testing.T) {
	ctx := context.Background()
	oracle, store := newOracle(t, &fakeIssuer{})

	require.NoError(t, store.Set(ctx, mintToken(t, "7", "carol", "developer", nil)))
	res := oracle.Resolve(ctx)
	require.True(t, res.Identified)
	assert.Equal(t, auth.RoleDeveloper, res.Principal.Role)

	require.NoError(t, store.Set(ctx, mintToken(t, "8", "dave", "WIZARD", nil)))
	res = oracle.Resolve(ctx)
	require.True(t, res.Identified)
	assert.Equal(t, auth.RoleTester, res.Principal.Role)
	assert.Equal(t, "8", res.Principal.ID)
	assert.Empty(t, res.Principal.Email)
}

func TestResolve_AnonymousWhenEmpty(t *testing.T) {
	oracle, _ := newOracle(t, &fakeIssuer{})
	res := oracle.Resolve(context.Background())
	assert.False(t, res.Identified)
}

func TestLogin_StoreFailureSurfaces(t *testing.T) {
	ctx := context.Background()
	token := mintToken(t, "1", "alice", "ADMIN", nil)
	issuer := &fakeIssuer{resp: &backend.TokenTransport{Token: token}}
	oracle := NewOracle(failingStore{}, issuer, zap.NewNop())

	_, err := oracle.Login(ctx, "alice", "pw")
	require.Error(t, err)
	assert.False(t, errors.Is(err, credstore.ErrNoCredential))
}

type failingStore struct{}

func (failingStore) Set(context.Context, string) error { return errors.New("disk full") }
func (failingStore) Get(context.Context) (string, error) {
	return "", credstore.ErrNoCredential
}
func (failingStore) Clear(context.Context) error { return nil }
