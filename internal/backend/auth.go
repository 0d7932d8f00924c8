package backend

import (
	"context"
	"net/http"

	"github.com/revaissue/webclient/internal/config"
)

// TokenTransport mirrors the credential issuance response body.
type TokenTransport struct {
	Token string `json:"token"`
}

// AuthClient talks to the identity endpoints of the tracker backend.
type AuthClient struct {
	c           *Client
	loginPath   string
	accountPath string
	probePath   string
}

// NewAuthClient builds the auth client.
func NewAuthClient(c *Client, cfg config.BackendConfig) *AuthClient {
	return &AuthClient{
		c:           c,
		loginPath:   cfg.LoginPath,
		accountPath: cfg.AccountPath,
		probePath:   cfg.AuthProbePath,
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type accountRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// Login exchanges credentials for a bearer token. Rejections come back
// as *APIError, unmodified.
func (a *AuthClient) Login(ctx context.Context, username, password string) (*TokenTransport, error) {
	var out TokenTransport
	err := a.c.doJSON(ctx, http.MethodPost, a.loginPath, loginRequest{Username: username, Password: password}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateAccount registers a new tracker account. The backend replies
// with a plain-text confirmation.
func (a *AuthClient) CreateAccount(ctx context.Context, username, password, email, role string) (string, error) {
	return a.c.doText(ctx, http.MethodPost, a.accountPath, accountRequest{
		Username: username,
		Password: password,
		Email:    email,
		Role:     role,
	})
}

// Probe issues the remote authorization check and returns the reply's
// status code. The bearer credential rides along via the client's
// transport. Transport failures surface as errors.
func (a *AuthClient) Probe(ctx context.Context) (int, error) {
	return a.c.doStatus(ctx, http.MethodGet, a.probePath)
}
