package session

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/revaissue/webclient/internal/auth"
	"github.com/revaissue/webclient/internal/backend"
	"github.com/revaissue/webclient/internal/credstore"
)

// TokenIssuer obtains a credential from the identity source.
type TokenIssuer interface {
	Login(ctx context.Context, username, password string) (*backend.TokenTransport, error)
}

// Principal is the normalized identity exposed to screens and guards.
// Email is always empty: the token carries no email claim.
type Principal struct {
	ID       string    `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Role     auth.Role `json:"role"`
}

// Resolution is the tagged outcome of principal resolution. Consumers
// branch on Identified instead of re-deriving token state themselves.
type Resolution struct {
	Identified bool
	Principal  Principal
}

// Oracle orchestrates login, logout, validity checks and principal
// derivation on top of the credential store. Claims are never cached;
// every read re-decodes the stored token, so there is no stale-claims
// state to invalidate.
type Oracle struct {
	store  credstore.Store
	issuer TokenIssuer
	now    func() time.Time
	logger *zap.Logger
}

// NewOracle builds the oracle.
func NewOracle(store credstore.Store, issuer TokenIssuer, logger *zap.Logger) *Oracle {
	return &Oracle{store: store, issuer: issuer, now: time.Now, logger: logger}
}

// Login requests a credential from the issuer. On success the returned
// token is stored and the raw issuance result is forwarded untouched.
// Issuance failures propagate as-is; there are no retries.
func (o *Oracle) Login(ctx context.Context, username, password string) (*backend.TokenTransport, error) {
	resp, err := o.issuer.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}
	if resp != nil && resp.Token != "" {
		if err := o.store.Set(ctx, resp.Token); err != nil {
			return nil, err
		}
	}
	o.logger.Info("session established", zap.String("username", username))
	return resp, nil
}

// Logout clears the credential store unconditionally. It has no
// network effect.
func (o *Oracle) Logout(ctx context.Context) error {
	o.logger.Info("session cleared")
	return o.store.Clear(ctx)
}

// IsAuthenticated reports whether a live credential is present. An
// absent or undecodable token yields false; an `exp` claim in the past
// yields false; a token without `exp` is valid indefinitely. Expiry is
// detected here but the store is not cleared: the stale token remains
// until an explicit logout.
func (o *Oracle) IsAuthenticated(ctx context.Context) bool {
	token, err := o.store.Get(ctx)
	if err != nil {
		return false
	}
	claims, err := auth.DecodeClaims(token)
	if err != nil {
		o.logger.Debug("stored credential undecodable", zap.Error(err))
		return false
	}
	if claims.ExpiresAt != nil {
		return o.now().Before(claims.ExpiresAt.Time)
	}
	return true
}

// Resolve derives the current principal. It is anonymous iff the store
// is empty or the token fails to decode; expiry does not anonymize a
// decodable token here, validity is IsAuthenticated's concern.
func (o *Oracle) Resolve(ctx context.Context) Resolution {
	token, err := o.store.Get(ctx)
	if err != nil {
		return Resolution{}
	}
	claims, err := auth.DecodeClaims(token)
	if err != nil {
		o.logger.Debug("stored credential undecodable", zap.Error(err))
		return Resolution{}
	}
	return Resolution{
		Identified: true,
		Principal: Principal{
			ID:       claims.SubjectID,
			Username: claims.Username,
			Email:    "",
			Role:     auth.NormalizeRole(claims.Role),
		},
	}
}

// CurrentPrincipal returns the principal when one can be derived.
func (o *Oracle) CurrentPrincipal(ctx context.Context) (Principal, bool) {
	res := o.Resolve(ctx)
	return res.Principal, res.Identified
}
