package auth

import (
	"errors"
	"fmt"

	jwt "github.com/golang-jwt/jwt/v5"
)

// ErrMalformedCredential marks a token that is structurally invalid:
// wrong segmentation, undecodable payload, or a payload that is not a
// well-formed JSON object.
var ErrMalformedCredential = errors.New("malformed credential")

// Claims describes the payload fields the client reads from a bearer
// token. The outer `sub` shadows the embedded registered subject so
// that decoding stays a plain string regardless of how the issuer
// formats it.
type Claims struct {
	SubjectID string `json:"sub"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

// DecodeClaims parses a compact dot-delimited credential into Claims.
// The signature segment is never verified and claim content is never
// validated: the claims are trust-on-read, and any semantically odd but
// well-formed payload passes through unchanged. Expiry interpretation
// belongs to the caller.
func DecodeClaims(token string) (*Claims, error) {
	parser := jwt.NewParser(jwt.WithoutClaimsValidation())
	claims := &Claims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedCredential, err)
	}
	return claims, nil
}
