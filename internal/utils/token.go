package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoExpiryClaim is returned by TokenExpiresAt when the token parses as a
// JWT but carries no "exp" claim.
var ErrNoExpiryClaim = errors.New("token has no expiry claim")

// TokenExpiresAt inspects an access token returned by the auth endpoint and
// extracts its expiry time from the "exp" claim.
//
// The token is parsed WITHOUT signature verification: the ingestor is not the
// token's audience and has no verification key — the expiry is surfaced for
// debug logging only, never for access decisions. Opaque (non-JWT) tokens
// return a parse error and callers are expected to treat that as
// "expiry unknown".
func TokenExpiresAt(tokenString string) (time.Time, error) {
	parser := jwt.NewParser()

	claims := &jwt.RegisteredClaims{}
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return time.Time{}, err
	}

	if claims.ExpiresAt == nil {
		return time.Time{}, ErrNoExpiryClaim
	}

	return claims.ExpiresAt.Time, nil
}
