package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims are the parts of a backend token the panel cares about.
type TokenClaims struct {
	Subject   string
	ExpiresAt time.Time // zero when the token carries no exp
}

// ReadTokenClaims decodes a backend JWT without verifying its signature.
// The backend verifies every request; the panel only needs exp to time out
// the session together with the token.
func ReadTokenClaims(tokenString string) (TokenClaims, error) {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return TokenClaims{}, fmt.Errorf("parsing backend token: %w", err)
	}

	out := TokenClaims{Subject: claims.Subject}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}

// TokenExpiry returns the exp claim of tokenString, or the zero time when
// the token is opaque or has no exp.
func TokenExpiry(tokenString string) time.Time {
	claims, err := ReadTokenClaims(tokenString)
	if err != nil {
		return time.Time{}
	}
	return claims.ExpiresAt
}
