package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"workspace-admin/internal/model"
)

// New starts an authenticated session for user holding the backend token.
// When the token is a JWT with an exp claim the session expires with it.
func New(user model.User, token string, now time.Time) Session {
	return Session{
		ID:            uuid.NewString(),
		User:          user,
		Token:         token,
		Authenticated: token != "",
		CreatedAt:     now,
		ExpiresAt:     TokenExpiry(token),
	}
}

// TokenExpiry reads the exp claim of a JWT without verifying it. The remote API
// owns the signing key; the claim is only used to drop dead sessions early.
// Opaque tokens yield the zero time.
func TokenExpiry(token string) time.Time {
	if token == "" {
		return time.Time{}
	}
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return time.Time{}
	}
	if claims.ExpiresAt == nil {
		return time.Time{}
	}
	return claims.ExpiresAt.Time
}
