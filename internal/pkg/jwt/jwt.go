package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

type Claims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// Decode extracts the claims of a server-issued access token without
// verifying its signature. The client never holds the signing secret; the
// server re-validates the token on every request, so the client only needs
// the embedded user id and expiry to decide whether a session is worth
// restoring.
func Decode(tokenString string, now time.Time) (*Claims, error) {
	parser := jwt.NewParser()

	claims := &Claims{}
	_, _, err := parser.ParseUnverified(tokenString, claims)
	if err != nil {
		return nil, ErrInvalidToken
	}

	if claims.UserID == "" {
		return nil, ErrInvalidToken
	}

	if claims.ExpiresAt != nil && !claims.ExpiresAt.After(now) {
		return nil, ErrExpiredToken
	}

	return claims, nil
}
