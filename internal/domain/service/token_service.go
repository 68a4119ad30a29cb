package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims carried by access tokens.
type Claims struct {
	ID string `json:"id"` // User identifier.
	jwt.RegisteredClaims
}

// TokenService issues and verifies bearer tokens.
type TokenService interface {
	// GenerateToken signs a token for the given user identifier.
	GenerateToken(userID string) (string, error)

	// ValidateToken checks signature and expiry and returns the decoded claims.
	ValidateToken(tokenString string) (*Claims, error)
}
