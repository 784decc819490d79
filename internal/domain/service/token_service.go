package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims carried by session tokens.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// UserID returns the subject the token was issued for.
func (c *Claims) UserID() string {
	return c.Subject
}

// TokenService defines the interface for issuing and validating signed session tokens.
type TokenService interface {
	// GenerateToken signs a token bound to the user's identifier.
	GenerateToken(userID, role string) (string, error)

	// ValidateToken parses and verifies a token string.
	ValidateToken(tokenString string) (*Claims, error)

	// TokenDuration returns how long issued tokens stay valid.
	TokenDuration() time.Duration
}
