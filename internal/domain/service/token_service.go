package service

import (
	"time"
)

// Claims carries the authenticated identity extracted from an access token.
type Claims struct {
	UserID int64
	Email  string
}

// TokenService defines the interface for generating and validating access
// tokens. This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateToken creates a signed access token for the given user.
	GenerateToken(userID int64, email string) (string, error)

	// ValidateToken checks a token string and returns its claims when valid.
	ValidateToken(tokenString string) (*Claims, error)

	// AccessTokenDuration returns the configured token lifetime.
	AccessTokenDuration() time.Duration
}
