package model

import (
	"time"

	"github.com/google/uuid"
)

// TokenManager generates and validates access/refresh tokens.
//
// Parse methods return errors wrapping ErrTokenMalformed,
// ErrTokenSignatureInvalid or ErrTokenExpired.
type TokenManager interface {
	GenerateAccessToken(userID uuid.UUID) (string, error)
	GenerateRefreshToken(userID uuid.UUID) (string, error)
	ParseAccessToken(token string) (uuid.UUID, error)
	ParseRefreshToken(token string) (uuid.UUID, error)
	AccessTTL() time.Duration
	RefreshTTL() time.Duration
}

// TokenPair is what a client receives after login or rotation.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	// ExpiresIn is the access token lifetime in seconds.
	ExpiresIn int64
}

// Session is a token pair bound to the user it was issued for.
type Session struct {
	TokenPair
	UserID uuid.UUID
}
