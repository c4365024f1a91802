package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// RefreshTokenStore keeps the single live refresh token of every user.
type RefreshTokenStore interface {
	// Save upserts the record for token.UserID, replacing any previous one.
	Save(ctx context.Context, token RefreshToken) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (RefreshToken, error)
	GetByTokenHash(ctx context.Context, tokenHash []byte) (RefreshToken, error)
	// Replace atomically swaps the stored record for next, but only while the
	// stored hash still equals currentHash. Otherwise it returns ErrTokenMismatch.
	Replace(ctx context.Context, currentHash []byte, next RefreshToken) error
	Delete(ctx context.Context, userID uuid.UUID) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// RefreshToken is the stored refresh record. Only the SHA-256 digest of the
// token string is kept.
type RefreshToken struct {
	UserID    uuid.UUID
	TokenHash []byte
	ExpiresAt time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Expired reports whether the record is past its expiry at now.
func (rt RefreshToken) Expired(now time.Time) bool {
	return !now.Before(rt.ExpiresAt)
}
