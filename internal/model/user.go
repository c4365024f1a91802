package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	Create(ctx context.Context, user User) (User, error)
}

// PasswordHasher hashes and verifies user passwords.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Compare(plain, hashed string) (bool, error)
}

// User represents a stored user with its password hash and profile.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Name         string
	Image        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SignUpParams carries the fields accepted at registration.
type SignUpParams struct {
	Email    string
	Password string
	Name     string
	Image    string
}
