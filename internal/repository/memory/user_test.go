package memory

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/sessiond/internal/model"
)

func TestUserRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	saved, err := repo.Create(ctx, model.User{Email: "User@Example.com", PasswordHash: "h"})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, saved.ID)

	byEmail, err := repo.GetByEmail(ctx, "user@example.com")
	require.NoError(t, err)
	assert.Equal(t, saved.ID, byEmail.ID)

	byID, err := repo.GetByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, saved.Email, byID.Email)

	_, err = repo.Create(ctx, model.User{Email: "user@example.com"})
	require.ErrorIs(t, err, model.ErrAlreadyExists)
}

func TestUserRepository_NotFound(t *testing.T) {
	repo := NewUserRepository()

	_, err := repo.GetByEmail(context.Background(), "nobody@example.com")
	require.ErrorIs(t, err, model.ErrNotFound)
	_, err = repo.GetByID(context.Background(), uuid.New())
	require.ErrorIs(t, err, model.ErrNotFound)
}
