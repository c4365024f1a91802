//go:build integration

package postgres_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/dtroode/sessiond/internal/model"
	repo "github.com/dtroode/sessiond/internal/repository/postgres"
)

var dsn string

func TestMain(m *testing.M) {
	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:15-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "password",
				"POSTGRES_DB":       "sessiond_test",
			},
			WaitingFor: wait.ForListeningPort("5432/tcp").WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		panic(err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		panic(err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		panic(err)
	}
	dsn = fmt.Sprintf("postgres://postgres:password@%s:%s/sessiond_test?sslmode=disable", host, port.Port())

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func newUser(t *testing.T, ur *repo.UserRepository, email string) model.User {
	t.Helper()
	u, err := ur.Create(context.Background(), model.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: "hash",
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	})
	require.NoError(t, err)
	return u
}

func TestRepositories_CRUD(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	t.Run("user_repository", func(t *testing.T) {
		ur := repo.NewUserRepository(conn)
		u := newUser(t, ur, "user@example.com")

		byEmail, err := ur.GetByEmail(ctx, u.Email)
		require.NoError(t, err)
		require.Equal(t, u.ID, byEmail.ID)

		byID, err := ur.GetByID(ctx, u.ID)
		require.NoError(t, err)
		require.Equal(t, u.Email, byID.Email)

		_, err = ur.Create(ctx, model.User{ID: uuid.New(), Email: u.Email, PasswordHash: "x", CreatedAt: time.Now(), UpdatedAt: time.Now()})
		require.ErrorIs(t, err, model.ErrAlreadyExists)
	})

	t.Run("refresh_token_repository", func(t *testing.T) {
		ur := repo.NewUserRepository(conn)
		rr := repo.NewRefreshTokenRepository(conn)
		u := newUser(t, ur, "refresh@example.com")
		exp := time.Now().Add(time.Hour)

		require.NoError(t, rr.Save(ctx, model.RefreshToken{UserID: u.ID, TokenHash: []byte("one"), ExpiresAt: exp}))
		require.NoError(t, rr.Save(ctx, model.RefreshToken{UserID: u.ID, TokenHash: []byte("two"), ExpiresAt: exp}))

		got, err := rr.GetByUserID(ctx, u.ID)
		require.NoError(t, err)
		require.Equal(t, []byte("two"), got.TokenHash)

		_, err = rr.GetByTokenHash(ctx, []byte("one"))
		require.ErrorIs(t, err, model.ErrNotFound)

		err = rr.Replace(ctx, []byte("one"), model.RefreshToken{UserID: u.ID, TokenHash: []byte("three"), ExpiresAt: exp})
		require.ErrorIs(t, err, model.ErrTokenMismatch)
		require.NoError(t, rr.Replace(ctx, []byte("two"), model.RefreshToken{UserID: u.ID, TokenHash: []byte("three"), ExpiresAt: exp}))

		byHash, err := rr.GetByTokenHash(ctx, []byte("three"))
		require.NoError(t, err)
		require.Equal(t, u.ID, byHash.UserID)

		require.NoError(t, rr.Delete(ctx, u.ID))
		_, err = rr.GetByUserID(ctx, u.ID)
		require.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("purge_expired", func(t *testing.T) {
		ur := repo.NewUserRepository(conn)
		rr := repo.NewRefreshTokenRepository(conn)
		u := newUser(t, ur, "expired@example.com")

		require.NoError(t, rr.Save(ctx, model.RefreshToken{UserID: u.ID, TokenHash: []byte("old"), ExpiresAt: time.Now().Add(-time.Minute)}))

		n, err := rr.DeleteExpired(ctx, time.Now())
		require.NoError(t, err)
		require.GreaterOrEqual(t, n, int64(1))
	})
}
