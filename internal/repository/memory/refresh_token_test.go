package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/sessiond/internal/model"
)

func record(userID uuid.UUID, hash string, expiresAt time.Time) model.RefreshToken {
	return model.RefreshToken{
		UserID:    userID,
		TokenHash: []byte(hash),
		ExpiresAt: expiresAt,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func TestRefreshTokenRepository_SaveOverwrites(t *testing.T) {
	ctx := context.Background()
	repo := NewRefreshTokenRepository()
	u := uuid.New()
	exp := time.Now().Add(time.Hour)

	require.NoError(t, repo.Save(ctx, record(u, "first", exp)))
	require.NoError(t, repo.Save(ctx, record(u, "second", exp)))

	got, err := repo.GetByUserID(ctx, u)
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), got.TokenHash)

	_, err = repo.GetByTokenHash(ctx, []byte("first"))
	require.ErrorIs(t, err, model.ErrNotFound)

	got, err = repo.GetByTokenHash(ctx, []byte("second"))
	require.NoError(t, err)
	assert.Equal(t, u, got.UserID)

	assert.Len(t, repo.byUser, 1)
	assert.Len(t, repo.byHash, 1)
}

func TestRefreshTokenRepository_NotFound(t *testing.T) {
	repo := NewRefreshTokenRepository()

	_, err := repo.GetByUserID(context.Background(), uuid.New())
	require.ErrorIs(t, err, model.ErrNotFound)
}

func TestRefreshTokenRepository_Replace(t *testing.T) {
	ctx := context.Background()
	repo := NewRefreshTokenRepository()
	u := uuid.New()
	exp := time.Now().Add(time.Hour)
	require.NoError(t, repo.Save(ctx, record(u, "current", exp)))

	err := repo.Replace(ctx, []byte("stale"), record(u, "next", exp))
	require.ErrorIs(t, err, model.ErrTokenMismatch)

	require.NoError(t, repo.Replace(ctx, []byte("current"), record(u, "next", exp)))

	got, err := repo.GetByUserID(ctx, u)
	require.NoError(t, err)
	assert.Equal(t, []byte("next"), got.TokenHash)

	err = repo.Replace(ctx, []byte("current"), record(u, "again", exp))
	require.ErrorIs(t, err, model.ErrTokenMismatch)
}

func TestRefreshTokenRepository_ReplaceMissing(t *testing.T) {
	repo := NewRefreshTokenRepository()

	err := repo.Replace(context.Background(), []byte("x"), record(uuid.New(), "y", time.Now()))
	require.ErrorIs(t, err, model.ErrTokenMismatch)
}

func TestRefreshTokenRepository_ReplaceSingleWinner(t *testing.T) {
	ctx := context.Background()
	repo := NewRefreshTokenRepository()
	u := uuid.New()
	exp := time.Now().Add(time.Hour)
	require.NoError(t, repo.Save(ctx, record(u, "current", exp)))

	const workers = 16
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		winners int
	)
	start := make(chan struct{})
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			if err := repo.Replace(ctx, []byte("current"), record(u, uuid.NewString(), exp)); err == nil {
				mu.Lock()
				winners++
				mu.Unlock()
			}
		}(i)
	}
	close(start)
	wg.Wait()

	assert.Equal(t, 1, winners)
}

func TestRefreshTokenRepository_DeleteAndPurge(t *testing.T) {
	ctx := context.Background()
	repo := NewRefreshTokenRepository()
	now := time.Now()
	live, dead, gone := uuid.New(), uuid.New(), uuid.New()

	require.NoError(t, repo.Save(ctx, record(live, "live", now.Add(time.Hour))))
	require.NoError(t, repo.Save(ctx, record(dead, "dead", now.Add(-time.Minute))))
	require.NoError(t, repo.Save(ctx, record(gone, "gone", now.Add(time.Hour))))

	require.NoError(t, repo.Delete(ctx, gone))
	require.NoError(t, repo.Delete(ctx, gone))

	n, err := repo.DeleteExpired(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, err = repo.GetByUserID(ctx, live)
	require.NoError(t, err)
	_, err = repo.GetByUserID(ctx, dead)
	require.ErrorIs(t, err, model.ErrNotFound)
	_, err = repo.GetByTokenHash(ctx, []byte("gone"))
	require.ErrorIs(t, err, model.ErrNotFound)
}
