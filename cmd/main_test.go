package main

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/sessiond/internal/config"
	"github.com/dtroode/sessiond/internal/model"
)

func TestOpenStores_Memory(t *testing.T) {
	st, err := openStores(context.Background(), &config.Config{StorageDriver: config.DriverMemory})
	require.NoError(t, err)
	defer st.Close()

	assert.NotNil(t, st.users)
	assert.NotNil(t, st.refresh)
	assert.Empty(t, st.closers)
}

func TestOpenRedis(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	ctx := context.Background()
	repo, closeRedis, err := openRedis(ctx, config.Redis{Addr: mr.Addr(), Prefix: "t"})
	require.NoError(t, err)
	defer func() { _ = closeRedis() }()

	u := uuid.New()
	require.NoError(t, repo.Save(ctx, model.RefreshToken{UserID: u, TokenHash: []byte("h"), ExpiresAt: time.Now().Add(time.Hour)}))
	assert.True(t, mr.Exists("t:user:"+u.String()))
}

func TestOpenRedis_Unreachable(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	addr := mr.Addr()
	mr.Close()

	repo, closeRedis, err := openRedis(context.Background(), config.Redis{Addr: addr})
	assert.ErrorContains(t, err, "failed to ping redis")
	assert.Nil(t, repo)
	assert.Nil(t, closeRedis)
}
