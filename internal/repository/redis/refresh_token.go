// Package redis stores refresh records in Redis. Every mutation is a Lua
// script so the record and its hash index change together.
package redis

import (
	"bytes"
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/dtroode/sessiond/internal/model"
)

// DefaultPrefix namespaces every key written by the repository.
const DefaultPrefix = "sessiond:refresh"

const saveScript = `
local old = redis.call("HGET", KEYS[1], "hash")
if old then
  redis.call("DEL", ARGV[6] .. old)
end
redis.call("HSET", KEYS[1], "hash", ARGV[1], "expires_at", ARGV[3], "created_at", ARGV[4], "updated_at", ARGV[4])
redis.call("PEXPIRE", KEYS[1], ARGV[5])
redis.call("SET", KEYS[2], ARGV[2], "PX", ARGV[5])
return 1
`

const replaceScript = `
local cur = redis.call("HGET", KEYS[1], "hash")
if not cur or cur ~= ARGV[1] then
  return 0
end
redis.call("DEL", ARGV[7] .. cur)
redis.call("HSET", KEYS[1], "hash", ARGV[2], "expires_at", ARGV[4], "updated_at", ARGV[5])
redis.call("PEXPIRE", KEYS[1], ARGV[6])
redis.call("SET", KEYS[2], ARGV[3], "PX", ARGV[6])
return 1
`

const deleteScript = `
local cur = redis.call("HGET", KEYS[1], "hash")
if cur then
  redis.call("DEL", ARGV[1] .. cur)
end
return redis.call("DEL", KEYS[1])
`

var (
	saveLua    = goredis.NewScript(saveScript)
	replaceLua = goredis.NewScript(replaceScript)
	deleteLua  = goredis.NewScript(deleteScript)
)

var _ model.RefreshTokenStore = (*RefreshTokenRepository)(nil)

// RefreshTokenRepository keeps one hash per user (<prefix>:user:<id>) and a
// reverse index from token digest to user (<prefix>:hash:<hex>). Both keys
// expire with the token.
//
// The scripts delete the previous index key, whose name is only known once
// the user hash is read, so they touch keys not declared in KEYS. That is
// fine on a single node and breaks slot routing on Redis Cluster, hence the
// plain *goredis.Client.
type RefreshTokenRepository struct {
	client *goredis.Client
	prefix string
	now    func() time.Time
}

// NewRefreshTokenRepository binds the repository to a single-node client.
// An empty prefix falls back to DefaultPrefix.
func NewRefreshTokenRepository(client *goredis.Client, prefix string) *RefreshTokenRepository {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &RefreshTokenRepository{client: client, prefix: prefix, now: time.Now}
}

func (r *RefreshTokenRepository) userKey(userID uuid.UUID) string {
	return r.prefix + ":user:" + userID.String()
}

func (r *RefreshTokenRepository) hashPrefix() string {
	return r.prefix + ":hash:"
}

func (r *RefreshTokenRepository) hashKey(tokenHash []byte) string {
	return r.hashPrefix() + hex.EncodeToString(tokenHash)
}

func (r *RefreshTokenRepository) Save(ctx context.Context, token model.RefreshToken) error {
	now := r.now()
	err := saveLua.Run(ctx, r.client,
		[]string{r.userKey(token.UserID), r.hashKey(token.TokenHash)},
		hex.EncodeToString(token.TokenHash),
		token.UserID.String(),
		token.ExpiresAt.UnixMilli(),
		now.UnixMilli(),
		ttlMillis(token.ExpiresAt, now),
		r.hashPrefix(),
	).Err()
	if err != nil {
		return fmt.Errorf("failed to save refresh token: %w", err)
	}
	return nil
}

func (r *RefreshTokenRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (model.RefreshToken, error) {
	fields, err := r.client.HGetAll(ctx, r.userKey(userID)).Result()
	if err != nil {
		return model.RefreshToken{}, fmt.Errorf("failed to get refresh token by user id: %w", err)
	}
	if len(fields) == 0 {
		return model.RefreshToken{}, model.ErrNotFound
	}

	rt, err := decode(userID, fields)
	if err != nil {
		return model.RefreshToken{}, fmt.Errorf("failed to decode refresh token: %w", err)
	}
	return rt, nil
}

func (r *RefreshTokenRepository) GetByTokenHash(ctx context.Context, tokenHash []byte) (model.RefreshToken, error) {
	raw, err := r.client.Get(ctx, r.hashKey(tokenHash)).Result()
	if errors.Is(err, goredis.Nil) {
		return model.RefreshToken{}, model.ErrNotFound
	}
	if err != nil {
		return model.RefreshToken{}, fmt.Errorf("failed to get refresh token by hash: %w", err)
	}

	userID, err := uuid.Parse(raw)
	if err != nil {
		return model.RefreshToken{}, fmt.Errorf("failed to decode refresh token index: %w", err)
	}

	rt, err := r.GetByUserID(ctx, userID)
	if err != nil {
		return model.RefreshToken{}, err
	}
	// The index may outlive a concurrent replace for an instant.
	if !bytes.Equal(rt.TokenHash, tokenHash) {
		return model.RefreshToken{}, model.ErrNotFound
	}
	return rt, nil
}

func (r *RefreshTokenRepository) Replace(ctx context.Context, currentHash []byte, next model.RefreshToken) error {
	now := r.now()
	swapped, err := replaceLua.Run(ctx, r.client,
		[]string{r.userKey(next.UserID), r.hashKey(next.TokenHash)},
		hex.EncodeToString(currentHash),
		hex.EncodeToString(next.TokenHash),
		next.UserID.String(),
		next.ExpiresAt.UnixMilli(),
		now.UnixMilli(),
		ttlMillis(next.ExpiresAt, now),
		r.hashPrefix(),
	).Int64()
	if err != nil {
		return fmt.Errorf("failed to replace refresh token: %w", err)
	}
	if swapped == 0 {
		return model.ErrTokenMismatch
	}
	return nil
}

func (r *RefreshTokenRepository) Delete(ctx context.Context, userID uuid.UUID) error {
	err := deleteLua.Run(ctx, r.client, []string{r.userKey(userID)}, r.hashPrefix()).Err()
	if err != nil {
		return fmt.Errorf("failed to delete refresh token: %w", err)
	}
	return nil
}

// DeleteExpired is a no-op: keys carry their own TTL.
func (r *RefreshTokenRepository) DeleteExpired(context.Context, time.Time) (int64, error) {
	return 0, nil
}

// Ping checks that the Redis node answers.
func (r *RefreshTokenRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func ttlMillis(expiresAt, now time.Time) int64 {
	ttl := expiresAt.Sub(now).Milliseconds()
	if ttl < 1 {
		return 1
	}
	return ttl
}

func decode(userID uuid.UUID, fields map[string]string) (model.RefreshToken, error) {
	tokenHash, err := hex.DecodeString(fields["hash"])
	if err != nil {
		return model.RefreshToken{}, fmt.Errorf("hash: %w", err)
	}
	expiresAt, err := parseMillis(fields["expires_at"])
	if err != nil {
		return model.RefreshToken{}, fmt.Errorf("expires_at: %w", err)
	}
	createdAt, err := parseMillis(fields["created_at"])
	if err != nil {
		return model.RefreshToken{}, fmt.Errorf("created_at: %w", err)
	}
	updatedAt, err := parseMillis(fields["updated_at"])
	if err != nil {
		return model.RefreshToken{}, fmt.Errorf("updated_at: %w", err)
	}

	return model.RefreshToken{
		UserID:    userID,
		TokenHash: tokenHash,
		ExpiresAt: expiresAt,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}

func parseMillis(s string) (time.Time, error) {
	ms, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return time.Time{}, err
	}
	return time.UnixMilli(ms), nil
}
