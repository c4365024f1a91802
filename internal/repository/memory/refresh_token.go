// Package memory holds in-process stores for tests and single-node runs.
package memory

import (
	"bytes"
	"context"
	"encoding/hex"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/sessiond/internal/model"
)

var _ model.RefreshTokenStore = (*RefreshTokenRepository)(nil)

// RefreshTokenRepository keeps refresh records in maps guarded by one mutex.
type RefreshTokenRepository struct {
	mu     sync.Mutex
	byUser map[uuid.UUID]model.RefreshToken
	byHash map[string]uuid.UUID
}

func NewRefreshTokenRepository() *RefreshTokenRepository {
	return &RefreshTokenRepository{
		byUser: make(map[uuid.UUID]model.RefreshToken),
		byHash: make(map[string]uuid.UUID),
	}
}

func (r *RefreshTokenRepository) Save(_ context.Context, token model.RefreshToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.put(token)
	return nil
}

func (r *RefreshTokenRepository) GetByUserID(_ context.Context, userID uuid.UUID) (model.RefreshToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rt, ok := r.byUser[userID]
	if !ok {
		return model.RefreshToken{}, model.ErrNotFound
	}
	return clone(rt), nil
}

func (r *RefreshTokenRepository) GetByTokenHash(_ context.Context, tokenHash []byte) (model.RefreshToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	userID, ok := r.byHash[hex.EncodeToString(tokenHash)]
	if !ok {
		return model.RefreshToken{}, model.ErrNotFound
	}
	return clone(r.byUser[userID]), nil
}

func (r *RefreshTokenRepository) Replace(_ context.Context, currentHash []byte, next model.RefreshToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rt, ok := r.byUser[next.UserID]
	if !ok || !bytes.Equal(rt.TokenHash, currentHash) {
		return model.ErrTokenMismatch
	}

	next.CreatedAt = rt.CreatedAt
	r.put(next)
	return nil
}

func (r *RefreshTokenRepository) Delete(_ context.Context, userID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.remove(userID)
	return nil
}

func (r *RefreshTokenRepository) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int64
	for userID, rt := range r.byUser {
		if rt.Expired(now) {
			r.remove(userID)
			n++
		}
	}
	return n, nil
}

// put must be called with mu held.
func (r *RefreshTokenRepository) put(token model.RefreshToken) {
	r.remove(token.UserID)
	token = clone(token)
	r.byUser[token.UserID] = token
	r.byHash[hex.EncodeToString(token.TokenHash)] = token.UserID
}

// remove must be called with mu held.
func (r *RefreshTokenRepository) remove(userID uuid.UUID) {
	if old, ok := r.byUser[userID]; ok {
		delete(r.byHash, hex.EncodeToString(old.TokenHash))
		delete(r.byUser, userID)
	}
}

func clone(rt model.RefreshToken) model.RefreshToken {
	rt.TokenHash = bytes.Clone(rt.TokenHash)
	return rt
}
