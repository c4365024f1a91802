package service

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/sessiond/internal/logger"
	"github.com/dtroode/sessiond/internal/model"
)

// DefaultRequestTimeout bounds every store round trip of the token service.
const DefaultRequestTimeout = 5 * time.Second

// TokenService provides high-level operations for issuing, rotating,
// and revoking tokens. It composes the TokenManager and RefreshTokenStore.
//
// A user is either without a session or holds exactly one live refresh token.
// Issue and Rotate move the user to a new token; the previous one stops
// working at that moment.
type TokenService struct {
	manager model.TokenManager
	store   model.RefreshTokenStore
	logger  *logger.Logger
	timeout time.Duration
	now     func() time.Time
}

// TokenServiceOption configures a TokenService.
type TokenServiceOption func(*TokenService)

// WithRequestTimeout overrides DefaultRequestTimeout.
func WithRequestTimeout(d time.Duration) TokenServiceOption {
	return func(s *TokenService) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// WithServiceClock replaces time.Now for record timestamps and expiry checks.
func WithServiceClock(now func() time.Time) TokenServiceOption {
	return func(s *TokenService) {
		if now != nil {
			s.now = now
		}
	}
}

func NewTokenService(manager model.TokenManager, store model.RefreshTokenStore, logger *logger.Logger, opts ...TokenServiceOption) *TokenService {
	s := &TokenService{
		manager: manager,
		store:   store,
		logger:  logger,
		timeout: DefaultRequestTimeout,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Issue signs a fresh pair for userID and stores its refresh token,
// overwriting whatever the user held before.
func (s *TokenService) Issue(ctx context.Context, userID uuid.UUID) (model.TokenPair, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	pair, record, err := s.newPair(userID)
	if err != nil {
		s.logger.Error("Token service: failed to sign token pair",
			"user_id", userID,
			"error", err.Error())
		return model.TokenPair{}, err
	}

	if err := s.store.Save(ctx, record); err != nil {
		s.logger.Error("Token service: failed to persist refresh token",
			"user_id", userID,
			"error", err.Error())
		return model.TokenPair{}, fmt.Errorf("persist refresh: %w", err)
	}

	s.logger.Debug("Token service: token pair issued", "user_id", userID)

	return pair, nil
}

// Rotate exchanges a presented refresh token for a new pair. Rejections of
// any kind are reported as model.ErrUnauthorized; everything else is an
// internal failure.
func (s *TokenService) Rotate(ctx context.Context, presentedRefresh string) (model.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	userID, err := s.manager.ParseRefreshToken(presentedRefresh)
	if err != nil {
		s.logger.Warn("Token service: refresh token rejected",
			"reason", err.Error())
		return model.Session{}, model.ErrUnauthorized
	}

	stored, err := s.store.GetByUserID(ctx, userID)
	if errors.Is(err, model.ErrNotFound) {
		s.logger.Warn("Token service: no active refresh token",
			"user_id", userID)
		return model.Session{}, model.ErrUnauthorized
	}
	if err != nil {
		s.logger.Error("Token service: failed to load refresh token",
			"user_id", userID,
			"error", err.Error())
		return model.Session{}, fmt.Errorf("load refresh: %w", err)
	}

	presentedHash := hashRefresh(presentedRefresh)
	if err := validateRecord(stored, presentedHash, s.now()); err != nil {
		s.logger.Warn("Token service: refresh token rejected",
			"user_id", userID,
			"reason", err.Error())
		return model.Session{}, model.ErrUnauthorized
	}

	pair, next, err := s.newPair(userID)
	if err != nil {
		s.logger.Error("Token service: failed to sign token pair",
			"user_id", userID,
			"error", err.Error())
		return model.Session{}, err
	}

	err = s.store.Replace(ctx, presentedHash, next)
	if errors.Is(err, model.ErrTokenMismatch) {
		s.logger.Warn("Token service: refresh token already rotated",
			"user_id", userID)
		return model.Session{}, model.ErrUnauthorized
	}
	if err != nil {
		s.logger.Error("Token service: failed to persist rotated refresh token",
			"user_id", userID,
			"error", err.Error())
		return model.Session{}, fmt.Errorf("persist refresh: %w", err)
	}

	s.logger.Debug("Token service: token pair rotated", "user_id", userID)

	return model.Session{TokenPair: pair, UserID: userID}, nil
}

// RevokeByToken ends the session the presented refresh token belongs to.
// Signature and expiry are not checked: possession of the live token is enough.
func (s *TokenService) RevokeByToken(ctx context.Context, presentedRefresh string) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	stored, err := s.store.GetByTokenHash(ctx, hashRefresh(presentedRefresh))
	if errors.Is(err, model.ErrNotFound) {
		s.logger.Warn("Token service: revoke of unknown refresh token")
		return model.ErrUnauthorized
	}
	if err != nil {
		return fmt.Errorf("load refresh: %w", err)
	}

	return s.RevokeAllForUser(ctx, stored.UserID)
}

// RevokeAllForUser drops the user's stored refresh record, so no refresh
// token issued to them rotates again. Access tokens already handed out stay
// valid until they expire. Deleting a user without a record is not an error.
func (s *TokenService) RevokeAllForUser(ctx context.Context, userID uuid.UUID) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.store.Delete(ctx, userID); err != nil {
		s.logger.Error("Token service: failed to delete refresh token",
			"user_id", userID,
			"error", err.Error())
		return fmt.Errorf("delete refresh: %w", err)
	}

	s.logger.Info("Token service: session revoked", "user_id", userID)

	return nil
}

// GetUserID verifies an access token and returns its subject.
func (s *TokenService) GetUserID(_ context.Context, accessToken string) (uuid.UUID, error) {
	userID, err := s.manager.ParseAccessToken(accessToken)
	if err != nil {
		s.logger.Debug("Token service: access token rejected", "reason", err.Error())
		return uuid.Nil, model.ErrUnauthorized
	}
	return userID, nil
}

func (s *TokenService) newPair(userID uuid.UUID) (model.TokenPair, model.RefreshToken, error) {
	access, err := s.manager.GenerateAccessToken(userID)
	if err != nil {
		return model.TokenPair{}, model.RefreshToken{}, fmt.Errorf("issue access: %w", err)
	}

	refresh, err := s.manager.GenerateRefreshToken(userID)
	if err != nil {
		return model.TokenPair{}, model.RefreshToken{}, fmt.Errorf("issue refresh: %w", err)
	}

	now := s.now()
	record := model.RefreshToken{
		UserID:    userID,
		TokenHash: hashRefresh(refresh),
		ExpiresAt: now.Add(s.manager.RefreshTTL()),
		CreatedAt: now,
		UpdatedAt: now,
	}

	pair := model.TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(s.manager.AccessTTL() / time.Second),
	}

	return pair, record, nil
}

func hashRefresh(token string) []byte {
	h := sha256.Sum256([]byte(token))
	return h[:]
}

func validateRecord(rt model.RefreshToken, presentedHash []byte, now time.Time) error {
	if !equalBytes(rt.TokenHash, presentedHash) {
		return model.ErrTokenMismatch
	}
	if rt.Expired(now) {
		return model.ErrTokenExpired
	}
	return nil
}

func equalBytes(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}
