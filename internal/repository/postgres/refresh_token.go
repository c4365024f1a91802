package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/sessiond/internal/model"
)

var _ model.RefreshTokenStore = (*RefreshTokenRepository)(nil)

type RefreshTokenRepository struct {
	db DB
}

func NewRefreshTokenRepository(db DB) *RefreshTokenRepository {
	return &RefreshTokenRepository{db: db}
}

const refreshTokenColumns = `user_id, token_hash, expires_at, created_at, updated_at`

// Save upserts by user_id. The row is replaced in a single statement.
func (r *RefreshTokenRepository) Save(ctx context.Context, token model.RefreshToken) error {
	const query = `
        INSERT INTO refresh_tokens (user_id, token_hash, expires_at, created_at, updated_at)
        VALUES ($1, $2, $3, NOW(), NOW())
        ON CONFLICT (user_id) DO UPDATE SET
            token_hash = EXCLUDED.token_hash,
            expires_at = EXCLUDED.expires_at,
            created_at = NOW(),
            updated_at = NOW()
    `

	_, err := r.db.Exec(ctx, query, token.UserID, token.TokenHash, token.ExpiresAt)
	if err != nil {
		return fmt.Errorf("failed to save refresh token: %w", err)
	}
	return nil
}

func (r *RefreshTokenRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (model.RefreshToken, error) {
	const query = `SELECT ` + refreshTokenColumns + ` FROM refresh_tokens WHERE user_id = $1`

	rt, err := scanRefreshToken(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.RefreshToken{}, model.ErrNotFound
		}
		return model.RefreshToken{}, fmt.Errorf("failed to get refresh token by user id: %w", err)
	}
	return rt, nil
}

func (r *RefreshTokenRepository) GetByTokenHash(ctx context.Context, tokenHash []byte) (model.RefreshToken, error) {
	const query = `SELECT ` + refreshTokenColumns + ` FROM refresh_tokens WHERE token_hash = $1`

	rt, err := scanRefreshToken(r.db.QueryRow(ctx, query, tokenHash))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.RefreshToken{}, model.ErrNotFound
		}
		return model.RefreshToken{}, fmt.Errorf("failed to get refresh token by hash: %w", err)
	}
	return rt, nil
}

// Replace is a conditional update; zero affected rows means another writer
// already replaced or removed the row.
func (r *RefreshTokenRepository) Replace(ctx context.Context, currentHash []byte, next model.RefreshToken) error {
	const query = `
        UPDATE refresh_tokens
        SET token_hash = $3, expires_at = $4, updated_at = NOW()
        WHERE user_id = $1 AND token_hash = $2
    `

	tag, err := r.db.Exec(ctx, query, next.UserID, currentHash, next.TokenHash, next.ExpiresAt)
	if err != nil {
		return fmt.Errorf("failed to replace refresh token: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrTokenMismatch
	}
	return nil
}

func (r *RefreshTokenRepository) Delete(ctx context.Context, userID uuid.UUID) error {
	const query = `DELETE FROM refresh_tokens WHERE user_id = $1`

	if _, err := r.db.Exec(ctx, query, userID); err != nil {
		return fmt.Errorf("failed to delete refresh token: %w", err)
	}
	return nil
}

func (r *RefreshTokenRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	const query = `DELETE FROM refresh_tokens WHERE expires_at <= $1`

	tag, err := r.db.Exec(ctx, query, now)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired refresh tokens: %w", err)
	}
	return tag.RowsAffected(), nil
}

func scanRefreshToken(row pgx.Row) (model.RefreshToken, error) {
	var rt model.RefreshToken
	err := row.Scan(&rt.UserID, &rt.TokenHash, &rt.ExpiresAt, &rt.CreatedAt, &rt.UpdatedAt)
	return rt, err
}
