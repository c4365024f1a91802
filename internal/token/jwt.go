package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/dtroode/sessiond/internal/model"
)

// Claims represents JWT claims with token type. The user ID is the subject.
type Claims struct {
	jwt.RegisteredClaims
	TokenType string `json:"typ"`
}

const (
	// DefaultAccessTTL is the access token lifetime when none is configured.
	DefaultAccessTTL = 30 * time.Minute
	// DefaultRefreshTTL is the refresh token lifetime when none is configured.
	DefaultRefreshTTL = 30 * 24 * time.Hour

	typeAccess  = "access"
	typeRefresh = "refresh"
)

var _ model.TokenManager = (*JWT)(nil)

// JWT implements TokenManager backed by symmetric HMAC. Access and refresh
// tokens are signed with distinct secrets.
type JWT struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	issuer        string
	now           func() time.Time
}

// Option configures the JWT manager.
type Option func(*JWT)

// WithAccessTTL sets the access token lifetime.
func WithAccessTTL(d time.Duration) Option {
	return func(j *JWT) {
		if d > 0 {
			j.accessTTL = d
		}
	}
}

// WithRefreshTTL sets the refresh token lifetime.
func WithRefreshTTL(d time.Duration) Option {
	return func(j *JWT) {
		if d > 0 {
			j.refreshTTL = d
		}
	}
}

// WithIssuer sets the iss claim and requires it on parse.
func WithIssuer(iss string) Option {
	return func(j *JWT) {
		j.issuer = iss
	}
}

// WithClock replaces time.Now for issuing and validating tokens.
func WithClock(now func() time.Time) Option {
	return func(j *JWT) {
		if now != nil {
			j.now = now
		}
	}
}

// NewJWT creates a new JWT token manager with the provided secrets.
func NewJWT(accessSecret, refreshSecret string, opts ...Option) (*JWT, error) {
	if accessSecret == "" || refreshSecret == "" {
		return nil, errors.New("jwt secrets must not be empty")
	}
	if accessSecret == refreshSecret {
		return nil, errors.New("access and refresh secrets must differ")
	}

	j := &JWT{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     DefaultAccessTTL,
		refreshTTL:    DefaultRefreshTTL,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(j)
	}

	if j.refreshTTL <= j.accessTTL {
		return nil, fmt.Errorf("refresh ttl %s must exceed access ttl %s", j.refreshTTL, j.accessTTL)
	}

	return j, nil
}

// AccessTTL returns the access token lifetime.
func (j *JWT) AccessTTL() time.Duration { return j.accessTTL }

// RefreshTTL returns the refresh token lifetime.
func (j *JWT) RefreshTTL() time.Duration { return j.refreshTTL }

// GenerateAccessToken creates a short-lived access token.
func (j *JWT) GenerateAccessToken(userID uuid.UUID) (string, error) {
	tokenString, err := j.sign(userID, typeAccess, j.accessTTL, j.accessSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}
	return tokenString, nil
}

// GenerateRefreshToken creates a long-lived refresh token.
func (j *JWT) GenerateRefreshToken(userID uuid.UUID) (string, error) {
	tokenString, err := j.sign(userID, typeRefresh, j.refreshTTL, j.refreshSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign refresh token: %w", err)
	}
	return tokenString, nil
}

// ParseAccessToken validates and extracts the user ID from an access token.
func (j *JWT) ParseAccessToken(tokenString string) (uuid.UUID, error) {
	userID, err := j.parse(tokenString, typeAccess, j.accessSecret)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse access token: %w", err)
	}
	return userID, nil
}

// ParseRefreshToken validates and extracts the user ID from a refresh token.
func (j *JWT) ParseRefreshToken(tokenString string) (uuid.UUID, error) {
	userID, err := j.parse(tokenString, typeRefresh, j.refreshSecret)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse refresh token: %w", err)
	}
	return userID, nil
}

func (j *JWT) sign(userID uuid.UUID, tokenType string, ttl time.Duration, secret []byte) (string, error) {
	now := j.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   userID.String(),
			Issuer:    j.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		TokenType: tokenType,
	})

	return token.SignedString(secret)
}

func (j *JWT) parse(tokenString, tokenType string, secret []byte) (uuid.UUID, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithStrictDecoding(),
		jwt.WithTimeFunc(j.now),
	}
	if j.issuer != "" {
		opts = append(opts, jwt.WithIssuer(j.issuer))
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	}, opts...)
	if err != nil {
		return uuid.Nil, mapJWTError(err)
	}
	if !token.Valid {
		return uuid.Nil, model.ErrTokenMalformed
	}
	if claims.TokenType != tokenType {
		return uuid.Nil, fmt.Errorf("%w: token type mismatch: %s", model.ErrTokenMalformed, claims.TokenType)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil || userID == uuid.Nil {
		return uuid.Nil, fmt.Errorf("%w: bad subject", model.ErrTokenMalformed)
	}

	return userID, nil
}

// mapJWTError translates jwt library errors to the model taxonomy.
func mapJWTError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return fmt.Errorf("%w: %w", model.ErrTokenSignatureInvalid, err)
	case errors.Is(err, jwt.ErrTokenExpired):
		return fmt.Errorf("%w: %w", model.ErrTokenExpired, err)
	default:
		return fmt.Errorf("%w: %w", model.ErrTokenMalformed, err)
	}
}
