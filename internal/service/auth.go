package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/dtroode/sessiond/internal/logger"
	"github.com/dtroode/sessiond/internal/model"
)

const (
	// MinPasswordLength is the shortest password accepted at signup.
	MinPasswordLength = 8
	// maxPasswordBytes is the bcrypt input limit.
	maxPasswordBytes = 72

	avatarURLFormat = "https://api.dicebear.com/7.x/avataaars/svg?seed=%s"
)

// TokenIssuer starts a session for a user.
type TokenIssuer interface {
	Issue(ctx context.Context, userID uuid.UUID) (model.TokenPair, error)
}

type Auth struct {
	userStore    model.UserStore
	hasher       model.PasswordHasher
	tokenService TokenIssuer
	logger       *logger.Logger
	now          func() time.Time
}

func NewAuth(
	userStore model.UserStore,
	hasher model.PasswordHasher,
	tokenService TokenIssuer,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore:    userStore,
		hasher:       hasher,
		tokenService: tokenService,
		logger:       logger,
		now:          time.Now,
	}
}

// SignUp creates an account and opens its first session.
func (a *Auth) SignUp(ctx context.Context, params model.SignUpParams) (model.Session, error) {
	email, err := normalizeEmail(params.Email)
	if err != nil {
		a.logger.Info("Auth service: signup rejected",
			"reason", err.Error())
		return model.Session{}, err
	}
	if err := validatePassword(params.Password); err != nil {
		a.logger.Info("Auth service: signup rejected",
			"email", email,
			"reason", err.Error())
		return model.Session{}, err
	}

	a.logger.Debug("Auth service: starting user registration",
		"email", email)

	_, err = a.userStore.GetByEmail(ctx, email)
	if err == nil {
		a.logger.Info("Auth service: user already exists",
			"email", email)
		return model.Session{}, model.ErrEmailExists
	}
	if !errors.Is(err, model.ErrNotFound) {
		a.logger.Error("Auth service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return model.Session{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	passwordHash, err := a.hasher.Hash(params.Password)
	if err != nil {
		a.logger.Error("Auth service: failed to hash password",
			"email", email,
			"error", err.Error())
		return model.Session{}, fmt.Errorf("failed to hash password: %w", err)
	}

	now := a.now()
	user := withDefaultProfile(model.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: passwordHash,
		Name:         strings.TrimSpace(params.Name),
		Image:        strings.TrimSpace(params.Image),
		CreatedAt:    now,
		UpdatedAt:    now,
	})

	user, err = a.userStore.Create(ctx, user)
	if errors.Is(err, model.ErrAlreadyExists) {
		a.logger.Info("Auth service: user created concurrently",
			"email", email)
		return model.Session{}, model.ErrEmailExists
	}
	if err != nil {
		a.logger.Error("Auth service: failed to create user",
			"email", email,
			"error", err.Error())
		return model.Session{}, fmt.Errorf("failed to create user: %w", err)
	}

	pair, err := a.tokenService.Issue(ctx, user.ID)
	if err != nil {
		return model.Session{}, fmt.Errorf("failed to issue token: %w", err)
	}

	a.logger.Info("Auth service: user registration completed successfully",
		"email", email,
		"user_id", user.ID)

	return model.Session{TokenPair: pair, UserID: user.ID}, nil
}

// SignIn verifies email and password and opens a new session, replacing
// any session the user already had.
func (a *Auth) SignIn(ctx context.Context, email, password string) (model.Session, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return model.Session{}, err
	}
	if password == "" {
		return model.Session{}, fmt.Errorf("%w: empty password", model.ErrInvalidData)
	}

	a.logger.Debug("Auth service: starting user login",
		"email", email)

	user, err := a.userStore.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		a.logger.Info("Auth service: login for unknown email",
			"email", email)
		return model.Session{}, model.ErrEmailNotFound
	}
	if err != nil {
		a.logger.Error("Auth service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return model.Session{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	ok, err := a.hasher.Compare(password, user.PasswordHash)
	if err != nil {
		a.logger.Error("Auth service: failed to compare password",
			"user_id", user.ID,
			"error", err.Error())
		return model.Session{}, fmt.Errorf("failed to verify password: %w", err)
	}
	if !ok {
		a.logger.Info("Auth service: invalid password",
			"user_id", user.ID)
		return model.Session{}, model.ErrInvalidPassword
	}

	pair, err := a.tokenService.Issue(ctx, user.ID)
	if err != nil {
		return model.Session{}, fmt.Errorf("failed to issue token: %w", err)
	}

	a.logger.Info("Auth service: login completed successfully",
		"user_id", user.ID)

	return model.Session{TokenPair: pair, UserID: user.ID}, nil
}

// Profile returns the account behind an authenticated user id.
func (a *Auth) Profile(ctx context.Context, userID uuid.UUID) (model.User, error) {
	user, err := a.userStore.GetByID(ctx, userID)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, model.ErrUnauthorized
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	return user, nil
}

func normalizeEmail(raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return "", fmt.Errorf("%w: empty email", model.ErrInvalidData)
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || addr.Name != "" {
		return "", fmt.Errorf("%w: malformed email", model.ErrInvalidData)
	}
	return email, nil
}

func validatePassword(password string) error {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return fmt.Errorf("%w: password shorter than %d characters", model.ErrInvalidData, MinPasswordLength)
	}
	if len(password) > maxPasswordBytes {
		return fmt.Errorf("%w: password longer than %d bytes", model.ErrInvalidData, maxPasswordBytes)
	}
	return nil
}

func withDefaultProfile(user model.User) model.User {
	if user.Name == "" {
		user.Name, _, _ = strings.Cut(user.Email, "@")
	}
	if user.Image == "" {
		user.Image = fmt.Sprintf(avatarURLFormat, user.ID.String()[:8])
	}
	return user
}
