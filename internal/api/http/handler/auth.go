package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/dtroode/sessiond/internal/apierrors"
	"github.com/dtroode/sessiond/internal/logger"
	"github.com/dtroode/sessiond/internal/model"
)

// AuthService defines user registration and login operations.
type AuthService interface {
	SignUp(ctx context.Context, params model.SignUpParams) (model.Session, error)
	SignIn(ctx context.Context, email, password string) (model.Session, error)
	Profile(ctx context.Context, userID uuid.UUID) (model.User, error)
}

// TokenService defines token refresh and revoke operations.
type TokenService interface {
	Rotate(ctx context.Context, refreshToken string) (model.Session, error)
	RevokeByToken(ctx context.Context, refreshToken string) error
}

type signUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Image    string `json:"image"`
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type sessionResponse struct {
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
	ExpiresIn    int64     `json:"expiresIn"`
	UserID       uuid.UUID `json:"userId"`
}

type profileResponse struct {
	UserID uuid.UUID `json:"userId"`
	Email  string    `json:"email"`
	Name   string    `json:"name"`
	Image  string    `json:"image"`
}

// Auth serves the /api/auth endpoints.
type Auth struct {
	authService    AuthService
	tokenService   TokenService
	contextManager model.ContextManager
	logger         *logger.Logger
}

func NewAuth(authService AuthService, tokenService TokenService, contextManager model.ContextManager, logger *logger.Logger) *Auth {
	return &Auth{
		authService:    authService,
		tokenService:   tokenService,
		contextManager: contextManager,
		logger:         logger,
	}
}

// SignUp handles POST /api/auth/signUp.
func (h *Auth) SignUp(w http.ResponseWriter, r *http.Request) {
	var in signUpRequest
	if err := decodeStrict(w, r, &in); err != nil {
		apierrors.WriteError(w, r, fmt.Errorf("%w: %w", model.ErrInvalidData, err))
		return
	}

	session, err := h.authService.SignUp(r.Context(), model.SignUpParams{
		Email:    in.Email,
		Password: in.Password,
		Name:     in.Name,
		Image:    in.Image,
	})
	if err != nil {
		h.logger.Debug("Auth HTTP handler: signup failed", "error", err.Error())
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toSessionResponse(session))
}

// SignIn handles POST /api/auth/signInWithPassword.
func (h *Auth) SignIn(w http.ResponseWriter, r *http.Request) {
	var in signInRequest
	if err := decodeStrict(w, r, &in); err != nil {
		apierrors.WriteError(w, r, fmt.Errorf("%w: %w", model.ErrInvalidData, err))
		return
	}

	session, err := h.authService.SignIn(r.Context(), in.Email, in.Password)
	if err != nil {
		h.logger.Debug("Auth HTTP handler: signin failed", "error", err.Error())
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSessionResponse(session))
}

// RefreshToken handles POST /api/auth/token. A body that cannot be read is
// treated like a bad token.
func (h *Auth) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var in refreshTokenRequest
	if err := decodeStrict(w, r, &in); err != nil || in.RefreshToken == "" {
		apierrors.WriteError(w, r, model.ErrUnauthorized)
		return
	}

	session, err := h.tokenService.Rotate(r.Context(), in.RefreshToken)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSessionResponse(session))
}

// RevokeToken handles POST /api/auth/revoke.
func (h *Auth) RevokeToken(w http.ResponseWriter, r *http.Request) {
	var in refreshTokenRequest
	if err := decodeStrict(w, r, &in); err != nil || in.RefreshToken == "" {
		apierrors.WriteError(w, r, model.ErrUnauthorized)
		return
	}

	if err := h.tokenService.RevokeByToken(r.Context(), in.RefreshToken); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Me handles GET /api/auth/me behind the bearer middleware.
func (h *Auth) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.contextManager.GetUserIDFromContext(r.Context())
	if !ok {
		apierrors.WriteError(w, r, model.ErrUnauthorized)
		return
	}

	user, err := h.authService.Profile(r.Context(), userID)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, profileResponse{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
		Image:  user.Image,
	})
}

func toSessionResponse(s model.Session) sessionResponse {
	return sessionResponse{
		AccessToken:  s.AccessToken,
		RefreshToken: s.RefreshToken,
		ExpiresIn:    s.ExpiresIn,
		UserID:       s.UserID,
	}
}
