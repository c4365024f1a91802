package handler

import (
	"context"

	"github.com/google/uuid"

	sessiondv1 "github.com/dtroode/sessiond/api/sessiond/v1"
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

// Auth handles gRPC endpoints for authentication.
type Auth struct {
	sessiondv1.UnimplementedAuthServer
	authService    AuthService
	tokenService   TokenService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, tokenService TokenService, contextManager model.ContextManager, logger *logger.Logger) *Auth {
	return &Auth{
		authService:    authService,
		tokenService:   tokenService,
		contextManager: contextManager,
		logger:         logger,
	}
}

// SignUp registers a user and returns the first session.
func (h *Auth) SignUp(ctx context.Context, req *sessiondv1.SignUpRequest) (*sessiondv1.Session, error) {
	h.logger.Debug("Auth handler: processing signup request",
		"email", req.Email)

	session, err := h.authService.SignUp(ctx, model.SignUpParams{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Image:    req.Image,
	})
	if err != nil {
		h.logger.Error("Auth handler: signup failed",
			"email", req.Email,
			"error", err.Error())
		return nil, handleError(err)
	}

	h.logger.Info("Auth handler: signup completed",
		"user_id", session.UserID)

	return toSession(session.TokenPair, session.UserID), nil
}

// SignIn checks email and password and returns a new session.
func (h *Auth) SignIn(ctx context.Context, req *sessiondv1.SignInRequest) (*sessiondv1.Session, error) {
	h.logger.Debug("Auth handler: processing signin request",
		"email", req.Email)

	session, err := h.authService.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		h.logger.Error("Auth handler: signin failed",
			"email", req.Email,
			"error", err.Error())
		return nil, handleError(err)
	}

	h.logger.Info("Auth handler: signin completed",
		"user_id", session.UserID)

	return toSession(session.TokenPair, session.UserID), nil
}

// RefreshToken exchanges a refresh token for a new pair.
func (h *Auth) RefreshToken(ctx context.Context, req *sessiondv1.RefreshTokenRequest) (*sessiondv1.Session, error) {
	h.logger.Debug("Auth handler: processing token refresh request")

	if req.RefreshToken == "" {
		return nil, handleError(apierrors.NewErrUnauthorized())
	}

	session, err := h.tokenService.Rotate(ctx, req.RefreshToken)
	if err != nil {
		h.logger.Error("Auth handler: token refresh failed",
			"error", err.Error())
		return nil, handleError(err)
	}

	h.logger.Info("Auth handler: token refresh successful",
		"user_id", session.UserID)

	return toSession(session.TokenPair, session.UserID), nil
}

// RevokeToken ends the session of a refresh token.
func (h *Auth) RevokeToken(ctx context.Context, req *sessiondv1.RevokeTokenRequest) (*sessiondv1.RevokeTokenResponse, error) {
	h.logger.Debug("Auth handler: processing token revoke request")

	if req.RefreshToken == "" {
		return nil, handleError(apierrors.NewErrUnauthorized())
	}

	if err := h.tokenService.RevokeByToken(ctx, req.RefreshToken); err != nil {
		h.logger.Error("Auth handler: token revoke failed",
			"error", err.Error())
		return nil, handleError(err)
	}

	h.logger.Info("Auth handler: token revoked")

	return &sessiondv1.RevokeTokenResponse{}, nil
}

// Me returns the profile of the caller. The authentication interceptor has
// already put the user id into ctx.
func (h *Auth) Me(ctx context.Context, _ *sessiondv1.MeRequest) (*sessiondv1.Profile, error) {
	userID, ok := h.contextManager.GetUserIDFromContext(ctx)
	if !ok {
		return nil, handleError(apierrors.NewErrUnauthorized())
	}

	user, err := h.authService.Profile(ctx, userID)
	if err != nil {
		h.logger.Error("Auth handler: profile lookup failed",
			"user_id", userID,
			"error", err.Error())
		return nil, handleError(err)
	}

	return &sessiondv1.Profile{
		UserId: user.ID.String(),
		Email:  user.Email,
		Name:   user.Name,
		Image:  user.Image,
	}, nil
}

func toSession(pair model.TokenPair, userID uuid.UUID) *sessiondv1.Session {
	return &sessiondv1.Session{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
		UserId:       userID.String(),
	}
}
