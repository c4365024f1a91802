package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/dtroode/sessiond/internal/apierrors"
	"github.com/dtroode/sessiond/internal/logger"
	"github.com/dtroode/sessiond/internal/model"
)

const bearerPrefix = "Bearer "

// TokenService resolves user ID from bearer tokens.
type TokenService interface {
	GetUserID(ctx context.Context, token string) (uuid.UUID, error)
}

// Authenticate requires a valid access token in the Authorization header
// and puts its subject into the request context.
type Authenticate struct {
	tokenService   TokenService
	contextManager model.ContextManager
	logger         *logger.Logger
}

func NewAuthenticate(tokenService TokenService, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokenService: tokenService, contextManager: contextManager, logger: logger}
}

func (m *Authenticate) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if len(header) <= len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
			apierrors.WriteError(w, r, apierrors.NewErrMissingAuthorizationToken())
			return
		}

		userID, err := m.tokenService.GetUserID(r.Context(), strings.TrimSpace(header[len(bearerPrefix):]))
		if err != nil || userID == uuid.Nil {
			m.logger.Debug("Authenticate: request rejected", "path", r.URL.Path)
			apierrors.WriteError(w, r, apierrors.NewErrInvalidAuthorizationToken())
			return
		}

		next.ServeHTTP(w, r.WithContext(m.contextManager.SetUserIDToContext(r.Context(), userID)))
	})
}
