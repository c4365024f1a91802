package router

import (
	"net/http"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/dtroode/sessiond/internal/api/http/handler"
	"github.com/dtroode/sessiond/internal/api/http/middleware"
	"github.com/dtroode/sessiond/internal/apierrors"
	"github.com/dtroode/sessiond/internal/logger"
	"github.com/dtroode/sessiond/internal/model"
)

// TokenService is what the HTTP surface needs from the token lifecycle.
type TokenService interface {
	handler.TokenService
	middleware.TokenService
}

// Router wires the auth endpoints and middleware into a chi mux.
type Router struct {
	authService    handler.AuthService
	tokenService   TokenService
	contextManager model.ContextManager
	logger         *logger.Logger
	timeout        time.Duration
	serving        atomic.Bool
}

// New creates new HTTP Router instance. A zero timeout disables the
// per-request deadline.
func New(
	authService handler.AuthService,
	tokenService TokenService,
	contextManager model.ContextManager,
	logger *logger.Logger,
	timeout time.Duration,
) *Router {
	r := &Router{
		authService:    authService,
		tokenService:   tokenService,
		contextManager: contextManager,
		logger:         logger,
		timeout:        timeout,
	}
	r.serving.Store(true)
	return r
}

// Register builds the handler tree. Middleware order is outer to inner.
func (r *Router) Register() http.Handler {
	root := chi.NewRouter()

	root.Use(
		middleware.RequestID,
		chimw.RealIP,
		middleware.Recover(r.logger),
		middleware.Logging(r.logger),
	)
	if r.timeout > 0 {
		root.Use(chimw.Timeout(r.timeout))
	}

	root.NotFound(func(w http.ResponseWriter, req *http.Request) {
		apierrors.WriteError(w, req, apierrors.NewErrNotFound())
	})
	root.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		apierrors.WriteError(w, req, apierrors.NewErrMethodNotAllowed())
	})

	root.Get("/healthz", r.healthz)
	root.Route("/api/auth", r.registerAuthRoutes)

	return root
}

// SetServing flips the /healthz answer; main turns it off on shutdown.
func (r *Router) SetServing(serving bool) {
	r.serving.Store(serving)
}

func (r *Router) registerAuthRoutes(rt chi.Router) {
	h := handler.NewAuth(r.authService, r.tokenService, r.contextManager, r.logger)
	authenticate := middleware.NewAuthenticate(r.tokenService, r.contextManager, r.logger)

	rt.Post("/signUp", h.SignUp)
	rt.Post("/signInWithPassword", h.SignIn)
	rt.Post("/token", h.RefreshToken)
	rt.Post("/revoke", h.RevokeToken)
	rt.With(authenticate.Handle).Get("/me", h.Me)
}

func (r *Router) healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if !r.serving.Load() {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"status":"NOT_SERVING"}`))
		return
	}
	_, _ = w.Write([]byte(`{"status":"SERVING"}`))
}
