package router

import (
	"context"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/auth"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/selector"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	sessiondv1 "github.com/dtroode/sessiond/api/sessiond/v1"
	"github.com/dtroode/sessiond/internal/api/grpc/handler"
	"github.com/dtroode/sessiond/internal/api/grpc/middleware"
	"github.com/dtroode/sessiond/internal/logger"
	"github.com/dtroode/sessiond/internal/model"
)

// TokenService is what the gRPC surface needs from the token lifecycle.
type TokenService interface {
	handler.TokenService
	middleware.TokenService
}

// Router wires the Auth service, health checks and interceptors into a
// gRPC server.
type Router struct {
	authService    handler.AuthService
	tokenService   TokenService
	contextManager model.ContextManager
	logger         *logger.Logger
	health         *health.Server
}

// New creates new gRPC Router instance.
func New(
	authService handler.AuthService,
	tokenService TokenService,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:    authService,
		tokenService:   tokenService,
		contextManager: contextManager,
		logger:         logger,
		health:         health.NewServer(),
	}
}

// authRequired selects the methods guarded by bearer authentication.
func authRequired(_ context.Context, c interceptors.CallMeta) bool {
	return c.FullMethod() == sessiondv1.Auth_Me_FullMethodName
}

// Register builds the gRPC server with recovery, request logging and
// authentication interceptors.
func (r *Router) Register() *grpc.Server {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.tokenService, r.contextManager, r.logger)
	recoveryOpt := recovery.WithRecoveryHandlerContext(middleware.RecoveryHandler(r.logger))

	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			recovery.UnaryServerInterceptor(recoveryOpt),
			logging.HandleGRPC,
			selector.UnaryServerInterceptor(
				auth.UnaryServerInterceptor(authenticate.AuthFunc),
				selector.MatchFunc(authRequired),
			),
		),
		grpc.ChainStreamInterceptor(
			recovery.StreamServerInterceptor(recoveryOpt),
			selector.StreamServerInterceptor(
				auth.StreamServerInterceptor(authenticate.AuthFunc),
				selector.MatchFunc(authRequired),
			),
		),
	)
	r.registerAuthRoutes(s)
	r.registerHealth(s)
	reflection.Register(s)

	return s
}

// Health exposes the health server so main can flip serving status on shutdown.
func (r *Router) Health() *health.Server {
	return r.health
}

func (r *Router) registerAuthRoutes(server *grpc.Server) {
	authHandler := handler.NewAuth(r.authService, r.tokenService, r.contextManager, r.logger)
	sessiondv1.RegisterAuthServer(server, authHandler)
}

func (r *Router) registerHealth(server *grpc.Server) {
	r.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	r.health.SetServingStatus(sessiondv1.Auth_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(server, r.health)
}
