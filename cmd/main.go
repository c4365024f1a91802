package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	apicontext "github.com/dtroode/sessiond/internal/api/context"
	grpcrouter "github.com/dtroode/sessiond/internal/api/grpc/router"
	grpcserver "github.com/dtroode/sessiond/internal/api/grpc/server"
	httprouter "github.com/dtroode/sessiond/internal/api/http/router"
	httpserver "github.com/dtroode/sessiond/internal/api/http/server"
	"github.com/dtroode/sessiond/internal/config"
	"github.com/dtroode/sessiond/internal/logger"
	"github.com/dtroode/sessiond/internal/model"
	"github.com/dtroode/sessiond/internal/password"
	"github.com/dtroode/sessiond/internal/repository/memory"
	"github.com/dtroode/sessiond/internal/repository/postgres"
	"github.com/dtroode/sessiond/internal/repository/redis"
	"github.com/dtroode/sessiond/internal/server"
	"github.com/dtroode/sessiond/internal/service"
	"github.com/dtroode/sessiond/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

const shutdownTimeout = 10 * time.Second

type stores struct {
	users   model.UserStore
	refresh model.RefreshTokenStore
	closers []func() error
}

func (s *stores) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		_ = s.closers[i]()
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel, cfg.LogFormat)

	st, err := openStores(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to initialize storage", "driver", cfg.StorageDriver, "error", err)
	}
	defer st.Close()

	tokenManager, err := token.NewJWT(cfg.JWT.AccessSecret, cfg.JWT.RefreshSecret,
		token.WithAccessTTL(cfg.JWT.AccessTTL),
		token.WithRefreshTTL(cfg.JWT.RefreshTTL),
		token.WithIssuer(cfg.JWT.Issuer),
	)
	if err != nil {
		logger.Fatal("failed to initialize token signer", "error", err)
	}

	tokenService := service.NewTokenService(tokenManager, st.refresh, logger,
		service.WithRequestTimeout(cfg.RequestTimeout))
	authService := service.NewAuth(st.users, password.NewBcrypt(cfg.BcryptCost), tokenService, logger)
	ctxMgr := apicontext.NewManager()

	grpcRouter := grpcrouter.New(authService, tokenService, ctxMgr, logger)
	httpRouter := httprouter.New(authService, tokenService, ctxMgr, logger, cfg.RequestTimeout)

	servers := []struct {
		server model.Server
		sl     model.SecurityLayer
	}{
		{server: grpcserver.NewGRPCServer(grpcRouter.Register(), cfg.GRPC.Addr), sl: mustSecurityLayer(logger, cfg.GRPC)},
		{server: httpserver.NewHTTPServer(httpRouter.Register(), cfg.HTTP.Addr), sl: mustSecurityLayer(logger, cfg.HTTP)},
	}

	var wg sync.WaitGroup
	for _, s := range servers {
		wg.Add(1)
		go func(s model.Server, sl model.SecurityLayer) {
			defer wg.Done()
			logger.Info("Starting server on", "server", s.Name(), "address", s.Address())
			if err := s.Start(sl); err != nil {
				logger.Error("failed to start server", "server", s.Name(), "error", err)
				stop()
			}
		}(s.server, s.sl)
	}

	janitor := service.NewJanitor(st.refresh, cfg.JanitorInterval, logger)
	wg.Add(1)
	go func() {
		defer wg.Done()
		janitor.Run(ctx)
	}()

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	grpcRouter.Health().Shutdown()
	httpRouter.SetServing(false)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	for _, s := range servers {
		if err := s.server.Stop(shutdownCtx); err != nil {
			logger.Error("error during server shutdown", "server", s.server.Name(), "error", err, "address", s.server.Address())
		}
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

// openStores picks the refresh record backend. Users live in PostgreSQL
// unless the memory driver is selected.
func openStores(ctx context.Context, cfg *config.Config) (*stores, error) {
	st := &stores{}

	if cfg.StorageDriver == config.DriverMemory {
		st.users = memory.NewUserRepository()
		st.refresh = memory.NewRefreshTokenRepository()
		return st, nil
	}

	db, err := postgres.NewConection(ctx, cfg.Database.DSN)
	if err != nil {
		return nil, err
	}
	st.closers = append(st.closers, db.Close)
	st.users = postgres.NewUserRepository(db)
	st.refresh = postgres.NewRefreshTokenRepository(db)

	if cfg.StorageDriver == config.DriverRedis {
		repo, closeRedis, err := openRedis(ctx, cfg.Redis)
		if err != nil {
			st.Close()
			return nil, err
		}
		st.closers = append(st.closers, closeRedis)
		st.refresh = repo
	}

	return st, nil
}

// openRedis connects the refresh store and pings it through the repository.
func openRedis(ctx context.Context, cfg config.Redis) (*redis.RefreshTokenRepository, func() error, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	repo := redis.NewRefreshTokenRepository(client, cfg.Prefix)
	if err := repo.Ping(ctx); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return repo, client.Close, nil
}

func mustSecurityLayer(logger *logger.Logger, l config.Listener) model.SecurityLayer {
	sl, err := server.NewSecurityLayer(l.CertFile, l.KeyFile)
	if err != nil {
		logger.Fatal("invalid TLS configuration", "address", l.Addr, "error", err)
	}
	return sl
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
