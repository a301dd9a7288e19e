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

	"google.golang.org/grpc/reflection"

	grpcctx "github.com/dtroode/diagnosis-server/internal/api/grpc/context"
	"github.com/dtroode/diagnosis-server/internal/api/grpc/middleware"
	"github.com/dtroode/diagnosis-server/internal/api/grpc/router"
	grpcServer "github.com/dtroode/diagnosis-server/internal/api/grpc/server"
	"github.com/dtroode/diagnosis-server/internal/config"
	"github.com/dtroode/diagnosis-server/internal/diagnosis"
	"github.com/dtroode/diagnosis-server/internal/logger"
	"github.com/dtroode/diagnosis-server/internal/model"
	"github.com/dtroode/diagnosis-server/internal/notify"
	"github.com/dtroode/diagnosis-server/internal/password"
	"github.com/dtroode/diagnosis-server/internal/repository/document"
	"github.com/dtroode/diagnosis-server/internal/server"
	"github.com/dtroode/diagnosis-server/internal/service"
	"github.com/dtroode/diagnosis-server/internal/storage/backend"
	"github.com/dtroode/diagnosis-server/internal/storage/file"
	"github.com/dtroode/diagnosis-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	stores, err := backend.Open(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to initialize storage", "backend", cfg.Store.Backend, "error", err)
	}
	defer func() {
		if err := stores.Close(); err != nil {
			logger.Error("failed to close storage", "error", err)
		}
	}()

	accountStore := document.New[model.Account](stores.Accounts)
	sessionStore := document.New[model.Session](stores.Sessions)

	accounts := service.NewAccounts(accountStore, password.NewBcrypt(cfg.Password.BcryptCost), logger)
	sessions := service.NewSessions(sessionStore, cfg.Session.TTL, logger)
	verification := service.NewVerification(
		accounts,
		token.NewJWT(cfg.JWT.Secret, cfg.JWT.VerificationTTL),
		notify.NewLogSender(logger),
		logger,
	)

	predictor := loadPredictor(ctx, cfg.Model.Path, logger)

	limiter := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst, router.RateLimitedMethods...)
	go limiter.Run(ctx)

	grpcServer := registerGRPCServer(logger, accounts, sessions, verification, predictor, limiter, grpcctx.NewManager(), fmt.Sprintf(":%s", cfg.GRPC.Port))

	var sl model.SecurityLayer

	if cfg.GRPC.EnableHTTPS {
		sl = server.NewTLSListener(cfg.GRPC.CertFileName, cfg.GRPC.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address(), "tls", cfg.GRPC.EnableHTTPS)
		if err := s.Start(sl); err != nil {
			logger.Error("failed to start server", "error", err)
			stop()
		}
	}(grpcServer)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := grpcServer.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", grpcServer.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}

// loadPredictor returns nil when no artifact is configured. A configured
// artifact that cannot be loaded is fatal.
func loadPredictor(ctx context.Context, path string, logger *logger.Logger) model.Predictor {
	if path == "" {
		logger.Warn("MODEL_PATH is not set, predictions are disabled")
		return nil
	}

	p, err := diagnosis.Load(ctx, file.NewBlob(path))
	if err != nil {
		logger.Fatal("failed to load model artifact", "path", path, "error", err)
	}

	logger.Info("model artifact loaded", "path", path, "features", len(diagnosis.Features))
	return p
}

func registerGRPCServer(
	logger *logger.Logger,
	accounts *service.Accounts,
	sessions *service.Sessions,
	verification *service.Verification,
	predictor model.Predictor,
	limiter *middleware.RateLimiter,
	ctxMgr model.ContextManager,
	addr string,
) *grpcServer.GRPCServer {
	r := router.New(accounts, sessions, verification, predictor, limiter, ctxMgr, logger)
	s := r.Register()

	reflection.Register(s)

	return grpcServer.NewGRPCServer(s, addr)
}
