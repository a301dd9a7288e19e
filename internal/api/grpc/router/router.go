package router

import (
	"context"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/auth"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/selector"
	"google.golang.org/grpc"

	"github.com/dtroode/diagnosis-server/internal/api/grpc/handler"
	"github.com/dtroode/diagnosis-server/internal/api/grpc/middleware"
	"github.com/dtroode/diagnosis-server/internal/api/grpc/rpc"
	"github.com/dtroode/diagnosis-server/internal/logger"
	"github.com/dtroode/diagnosis-server/internal/model"
	"github.com/dtroode/diagnosis-server/internal/service"
)

// PublicMethods do not require a session.
var PublicMethods = map[string]bool{
	rpc.AuthRegisterFullMethod:            true,
	rpc.AuthLoginFullMethod:               true,
	rpc.AuthConfirmVerificationFullMethod: true,
}

// RateLimitedMethods draw from one token bucket per peer host.
var RateLimitedMethods = []string{
	rpc.AuthRegisterFullMethod,
	rpc.AuthLoginFullMethod,
	rpc.AuthRequestVerificationFullMethod,
}

// Router wires handlers and interceptors into a gRPC server.
type Router struct {
	accounts       *service.Accounts
	sessions       *service.Sessions
	verification   *service.Verification
	predictor      model.Predictor
	rateLimiter    *middleware.RateLimiter
	contextManager model.ContextManager
	logger         *logger.Logger
}

// New creates a Router. predictor may be nil when no model artifact is
// configured; rateLimiter may be nil to disable rate limiting.
func New(
	accounts *service.Accounts,
	sessions *service.Sessions,
	verification *service.Verification,
	predictor model.Predictor,
	rateLimiter *middleware.RateLimiter,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Router {
	return &Router{
		accounts:       accounts,
		sessions:       sessions,
		verification:   verification,
		predictor:      predictor,
		rateLimiter:    rateLimiter,
		contextManager: contextManager,
		logger:         logger,
	}
}

func requiresSession(_ context.Context, c interceptors.CallMeta) bool {
	return !PublicMethods[c.FullMethod()]
}

// Register builds the gRPC server with logging, rate limiting and session
// authentication interceptors, in that order.
func (r *Router) Register(opts ...grpc.ServerOption) *grpc.Server {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.sessions, r.contextManager, r.logger)

	unary := []grpc.UnaryServerInterceptor{logging.HandleGRPC}
	if r.rateLimiter != nil {
		unary = append(unary, r.rateLimiter.HandleGRPC)
	}
	unary = append(unary, selector.UnaryServerInterceptor(
		auth.UnaryServerInterceptor(authenticate.AuthFunc),
		selector.MatchFunc(requiresSession),
	))

	opts = append(opts,
		grpc.ChainUnaryInterceptor(unary...),
		grpc.ChainStreamInterceptor(
			selector.StreamServerInterceptor(
				auth.StreamServerInterceptor(authenticate.AuthFunc),
				selector.MatchFunc(requiresSession),
			),
		),
	)

	s := grpc.NewServer(opts...)
	r.registerAuthRoutes(s)
	r.registerDiagnosisRoutes(s)

	return s
}

func (r *Router) registerAuthRoutes(server *grpc.Server) {
	authHandler := handler.NewAuth(r.accounts, r.sessions, r.verification, r.contextManager, r.logger)
	rpc.RegisterAuthServer(server, authHandler)
}

func (r *Router) registerDiagnosisRoutes(server *grpc.Server) {
	diagnosisHandler := handler.NewDiagnosis(r.predictor, r.contextManager, r.logger)
	rpc.RegisterDiagnosisServer(server, diagnosisHandler)
}
