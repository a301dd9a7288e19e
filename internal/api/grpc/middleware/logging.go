package middleware

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"

	"github.com/dtroode/diagnosis-server/internal/logger"
)

// Logging is a unary interceptor that logs gRPC requests and results.
type Logging struct {
	logger *logger.Logger
}

// NewLogging creates a new Logging middleware.
func NewLogging(logger *logger.Logger) *Logging {
	return &Logging{logger: logger}
}

// HandleGRPC logs method name, peer, duration and status for each unary request.
func (l *Logging) HandleGRPC(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()

	addr := "unknown"
	if p, ok := peer.FromContext(ctx); ok && p.Addr != nil {
		addr = p.Addr.String()
	}

	l.logger.Debug("gRPC request started",
		"method", info.FullMethod,
		"peer", addr)

	resp, err := handler(ctx, req)

	duration := time.Since(start)
	code := status.Code(err)

	l.logger.Info("gRPC request completed",
		"method", info.FullMethod,
		"peer", addr,
		"duration_ms", duration.Milliseconds(),
		"status", code.String())

	// client errors are expected traffic; only server side failures are errors
	switch code {
	case codes.OK:
	case codes.Internal, codes.Unknown, codes.Unavailable, codes.DataLoss:
		l.logger.Error("gRPC request failed",
			"method", info.FullMethod,
			"error", err.Error(),
			"status", code.String())
	default:
		l.logger.Warn("gRPC request rejected",
			"method", info.FullMethod,
			"error", err.Error(),
			"status", code.String())
	}

	return resp, err
}
