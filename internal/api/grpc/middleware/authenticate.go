package middleware

import (
	"context"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/auth"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dtroode/diagnosis-server/internal/logger"
	"github.com/dtroode/diagnosis-server/internal/model"
)

// SessionValidator resolves a session token to its email.
type SessionValidator interface {
	Validate(ctx context.Context, token string) (email string, ok bool, err error)
}

// Authenticate validates bearer session tokens and injects the session email into context.
type Authenticate struct {
	sessions       SessionValidator
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(sessions SessionValidator, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{sessions: sessions, contextManager: contextManager, logger: logger}
}

// AuthFunc reads the "authorization: Bearer <token>" header, validates the
// session and returns a context carrying its email.
func (m *Authenticate) AuthFunc(ctx context.Context) (context.Context, error) {
	token, err := auth.AuthFromMD(ctx, "bearer")
	if err != nil || token == "" {
		return nil, status.Error(codes.Unauthenticated, "missing authorization token")
	}

	email, ok, err := m.sessions.Validate(ctx, token)
	if err != nil {
		m.logger.Error("Authenticate middleware: failed to validate session",
			"error", err.Error())
		return nil, status.Error(codes.Internal, "internal server error")
	}
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "invalid or expired session")
	}

	return m.contextManager.SetEmailToContext(ctx, email), nil
}
