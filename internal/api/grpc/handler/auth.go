package handler

import (
	"context"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/auth"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/dtroode/diagnosis-server/internal/logger"
	"github.com/dtroode/diagnosis-server/internal/model"
)

// AccountService defines registration and password login.
type AccountService interface {
	Register(ctx context.Context, email, password, role string) error
	Authenticate(ctx context.Context, email, password string) (role string, err error)
}

// SessionService defines session start and end.
type SessionService interface {
	Create(ctx context.Context, email string) (token string, err error)
	Delete(ctx context.Context, token string) (deleted bool, err error)
}

// VerificationService defines email verification token issue and redemption.
type VerificationService interface {
	Issue(ctx context.Context, email string) error
	Confirm(ctx context.Context, token string) (email string, err error)
}

// Auth handles the diagnosis.v1.Auth endpoints.
type Auth struct {
	accounts       AccountService
	sessions       SessionService
	verification   VerificationService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(
	accounts AccountService,
	sessions SessionService,
	verification VerificationService,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		accounts:       accounts,
		sessions:       sessions,
		verification:   verification,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Register creates an account and echoes its email and role.
func (h *Auth) Register(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	email, err := requiredString(req, "email")
	if err != nil {
		return nil, err
	}
	password, err := requiredString(req, "password")
	if err != nil {
		return nil, err
	}
	role, err := optionalString(req, "role")
	if err != nil {
		return nil, err
	}

	h.logger.Debug("Auth handler: processing registration request",
		"email", email)

	if err := h.accounts.Register(ctx, email, password, role); err != nil {
		h.logger.Info("Auth handler: registration failed",
			"email", email,
			"error", err.Error())
		return nil, handleError(err)
	}

	if role == "" {
		role = model.DefaultRole
	}

	return response(map[string]any{
		"email": email,
		"role":  role,
	})
}

// Login checks credentials and starts a session.
func (h *Auth) Login(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	email, err := requiredString(req, "email")
	if err != nil {
		return nil, err
	}
	password, err := requiredString(req, "password")
	if err != nil {
		return nil, err
	}

	h.logger.Debug("Auth handler: processing login request",
		"email", email)

	role, err := h.accounts.Authenticate(ctx, email, password)
	if err != nil {
		h.logger.Info("Auth handler: login failed",
			"email", email,
			"error", err.Error())
		return nil, handleError(err)
	}

	token, err := h.sessions.Create(ctx, email)
	if err != nil {
		h.logger.Error("Auth handler: failed to create session",
			"email", email,
			"error", err.Error())
		return nil, handleError(err)
	}

	h.logger.Info("Auth handler: login completed",
		"email", email)

	return response(map[string]any{
		"token": token,
		"role":  role,
	})
}

// Logout ends the session named by the request's bearer token.
func (h *Auth) Logout(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	token, err := auth.AuthFromMD(ctx, "bearer")
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "missing authorization token")
	}

	deleted, err := h.sessions.Delete(ctx, token)
	if err != nil {
		h.logger.Error("Auth handler: failed to delete session",
			"error", err.Error())
		return nil, handleError(err)
	}

	return response(map[string]any{
		"deleted": deleted,
	})
}

// Session returns the email of the calling session.
func (h *Auth) Session(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	email, ok := h.contextManager.GetEmailFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "invalid or expired session")
	}

	return response(map[string]any{
		"email": email,
	})
}

// RequestVerification sends a verification token to the calling session's
// email. The token itself is not part of the response.
func (h *Auth) RequestVerification(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	email, ok := h.contextManager.GetEmailFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "invalid or expired session")
	}

	if err := h.verification.Issue(ctx, email); err != nil {
		h.logger.Info("Auth handler: verification request failed",
			"email", email,
			"error", err.Error())
		return nil, handleError(err)
	}

	return response(map[string]any{
		"sent": true,
	})
}

// ConfirmVerification redeems a verification token.
func (h *Auth) ConfirmVerification(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	token, err := requiredString(req, "token")
	if err != nil {
		return nil, err
	}

	email, err := h.verification.Confirm(ctx, token)
	if err != nil {
		h.logger.Info("Auth handler: verification confirm failed",
			"error", err.Error())
		return nil, handleError(err)
	}

	h.logger.Info("Auth handler: email verified",
		"email", email)

	return response(map[string]any{
		"email": email,
	})
}
