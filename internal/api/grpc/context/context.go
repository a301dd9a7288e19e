package context

import (
	"context"
)

type emailKey struct{}

// Manager carries the authenticated session's email through a request
// context. The value lives in the context rather than in incoming metadata
// so a client cannot supply it.
type Manager struct{}

// NewManager creates a new gRPC context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetEmailToContext returns a child context that carries email.
func (m *Manager) SetEmailToContext(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, emailKey{}, email)
}

// GetEmailFromContext returns the email set by SetEmailToContext.
// The boolean is false when no non-empty email is present.
func (m *Manager) GetEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(emailKey{}).(string)
	if !ok || email == "" {
		return "", false
	}

	return email, true
}
