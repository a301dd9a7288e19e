package model

import (
	"context"
	"time"
)

// DefaultSessionTTL is the lifetime of a freshly created session.
const DefaultSessionTTL = 24 * time.Hour

// Session links an opaque token to the email that logged in.
type Session struct {
	Email  string    `json:"email"`
	Expiry Timestamp `json:"expiry"`
}

// Expired reports whether the session is no longer valid at now.
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.Expiry.Time)
}

// SessionStore loads and saves the whole session document.
type SessionStore interface {
	Load(ctx context.Context) (map[string]Session, error)
	Save(ctx context.Context, sessions map[string]Session) error
}
