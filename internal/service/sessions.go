package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/diagnosis-server/internal/logger"
	"github.com/dtroode/diagnosis-server/internal/model"
)

// Sessions is the session store. Expired sessions are removed lazily, the
// next time they are validated; there is no background sweep.
type Sessions struct {
	mu       sync.Mutex
	store    model.SessionStore
	ttl      time.Duration
	logger   *logger.Logger
	now      func() time.Time
	newToken func() string
}

func NewSessions(store model.SessionStore, ttl time.Duration, logger *logger.Logger) *Sessions {
	if ttl <= 0 {
		ttl = model.DefaultSessionTTL
	}
	return &Sessions{
		store:    store,
		ttl:      ttl,
		logger:   logger,
		now:      time.Now,
		newToken: uuid.NewString,
	}
}

// Create starts a session for email and returns its token. The email is not
// checked against the account store.
func (s *Sessions) Create(ctx context.Context, email string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sessions, err := s.store.Load(ctx)
	if err != nil {
		s.logger.Error("Sessions service: failed to load sessions",
			"email", email,
			"error", err.Error())
		return "", fmt.Errorf("failed to load sessions: %w", err)
	}

	token := s.newToken()
	for _, taken := sessions[token]; taken; _, taken = sessions[token] {
		token = s.newToken()
	}

	sessions[token] = model.Session{
		Email:  email,
		Expiry: model.NewTimestamp(s.now().Add(s.ttl)),
	}

	if err := s.store.Save(ctx, sessions); err != nil {
		s.logger.Error("Sessions service: failed to save sessions",
			"email", email,
			"error", err.Error())
		return "", fmt.Errorf("failed to save sessions: %w", err)
	}

	s.logger.Info("Sessions service: session created",
		"email", email)

	return token, nil
}

// Validate returns the session's email and true while the session is active.
// An expired session is deleted and reported like an absent one.
func (s *Sessions) Validate(ctx context.Context, token string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sessions, err := s.store.Load(ctx)
	if err != nil {
		return "", false, fmt.Errorf("failed to load sessions: %w", err)
	}

	session, ok := sessions[token]
	if !ok {
		return "", false, nil
	}

	if session.Expired(s.now()) {
		delete(sessions, token)
		if err := s.store.Save(ctx, sessions); err != nil {
			return "", false, fmt.Errorf("failed to save sessions: %w", err)
		}
		s.logger.Info("Sessions service: expired session removed",
			"email", session.Email)
		return "", false, nil
	}

	return session.Email, true, nil
}

// Delete removes the session and reports whether it existed.
func (s *Sessions) Delete(ctx context.Context, token string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sessions, err := s.store.Load(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to load sessions: %w", err)
	}

	session, ok := sessions[token]
	if !ok {
		return false, nil
	}

	delete(sessions, token)
	if err := s.store.Save(ctx, sessions); err != nil {
		return false, fmt.Errorf("failed to save sessions: %w", err)
	}

	s.logger.Info("Sessions service: session deleted",
		"email", session.Email)

	return true, nil
}
