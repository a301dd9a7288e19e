package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/diagnosis-server/internal/mocks"
	"github.com/dtroode/diagnosis-server/internal/model"
	"github.com/dtroode/diagnosis-server/internal/testutil"
)

func TestSessions_CreateAndValidate(t *testing.T) {
	ctx := context.Background()
	s, doc, _ := newTestSessions(t)

	token, err := s.Create(ctx, "a@b.com")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	email, ok, err := s.Validate(ctx, token)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "a@b.com", email)

	stored, err := doc.Load(ctx)
	require.NoError(t, err)
	require.Contains(t, stored, token)
	assert.True(t, testStart.Add(model.DefaultSessionTTL).Equal(stored[token].Expiry.Time))
}

func TestSessions_CreateDistinctTokens(t *testing.T) {
	ctx := context.Background()
	s, doc, _ := newTestSessions(t)

	first, err := s.Create(ctx, "a@b.com")
	require.NoError(t, err)
	second, err := s.Create(ctx, "a@b.com")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)

	stored, err := doc.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, stored, 2)
}

func TestSessions_CreateRetriesTakenToken(t *testing.T) {
	ctx := context.Background()
	s, doc, _ := newTestSessions(t)

	tokens := []string{"taken", "taken", "fresh"}
	s.newToken = func() string {
		next := tokens[0]
		tokens = tokens[1:]
		return next
	}

	first, err := s.Create(ctx, "first@b.com")
	require.NoError(t, err)
	assert.Equal(t, "taken", first)

	second, err := s.Create(ctx, "second@b.com")
	require.NoError(t, err)
	assert.Equal(t, "fresh", second)

	stored, err := doc.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "first@b.com", stored["taken"].Email)
	assert.Equal(t, "second@b.com", stored["fresh"].Email)
}

func TestSessions_ValidateUnknownToken(t *testing.T) {
	s, _, _ := newTestSessions(t)

	email, ok, err := s.Validate(context.Background(), "no-such-token")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, email)
}

func TestSessions_ExpiryIsEvictedLazily(t *testing.T) {
	ctx := context.Background()
	s, doc, clock := newTestSessions(t)

	token, err := s.Create(ctx, "a@b.com")
	require.NoError(t, err)

	clock.Advance(model.DefaultSessionTTL - time.Second)
	_, ok, err := s.Validate(ctx, token)
	require.NoError(t, err)
	assert.True(t, ok, "session must be valid just before expiry")

	clock.Advance(time.Second)
	stored, err := doc.Load(ctx)
	require.NoError(t, err)
	assert.Contains(t, stored, token, "nothing sweeps expired sessions in the background")

	_, ok, err = s.Validate(ctx, token)
	require.NoError(t, err)
	assert.False(t, ok, "session expires at exactly its expiry instant")

	stored, err = doc.Load(ctx)
	require.NoError(t, err)
	assert.NotContains(t, stored, token)
}

func TestSessions_Delete(t *testing.T) {
	ctx := context.Background()
	s, doc, _ := newTestSessions(t)

	token, err := s.Create(ctx, "a@b.com")
	require.NoError(t, err)

	deleted, err := s.Delete(ctx, token)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, ok, err := s.Validate(ctx, token)
	require.NoError(t, err)
	assert.False(t, ok)

	deleted, err = s.Delete(ctx, token)
	require.NoError(t, err)
	assert.False(t, deleted)

	stored, err := doc.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestSessions_DeleteAbsentDoesNotWrite(t *testing.T) {
	store := mocks.NewSessionStore(t)
	store.On("Load", mock.Anything).Return(map[string]model.Session{}, nil)
	s := NewSessions(store, time.Hour, testutil.MakeNoopLogger())

	deleted, err := s.Delete(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, deleted)
	store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestSessions_StoreErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("load failure", func(t *testing.T) {
		store := mocks.NewSessionStore(t)
		store.On("Load", mock.Anything).Return(nil, model.ErrCorruptDocument)
		s := NewSessions(store, time.Hour, testutil.MakeNoopLogger())

		_, err := s.Create(ctx, "a@b.com")
		assert.ErrorIs(t, err, model.ErrCorruptDocument)
		_, _, err = s.Validate(ctx, "token")
		assert.ErrorIs(t, err, model.ErrCorruptDocument)
		_, err = s.Delete(ctx, "token")
		assert.ErrorIs(t, err, model.ErrCorruptDocument)
	})

	t.Run("save failure", func(t *testing.T) {
		store := mocks.NewSessionStore(t)
		store.On("Load", mock.Anything).Return(map[string]model.Session{}, nil)
		store.On("Save", mock.Anything, mock.Anything).Return(assert.AnError)
		s := NewSessions(store, time.Hour, testutil.MakeNoopLogger())

		token, err := s.Create(ctx, "a@b.com")
		require.ErrorIs(t, err, assert.AnError)
		assert.Empty(t, token)
	})
}

func TestNewSessions_DefaultsTTL(t *testing.T) {
	s := NewSessions(mocks.NewSessionStore(t), 0, testutil.MakeNoopLogger())
	assert.Equal(t, model.DefaultSessionTTL, s.ttl)
}

// Register, log in, use the session, log out.
func TestAuthFlow(t *testing.T) {
	ctx := context.Background()
	accounts, _, _ := newTestAccounts(t)
	sessions, _, _ := newTestSessions(t)

	require.NoError(t, accounts.Register(ctx, "a@b.com", "Passw0rd!", ""))

	role, err := accounts.Authenticate(ctx, "a@b.com", "Passw0rd!")
	require.NoError(t, err)
	assert.Equal(t, "medical_pro", role)

	token, err := sessions.Create(ctx, "a@b.com")
	require.NoError(t, err)

	email, ok, err := sessions.Validate(ctx, token)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "a@b.com", email)

	deleted, err := sessions.Delete(ctx, token)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, ok, err = sessions.Validate(ctx, token)
	require.NoError(t, err)
	assert.False(t, ok)
}
