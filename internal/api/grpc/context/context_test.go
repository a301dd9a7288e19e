package context

import (
	stdctx "context"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/metadata"
)

func TestManager_SetAndGetEmail(t *testing.T) {
	m := NewManager()
	ctx := m.SetEmailToContext(stdctx.Background(), "a@b.com")

	got, ok := m.GetEmailFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "a@b.com", got)
}

func TestManager_GetEmail_NotFound(t *testing.T) {
	m := NewManager()
	_, ok := m.GetEmailFromContext(stdctx.Background())
	assert.False(t, ok)
}

func TestManager_GetEmail_Empty(t *testing.T) {
	m := NewManager()
	ctx := m.SetEmailToContext(stdctx.Background(), "")
	_, ok := m.GetEmailFromContext(ctx)
	assert.False(t, ok)
}

func TestManager_GetEmail_IgnoresClientMetadata(t *testing.T) {
	m := NewManager()
	md := metadata.New(map[string]string{"email": "spoofed@b.com"})
	ctx := metadata.NewIncomingContext(stdctx.Background(), md)

	_, ok := m.GetEmailFromContext(ctx)
	assert.False(t, ok)
}

func TestManager_SetEmail_Overrides(t *testing.T) {
	m := NewManager()
	ctx := m.SetEmailToContext(stdctx.Background(), "old@b.com")
	ctx = m.SetEmailToContext(ctx, "new@b.com")

	got, ok := m.GetEmailFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "new@b.com", got)
}
