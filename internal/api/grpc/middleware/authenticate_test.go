package middleware

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/dtroode/diagnosis-server/internal/mocks"
	"github.com/dtroode/diagnosis-server/internal/testutil"
)

func TestAuthenticate_AuthFunc(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		mdAuthHeader  string
		validateEmail string
		validateOK    bool
		validateErr   error
		expectCall    bool
		wantGRPCCode  codes.Code
		wantErr       bool
	}{
		{
			name:         "missing authorization header",
			wantGRPCCode: codes.Unauthenticated,
			wantErr:      true,
		},
		{
			name:         "wrong scheme",
			mdAuthHeader: "Basic dXNlcjpwYXNz",
			wantGRPCCode: codes.Unauthenticated,
			wantErr:      true,
		},
		{
			name:         "unknown or expired session",
			mdAuthHeader: "Bearer stale",
			expectCall:   true,
			wantGRPCCode: codes.Unauthenticated,
			wantErr:      true,
		},
		{
			name:         "session store failure",
			mdAuthHeader: "Bearer token",
			validateErr:  assert.AnError,
			expectCall:   true,
			wantGRPCCode: codes.Internal,
			wantErr:      true,
		},
		{
			name:          "valid session",
			mdAuthHeader:  "Bearer token",
			validateEmail: "a@b.com",
			validateOK:    true,
			expectCall:    true,
			wantGRPCCode:  codes.OK,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			lg := testutil.MakeNoopLogger()
			cm := mocks.NewContextManager(t)
			sessions := mocks.NewSessionValidator(t)

			if tt.expectCall {
				sessions.On("Validate", mock.Anything, mock.AnythingOfType("string")).
					Return(tt.validateEmail, tt.validateOK, tt.validateErr)
			}
			if !tt.wantErr {
				cm.On("SetEmailToContext", mock.Anything, tt.validateEmail).Return(context.Background())
			}

			m := NewAuthenticate(sessions, cm, lg)

			ctx := context.Background()
			if tt.mdAuthHeader != "" {
				ctx = metadata.NewIncomingContext(ctx, metadata.Pairs("authorization", tt.mdAuthHeader))
			}

			newCtx, err := m.AuthFunc(ctx)

			if tt.wantErr {
				assert.Error(t, err)
				st, ok := status.FromError(err)
				assert.True(t, ok)
				assert.Equal(t, tt.wantGRPCCode, st.Code())
				assert.Nil(t, newCtx)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, newCtx)
			}
		})
	}
}
