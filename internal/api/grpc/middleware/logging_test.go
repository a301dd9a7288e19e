package middleware

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dtroode/diagnosis-server/internal/logger"
	"github.com/dtroode/diagnosis-server/internal/testutil"
)

func TestLogging_HandleGRPC(t *testing.T) {
	t.Parallel()

	lg := NewLogging(testutil.MakeNoopLogger())

	tests := []struct {
		name     string
		handler  grpc.UnaryHandler
		wantCode codes.Code
	}{
		{
			name: "success path",
			handler: func(ctx context.Context, req any) (any, error) {
				time.Sleep(10 * time.Millisecond)
				return "ok", nil
			},
			wantCode: codes.OK,
		},
		{
			name: "grpc error propagates",
			handler: func(ctx context.Context, req any) (any, error) {
				return nil, status.Error(codes.InvalidArgument, "bad input")
			},
			wantCode: codes.InvalidArgument,
		},
		{
			name: "non-grpc error is reported as Unknown",
			handler: func(ctx context.Context, req any) (any, error) {
				return nil, errors.New("boom")
			},
			wantCode: codes.Unknown,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			info := &grpc.UnaryServerInfo{FullMethod: "/svc/Method"}
			resp, err := lg.HandleGRPC(context.Background(), struct{}{}, info, tt.handler)

			if tt.wantCode == codes.OK {
				assert.NoError(t, err)
				assert.Equal(t, "ok", resp)
				return
			}

			assert.Equal(t, tt.wantCode, status.Code(err))
		})
	}
}

func TestLogging_HandleGRPC_Levels(t *testing.T) {
	t.Parallel()

	info := &grpc.UnaryServerInfo{FullMethod: "/diagnosis.v1.Auth/Login"}

	t.Run("client error logs a warning", func(t *testing.T) {
		var buf bytes.Buffer
		lg := NewLogging(logger.NewWithWriter(&buf, int(slog.LevelDebug)))

		_, _ = lg.HandleGRPC(context.Background(), nil, info, func(ctx context.Context, req any) (any, error) {
			return nil, status.Error(codes.Unauthenticated, "Invalid credentials")
		})

		out := buf.String()
		assert.Contains(t, out, "level=WARN")
		assert.Contains(t, out, "status=Unauthenticated")
		assert.NotContains(t, out, "level=ERROR")
	})

	t.Run("server error logs an error", func(t *testing.T) {
		var buf bytes.Buffer
		lg := NewLogging(logger.NewWithWriter(&buf, int(slog.LevelDebug)))

		_, _ = lg.HandleGRPC(context.Background(), nil, info, func(ctx context.Context, req any) (any, error) {
			return nil, status.Error(codes.Internal, "internal server error")
		})

		out := buf.String()
		assert.Contains(t, out, "level=ERROR")
		assert.Contains(t, out, "method=/diagnosis.v1.Auth/Login")
	})
}
