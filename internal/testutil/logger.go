package testutil

import (
	"io"
	"log/slog"

	"github.com/dtroode/diagnosis-server/internal/logger"
)

func MakeNoopLogger() *logger.Logger {
	return logger.NewWithWriter(io.Discard, int(slog.LevelError))
}
