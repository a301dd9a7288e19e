package notify

import (
	"context"

	"github.com/dtroode/diagnosis-server/internal/logger"
	"github.com/dtroode/diagnosis-server/internal/model"
)

var _ model.VerificationSender = (*LogSender)(nil)

// LogSender stands in for a mail transport: it writes the verification
// token to the server log, where an operator can hand it to the user.
type LogSender struct {
	logger *logger.Logger
}

func NewLogSender(logger *logger.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) SendVerification(ctx context.Context, email, token string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.logger.Info("Verification sender: token ready for delivery",
		"email", email,
		"token", token)

	return nil
}
