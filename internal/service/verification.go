package service

import (
	"context"
	"fmt"

	"github.com/dtroode/diagnosis-server/internal/logger"
	"github.com/dtroode/diagnosis-server/internal/model"
)

// Verification issues and redeems email verification tokens. Issued
// tokens go to the account owner through the sender, never to the caller.
type Verification struct {
	accounts *Accounts
	tokens   model.VerificationTokenManager
	sender   model.VerificationSender
	logger   *logger.Logger
}

func NewVerification(
	accounts *Accounts,
	tokens model.VerificationTokenManager,
	sender model.VerificationSender,
	logger *logger.Logger,
) *Verification {
	return &Verification{accounts: accounts, tokens: tokens, sender: sender, logger: logger}
}

// Issue signs a verification token for a registered email and sends it.
func (v *Verification) Issue(ctx context.Context, email string) error {
	exists, err := v.accounts.Exists(ctx, email)
	if err != nil {
		return err
	}
	if !exists {
		return model.ErrUserNotFound
	}

	token, err := v.tokens.GenerateVerificationToken(email)
	if err != nil {
		return fmt.Errorf("failed to issue verification token: %w", err)
	}

	if err := v.sender.SendVerification(ctx, email, token); err != nil {
		return fmt.Errorf("failed to send verification token: %w", err)
	}

	v.logger.Info("Verification service: token issued",
		"email", email)

	return nil
}

// Confirm checks token and marks its email verified. It returns the email.
func (v *Verification) Confirm(ctx context.Context, token string) (string, error) {
	email, err := v.tokens.ParseVerificationToken(token)
	if err != nil {
		v.logger.Info("Verification service: rejected token",
			"error", err.Error())
		return "", model.ErrInvalidToken
	}

	if err := v.accounts.VerifyEmail(ctx, email); err != nil {
		return "", err
	}

	return email, nil
}
