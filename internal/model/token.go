package model

import "context"

// VerificationTokenManager signs and checks email verification tokens.
type VerificationTokenManager interface {
	GenerateVerificationToken(email string) (string, error)
	ParseVerificationToken(token string) (string, error)
}

// VerificationSender delivers a verification token to the owner of email.
type VerificationSender interface {
	SendVerification(ctx context.Context, email, token string) error
}
