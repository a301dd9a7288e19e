package model

import "context"

type ContextManager interface {
	SetEmailToContext(ctx context.Context, email string) context.Context
	GetEmailFromContext(ctx context.Context) (string, bool)
}
