package auth

import (
	"context"

	"bauportal/internal/domain"
)

// UserRepositoryInterface lists only the methods the auth service uses.
type UserRepositoryInterface interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateByID(ctx context.Context, id int64, fields map[string]any) error
}

// Mailer delivers verification codes and reset links. The production
// implementation talks to the mail provider; tests and local dev use the
// logging variant.
type Mailer interface {
	SendTwoFactorCode(ctx context.Context, email, code string) error
	SendPasswordReset(ctx context.Context, email, resetURL string) error
}

// codeStore is what the service needs from a code store; *CodeStore
// satisfies it, as would an externally backed implementation.
type codeStore interface {
	Issue(key, value string) error
	Peek(key string) (string, error)
	Consume(key, value string) error
	Drop(key string)
}
