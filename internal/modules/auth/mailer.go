package auth

import (
	"context"
	"log"
)

// LogMailer writes outgoing mail to the process log instead of sending
// it. Default for local development and seeding.
type LogMailer struct{}

func (LogMailer) SendTwoFactorCode(_ context.Context, email, code string) error {
	log.Printf("mail two_factor_code to=%s code=%s", email, code)
	return nil
}

func (LogMailer) SendPasswordReset(_ context.Context, email, resetURL string) error {
	log.Printf("mail password_reset to=%s url=%s", email, resetURL)
	return nil
}
