package auth

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"bauportal/internal/domain"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	maxFailedLoginAttempts = 5
	lockoutDuration        = 15 * time.Minute
	minPasswordLength      = 6
)

type jwtService interface {
	GenerateToken(userID int64, role, tenantID string) (string, error)
}

// Service contains all business logic for authentication: login with
// lockout, two-factor codes and the password-reset flow.
type Service struct {
	users          UserRepositoryInterface
	jwt            jwtService
	mailer         Mailer
	twoFactorCodes codeStore
	resetCodes     codeStore
	portalBaseURL  string
}

type LoginResult struct {
	User        *domain.User
	AccessToken string
}

func NewService(
	users UserRepositoryInterface,
	jwt jwtService,
	mailer Mailer,
	twoFactorCodes *CodeStore,
	resetCodes *CodeStore,
	portalBaseURL string,
) *Service {
	return &Service{
		users:          users,
		jwt:            jwt,
		mailer:         mailer,
		twoFactorCodes: twoFactorCodes,
		resetCodes:     resetCodes,
		portalBaseURL:  portalBaseURL,
	}
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	now := time.Now()
	if user.Status == domain.UserInactive {
		return nil, ErrUserDisabled
	}
	if user.LockedUntil != nil && user.LockedUntil.After(now) {
		return nil, ErrTooManyRequests
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		failedAttempts := user.FailedLoginAttempts + 1
		fields := map[string]any{"failed_login_attempts": failedAttempts}
		if failedAttempts >= maxFailedLoginAttempts {
			fields["locked_until"] = now.Add(lockoutDuration)
		}
		if updateErr := s.users.UpdateByID(ctx, user.ID, fields); updateErr != nil {
			return nil, updateErr
		}
		if failedAttempts >= maxFailedLoginAttempts {
			return nil, ErrTooManyRequests
		}
		return nil, ErrWrongPassword
	}

	if user.FailedLoginAttempts > 0 || user.LockedUntil != nil {
		if err := s.users.UpdateByID(ctx, user.ID, map[string]any{
			"failed_login_attempts": 0,
			"locked_until":          nil,
		}); err != nil {
			return nil, err
		}
	}

	token, err := s.jwt.GenerateToken(user.ID, string(user.Role), domain.ResolveTenantID(user))
	if err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return &LoginResult{User: user, AccessToken: token}, nil
}

// RequestTwoFactorCode issues a 6-digit code for the account and mails
// it. Unknown addresses still error: the portal's two-factor prompt only
// appears after a successful first factor.
func (s *Service) RequestTwoFactorCode(ctx context.Context, email string) error {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	code, err := generateNumericCode(6)
	if err != nil {
		return err
	}
	if err := s.twoFactorCodes.Issue(normalizeEmail(email), code); err != nil {
		return err
	}
	return s.mailer.SendTwoFactorCode(ctx, user.Email, code)
}

func (s *Service) VerifyTwoFactorCode(ctx context.Context, email, code string) error {
	return s.twoFactorCodes.Consume(normalizeEmail(email), code)
}

// SendPasswordReset issues an oobCode and mails a link of the form
// <base>?mode=resetPassword&oobCode=<code>. Unknown addresses are
// reported; the reference portal surfaces "Benutzer nicht gefunden"
// rather than answering blindly.
func (s *Service) SendPasswordReset(ctx context.Context, email string) error {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	oobCode := uuid.NewString()
	if err := s.resetCodes.Issue(oobCode, normalizeEmail(user.Email)); err != nil {
		return err
	}

	resetURL := fmt.Sprintf("%s?mode=resetPassword&oobCode=%s", s.portalBaseURL, oobCode)
	return s.mailer.SendPasswordReset(ctx, user.Email, resetURL)
}

// VerifyResetCode checks an oobCode without consuming it and returns the
// e-mail it was issued for.
func (s *Service) VerifyResetCode(_ context.Context, oobCode string) (string, error) {
	return s.resetCodes.Peek(oobCode)
}

func (s *Service) ConfirmPasswordReset(ctx context.Context, oobCode, newPassword string) error {
	if len(newPassword) < minPasswordLength {
		return ErrWeakPassword
	}

	email, err := s.resetCodes.Peek(oobCode)
	if err != nil {
		return err
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := s.users.UpdateByID(ctx, user.ID, map[string]any{
		"password_hash":         string(hash),
		"failed_login_attempts": 0,
		"locked_until":          nil,
	}); err != nil {
		return err
	}

	s.resetCodes.Drop(oobCode)
	return nil
}

func generateNumericCode(digits int) (string, error) {
	max := big.NewInt(1)
	for i := 0; i < digits; i++ {
		max.Mul(max, big.NewInt(10))
	}
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", digits, n), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
