package auth

import (
	"context"
	"testing"
	"time"

	"bauportal/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) UpdateByID(ctx context.Context, id int64, fields map[string]any) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendTwoFactorCode(ctx context.Context, email, code string) error {
	args := m.Called(ctx, email, code)
	return args.Error(0)
}

func (m *MockMailer) SendPasswordReset(ctx context.Context, email, resetURL string) error {
	args := m.Called(ctx, email, resetURL)
	return args.Error(0)
}

type fakeJWT struct{}

func (fakeJWT) GenerateToken(userID int64, role, tenantID string) (string, error) {
	return "token", nil
}

func newTestService(users *MockUserRepository, mailer Mailer) *Service {
	if mailer == nil {
		mailer = LogMailer{}
	}
	return NewService(
		users,
		fakeJWT{},
		mailer,
		NewCodeStore(5*time.Minute, time.Nanosecond),
		NewCodeStore(time.Hour, time.Nanosecond),
		"https://portal.example.de",
	)
}

func hashOf(password string) string {
	h, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	return string(h)
}

func TestService_Login_Success(t *testing.T) {
	users := new(MockUserRepository)
	users.On("GetByEmail", mock.Anything, "anna@example.de").Return(&domain.User{
		ID:           1,
		Email:        "anna@example.de",
		PasswordHash: hashOf("geheim123"),
		Role:         domain.RoleEmployee,
		Status:       domain.UserActive,
		TenantID:     "mandant-a",
	}, nil)

	svc := newTestService(users, nil)

	result, err := svc.Login(context.Background(), LoginRequest{Email: "anna@example.de", Password: "geheim123"})

	assert.NoError(t, err)
	assert.Equal(t, "token", result.AccessToken)
	assert.Empty(t, result.User.PasswordHash)
}

func TestService_Login_UnknownUser(t *testing.T) {
	users := new(MockUserRepository)
	users.On("GetByEmail", mock.Anything, "niemand@example.de").Return(nil, nil)

	svc := newTestService(users, nil)

	_, err := svc.Login(context.Background(), LoginRequest{Email: "niemand@example.de", Password: "x"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestService_Login_WrongPasswordIncrementsAttempts(t *testing.T) {
	users := new(MockUserRepository)
	users.On("GetByEmail", mock.Anything, "anna@example.de").Return(&domain.User{
		ID:                  1,
		Email:               "anna@example.de",
		PasswordHash:        hashOf("geheim123"),
		Status:              domain.UserActive,
		FailedLoginAttempts: 1,
	}, nil)
	users.On("UpdateByID", mock.Anything, int64(1), map[string]any{
		"failed_login_attempts": 2,
	}).Return(nil)

	svc := newTestService(users, nil)

	_, err := svc.Login(context.Background(), LoginRequest{Email: "anna@example.de", Password: "falsch"})
	assert.ErrorIs(t, err, ErrWrongPassword)
	users.AssertExpectations(t)
}

func TestService_Login_LockoutAfterMaxAttempts(t *testing.T) {
	users := new(MockUserRepository)
	users.On("GetByEmail", mock.Anything, "anna@example.de").Return(&domain.User{
		ID:                  1,
		Email:               "anna@example.de",
		PasswordHash:        hashOf("geheim123"),
		Status:              domain.UserActive,
		FailedLoginAttempts: maxFailedLoginAttempts - 1,
	}, nil)
	users.On("UpdateByID", mock.Anything, int64(1), mock.MatchedBy(func(fields map[string]any) bool {
		_, locked := fields["locked_until"]
		return locked
	})).Return(nil)

	svc := newTestService(users, nil)

	_, err := svc.Login(context.Background(), LoginRequest{Email: "anna@example.de", Password: "falsch"})
	assert.ErrorIs(t, err, ErrTooManyRequests)
}

func TestService_Login_DisabledUser(t *testing.T) {
	users := new(MockUserRepository)
	users.On("GetByEmail", mock.Anything, "alt@example.de").Return(&domain.User{
		ID:     2,
		Email:  "alt@example.de",
		Status: domain.UserInactive,
	}, nil)

	svc := newTestService(users, nil)

	_, err := svc.Login(context.Background(), LoginRequest{Email: "alt@example.de", Password: "x"})
	assert.ErrorIs(t, err, ErrUserDisabled)
}

func TestService_TwoFactorRoundTrip(t *testing.T) {
	users := new(MockUserRepository)
	users.On("GetByEmail", mock.Anything, "anna@example.de").Return(&domain.User{
		ID:    1,
		Email: "anna@example.de",
	}, nil)

	mailer := new(MockMailer)
	var sentCode string
	mailer.On("SendTwoFactorCode", mock.Anything, "anna@example.de", mock.Anything).
		Run(func(args mock.Arguments) { sentCode = args.String(2) }).
		Return(nil)

	svc := newTestService(users, mailer)
	ctx := context.Background()

	assert.NoError(t, svc.RequestTwoFactorCode(ctx, "anna@example.de"))
	assert.Len(t, sentCode, 6)

	assert.ErrorIs(t, svc.VerifyTwoFactorCode(ctx, "anna@example.de", "000000x"), ErrInvalidActionCode)
	assert.NoError(t, svc.VerifyTwoFactorCode(ctx, "anna@example.de", sentCode))

	// single use
	assert.ErrorIs(t, svc.VerifyTwoFactorCode(ctx, "anna@example.de", sentCode), ErrInvalidActionCode)
}

func TestService_PasswordResetFlow(t *testing.T) {
	users := new(MockUserRepository)
	users.On("GetByEmail", mock.Anything, "anna@example.de").Return(&domain.User{
		ID:    1,
		Email: "anna@example.de",
	}, nil)
	users.On("UpdateByID", mock.Anything, int64(1), mock.MatchedBy(func(fields map[string]any) bool {
		_, ok := fields["password_hash"]
		return ok
	})).Return(nil)

	mailer := new(MockMailer)
	var resetURL string
	mailer.On("SendPasswordReset", mock.Anything, "anna@example.de", mock.Anything).
		Run(func(args mock.Arguments) { resetURL = args.String(2) }).
		Return(nil)

	svc := newTestService(users, mailer)
	ctx := context.Background()

	assert.NoError(t, svc.SendPasswordReset(ctx, "anna@example.de"))
	assert.Contains(t, resetURL, "?mode=resetPassword&oobCode=")

	oobCode := resetURL[len("https://portal.example.de?mode=resetPassword&oobCode="):]

	email, err := svc.VerifyResetCode(ctx, oobCode)
	assert.NoError(t, err)
	assert.Equal(t, "anna@example.de", email)

	assert.ErrorIs(t, svc.ConfirmPasswordReset(ctx, oobCode, "kurz"), ErrWeakPassword)
	assert.NoError(t, svc.ConfirmPasswordReset(ctx, oobCode, "neuesgeheim"))

	// code is consumed
	_, err = svc.VerifyResetCode(ctx, oobCode)
	assert.ErrorIs(t, err, ErrInvalidActionCode)
}

func TestService_VerifyResetCode_Unknown(t *testing.T) {
	users := new(MockUserRepository)
	svc := newTestService(users, nil)

	_, err := svc.VerifyResetCode(context.Background(), "gibt-es-nicht")
	assert.ErrorIs(t, err, ErrInvalidActionCode)
}
