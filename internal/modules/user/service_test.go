package user

import (
	"context"
	"testing"

	"bauportal/internal/domain"
	"bauportal/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	if u != nil {
		u.ID = 1
	}
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, tenantID string, id int64) (*domain.User, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ListByTenant(ctx context.Context, tenantID string) ([]domain.User, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, tenantID string, id int64, fields map[string]any) error {
	args := m.Called(ctx, tenantID, id, fields)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, tenantID string, id int64) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

func (m *MockUserRepository) Search(ctx context.Context, tenantID, term string) ([]domain.User, error) {
	args := m.Called(ctx, tenantID, term)
	return args.Get(0).([]domain.User), args.Error(1)
}

func TestService_Create_HashesPassword(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("GetByEmail", mock.Anything, "anna@bau-mueller.de").Return(nil, nil)

	var created *domain.User
	repo.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		created = u
		return u.Email == "anna@bau-mueller.de" && u.Status == domain.UserActive
	})).Return(nil)

	svc := NewService(repo, nil)

	u, err := svc.Create(context.Background(), "bau-mueller", CreateUserRequest{
		FirstName: "Anna",
		LastName:  "Schmidt",
		Email:     " Anna@Bau-Mueller.de ",
		Password:  "geheim123",
		Role:      "employee",
	}, 7)

	assert.NoError(t, err)
	assert.NotEqual(t, "geheim123", u.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("geheim123")))
	repo.AssertExpectations(t)
}

func TestService_Create_RejectsDuplicateEmail(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("GetByEmail", mock.Anything, "anna@bau-mueller.de").
		Return(&domain.User{ID: 2, Email: "anna@bau-mueller.de"}, nil)

	svc := NewService(repo, nil)

	_, err := svc.Create(context.Background(), "bau-mueller", CreateUserRequest{
		FirstName: "Anna",
		LastName:  "Schmidt",
		Email:     "anna@bau-mueller.de",
		Password:  "geheim123",
		Role:      "employee",
	}, 7)

	assert.ErrorIs(t, err, ErrEmailTaken)
	repo.AssertNotCalled(t, "Create")
}

func TestService_Update_AssignsProjects(t *testing.T) {
	repo := new(MockUserRepository)
	ids := []int64{3, 5}
	repo.On("Update", mock.Anything, "bau-mueller", int64(1), map[string]any{
		"assigned_project_ids": repository.JSONValue(ids),
		"updated_by":           int64(7),
	}).Return(nil)
	repo.On("GetByID", mock.Anything, "bau-mueller", int64(1)).
		Return(&domain.User{ID: 1, AssignedProjectIDs: ids}, nil)

	svc := NewService(repo, nil)

	u, err := svc.Update(context.Background(), "bau-mueller", 1, UpdateUserRequest{AssignedProjectIDs: &ids}, 7)
	assert.NoError(t, err)
	assert.Equal(t, ids, u.AssignedProjectIDs)
	repo.AssertExpectations(t)
}
