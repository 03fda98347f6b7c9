package user

import (
	"context"
	"strings"

	"bauportal/internal/domain"
	"bauportal/internal/modules/events"
	"bauportal/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	users UserRepositoryInterface
	pub   EventPublisher
}

func NewService(users UserRepositoryInterface, pub EventPublisher) *Service {
	return &Service{users: users, pub: pub}
}

// Create registers a portal user with a hashed initial password. Emails
// are unique across all tenants because login is tenant-free.
func (s *Service) Create(ctx context.Context, tenantID string, req CreateUserRequest, actorID int64) (*domain.User, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))

	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &domain.User{
		TenantID:           tenantID,
		FirstName:          req.FirstName,
		LastName:           req.LastName,
		Email:              email,
		PasswordHash:       string(hash),
		Company:            req.Company,
		Role:               domain.UserRole(req.Role),
		Status:             domain.UserActive,
		Street:             req.Street,
		PostalCode:         req.PostalCode,
		City:               req.City,
		Phone:              req.Phone,
		Mobile:             req.Mobile,
		AssignedProjectIDs: req.AssignedProjectIDs,
		CreatedBy:          actorID,
		UpdatedBy:          actorID,
	}

	if err := s.users.Create(ctx, u); err != nil {
		if err == repository.ErrDuplicate {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	s.publish(tenantID, events.ActionCreated, u.ID)
	return u, nil
}

func (s *Service) GetByID(ctx context.Context, tenantID string, id int64) (*domain.User, error) {
	return s.users.GetByID(ctx, tenantID, id)
}

func (s *Service) Search(ctx context.Context, tenantID, term string) ([]domain.User, error) {
	return s.users.Search(ctx, tenantID, term)
}

func (s *Service) Update(ctx context.Context, tenantID string, id int64, req UpdateUserRequest, actorID int64) (*domain.User, error) {
	fields := req.fields()
	fields["updated_by"] = actorID

	if err := s.users.Update(ctx, tenantID, id, fields); err != nil {
		if err == repository.ErrNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}

	s.publish(tenantID, events.ActionUpdated, id)
	return s.users.GetByID(ctx, tenantID, id)
}

func (s *Service) Delete(ctx context.Context, tenantID string, id int64) error {
	if err := s.users.Delete(ctx, tenantID, id); err != nil {
		if err == repository.ErrNotFound {
			return ErrNotFound
		}
		return err
	}
	s.publish(tenantID, events.ActionDeleted, id)
	return nil
}

func (s *Service) publish(tenantID, action string, id int64) {
	if s.pub == nil {
		return
	}
	s.pub.Publish(events.Event{TenantID: tenantID, Entity: "user", Action: action, ID: id})
}
