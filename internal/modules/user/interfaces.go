package user

import (
	"context"

	"bauportal/internal/domain"
	"bauportal/internal/modules/events"
)

// UserRepositoryInterface lists only the methods the user service uses.
type UserRepositoryInterface interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, tenantID string, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ListByTenant(ctx context.Context, tenantID string) ([]domain.User, error)
	Update(ctx context.Context, tenantID string, id int64, fields map[string]any) error
	Delete(ctx context.Context, tenantID string, id int64) error
	Search(ctx context.Context, tenantID, term string) ([]domain.User, error)
}

type EventPublisher interface {
	Publish(ev events.Event)
}
