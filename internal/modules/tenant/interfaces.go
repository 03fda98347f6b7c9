package tenant

import (
	"context"

	"bauportal/internal/domain"
	"bauportal/internal/modules/events"
)

// TenantRepositoryInterface lists only the methods the tenant service uses.
type TenantRepositoryInterface interface {
	Create(ctx context.Context, t *domain.Tenant) error
	GetByID(ctx context.Context, id int64) (*domain.Tenant, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error)
	ListActive(ctx context.Context) ([]domain.Tenant, error)
	List(ctx context.Context) ([]domain.Tenant, error)
	Update(ctx context.Context, id int64, fields map[string]any) error
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, term string) ([]domain.Tenant, error)
}

type EventPublisher interface {
	Publish(ev events.Event)
}
