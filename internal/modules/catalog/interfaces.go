package catalog

import (
	"context"

	"bauportal/internal/domain"
	"bauportal/internal/modules/events"
)

// TradeRepositoryInterface covers the global Gewerk catalog.
type TradeRepositoryInterface interface {
	Create(ctx context.Context, t *domain.Trade) error
	GetByID(ctx context.Context, id int64) (*domain.Trade, error)
	List(ctx context.Context) ([]domain.Trade, error)
	Update(ctx context.Context, id int64, fields map[string]any) error
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, term string) ([]domain.Trade, error)
}

type PhaseRepositoryInterface interface {
	Create(ctx context.Context, p *domain.Phase) error
	GetByID(ctx context.Context, tenantID string, id int64) (*domain.Phase, error)
	ListByTenant(ctx context.Context, tenantID string) ([]domain.Phase, error)
	Update(ctx context.Context, tenantID string, id int64, fields map[string]any) error
	Delete(ctx context.Context, tenantID string, id int64) error
}

type ProjectTypeRepositoryInterface interface {
	Create(ctx context.Context, t *domain.ConstructionProjectType) error
	GetByID(ctx context.Context, tenantID string, id int64) (*domain.ConstructionProjectType, error)
	ListByTenant(ctx context.Context, tenantID string) ([]domain.ConstructionProjectType, error)
	Update(ctx context.Context, tenantID string, id int64, fields map[string]any) error
	Delete(ctx context.Context, tenantID string, id int64) error
	Search(ctx context.Context, tenantID, term string) ([]domain.ConstructionProjectType, error)
}

type EventPublisher interface {
	Publish(ev events.Event)
}
