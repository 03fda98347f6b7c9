package project

import (
	"context"

	"bauportal/internal/domain"
	"bauportal/internal/modules/events"
)

// ProjectRepositoryInterface lists only the methods the project service uses.
type ProjectRepositoryInterface interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, tenantID string, id int64) (*domain.Project, error)
	ListByTenant(ctx context.Context, tenantID string) ([]domain.Project, error)
	Update(ctx context.Context, tenantID string, id int64, fields map[string]any) error
	Delete(ctx context.Context, tenantID string, id int64) error
	Search(ctx context.Context, tenantID, term string) ([]domain.Project, error)
	IsCodeUnique(ctx context.Context, tenantID, code string, excludeID int64) (bool, error)
}

type AssignmentRepositoryInterface interface {
	Create(ctx context.Context, a *domain.TradeAssignment) error
	GetByID(ctx context.Context, tenantID string, id int64) (*domain.TradeAssignment, error)
	ListByProject(ctx context.Context, tenantID string, projectID int64) ([]domain.TradeAssignment, error)
	ListByTenant(ctx context.Context, tenantID string) ([]domain.TradeAssignment, error)
	Update(ctx context.Context, tenantID string, id int64, fields map[string]any) error
	Delete(ctx context.Context, tenantID string, id int64) error
}

type EventPublisher interface {
	Publish(ev events.Event)
}
