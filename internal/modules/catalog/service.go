package catalog

import (
	"context"

	"bauportal/internal/domain"
	"bauportal/internal/modules/events"
	"bauportal/internal/repository"
)

// Service covers the three planning catalogs: the global Gewerk list and
// the tenant-scoped phases and Bauvorhabenarten.
type Service struct {
	trades       TradeRepositoryInterface
	phases       PhaseRepositoryInterface
	projectTypes ProjectTypeRepositoryInterface
	pub          EventPublisher
}

func NewService(trades TradeRepositoryInterface, phases PhaseRepositoryInterface, projectTypes ProjectTypeRepositoryInterface, pub EventPublisher) *Service {
	return &Service{trades: trades, phases: phases, projectTypes: projectTypes, pub: pub}
}

// --- trades (global) ---

func (s *Service) CreateTrade(ctx context.Context, req CreateTradeRequest, actorID int64) (*domain.Trade, error) {
	t := &domain.Trade{
		Name:                 req.Name,
		Category:             req.Category,
		StandardDurationDays: req.StandardDurationDays,
		Dependencies:         req.Dependencies,
		Materials:            req.Materials,
		CraftsmenRoles:       req.CraftsmenRoles,
		CostMin:              req.CostMin,
		CostMax:              req.CostMax,
		CostUnit:             req.CostUnit,
		CreatedBy:            actorID,
		UpdatedBy:            actorID,
	}
	if err := s.trades.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Service) GetTrade(ctx context.Context, id int64) (*domain.Trade, error) {
	return s.trades.GetByID(ctx, id)
}

func (s *Service) SearchTrades(ctx context.Context, term string) ([]domain.Trade, error) {
	return s.trades.Search(ctx, term)
}

func (s *Service) UpdateTrade(ctx context.Context, id int64, req UpdateTradeRequest, actorID int64) (*domain.Trade, error) {
	fields := req.fields()
	fields["updated_by"] = actorID
	if err := s.trades.Update(ctx, id, fields); err != nil {
		if err == repository.ErrNotFound {
			return nil, ErrTradeNotFound
		}
		return nil, err
	}
	return s.trades.GetByID(ctx, id)
}

func (s *Service) DeleteTrade(ctx context.Context, id int64) error {
	if err := s.trades.Delete(ctx, id); err != nil {
		if err == repository.ErrNotFound {
			return ErrTradeNotFound
		}
		return err
	}
	return nil
}

// --- phases (tenant-scoped) ---

func (s *Service) CreatePhase(ctx context.Context, tenantID string, req CreatePhaseRequest, actorID int64) (*domain.Phase, error) {
	p := &domain.Phase{
		TenantID:  tenantID,
		Name:      req.Name,
		SortOrder: req.SortOrder,
		CreatedBy: actorID,
		UpdatedBy: actorID,
	}
	if err := s.phases.Create(ctx, p); err != nil {
		return nil, err
	}
	s.publish(tenantID, "phase", events.ActionCreated, p.ID)
	return p, nil
}

func (s *Service) ListPhases(ctx context.Context, tenantID string) ([]domain.Phase, error) {
	return s.phases.ListByTenant(ctx, tenantID)
}

func (s *Service) UpdatePhase(ctx context.Context, tenantID string, id int64, req UpdatePhaseRequest, actorID int64) (*domain.Phase, error) {
	fields := req.fields()
	fields["updated_by"] = actorID
	if err := s.phases.Update(ctx, tenantID, id, fields); err != nil {
		if err == repository.ErrNotFound {
			return nil, ErrPhaseNotFound
		}
		return nil, err
	}
	s.publish(tenantID, "phase", events.ActionUpdated, id)
	return s.phases.GetByID(ctx, tenantID, id)
}

func (s *Service) DeletePhase(ctx context.Context, tenantID string, id int64) error {
	if err := s.phases.Delete(ctx, tenantID, id); err != nil {
		if err == repository.ErrNotFound {
			return ErrPhaseNotFound
		}
		return err
	}
	s.publish(tenantID, "phase", events.ActionDeleted, id)
	return nil
}

// --- project types (tenant-scoped) ---

// CreateProjectType validates that every referenced phase belongs to the
// tenant before saving the template.
func (s *Service) CreateProjectType(ctx context.Context, tenantID string, req CreateProjectTypeRequest, actorID int64) (*domain.ConstructionProjectType, error) {
	if err := s.checkPhaseIDs(ctx, tenantID, req.PhaseIDs); err != nil {
		return nil, err
	}

	t := &domain.ConstructionProjectType{
		TenantID:             tenantID,
		Name:                 req.Name,
		Category:             req.Category,
		Status:               req.Status,
		StandardDurationDays: req.StandardDurationDays,
		PhaseIDs:             req.PhaseIDs,
		CreatedBy:            actorID,
		UpdatedBy:            actorID,
	}
	if err := s.projectTypes.Create(ctx, t); err != nil {
		return nil, err
	}
	s.publish(tenantID, "project_type", events.ActionCreated, t.ID)
	return t, nil
}

func (s *Service) GetProjectType(ctx context.Context, tenantID string, id int64) (*domain.ConstructionProjectType, error) {
	return s.projectTypes.GetByID(ctx, tenantID, id)
}

func (s *Service) SearchProjectTypes(ctx context.Context, tenantID, term string) ([]domain.ConstructionProjectType, error) {
	return s.projectTypes.Search(ctx, tenantID, term)
}

func (s *Service) UpdateProjectType(ctx context.Context, tenantID string, id int64, req UpdateProjectTypeRequest, actorID int64) (*domain.ConstructionProjectType, error) {
	if req.PhaseIDs != nil {
		if err := s.checkPhaseIDs(ctx, tenantID, *req.PhaseIDs); err != nil {
			return nil, err
		}
	}

	fields := req.fields()
	fields["updated_by"] = actorID
	if err := s.projectTypes.Update(ctx, tenantID, id, fields); err != nil {
		if err == repository.ErrNotFound {
			return nil, ErrProjectTypeNotFound
		}
		return nil, err
	}
	s.publish(tenantID, "project_type", events.ActionUpdated, id)
	return s.projectTypes.GetByID(ctx, tenantID, id)
}

func (s *Service) DeleteProjectType(ctx context.Context, tenantID string, id int64) error {
	if err := s.projectTypes.Delete(ctx, tenantID, id); err != nil {
		if err == repository.ErrNotFound {
			return ErrProjectTypeNotFound
		}
		return err
	}
	s.publish(tenantID, "project_type", events.ActionDeleted, id)
	return nil
}

func (s *Service) checkPhaseIDs(ctx context.Context, tenantID string, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	known, err := s.phases.ListByTenant(ctx, tenantID)
	if err != nil {
		return err
	}
	byID := map[int64]bool{}
	for _, p := range known {
		byID[p.ID] = true
	}
	for _, id := range ids {
		if !byID[id] {
			return ErrUnknownPhase
		}
	}
	return nil
}

func (s *Service) publish(tenantID, entity, action string, id int64) {
	if s.pub == nil {
		return
	}
	s.pub.Publish(events.Event{TenantID: tenantID, Entity: entity, Action: action, ID: id})
}
