package tenant

import (
	"context"
	"strings"

	"bauportal/internal/domain"
	"bauportal/internal/modules/events"
)

// Service holds the Mandant management logic. Tenants are the one entity
// with soft-delete semantics: Deactivate flips the active flag and the
// record stays retrievable for the records referencing it.
type Service struct {
	tenants TenantRepositoryInterface
	pub     EventPublisher
}

func NewService(tenants TenantRepositoryInterface, pub EventPublisher) *Service {
	return &Service{tenants: tenants, pub: pub}
}

func (s *Service) Create(ctx context.Context, req CreateTenantRequest, actorID int64) (*domain.Tenant, error) {
	slug := strings.TrimSpace(strings.ToLower(req.Slug))

	existing, err := s.tenants.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrSlugTaken
	}

	t := &domain.Tenant{
		Slug:            slug,
		Name:            req.Name,
		Type:            domain.TenantType(req.Type),
		Street:          req.Street,
		PostalCode:      req.PostalCode,
		City:            req.City,
		ContactPerson:   req.ContactPerson,
		ContactEmail:    req.ContactEmail,
		ContactPhone:    req.ContactPhone,
		CommercialRegNo: req.CommercialRegNo,
		VATID:           req.VATID,
		Active:          true,
		CreatedBy:       actorID,
		UpdatedBy:       actorID,
	}

	if err := s.tenants.Create(ctx, t); err != nil {
		return nil, err
	}

	s.publish(t.Slug, events.ActionCreated, t.ID)
	return t, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Tenant, error) {
	return s.tenants.GetByID(ctx, id)
}

func (s *Service) ListActive(ctx context.Context) ([]domain.Tenant, error) {
	return s.tenants.ListActive(ctx)
}

func (s *Service) Search(ctx context.Context, term string) ([]domain.Tenant, error) {
	return s.tenants.Search(ctx, term)
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateTenantRequest, actorID int64) (*domain.Tenant, error) {
	fields := req.fields()
	fields["updated_by"] = actorID

	if err := s.tenants.Update(ctx, id, fields); err != nil {
		return nil, err
	}

	t, err := s.tenants.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t != nil {
		s.publish(t.Slug, events.ActionUpdated, t.ID)
	}
	return t, nil
}

// Deactivate is the tenant's delete operation: a soft delete.
func (s *Service) Deactivate(ctx context.Context, id int64, actorID int64) error {
	t, err := s.tenants.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if t == nil {
		return ErrNotFound
	}

	if err := s.tenants.Update(ctx, id, map[string]any{
		"active":     false,
		"updated_by": actorID,
	}); err != nil {
		return err
	}

	s.publish(t.Slug, events.ActionDeleted, t.ID)
	return nil
}

func (s *Service) publish(tenantSlug, action string, id int64) {
	if s.pub == nil {
		return
	}
	s.pub.Publish(events.Event{TenantID: tenantSlug, Entity: "tenant", Action: action, ID: id})
}
