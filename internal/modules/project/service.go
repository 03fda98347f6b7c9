package project

import (
	"context"
	"strings"
	"time"

	"bauportal/internal/domain"
	"bauportal/internal/modules/events"
	"bauportal/internal/pkg/progress"
	"bauportal/internal/repository"
)

// allowedTransitions encodes the project lifecycle. Completed and
// cancelled are terminal.
var allowedTransitions = map[domain.ProjectStatus][]domain.ProjectStatus{
	domain.ProjectPlanned:    {domain.ProjectInProgress, domain.ProjectCancelled},
	domain.ProjectInProgress: {domain.ProjectCompleted, domain.ProjectPaused, domain.ProjectCancelled},
	domain.ProjectPaused:     {domain.ProjectInProgress, domain.ProjectCancelled},
}

func transitionAllowed(from, to domain.ProjectStatus) bool {
	for _, s := range allowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

type Service struct {
	projects    ProjectRepositoryInterface
	assignments AssignmentRepositoryInterface
	pub         EventPublisher
	now         func() time.Time
}

func NewService(projects ProjectRepositoryInterface, assignments AssignmentRepositoryInterface, pub EventPublisher) *Service {
	return &Service{
		projects:    projects,
		assignments: assignments,
		pub:         pub,
		now:         time.Now,
	}
}

func (s *Service) Create(ctx context.Context, tenantID string, req CreateProjectRequest, actorID int64) (*domain.Project, error) {
	code := strings.TrimSpace(req.ProjectCode)

	unique, err := s.projects.IsCodeUnique(ctx, tenantID, code, 0)
	if err != nil {
		return nil, err
	}
	if !unique {
		return nil, ErrCodeTaken
	}

	p := &domain.Project{
		TenantID:          tenantID,
		ProjectCode:       code,
		Name:              req.Name,
		ConstructionTypes: req.ConstructionTypes,
		Status:            domain.ProjectPlanned,
		Street:            req.Street,
		PostalCode:        req.PostalCode,
		City:              req.City,
		PlannedStart:      req.PlannedStart,
		PlannedEnd:        req.PlannedEnd,
		ClientName:        req.ClientName,
		ClientContact:     req.ClientContact,
		ClientPhone:       req.ClientPhone,
		ClientEmail:       req.ClientEmail,
		ResponsibleUserID: req.ResponsibleUserID,
		Notes:             req.Notes,
		CreatedBy:         actorID,
		UpdatedBy:         actorID,
	}

	if err := s.projects.Create(ctx, p); err != nil {
		if err == repository.ErrDuplicate {
			return nil, ErrCodeTaken
		}
		return nil, err
	}

	s.publish(tenantID, "project", events.ActionCreated, p.ID)
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, tenantID string, id int64) (*domain.Project, error) {
	return s.projects.GetByID(ctx, tenantID, id)
}

func (s *Service) Search(ctx context.Context, tenantID, term string) ([]domain.Project, error) {
	return s.projects.Search(ctx, tenantID, term)
}

func (s *Service) Update(ctx context.Context, tenantID string, id int64, req UpdateProjectRequest, actorID int64) (*domain.Project, error) {
	if req.ProjectCode != nil {
		code := strings.TrimSpace(*req.ProjectCode)
		unique, err := s.projects.IsCodeUnique(ctx, tenantID, code, id)
		if err != nil {
			return nil, err
		}
		if !unique {
			return nil, ErrCodeTaken
		}
		req.ProjectCode = &code
	}

	fields := req.fields()
	fields["updated_by"] = actorID

	if err := s.projects.Update(ctx, tenantID, id, fields); err != nil {
		switch err {
		case repository.ErrNotFound:
			return nil, ErrNotFound
		case repository.ErrDuplicate:
			return nil, ErrCodeTaken
		}
		return nil, err
	}

	s.publish(tenantID, "project", events.ActionUpdated, id)
	return s.projects.GetByID(ctx, tenantID, id)
}

// ChangeStatus moves the project through its lifecycle. Reaching
// completed stamps the actual end date.
func (s *Service) ChangeStatus(ctx context.Context, tenantID string, id int64, status domain.ProjectStatus, actorID int64) (*domain.Project, error) {
	p, err := s.projects.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}

	if !transitionAllowed(p.Status, status) {
		return nil, ErrInvalidTransition
	}

	fields := map[string]any{
		"status":     status,
		"updated_by": actorID,
	}
	if status == domain.ProjectCompleted {
		fields["actual_end"] = s.now()
	}

	if err := s.projects.Update(ctx, tenantID, id, fields); err != nil {
		return nil, err
	}

	s.publish(tenantID, "project", events.ActionUpdated, id)
	return s.projects.GetByID(ctx, tenantID, id)
}

func (s *Service) Delete(ctx context.Context, tenantID string, id int64) error {
	if err := s.projects.Delete(ctx, tenantID, id); err != nil {
		if err == repository.ErrNotFound {
			return ErrNotFound
		}
		return err
	}
	s.publish(tenantID, "project", events.ActionDeleted, id)
	return nil
}

// Progress returns the aggregate completion of one project.
func (s *Service) Progress(ctx context.Context, tenantID string, id int64) (*ProjectProgress, error) {
	p, err := s.projects.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}

	assignments, err := s.assignments.ListByProject(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	return &ProjectProgress{
		ProjectID:       p.ID,
		ProjectCode:     p.ProjectCode,
		Name:            p.Name,
		Status:          string(p.Status),
		ProgressPercent: progress.ForProject(p, assignments, s.now()),
		TradeCount:      len(assignments),
	}, nil
}

// ProgressOverview computes the completion of every project of the
// tenant. Assignments are fetched once and grouped, not queried per
// project.
func (s *Service) ProgressOverview(ctx context.Context, tenantID string) ([]ProjectProgress, error) {
	projects, err := s.projects.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	all, err := s.assignments.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	byProject := map[int64][]domain.TradeAssignment{}
	for _, a := range all {
		byProject[a.ProjectID] = append(byProject[a.ProjectID], a)
	}

	now := s.now()
	out := make([]ProjectProgress, 0, len(projects))
	for i := range projects {
		p := &projects[i]
		out = append(out, ProjectProgress{
			ProjectID:       p.ID,
			ProjectCode:     p.ProjectCode,
			Name:            p.Name,
			Status:          string(p.Status),
			ProgressPercent: progress.ForProject(p, byProject[p.ID], now),
			TradeCount:      len(byProject[p.ID]),
		})
	}
	return out, nil
}

// CreateAssignment attaches a trade to a project. Progress is clamped
// and a completed assignment is forced to 100 percent with an actual
// end date.
func (s *Service) CreateAssignment(ctx context.Context, tenantID string, projectID int64, req CreateAssignmentRequest, actorID int64) (*domain.TradeAssignment, error) {
	p, err := s.projects.GetByID(ctx, tenantID, projectID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}

	status := domain.ProjectStatus(req.Status)
	if status == "" {
		status = domain.ProjectPlanned
	}

	a := &domain.TradeAssignment{
		TenantID:        tenantID,
		ProjectID:       projectID,
		TradeID:         req.TradeID,
		PhaseID:         req.PhaseID,
		Status:          status,
		PlannedStart:    req.PlannedStart,
		PlannedEnd:      req.PlannedEnd,
		ProgressPercent: progress.Clamp(req.ProgressPercent),
		Craftsmen:       req.Craftsmen,
		Materials:       req.Materials,
		PlannedCost:     req.PlannedCost,
		CostUnit:        req.CostUnit,
		Notes:           req.Notes,
		CreatedBy:       actorID,
		UpdatedBy:       actorID,
	}
	if status == domain.ProjectCompleted {
		a.ProgressPercent = 100
		now := s.now()
		a.ActualEnd = &now
	}

	if err := s.assignments.Create(ctx, a); err != nil {
		return nil, err
	}

	s.publish(tenantID, "trade_assignment", events.ActionCreated, a.ID)
	return a, nil
}

func (s *Service) ListAssignments(ctx context.Context, tenantID string, projectID int64) ([]domain.TradeAssignment, error) {
	return s.assignments.ListByProject(ctx, tenantID, projectID)
}

func (s *Service) UpdateAssignment(ctx context.Context, tenantID string, id int64, req UpdateAssignmentRequest, actorID int64) (*domain.TradeAssignment, error) {
	fields := req.fields()
	fields["updated_by"] = actorID

	if req.ProgressPercent != nil {
		fields["progress_percent"] = progress.Clamp(*req.ProgressPercent)
	}
	if req.Status != nil && domain.ProjectStatus(*req.Status) == domain.ProjectCompleted {
		fields["progress_percent"] = 100
		if req.ActualEnd == nil {
			fields["actual_end"] = s.now()
		}
	}

	if err := s.assignments.Update(ctx, tenantID, id, fields); err != nil {
		if err == repository.ErrNotFound {
			return nil, ErrAssignmentNotFound
		}
		return nil, err
	}

	s.publish(tenantID, "trade_assignment", events.ActionUpdated, id)
	return s.assignments.GetByID(ctx, tenantID, id)
}

func (s *Service) DeleteAssignment(ctx context.Context, tenantID string, id int64) error {
	if err := s.assignments.Delete(ctx, tenantID, id); err != nil {
		if err == repository.ErrNotFound {
			return ErrAssignmentNotFound
		}
		return err
	}
	s.publish(tenantID, "trade_assignment", events.ActionDeleted, id)
	return nil
}

func (s *Service) publish(tenantID, entity, action string, id int64) {
	if s.pub == nil {
		return
	}
	s.pub.Publish(events.Event{TenantID: tenantID, Entity: entity, Action: action, ID: id})
}
