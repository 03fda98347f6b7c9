package project

import (
	"context"
	"testing"
	"time"

	"bauportal/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) Create(ctx context.Context, p *domain.Project) error {
	args := m.Called(ctx, p)
	if p != nil {
		p.ID = 1
	}
	return args.Error(0)
}

func (m *MockProjectRepository) GetByID(ctx context.Context, tenantID string, id int64) (*domain.Project, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectRepository) ListByTenant(ctx context.Context, tenantID string) ([]domain.Project, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).([]domain.Project), args.Error(1)
}

func (m *MockProjectRepository) Update(ctx context.Context, tenantID string, id int64, fields map[string]any) error {
	args := m.Called(ctx, tenantID, id, fields)
	return args.Error(0)
}

func (m *MockProjectRepository) Delete(ctx context.Context, tenantID string, id int64) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

func (m *MockProjectRepository) Search(ctx context.Context, tenantID, term string) ([]domain.Project, error) {
	args := m.Called(ctx, tenantID, term)
	return args.Get(0).([]domain.Project), args.Error(1)
}

func (m *MockProjectRepository) IsCodeUnique(ctx context.Context, tenantID, code string, excludeID int64) (bool, error) {
	args := m.Called(ctx, tenantID, code, excludeID)
	return args.Bool(0), args.Error(1)
}

type MockAssignmentRepository struct {
	mock.Mock
}

func (m *MockAssignmentRepository) Create(ctx context.Context, a *domain.TradeAssignment) error {
	args := m.Called(ctx, a)
	if a != nil {
		a.ID = 1
	}
	return args.Error(0)
}

func (m *MockAssignmentRepository) GetByID(ctx context.Context, tenantID string, id int64) (*domain.TradeAssignment, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TradeAssignment), args.Error(1)
}

func (m *MockAssignmentRepository) ListByProject(ctx context.Context, tenantID string, projectID int64) ([]domain.TradeAssignment, error) {
	args := m.Called(ctx, tenantID, projectID)
	return args.Get(0).([]domain.TradeAssignment), args.Error(1)
}

func (m *MockAssignmentRepository) ListByTenant(ctx context.Context, tenantID string) ([]domain.TradeAssignment, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).([]domain.TradeAssignment), args.Error(1)
}

func (m *MockAssignmentRepository) Update(ctx context.Context, tenantID string, id int64, fields map[string]any) error {
	args := m.Called(ctx, tenantID, id, fields)
	return args.Error(0)
}

func (m *MockAssignmentRepository) Delete(ctx context.Context, tenantID string, id int64) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

func newTestService(projects *MockProjectRepository, assignments *MockAssignmentRepository) *Service {
	svc := NewService(projects, assignments, nil)
	svc.now = func() time.Time { return time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC) }
	return svc
}

func TestService_Create_RejectsTakenCode(t *testing.T) {
	projects := new(MockProjectRepository)
	projects.On("IsCodeUnique", mock.Anything, "bau-mueller", "BV-2024-001", int64(0)).Return(false, nil)

	svc := newTestService(projects, new(MockAssignmentRepository))

	_, err := svc.Create(context.Background(), "bau-mueller", CreateProjectRequest{
		ProjectCode:  "BV-2024-001",
		Name:         "Einfamilienhaus Musterstraße",
		PlannedStart: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		PlannedEnd:   time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
	}, 7)

	assert.ErrorIs(t, err, ErrCodeTaken)
	projects.AssertNotCalled(t, "Create")
}

func TestService_Create_StartsPlanned(t *testing.T) {
	projects := new(MockProjectRepository)
	projects.On("IsCodeUnique", mock.Anything, "bau-mueller", "BV-2024-001", int64(0)).Return(true, nil)
	projects.On("Create", mock.Anything, mock.MatchedBy(func(p *domain.Project) bool {
		return p.Status == domain.ProjectPlanned && p.TenantID == "bau-mueller"
	})).Return(nil)

	svc := newTestService(projects, new(MockAssignmentRepository))

	p, err := svc.Create(context.Background(), "bau-mueller", CreateProjectRequest{
		ProjectCode:  " BV-2024-001 ",
		Name:         "Einfamilienhaus Musterstraße",
		PlannedStart: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		PlannedEnd:   time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
	}, 7)

	assert.NoError(t, err)
	assert.Equal(t, "BV-2024-001", p.ProjectCode)
	projects.AssertExpectations(t)
}

func TestService_ChangeStatus_RejectsPlannedToCompleted(t *testing.T) {
	projects := new(MockProjectRepository)
	projects.On("GetByID", mock.Anything, "bau-mueller", int64(1)).
		Return(&domain.Project{ID: 1, TenantID: "bau-mueller", Status: domain.ProjectPlanned}, nil)

	svc := newTestService(projects, new(MockAssignmentRepository))

	_, err := svc.ChangeStatus(context.Background(), "bau-mueller", 1, domain.ProjectCompleted, 7)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestService_ChangeStatus_CompletedStampsActualEnd(t *testing.T) {
	projects := new(MockProjectRepository)
	projects.On("GetByID", mock.Anything, "bau-mueller", int64(1)).
		Return(&domain.Project{ID: 1, TenantID: "bau-mueller", Status: domain.ProjectInProgress}, nil)
	projects.On("Update", mock.Anything, "bau-mueller", int64(1), mock.MatchedBy(func(fields map[string]any) bool {
		_, hasEnd := fields["actual_end"]
		return fields["status"] == domain.ProjectCompleted && hasEnd
	})).Return(nil)

	svc := newTestService(projects, new(MockAssignmentRepository))

	_, err := svc.ChangeStatus(context.Background(), "bau-mueller", 1, domain.ProjectCompleted, 7)
	assert.NoError(t, err)
	projects.AssertExpectations(t)
}

func TestService_ChangeStatus_PauseBeforeCompletion(t *testing.T) {
	projects := new(MockProjectRepository)
	projects.On("GetByID", mock.Anything, "bau-mueller", int64(1)).
		Return(&domain.Project{ID: 1, TenantID: "bau-mueller", Status: domain.ProjectInProgress}, nil)
	projects.On("Update", mock.Anything, "bau-mueller", int64(1), mock.MatchedBy(func(fields map[string]any) bool {
		_, hasEnd := fields["actual_end"]
		return fields["status"] == domain.ProjectPaused && !hasEnd
	})).Return(nil)

	svc := newTestService(projects, new(MockAssignmentRepository))

	_, err := svc.ChangeStatus(context.Background(), "bau-mueller", 1, domain.ProjectPaused, 7)
	assert.NoError(t, err)
}

func TestService_Progress_MeanOfAssignments(t *testing.T) {
	projects := new(MockProjectRepository)
	assignments := new(MockAssignmentRepository)
	projects.On("GetByID", mock.Anything, "bau-mueller", int64(1)).
		Return(&domain.Project{ID: 1, ProjectCode: "BV-2024-001", Status: domain.ProjectInProgress}, nil)
	assignments.On("ListByProject", mock.Anything, "bau-mueller", int64(1)).
		Return([]domain.TradeAssignment{
			{ProgressPercent: 40},
			{ProgressPercent: 80},
		}, nil)

	svc := newTestService(projects, assignments)

	p, err := svc.Progress(context.Background(), "bau-mueller", 1)
	assert.NoError(t, err)
	assert.Equal(t, 60, p.ProgressPercent)
	assert.Equal(t, 2, p.TradeCount)
}

func TestService_Progress_DateHeuristicWithoutAssignments(t *testing.T) {
	projects := new(MockProjectRepository)
	assignments := new(MockAssignmentRepository)
	projects.On("GetByID", mock.Anything, "bau-mueller", int64(1)).
		Return(&domain.Project{
			ID:           1,
			Status:       domain.ProjectInProgress,
			PlannedStart: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			PlannedEnd:   time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
		}, nil)
	assignments.On("ListByProject", mock.Anything, "bau-mueller", int64(1)).
		Return([]domain.TradeAssignment{}, nil)

	svc := newTestService(projects, assignments)

	p, err := svc.Progress(context.Background(), "bau-mueller", 1)
	assert.NoError(t, err)
	assert.Equal(t, 50, p.ProgressPercent)
	assert.Equal(t, 0, p.TradeCount)
}

func TestService_ProgressOverview_GroupsAssignments(t *testing.T) {
	projects := new(MockProjectRepository)
	assignments := new(MockAssignmentRepository)
	projects.On("ListByTenant", mock.Anything, "bau-mueller").Return([]domain.Project{
		{ID: 1, ProjectCode: "BV-2024-001", Status: domain.ProjectInProgress},
		{ID: 2, ProjectCode: "BV-2024-002", Status: domain.ProjectCompleted},
	}, nil)
	assignments.On("ListByTenant", mock.Anything, "bau-mueller").Return([]domain.TradeAssignment{
		{ProjectID: 1, ProgressPercent: 40},
		{ProjectID: 1, ProgressPercent: 80},
	}, nil)

	svc := newTestService(projects, assignments)

	overview, err := svc.ProgressOverview(context.Background(), "bau-mueller")
	assert.NoError(t, err)
	assert.Len(t, overview, 2)
	assert.Equal(t, 60, overview[0].ProgressPercent)
	assert.Equal(t, 100, overview[1].ProgressPercent)
}

func TestService_CreateAssignment_ClampsProgress(t *testing.T) {
	projects := new(MockProjectRepository)
	assignments := new(MockAssignmentRepository)
	projects.On("GetByID", mock.Anything, "bau-mueller", int64(1)).
		Return(&domain.Project{ID: 1, TenantID: "bau-mueller"}, nil)
	assignments.On("Create", mock.Anything, mock.MatchedBy(func(a *domain.TradeAssignment) bool {
		return a.ProgressPercent == 100
	})).Return(nil)

	svc := newTestService(projects, assignments)

	a, err := svc.CreateAssignment(context.Background(), "bau-mueller", 1, CreateAssignmentRequest{
		TradeID:         3,
		ProgressPercent: 150,
	}, 7)

	assert.NoError(t, err)
	assert.Equal(t, 100, a.ProgressPercent)
}

func TestService_UpdateAssignment_CompletedForcesFullProgress(t *testing.T) {
	projects := new(MockProjectRepository)
	assignments := new(MockAssignmentRepository)
	done := string(domain.ProjectCompleted)
	thirty := 30
	assignments.On("Update", mock.Anything, "bau-mueller", int64(5), mock.MatchedBy(func(fields map[string]any) bool {
		_, hasEnd := fields["actual_end"]
		return fields["progress_percent"] == 100 && hasEnd
	})).Return(nil)
	assignments.On("GetByID", mock.Anything, "bau-mueller", int64(5)).
		Return(&domain.TradeAssignment{ID: 5, ProgressPercent: 100}, nil)

	svc := newTestService(projects, assignments)

	a, err := svc.UpdateAssignment(context.Background(), "bau-mueller", 5, UpdateAssignmentRequest{
		Status:          &done,
		ProgressPercent: &thirty,
	}, 7)

	assert.NoError(t, err)
	assert.Equal(t, 100, a.ProgressPercent)
	assignments.AssertExpectations(t)
}

func TestService_UpdateAssignment_NegativeProgressClampsToZero(t *testing.T) {
	projects := new(MockProjectRepository)
	assignments := new(MockAssignmentRepository)
	minus := -10
	assignments.On("Update", mock.Anything, "bau-mueller", int64(5), mock.MatchedBy(func(fields map[string]any) bool {
		return fields["progress_percent"] == 0
	})).Return(nil)
	assignments.On("GetByID", mock.Anything, "bau-mueller", int64(5)).
		Return(&domain.TradeAssignment{ID: 5, ProgressPercent: 0}, nil)

	svc := newTestService(projects, assignments)

	_, err := svc.UpdateAssignment(context.Background(), "bau-mueller", 5, UpdateAssignmentRequest{
		ProgressPercent: &minus,
	}, 7)

	assert.NoError(t, err)
	assignments.AssertExpectations(t)
}
