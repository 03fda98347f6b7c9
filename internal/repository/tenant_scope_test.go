package repository

import (
	"context"
	"testing"
	"time"

	"bauportal/internal/database"
	"bauportal/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

// Two tenants with deliberately identical project names: no read may ever
// cross the tenant boundary.
func TestProjectRepository_TenantIsolation(t *testing.T) {
	db := testDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	mkProject := func(tenantID, code string) *domain.Project {
		return &domain.Project{
			TenantID:     tenantID,
			ProjectCode:  code,
			Name:         "Neubau Einfamilienhaus",
			Status:       domain.ProjectPlanned,
			PlannedStart: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			PlannedEnd:   time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
		}
	}

	pa := mkProject("mandant-a", "BV-2024-001")
	pb := mkProject("mandant-b", "BV-2024-001")
	require.NoError(t, repo.Create(ctx, pa))
	require.NoError(t, repo.Create(ctx, pb))

	listA, err := repo.ListByTenant(ctx, "mandant-a")
	require.NoError(t, err)
	require.Len(t, listA, 1)
	assert.Equal(t, pa.ID, listA[0].ID)

	listB, err := repo.ListByTenant(ctx, "mandant-b")
	require.NoError(t, err)
	require.Len(t, listB, 1)
	assert.Equal(t, pb.ID, listB[0].ID)

	// cross-tenant GetByID is "not found", not an error
	got, err := repo.GetByID(ctx, "mandant-a", pb.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	// same code in another tenant is fine; within the tenant the unique
	// index rejects it
	dup := mkProject("mandant-a", "BV-2024-001")
	assert.ErrorIs(t, repo.Create(ctx, dup), ErrDuplicate)
}

func TestProjectRepository_IsCodeUnique(t *testing.T) {
	db := testDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	p := &domain.Project{
		TenantID:    "mandant-a",
		ProjectCode: "BV-2024-007",
		Name:        "Sanierung Altbau",
		Status:      domain.ProjectPlanned,
	}
	require.NoError(t, repo.Create(ctx, p))

	unique, err := repo.IsCodeUnique(ctx, "mandant-a", "BV-2024-007", 0)
	require.NoError(t, err)
	assert.False(t, unique)

	// the project itself is excluded when editing
	unique, err = repo.IsCodeUnique(ctx, "mandant-a", "BV-2024-007", p.ID)
	require.NoError(t, err)
	assert.True(t, unique)

	unique, err = repo.IsCodeUnique(ctx, "mandant-b", "BV-2024-007", 0)
	require.NoError(t, err)
	assert.True(t, unique)
}

func TestProjectRepository_DeleteCascades(t *testing.T) {
	db := testDB(t)
	projects := NewProjectRepository(db)
	assignments := NewAssignmentRepository(db)
	documents := NewDocumentRepository(db)
	folders := NewFolderRepository(db)
	ctx := context.Background()

	p := &domain.Project{TenantID: "mandant-a", ProjectCode: "BV-1", Name: "Rohbau", Status: domain.ProjectInProgress}
	require.NoError(t, projects.Create(ctx, p))

	a := &domain.TradeAssignment{TenantID: "mandant-a", ProjectID: p.ID, TradeID: 1, Status: domain.ProjectPlanned}
	require.NoError(t, assignments.Create(ctx, a))

	f := &domain.Folder{TenantID: "mandant-a", ProjectID: p.ID, Name: "Pläne"}
	require.NoError(t, folders.Create(ctx, f))

	d := &domain.Document{TenantID: "mandant-a", ProjectID: p.ID, FolderID: f.ID, Filename: "grundriss.pdf", Version: 1}
	require.NoError(t, documents.Create(ctx, d))

	require.NoError(t, projects.Delete(ctx, "mandant-a", p.ID))

	remaining, err := assignments.ListByProject(ctx, "mandant-a", p.ID)
	require.NoError(t, err)
	assert.Empty(t, remaining)

	docs, err := documents.ListByProject(ctx, "mandant-a", p.ID)
	require.NoError(t, err)
	assert.Empty(t, docs)

	fs, err := folders.ListByProject(ctx, "mandant-a", p.ID)
	require.NoError(t, err)
	assert.Empty(t, fs)
}

func TestTenantRepository_SoftDelete(t *testing.T) {
	db := testDB(t)
	repo := NewTenantRepository(db)
	ctx := context.Background()

	tn := &domain.Tenant{Slug: "mandant-a", Name: "Bau Müller GmbH", Type: domain.TenantCompany, Active: true}
	require.NoError(t, repo.Create(ctx, tn))
	assert.Equal(t, SoftDelete, repo.Policy())

	require.NoError(t, repo.Delete(ctx, tn.ID))

	// still retrievable by id
	got, err := repo.GetByID(ctx, tn.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.False(t, got.Active)

	// but gone from the active listing
	active, err := repo.ListActive(ctx)
	require.NoError(t, err)
	assert.Empty(t, active)
}

func TestUserRepository_SearchCaseInsensitive(t *testing.T) {
	db := testDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	users := []domain.User{
		{TenantID: "mandant-a", FirstName: "Anna", LastName: "Schmidt", Email: "anna@example.de", Role: domain.RoleEmployee, Status: domain.UserActive},
		{TenantID: "mandant-a", FirstName: "Bernd", LastName: "Krause", Email: "bernd@example.de", Role: domain.RolePartner, Status: domain.UserActive},
		{TenantID: "mandant-b", FirstName: "Anna", LastName: "Weber", Email: "anna.w@example.de", Role: domain.RoleCustomer, Status: domain.UserActive},
	}
	for i := range users {
		require.NoError(t, repo.Create(ctx, &users[i]))
	}

	found, err := repo.Search(ctx, "mandant-a", "ANNA")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Schmidt", found[0].LastName)

	// empty term returns the unfiltered tenant list
	all, err := repo.Search(ctx, "mandant-a", "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestRepository_UpdatePartialMerge(t *testing.T) {
	db := testDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	p := &domain.Project{
		TenantID:    "mandant-a",
		ProjectCode: "BV-9",
		Name:        "Dachausbau",
		City:        "Köln",
		Status:      domain.ProjectPlanned,
	}
	require.NoError(t, repo.Create(ctx, p))

	require.NoError(t, repo.Update(ctx, "mandant-a", p.ID, map[string]any{"city": "Bonn"}))

	got, err := repo.GetByID(ctx, "mandant-a", p.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Bonn", got.City)
	assert.Equal(t, "Dachausbau", got.Name)

	err = repo.Update(ctx, "mandant-a", 4242, map[string]any{"city": "Bonn"})
	assert.ErrorIs(t, err, ErrNotFound)
}

// Columns declared serializer:json bypass the serializer on map updates,
// so callers hand them over as JSON text. The round trip through the
// column must restore the slice.
func TestAssignmentRepository_UpdateSerializedColumn(t *testing.T) {
	db := testDB(t)
	repo := NewAssignmentRepository(db)
	ctx := context.Background()

	a := &domain.TradeAssignment{
		TenantID:  "mandant-a",
		ProjectID: 1,
		TradeID:   2,
		Status:    domain.ProjectInProgress,
		Craftsmen: []string{"Maurer"},
	}
	require.NoError(t, repo.Create(ctx, a))

	require.NoError(t, repo.Update(ctx, "mandant-a", a.ID, map[string]any{
		"craftsmen":        JSONValue([]string{"Maurer", "Polier"}),
		"materials":        JSONValue([]string{"Kalksandstein"}),
		"progress_percent": 45,
	}))

	got, err := repo.GetByID(ctx, "mandant-a", a.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, []string{"Maurer", "Polier"}, got.Craftsmen)
	assert.Equal(t, []string{"Kalksandstein"}, got.Materials)
	assert.Equal(t, 45, got.ProgressPercent)
}
