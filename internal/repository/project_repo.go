package repository

import (
	"context"
	"errors"
	"strings"

	"bauportal/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) Policy() DeletionPolicy { return HardDelete }

// Create inserts the project. The composite unique index on
// (tenant_id, project_code) backstops the caller's uniqueness pre-check:
// a racing second create loses here instead of slipping through.
func (r *ProjectRepository) Create(ctx context.Context, p *domain.Project) error {
	p.ProjectCode = strings.TrimSpace(p.ProjectCode)
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return mapUniqueViolation(err)
	}
	return nil
}

func (r *ProjectRepository) GetByID(ctx context.Context, tenantID string, id int64) (*domain.Project, error) {
	var p domain.Project
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProjectRepository) ListByTenant(ctx context.Context, tenantID string) ([]domain.Project, error) {
	projects := []domain.Project{}
	err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("project_code ASC").
		Find(&projects).Error
	return projects, err
}

func (r *ProjectRepository) Update(ctx context.Context, tenantID string, id int64, fields map[string]any) error {
	existing, err := r.GetByID(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}
	err = r.db.WithContext(ctx).
		Model(&domain.Project{}).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		Updates(fields).Error
	return mapUniqueViolation(err)
}

// Delete removes the project together with its trade assignments,
// documents and folders in one transaction, so no child rows are left
// dangling.
func (r *ProjectRepository) Delete(ctx context.Context, tenantID string, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("tenant_id = ? AND id = ?", tenantID, id).Delete(&domain.Project{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		if err := tx.Where("tenant_id = ? AND project_id = ?", tenantID, id).
			Delete(&domain.TradeAssignment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("tenant_id = ? AND project_id = ?", tenantID, id).
			Delete(&domain.Document{}).Error; err != nil {
			return err
		}
		return tx.Where("tenant_id = ? AND project_id = ?", tenantID, id).
			Delete(&domain.Folder{}).Error
	})
}

func (r *ProjectRepository) Search(ctx context.Context, tenantID, term string) ([]domain.Project, error) {
	all, err := r.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	out := []domain.Project{}
	for _, p := range all {
		if matchesTerm(term, p.Name, p.ProjectCode, p.City, p.ClientName) {
			out = append(out, p)
		}
	}
	return out, nil
}

// IsCodeUnique reports whether no other project in the tenant uses the
// code. excludeID skips the project being edited.
func (r *ProjectRepository) IsCodeUnique(ctx context.Context, tenantID, code string, excludeID int64) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).
		Model(&domain.Project{}).
		Where("tenant_id = ? AND project_code = ?", tenantID, strings.TrimSpace(code))
	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count == 0, nil
}

func mapUniqueViolation(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrDuplicate
	}
	// sqlite reports constraint violations as plain errors
	if strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return ErrDuplicate
	}
	return err
}
