package repository

import (
	"context"
	"errors"

	"bauportal/internal/domain"

	"gorm.io/gorm"
)

// ProjectTypeRepository manages the tenant-defined Bauvorhabenart
// templates.
type ProjectTypeRepository struct {
	db *gorm.DB
}

func NewProjectTypeRepository(db *gorm.DB) *ProjectTypeRepository {
	return &ProjectTypeRepository{db: db}
}

func (r *ProjectTypeRepository) Policy() DeletionPolicy { return HardDelete }

func (r *ProjectTypeRepository) Create(ctx context.Context, t *domain.ConstructionProjectType) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *ProjectTypeRepository) GetByID(ctx context.Context, tenantID string, id int64) (*domain.ConstructionProjectType, error) {
	var t domain.ConstructionProjectType
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *ProjectTypeRepository) ListByTenant(ctx context.Context, tenantID string) ([]domain.ConstructionProjectType, error) {
	types := []domain.ConstructionProjectType{}
	err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("name ASC").
		Find(&types).Error
	return types, err
}

func (r *ProjectTypeRepository) Update(ctx context.Context, tenantID string, id int64, fields map[string]any) error {
	existing, err := r.GetByID(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}
	return r.db.WithContext(ctx).
		Model(&domain.ConstructionProjectType{}).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		Updates(fields).Error
}

func (r *ProjectTypeRepository) Delete(ctx context.Context, tenantID string, id int64) error {
	res := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		Delete(&domain.ConstructionProjectType{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ProjectTypeRepository) Search(ctx context.Context, tenantID, term string) ([]domain.ConstructionProjectType, error) {
	all, err := r.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	out := []domain.ConstructionProjectType{}
	for _, t := range all {
		if matchesTerm(term, t.Name, t.Category) {
			out = append(out, t)
		}
	}
	return out, nil
}
