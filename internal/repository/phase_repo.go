package repository

import (
	"context"
	"errors"

	"bauportal/internal/domain"

	"gorm.io/gorm"
)

type PhaseRepository struct {
	db *gorm.DB
}

func NewPhaseRepository(db *gorm.DB) *PhaseRepository {
	return &PhaseRepository{db: db}
}

func (r *PhaseRepository) Policy() DeletionPolicy { return HardDelete }

func (r *PhaseRepository) Create(ctx context.Context, p *domain.Phase) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PhaseRepository) GetByID(ctx context.Context, tenantID string, id int64) (*domain.Phase, error) {
	var p domain.Phase
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

func (r *PhaseRepository) ListByTenant(ctx context.Context, tenantID string) ([]domain.Phase, error) {
	phases := []domain.Phase{}
	err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("sort_order ASC, name ASC").
		Find(&phases).Error
	return phases, err
}

func (r *PhaseRepository) Update(ctx context.Context, tenantID string, id int64, fields map[string]any) error {
	existing, err := r.GetByID(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}
	return r.db.WithContext(ctx).
		Model(&domain.Phase{}).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		Updates(fields).Error
}

func (r *PhaseRepository) Delete(ctx context.Context, tenantID string, id int64) error {
	res := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		Delete(&domain.Phase{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
