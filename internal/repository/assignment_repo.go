package repository

import (
	"context"
	"errors"

	"bauportal/internal/domain"

	"gorm.io/gorm"
)

type AssignmentRepository struct {
	db *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

func (r *AssignmentRepository) Policy() DeletionPolicy { return HardDelete }

func (r *AssignmentRepository) Create(ctx context.Context, a *domain.TradeAssignment) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *AssignmentRepository) GetByID(ctx context.Context, tenantID string, id int64) (*domain.TradeAssignment, error) {
	var a domain.TradeAssignment
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AssignmentRepository) ListByProject(ctx context.Context, tenantID string, projectID int64) ([]domain.TradeAssignment, error) {
	assignments := []domain.TradeAssignment{}
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND project_id = ?", tenantID, projectID).
		Order("created_at ASC").
		Find(&assignments).Error
	return assignments, err
}

func (r *AssignmentRepository) ListByTenant(ctx context.Context, tenantID string) ([]domain.TradeAssignment, error) {
	assignments := []domain.TradeAssignment{}
	err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("created_at ASC").
		Find(&assignments).Error
	return assignments, err
}

func (r *AssignmentRepository) Update(ctx context.Context, tenantID string, id int64, fields map[string]any) error {
	existing, err := r.GetByID(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}
	return r.db.WithContext(ctx).
		Model(&domain.TradeAssignment{}).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		Updates(fields).Error
}

func (r *AssignmentRepository) Delete(ctx context.Context, tenantID string, id int64) error {
	res := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		Delete(&domain.TradeAssignment{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
