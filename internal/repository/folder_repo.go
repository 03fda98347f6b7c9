package repository

import (
	"context"
	"errors"

	"bauportal/internal/domain"

	"gorm.io/gorm"
)

type FolderRepository struct {
	db *gorm.DB
}

func NewFolderRepository(db *gorm.DB) *FolderRepository {
	return &FolderRepository{db: db}
}

func (r *FolderRepository) Policy() DeletionPolicy { return HardDelete }

func (r *FolderRepository) Create(ctx context.Context, f *domain.Folder) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *FolderRepository) GetByID(ctx context.Context, tenantID string, id int64) (*domain.Folder, error) {
	var f domain.Folder
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&f).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *FolderRepository) ListByProject(ctx context.Context, tenantID string, projectID int64) ([]domain.Folder, error) {
	folders := []domain.Folder{}
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND project_id = ?", tenantID, projectID).
		Order("name ASC").
		Find(&folders).Error
	return folders, err
}

func (r *FolderRepository) Delete(ctx context.Context, tenantID string, id int64) error {
	res := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		Delete(&domain.Folder{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
