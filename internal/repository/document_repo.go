package repository

import (
	"context"
	"errors"

	"bauportal/internal/domain"

	"gorm.io/gorm"
)

type DocumentRepository struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

func (r *DocumentRepository) Policy() DeletionPolicy { return HardDelete }

func (r *DocumentRepository) Create(ctx context.Context, d *domain.Document) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *DocumentRepository) GetByID(ctx context.Context, tenantID string, id int64) (*domain.Document, error) {
	var d domain.Document
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&d).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DocumentRepository) ListByProject(ctx context.Context, tenantID string, projectID int64) ([]domain.Document, error) {
	docs := []domain.Document{}
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND project_id = ?", tenantID, projectID).
		Order("filename ASC").
		Find(&docs).Error
	return docs, err
}

// FindByName returns the current version of a filename within a folder,
// nil when the name is new.
func (r *DocumentRepository) FindByName(ctx context.Context, tenantID string, projectID, folderID int64, filename string) (*domain.Document, error) {
	var d domain.Document
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND project_id = ? AND folder_id = ? AND filename = ?",
			tenantID, projectID, folderID, filename).
		Order("version DESC").
		First(&d).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DocumentRepository) Update(ctx context.Context, tenantID string, id int64, fields map[string]any) error {
	existing, err := r.GetByID(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}
	return r.db.WithContext(ctx).
		Model(&domain.Document{}).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		Updates(fields).Error
}

func (r *DocumentRepository) Delete(ctx context.Context, tenantID string, id int64) error {
	res := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		Delete(&domain.Document{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *DocumentRepository) Search(ctx context.Context, tenantID string, projectID int64, term string) ([]domain.Document, error) {
	all, err := r.ListByProject(ctx, tenantID, projectID)
	if err != nil {
		return nil, err
	}
	out := []domain.Document{}
	for _, d := range all {
		fields := append([]string{d.Filename}, d.Tags...)
		if matchesTerm(term, fields...) {
			out = append(out, d)
		}
	}
	return out, nil
}
