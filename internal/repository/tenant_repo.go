package repository

import (
	"context"
	"errors"
	"strings"

	"bauportal/internal/domain"

	"gorm.io/gorm"
)

// TenantRepository manages Mandant records. Tenants are referenced by
// slug from every other entity, so Delete is a soft delete: the record
// stays retrievable, only Active flips to false.
type TenantRepository struct {
	db *gorm.DB
}

func NewTenantRepository(db *gorm.DB) *TenantRepository {
	return &TenantRepository{db: db}
}

func (r *TenantRepository) Policy() DeletionPolicy { return SoftDelete }

func (r *TenantRepository) Create(ctx context.Context, t *domain.Tenant) error {
	t.Slug = strings.TrimSpace(strings.ToLower(t.Slug))
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *TenantRepository) GetByID(ctx context.Context, id int64) (*domain.Tenant, error) {
	var t domain.Tenant
	err := r.db.WithContext(ctx).First(&t, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TenantRepository) GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error) {
	var t domain.Tenant
	err := r.db.WithContext(ctx).
		Where("slug = ?", strings.TrimSpace(strings.ToLower(slug))).
		First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ListActive returns the tenants still visible in the portal, soft-deleted
// ones excluded.
func (r *TenantRepository) ListActive(ctx context.Context) ([]domain.Tenant, error) {
	tenants := []domain.Tenant{}
	err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("name ASC").
		Find(&tenants).Error
	return tenants, err
}

func (r *TenantRepository) List(ctx context.Context) ([]domain.Tenant, error) {
	tenants := []domain.Tenant{}
	err := r.db.WithContext(ctx).Order("name ASC").Find(&tenants).Error
	return tenants, err
}

func (r *TenantRepository) Update(ctx context.Context, id int64, fields map[string]any) error {
	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}
	return r.db.WithContext(ctx).
		Model(&domain.Tenant{}).
		Where("id = ?", id).
		Updates(fields).Error
}

// Delete deactivates the tenant instead of removing the row.
func (r *TenantRepository) Delete(ctx context.Context, id int64) error {
	return r.Update(ctx, id, map[string]any{"active": false})
}

func (r *TenantRepository) Search(ctx context.Context, term string) ([]domain.Tenant, error) {
	all, err := r.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	out := []domain.Tenant{}
	for _, t := range all {
		if matchesTerm(term, t.Name, t.City, t.ContactPerson, t.ContactEmail) {
			out = append(out, t)
		}
	}
	return out, nil
}
