package repository

import (
	"context"
	"errors"
	"strings"

	"bauportal/internal/domain"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Policy() DeletionPolicy { return HardDelete }

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	u.Email = strings.TrimSpace(strings.ToLower(u.Email))
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *UserRepository) GetByID(ctx context.Context, tenantID string, id int64) (*domain.User, error) {
	var u domain.User
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByEmail looks a user up across tenants; login happens before any
// tenant scope exists.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	err := r.db.WithContext(ctx).
		Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) ListByTenant(ctx context.Context, tenantID string) ([]domain.User, error) {
	users := []domain.User{}
	err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("last_name ASC, first_name ASC").
		Find(&users).Error
	return users, err
}

func (r *UserRepository) Update(ctx context.Context, tenantID string, id int64, fields map[string]any) error {
	existing, err := r.GetByID(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}
	return r.db.WithContext(ctx).
		Model(&domain.User{}).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		Updates(fields).Error
}

// UpdateByID bypasses tenant scoping; used by the auth flows that act on
// the account itself (lockout bookkeeping, password reset).
func (r *UserRepository) UpdateByID(ctx context.Context, id int64, fields map[string]any) error {
	return r.db.WithContext(ctx).
		Model(&domain.User{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *UserRepository) Delete(ctx context.Context, tenantID string, id int64) error {
	res := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		Delete(&domain.User{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *UserRepository) Search(ctx context.Context, tenantID, term string) ([]domain.User, error) {
	all, err := r.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	out := []domain.User{}
	for _, u := range all {
		if matchesTerm(term, u.FirstName, u.LastName, u.Email, u.Company) {
			out = append(out, u)
		}
	}
	return out, nil
}
