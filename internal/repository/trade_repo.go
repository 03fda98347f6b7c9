package repository

import (
	"context"
	"errors"

	"bauportal/internal/domain"

	"gorm.io/gorm"
)

// TradeRepository manages the global Gewerk catalog. Trades are not
// tenant-scoped: every tenant plans against the same catalog.
type TradeRepository struct {
	db *gorm.DB
}

func NewTradeRepository(db *gorm.DB) *TradeRepository {
	return &TradeRepository{db: db}
}

func (r *TradeRepository) Policy() DeletionPolicy { return HardDelete }

func (r *TradeRepository) Create(ctx context.Context, t *domain.Trade) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *TradeRepository) GetByID(ctx context.Context, id int64) (*domain.Trade, error) {
	var t domain.Trade
	err := r.db.WithContext(ctx).First(&t, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TradeRepository) List(ctx context.Context) ([]domain.Trade, error) {
	trades := []domain.Trade{}
	err := r.db.WithContext(ctx).Order("name ASC").Find(&trades).Error
	return trades, err
}

func (r *TradeRepository) Update(ctx context.Context, id int64, fields map[string]any) error {
	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}
	return r.db.WithContext(ctx).
		Model(&domain.Trade{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *TradeRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&domain.Trade{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *TradeRepository) Search(ctx context.Context, term string) ([]domain.Trade, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	out := []domain.Trade{}
	for _, t := range all {
		if matchesTerm(term, t.Name, t.Category) {
			out = append(out, t)
		}
	}
	return out, nil
}
