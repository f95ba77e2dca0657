package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/jameszjgao/vouchap-crm/internal/domain"
)

var ErrOrderNotFound = errors.New("space order not found")

type OrderRepository interface {
	ListAll(ctx context.Context) ([]domain.SpaceOrder, error)
	ListBySpaceIDs(ctx context.Context, spaceIDs []string) ([]domain.SpaceOrder, error)
	Count(ctx context.Context) (int64, error)
	CountBySpaceIDs(ctx context.Context, spaceIDs []string) (int64, error)
	FindByID(id string) (*domain.SpaceOrder, error)
	Create(o *domain.SpaceOrder) error
	Update(id string, fields map[string]any) error
	DeleteByID(id string) error
}

type GormOrderRepository struct{ db *gorm.DB }

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &GormOrderRepository{db: db}
}

func (r *GormOrderRepository) ListAll(ctx context.Context) ([]domain.SpaceOrder, error) {
	var orders []domain.SpaceOrder
	err := r.db.WithContext(ctx).Preload("SkuEdition").Order("created_at DESC").Find(&orders).Error
	return orders, err
}

func (r *GormOrderRepository) ListBySpaceIDs(ctx context.Context, spaceIDs []string) ([]domain.SpaceOrder, error) {
	if len(spaceIDs) == 0 {
		return nil, nil
	}
	var orders []domain.SpaceOrder
	err := r.db.WithContext(ctx).Preload("SkuEdition").
		Where("space_id IN ?", spaceIDs).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

func (r *GormOrderRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.SpaceOrder{}).Count(&n).Error
	return n, err
}

func (r *GormOrderRepository) CountBySpaceIDs(ctx context.Context, spaceIDs []string) (int64, error) {
	if len(spaceIDs) == 0 {
		return 0, nil
	}
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.SpaceOrder{}).
		Where("space_id IN ?", spaceIDs).
		Count(&n).Error
	return n, err
}

func (r *GormOrderRepository) FindByID(id string) (*domain.SpaceOrder, error) {
	var o domain.SpaceOrder
	if err := r.db.Preload("SkuEdition").Where("id = ?", id).First(&o).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (r *GormOrderRepository) Create(o *domain.SpaceOrder) error {
	return r.db.Create(o).Error
}

func (r *GormOrderRepository) Update(id string, fields map[string]any) error {
	tx := r.db.Model(&domain.SpaceOrder{}).Where("id = ?", id).Updates(fields)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrOrderNotFound
	}
	return nil
}

func (r *GormOrderRepository) DeleteByID(id string) error {
	tx := r.db.Where("id = ?", id).Delete(&domain.SpaceOrder{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrOrderNotFound
	}
	return nil
}
