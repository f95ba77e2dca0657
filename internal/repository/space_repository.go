package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/jameszjgao/vouchap-crm/internal/domain"
)

var ErrSpaceNotFound = errors.New("space not found")

type SpaceRepository interface {
	ListRecent(ctx context.Context, limit int) ([]domain.Space, error)
	FindByID(id string) (*domain.Space, error)
	ListMemberships(ctx context.Context) ([]domain.UserSpace, error)
	Count(ctx context.Context) (int64, error)
}

type GormSpaceRepository struct{ db *gorm.DB }

func NewSpaceRepository(db *gorm.DB) SpaceRepository {
	return &GormSpaceRepository{db: db}
}

func (r *GormSpaceRepository) ListRecent(ctx context.Context, limit int) ([]domain.Space, error) {
	var spaces []domain.Space
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&spaces).Error
	return spaces, err
}

func (r *GormSpaceRepository) FindByID(id string) (*domain.Space, error) {
	var s domain.Space
	if err := r.db.Where("id = ?", id).First(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSpaceNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *GormSpaceRepository) ListMemberships(ctx context.Context) ([]domain.UserSpace, error) {
	var rows []domain.UserSpace
	err := r.db.WithContext(ctx).Find(&rows).Error
	return rows, err
}

func (r *GormSpaceRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Space{}).Count(&n).Error
	return n, err
}
