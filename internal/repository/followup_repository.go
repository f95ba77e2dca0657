package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/jameszjgao/vouchap-crm/internal/domain"
)

type FollowUpRepository interface {
	ListBySpace(spaceID string) ([]domain.SpaceFollowUp, error)
	ListBySpaceIDs(ctx context.Context, spaceIDs []string) ([]domain.SpaceFollowUp, error)
	Create(f *domain.SpaceFollowUp) error
}

type GormFollowUpRepository struct{ db *gorm.DB }

func NewFollowUpRepository(db *gorm.DB) FollowUpRepository {
	return &GormFollowUpRepository{db: db}
}

func (r *GormFollowUpRepository) ListBySpace(spaceID string) ([]domain.SpaceFollowUp, error) {
	var rows []domain.SpaceFollowUp
	err := r.db.Preload("OpsUser").Where("space_id = ?", spaceID).Order("created_at DESC").Find(&rows).Error
	return rows, err
}

func (r *GormFollowUpRepository) ListBySpaceIDs(ctx context.Context, spaceIDs []string) ([]domain.SpaceFollowUp, error) {
	if len(spaceIDs) == 0 {
		return nil, nil
	}
	var rows []domain.SpaceFollowUp
	err := r.db.WithContext(ctx).Preload("OpsUser").
		Where("space_id IN ?", spaceIDs).
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}

func (r *GormFollowUpRepository) Create(f *domain.SpaceFollowUp) error {
	return r.db.Create(f).Error
}
