package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/jameszjgao/vouchap-crm/internal/domain"
)

var ErrAssignmentNotFound = errors.New("assignment not found")

type AssignmentRepository interface {
	ListAll(ctx context.Context) ([]domain.OpsAssignment, error)
	ListByOpsUser(ctx context.Context, opsUserID string) ([]domain.OpsAssignment, error)
	Count(ctx context.Context) (int64, error)
	Assign(spaceID, opsUserID, role string) error
	Unassign(spaceID string) error
}

type GormAssignmentRepository struct{ db *gorm.DB }

func NewAssignmentRepository(db *gorm.DB) AssignmentRepository {
	return &GormAssignmentRepository{db: db}
}

func (r *GormAssignmentRepository) ListAll(ctx context.Context) ([]domain.OpsAssignment, error) {
	var rows []domain.OpsAssignment
	err := r.db.WithContext(ctx).Preload("OpsUser").Order("assigned_at DESC").Find(&rows).Error
	return rows, err
}

func (r *GormAssignmentRepository) ListByOpsUser(ctx context.Context, opsUserID string) ([]domain.OpsAssignment, error) {
	var rows []domain.OpsAssignment
	err := r.db.WithContext(ctx).Where("ops_user_id = ?", opsUserID).Order("assigned_at DESC").Find(&rows).Error
	return rows, err
}

func (r *GormAssignmentRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.OpsAssignment{}).Count(&n).Error
	return n, err
}

// Assign replaces any existing assignment for the space.
func (r *GormAssignmentRepository) Assign(spaceID, opsUserID, role string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("space_id = ?", spaceID).Delete(&domain.OpsAssignment{}).Error; err != nil {
			return err
		}
		row := domain.OpsAssignment{
			SpaceID:    spaceID,
			OpsUserID:  opsUserID,
			Role:       role,
			AssignedAt: time.Now().UTC(),
		}
		return tx.Create(&row).Error
	})
}

func (r *GormAssignmentRepository) Unassign(spaceID string) error {
	tx := r.db.Where("space_id = ?", spaceID).Delete(&domain.OpsAssignment{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrAssignmentNotFound
	}
	return nil
}
