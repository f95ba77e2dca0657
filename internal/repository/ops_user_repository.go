package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/jameszjgao/vouchap-crm/internal/domain"
)

var ErrOpsUserNotFound = errors.New("ops user not found")

type OpsUserRepository interface {
	FindByID(id string) (*domain.OpsUser, error)
	FindByUserID(userID string) (*domain.OpsUser, error)
	FindByEmail(email string) (*domain.OpsUser, error)
	List() ([]domain.OpsUser, error)
	Create(u *domain.OpsUser) error
	Update(id string, fields map[string]any) error
	DeleteByID(id string) error
}

type GormOpsUserRepository struct{ db *gorm.DB }

func NewOpsUserRepository(db *gorm.DB) OpsUserRepository {
	return &GormOpsUserRepository{db: db}
}

func (r *GormOpsUserRepository) FindByID(id string) (*domain.OpsUser, error) {
	var u domain.OpsUser
	if err := r.db.Where("id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOpsUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *GormOpsUserRepository) FindByUserID(userID string) (*domain.OpsUser, error) {
	var u domain.OpsUser
	if err := r.db.Where("user_id = ?", userID).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOpsUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *GormOpsUserRepository) FindByEmail(email string) (*domain.OpsUser, error) {
	var u domain.OpsUser
	if err := r.db.Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOpsUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *GormOpsUserRepository) List() ([]domain.OpsUser, error) {
	var users []domain.OpsUser
	err := r.db.Order("email").Find(&users).Error
	return users, err
}

func (r *GormOpsUserRepository) Create(u *domain.OpsUser) error {
	return r.db.Create(u).Error
}

func (r *GormOpsUserRepository) Update(id string, fields map[string]any) error {
	tx := r.db.Model(&domain.OpsUser{}).Where("id = ?", id).Updates(fields)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrOpsUserNotFound
	}
	return nil
}

func (r *GormOpsUserRepository) DeleteByID(id string) error {
	tx := r.db.Where("id = ?", id).Delete(&domain.OpsUser{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrOpsUserNotFound
	}
	return nil
}
