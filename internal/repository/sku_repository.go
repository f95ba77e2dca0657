package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/jameszjgao/vouchap-crm/internal/domain"
)

var (
	ErrSkuEditionNotFound = errors.New("sku edition not found")
	ErrSkuAddonNotFound   = errors.New("sku addon not found")
)

type SkuRepository interface {
	ListEditions() ([]domain.SkuEdition, error)
	CountEditions() (int64, error)
	CreateEdition(e *domain.SkuEdition) error
	UpdateEdition(id uint, fields map[string]any) error
	DeleteEdition(id uint) error

	ListAddons() ([]domain.SkuAddon, error)
	CreateAddon(a *domain.SkuAddon) error
	UpdateAddon(id uint, fields map[string]any) error
	DeleteAddon(id uint) error
}

type GormSkuRepository struct{ db *gorm.DB }

func NewSkuRepository(db *gorm.DB) SkuRepository {
	return &GormSkuRepository{db: db}
}

func (r *GormSkuRepository) ListEditions() ([]domain.SkuEdition, error) {
	var editions []domain.SkuEdition
	err := r.db.Order("id").Find(&editions).Error
	return editions, err
}

func (r *GormSkuRepository) CountEditions() (int64, error) {
	var n int64
	err := r.db.Model(&domain.SkuEdition{}).Count(&n).Error
	return n, err
}

func (r *GormSkuRepository) CreateEdition(e *domain.SkuEdition) error {
	return r.db.Create(e).Error
}

func (r *GormSkuRepository) UpdateEdition(id uint, fields map[string]any) error {
	tx := r.db.Model(&domain.SkuEdition{}).Where("id = ?", id).Updates(fields)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrSkuEditionNotFound
	}
	return nil
}

func (r *GormSkuRepository) DeleteEdition(id uint) error {
	tx := r.db.Where("id = ?", id).Delete(&domain.SkuEdition{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrSkuEditionNotFound
	}
	return nil
}

func (r *GormSkuRepository) ListAddons() ([]domain.SkuAddon, error) {
	var addons []domain.SkuAddon
	err := r.db.Order("id").Find(&addons).Error
	return addons, err
}

func (r *GormSkuRepository) CreateAddon(a *domain.SkuAddon) error {
	return r.db.Create(a).Error
}

func (r *GormSkuRepository) UpdateAddon(id uint, fields map[string]any) error {
	tx := r.db.Model(&domain.SkuAddon{}).Where("id = ?", id).Updates(fields)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrSkuAddonNotFound
	}
	return nil
}

func (r *GormSkuRepository) DeleteAddon(id uint) error {
	tx := r.db.Where("id = ?", id).Delete(&domain.SkuAddon{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrSkuAddonNotFound
	}
	return nil
}
