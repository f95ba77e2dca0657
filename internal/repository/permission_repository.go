package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/jameszjgao/vouchap-crm/internal/domain"
)

// PermissionRepository persists the (role, menu_key) grant rows.
type PermissionRepository interface {
	MenuKeysByRole(ctx context.Context, role string) ([]string, error)
	ListAll(ctx context.Context) ([]domain.RoleMenuPermission, error)
	Insert(ctx context.Context, role string, menuKeys []string) error
	DeleteByRoleAndKeys(ctx context.Context, role string, menuKeys []string) error
}

type GormPermissionRepository struct{ db *gorm.DB }

func NewPermissionRepository(db *gorm.DB) PermissionRepository {
	return &GormPermissionRepository{db: db}
}

func (r *GormPermissionRepository) MenuKeysByRole(ctx context.Context, role string) ([]string, error) {
	var keys []string
	err := r.db.WithContext(ctx).
		Model(&domain.RoleMenuPermission{}).
		Where("role = ?", role).
		Pluck("menu_key", &keys).Error
	if err != nil {
		return nil, err
	}
	return keys, nil
}

func (r *GormPermissionRepository) ListAll(ctx context.Context) ([]domain.RoleMenuPermission, error) {
	var rows []domain.RoleMenuPermission
	err := r.db.WithContext(ctx).Order("role, menu_key").Find(&rows).Error
	return rows, err
}

func (r *GormPermissionRepository) Insert(ctx context.Context, role string, menuKeys []string) error {
	if len(menuKeys) == 0 {
		return nil
	}
	rows := make([]domain.RoleMenuPermission, 0, len(menuKeys))
	for _, k := range menuKeys {
		rows = append(rows, domain.RoleMenuPermission{Role: role, MenuKey: k})
	}
	return r.db.WithContext(ctx).Create(&rows).Error
}

func (r *GormPermissionRepository) DeleteByRoleAndKeys(ctx context.Context, role string, menuKeys []string) error {
	if len(menuKeys) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Where("role = ? AND menu_key IN ?", role, menuKeys).
		Delete(&domain.RoleMenuPermission{}).Error
}
