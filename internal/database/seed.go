package database

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jameszjgao/vouchap-crm/internal/domain"
	"github.com/jameszjgao/vouchap-crm/internal/menu"
	"github.com/jameszjgao/vouchap-crm/internal/rbac"
)

// SeedReport summarizes what Seed changed; Noop means the database already
// satisfied every bootstrap invariant.
type SeedReport struct {
	CreatedOpsUsers       int  `json:"created_ops_users"`
	HealedAdminPermission bool `json:"healed_admin_permission"`
	Noop                  bool `json:"noop"`
}

// Seed enforces the bootstrap invariants: the admin role always holds the
// roles_permissions grant when it has any stored rows, and the bootstrap
// admin email (when set) maps to an admin ops user.
func Seed(db *gorm.DB, bootstrapAdminEmail string) (*SeedReport, error) {
	report := &SeedReport{}

	var adminRows int64
	if err := db.Model(&domain.RoleMenuPermission{}).Where("role = ?", rbac.RoleAdmin).Count(&adminRows).Error; err != nil {
		return nil, fmt.Errorf("count admin permission rows: %w", err)
	}
	if adminRows > 0 {
		// Admin resolves via stored rows, so the edit-roles grant must be
		// present or the role administration screen becomes unreachable.
		var editRows int64
		if err := db.Model(&domain.RoleMenuPermission{}).
			Where("role = ? AND menu_key = ?", rbac.RoleAdmin, string(menu.RolesPermissions)).
			Count(&editRows).Error; err != nil {
			return nil, fmt.Errorf("count admin edit-roles row: %w", err)
		}
		if editRows == 0 {
			row := domain.RoleMenuPermission{Role: rbac.RoleAdmin, MenuKey: string(menu.RolesPermissions)}
			if err := db.Create(&row).Error; err != nil {
				return nil, fmt.Errorf("heal admin edit-roles row: %w", err)
			}
			report.HealedAdminPermission = true
		}
	}

	email := strings.TrimSpace(strings.ToLower(bootstrapAdminEmail))
	if email != "" {
		var existing domain.OpsUser
		err := db.Where("email = ?", email).First(&existing).Error
		switch {
		case err == nil:
			if existing.Role != rbac.RoleAdmin {
				if err := db.Model(&existing).Update("role", rbac.RoleAdmin).Error; err != nil {
					return nil, fmt.Errorf("promote bootstrap admin: %w", err)
				}
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			var user domain.User
			if err := db.Where("email = ?", email).First(&user).Error; err != nil {
				if !errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, fmt.Errorf("look up bootstrap admin account: %w", err)
				}
				// No platform account yet; the operator signs up first.
				break
			}
			ops := domain.OpsUser{
				ID:     uuid.NewString(),
				UserID: user.ID,
				Email:  email,
				Name:   user.Name,
				Role:   rbac.RoleAdmin,
			}
			if err := db.Create(&ops).Error; err != nil {
				return nil, fmt.Errorf("create bootstrap admin ops user: %w", err)
			}
			report.CreatedOpsUsers++
		default:
			return nil, fmt.Errorf("look up bootstrap admin: %w", err)
		}
	}

	report.Noop = report.CreatedOpsUsers == 0 && !report.HealedAdminPermission
	return report, nil
}
