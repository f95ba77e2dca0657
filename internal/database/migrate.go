package database

import (
	"github.com/jameszjgao/vouchap-crm/internal/domain"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.UserSpace{},
		&domain.Space{},
		&domain.SpaceOrder{},
		&domain.SkuEdition{},
		&domain.SkuAddon{},
		&domain.OpsUser{},
		&domain.OpsAssignment{},
		&domain.SpaceFollowUp{},
		&domain.RoleMenuPermission{},
	)
}
