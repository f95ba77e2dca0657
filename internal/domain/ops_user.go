package domain

import "time"

// OpsUser is a member of the operations team. Role is the CRM role used for
// menu permission resolution (admin, ops, sales, support, or any role added
// through the role administration screen).
type OpsUser struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	UserID    string    `gorm:"uniqueIndex;size:36;not null" json:"user_id"`
	Email     string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Name      string    `gorm:"size:255" json:"name"`
	Role      string    `gorm:"size:64;not null;default:ops;index" json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RoleMenuPermission is one (role, menu_key) grant row. A role's permission
// set is the set of menu_key values across its rows; no row means denied.
type RoleMenuPermission struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Role    string `gorm:"size:64;not null;index:idx_role_menu,unique" json:"role"`
	MenuKey string `gorm:"size:64;not null;index:idx_role_menu,unique" json:"menu_key"`
}

func (RoleMenuPermission) TableName() string { return "role_menu_permissions" }
