package domain

import "time"

// User is a platform account. CRMRole mirrors ops_users.role for token
// claims; it is written only by the role sync flow, never read for
// menu permission checks.
type User struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	Email        string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Name         string    `gorm:"size:255" json:"name"`
	PasswordHash string    `gorm:"size:512" json:"-"`
	CRMRole      string    `gorm:"size:64" json:"crm_role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UserSpace links a platform user to a space. The member with IsAdmin set is
// treated as the space creator in the customer list.
type UserSpace struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	SpaceID string `gorm:"size:36;not null;index" json:"space_id"`
	UserID  string `gorm:"size:36;not null;index" json:"user_id"`
	IsAdmin bool   `gorm:"not null;default:false" json:"is_admin"`
}
