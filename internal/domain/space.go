package domain

import "time"

// Space is a customer workspace.
type Space struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Name      string    `gorm:"size:255" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// OpsAssignment binds one ops user to a space. A space has at most one
// active assignment; reassignment replaces the previous row.
type OpsAssignment struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	SpaceID    string    `gorm:"size:36;not null;uniqueIndex" json:"space_id"`
	OpsUserID  string    `gorm:"size:36;not null;index" json:"ops_user_id"`
	Role       string    `gorm:"size:64;not null;default:owner" json:"role"`
	AssignedAt time.Time `json:"assigned_at"`

	OpsUser *OpsUser `gorm:"foreignKey:OpsUserID" json:"ops_user,omitempty"`
}

// SpaceFollowUp is a free-text note an ops user left on a space.
type SpaceFollowUp struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	SpaceID   string    `gorm:"size:36;not null;index" json:"space_id"`
	OpsUserID string    `gorm:"size:36;not null" json:"ops_user_id"`
	Content   string    `gorm:"size:2000;not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`

	OpsUser *OpsUser `gorm:"foreignKey:OpsUserID" json:"ops_user,omitempty"`
}
