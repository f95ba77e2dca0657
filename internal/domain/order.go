package domain

import "time"

const (
	OrderStatusActive   = "active"
	OrderStatusPending  = "pending"
	OrderStatusExpired  = "expired"
	OrderStatusCanceled = "canceled"
)

// SpaceOrder is a subscription order for a space. An order with status
// "active" and an unexpired ExpiresAt determines the space's current SKU.
type SpaceOrder struct {
	ID           string     `gorm:"primaryKey;size:36" json:"id"`
	SpaceID      string     `gorm:"size:36;not null;index" json:"space_id"`
	SkuEditionID uint       `gorm:"not null" json:"sku_edition_id"`
	Seats        int        `gorm:"not null;default:1" json:"seats"`
	AmountCents  int64      `gorm:"not null;default:0" json:"amount_cents"`
	Status       string     `gorm:"size:32;not null;default:pending;index" json:"status"`
	ExpiresAt    *time.Time `json:"expires_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	SkuEdition *SkuEdition `gorm:"foreignKey:SkuEditionID" json:"sku_edition,omitempty"`
}
