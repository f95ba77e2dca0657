package domain

import "time"

// SkuEdition is a sellable subscription tier.
type SkuEdition struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Code        string    `gorm:"uniqueIndex;size:64;not null" json:"code"`
	Name        string    `gorm:"size:120;not null" json:"name"`
	Description string    `gorm:"size:500" json:"description"`
	PriceCents  int64     `gorm:"not null;default:0" json:"price_cents"`
	SeatLimit   int       `gorm:"not null;default:0" json:"seat_limit"`
	Active      bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SkuAddon is a purchasable add-on (extra seats, storage, etc.).
type SkuAddon struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Code        string    `gorm:"uniqueIndex;size:64;not null" json:"code"`
	Name        string    `gorm:"size:120;not null" json:"name"`
	Description string    `gorm:"size:500" json:"description"`
	PriceCents  int64     `gorm:"not null;default:0" json:"price_cents"`
	Unit        string    `gorm:"size:32" json:"unit"`
	Active      bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
