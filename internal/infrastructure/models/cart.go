package models

import (
	"time"

	"github.com/google/uuid"
)

type Cart struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;index;not null"`
	User      User      `gorm:"constraint:OnDelete:CASCADE"`
	IsActive  bool      `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Cart) TableName() string {
	return "carts"
}

// CartItem rows are hard-deleted on removal; uniqueness per
// (cart, plan) is enforced by the service layer, which merges
// quantities instead of inserting duplicates.
type CartItem struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CartID       uuid.UUID  `gorm:"type:uuid;index;not null"`
	Cart         Cart       `gorm:"constraint:OnDelete:CASCADE"`
	PlanID       uuid.UUID  `gorm:"type:uuid;index;not null"`
	Plan         HealthPlan `gorm:"constraint:OnDelete:RESTRICT"`
	Quantity     int        `gorm:"not null"`
	BillingCycle string     `gorm:"type:varchar(20);not null"`
	CreatedAt    time.Time
}

func (CartItem) TableName() string {
	return "cart_items"
}
