package entities

import (
	"time"

	"github.com/google/uuid"
)

// BillingCycle selects the monthly or yearly pricing tier for a cart item
type BillingCycle string

const (
	BillingMonthly BillingCycle = "monthly"
	BillingYearly  BillingCycle = "yearly"
)

// IsValid reports whether b is a known billing cycle.
func (b BillingCycle) IsValid() bool {
	return b == BillingMonthly || b == BillingYearly
}

// Cart is a user's shopping cart. A user has at most one active cart.
// Item rows are loaded separately and served through CartView.
type Cart struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CartItem references one plan inside a cart. At most one item exists
// per (cart, plan) pair; repeated adds merge quantities.
type CartItem struct {
	ID           uuid.UUID    `json:"id"`
	CartID       uuid.UUID    `json:"cart_id"`
	PlanID       uuid.UUID    `json:"plan_id"`
	Quantity     int          `json:"quantity"`
	BillingCycle BillingCycle `json:"billing_cycle"`
	CreatedAt    time.Time    `json:"created_at"`
}

// AddItemInput represents input for adding a plan to the cart
type AddItemInput struct {
	PlanID       uuid.UUID `json:"plan_id" binding:"required"`
	Quantity     int       `json:"quantity"`
	BillingCycle string    `json:"billing_cycle"`
}

// UpdateItemInput is a partial update of a cart item. Nil fields keep
// their current value.
type UpdateItemInput struct {
	Quantity     *int    `json:"quantity"`
	BillingCycle *string `json:"billing_cycle"`
}

// CartItemView is a cart item priced against the plan's current premium
type CartItemView struct {
	ID           uuid.UUID    `json:"id"`
	PlanID       uuid.UUID    `json:"plan_id"`
	PlanName     string       `json:"plan_name"`
	Quantity     int          `json:"quantity"`
	BillingCycle BillingCycle `json:"billing_cycle"`
	Price        float64      `json:"price"`
	Subtotal     float64      `json:"subtotal"`
}

// CartView is the cart with computed totals. The total is derived on
// every read so plan price changes are always reflected.
type CartView struct {
	ID        uuid.UUID       `json:"id"`
	UserID    uuid.UUID       `json:"user_id"`
	Items     []*CartItemView `json:"items"`
	Total     float64         `json:"total"`
	ItemCount int             `json:"item_count"`
}
