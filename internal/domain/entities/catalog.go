package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// PlanCategory groups health plans
type PlanCategory struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	Description null.String `json:"description"`
	IsActive    bool        `json:"is_active"`
	CreatedAt   time.Time   `json:"created_at"`
}

// HealthPlan represents a purchasable health insurance plan
type HealthPlan struct {
	ID             uuid.UUID   `json:"id"`
	CategoryID     uuid.UUID   `json:"category_id"`
	Name           string      `json:"name"`
	Description    null.String `json:"description"`
	CoverageAmount float64     `json:"coverage_amount"`
	PremiumMonthly float64     `json:"premium_monthly"`
	PremiumYearly  float64     `json:"premium_yearly"`
	Features       null.String `json:"features"` // opaque JSON blob
	IsActive       bool        `json:"is_active"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

// CreateCategoryInput represents input for creating a plan category
type CreateCategoryInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// CreatePlanInput represents input for creating a health plan
type CreatePlanInput struct {
	CategoryID     uuid.UUID `json:"category_id" binding:"required"`
	Name           string    `json:"name" binding:"required"`
	CoverageAmount float64   `json:"coverage_amount"`
	PremiumMonthly float64   `json:"premium_monthly"`
	PremiumYearly  float64   `json:"premium_yearly"`
	Description    string    `json:"description"`
	Features       string    `json:"features"`
}

// CategoryPlans pairs a category with its active plans
type CategoryPlans struct {
	Category *PlanCategory `json:"category"`
	Plans    []*HealthPlan `json:"plans"`
}
