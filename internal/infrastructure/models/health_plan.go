package models

import (
	"time"

	"github.com/google/uuid"
)

type HealthPlan struct {
	ID             uuid.UUID    `gorm:"type:uuid;primaryKey"`
	CategoryID     uuid.UUID    `gorm:"type:uuid;index;not null"`
	Category       PlanCategory `gorm:"constraint:OnDelete:RESTRICT"`
	Name           string       `gorm:"type:varchar(255);not null"`
	Description    *string      `gorm:"type:text"`
	CoverageAmount float64      `gorm:"not null"`
	PremiumMonthly float64      `gorm:"not null"`
	PremiumYearly  float64      `gorm:"not null"`
	Features       *string      `gorm:"type:text"` // JSON string
	IsActive       bool         `gorm:"not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (HealthPlan) TableName() string {
	return "health_plans"
}
