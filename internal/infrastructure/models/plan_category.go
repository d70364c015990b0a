package models

import (
	"time"

	"github.com/google/uuid"
)

type PlanCategory struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	Description *string   `gorm:"type:text"`
	IsActive    bool      `gorm:"not null"`
	CreatedAt   time.Time
}

func (PlanCategory) TableName() string {
	return "plan_categories"
}
