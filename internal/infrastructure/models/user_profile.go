package models

import (
	"time"

	"github.com/google/uuid"
)

type UserProfile struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID  `gorm:"type:uuid;uniqueIndex;not null"`
	User         User       `gorm:"constraint:OnDelete:CASCADE"`
	FullName     string     `gorm:"type:varchar(255);not null"`
	DateOfBirth  *time.Time `gorm:"type:date"`
	Gender       *string    `gorm:"type:varchar(10)"`
	AddressLine1 *string    `gorm:"type:varchar(255)"`
	AddressLine2 *string    `gorm:"type:varchar(255)"`
	City         *string    `gorm:"type:varchar(100)"`
	State        *string    `gorm:"type:varchar(100)"`
	Pincode      *string    `gorm:"type:varchar(10)"`
	MobileNumber *string    `gorm:"type:varchar(15)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (UserProfile) TableName() string {
	return "user_profiles"
}
