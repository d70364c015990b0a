package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Gender represents profile gender choices
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// IsValid reports whether g is one of the allowed choices.
func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// User represents a user account
type User struct {
	ID           uuid.UUID    `json:"id"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"-"`
	IsActive     bool         `json:"is_active"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
	Profile      *UserProfile `json:"profile,omitempty"`
}

// UserProfile holds the 1:1 profile attached to a user at registration
type UserProfile struct {
	ID           uuid.UUID   `json:"id"`
	UserID       uuid.UUID   `json:"-"`
	FullName     string      `json:"full_name"`
	DateOfBirth  null.Time   `json:"date_of_birth"`
	Gender       null.String `json:"gender"`
	AddressLine1 null.String `json:"address_line1"`
	AddressLine2 null.String `json:"address_line2"`
	City         null.String `json:"city"`
	State        null.String `json:"state"`
	Pincode      null.String `json:"pincode"`
	MobileNumber null.String `json:"mobile_number"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// RegisterInput represents input for user registration
type RegisterInput struct {
	Email        string `json:"email" binding:"required"`
	Password     string `json:"password" binding:"required"`
	FullName     string `json:"full_name" binding:"required"`
	MobileNumber string `json:"mobile,omitempty"`
}

// LoginInput represents input for user login
type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileInput lists the mutable profile fields. A nil field is
// left untouched; each present field is validated independently.
type UpdateProfileInput struct {
	FullName     *string `json:"full_name"`
	DateOfBirth  *string `json:"date_of_birth"` // YYYY-MM-DD
	Gender       *string `json:"gender"`
	AddressLine1 *string `json:"address_line1"`
	AddressLine2 *string `json:"address_line2"`
	City         *string `json:"city"`
	State        *string `json:"state"`
	Pincode      *string `json:"pincode"`
	MobileNumber *string `json:"mobile_number"`
}

// AuthResponse represents a successful login
type AuthResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
	User         *User  `json:"user"`
}
