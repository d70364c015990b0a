package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"healthplans.backend/internal/domain/entities"
	domainerrors "healthplans.backend/internal/domain/errors"
	"healthplans.backend/internal/infrastructure/models"
)

// UserRepository implements user data operations
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user. A unique-index violation on email maps to
// ErrAlreadyExists so concurrent double-registration has one winner.
func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	m := &models.User{
		ID:           user.ID,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		IsActive:     user.IsActive,
	}

	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}
	user.CreatedAt = m.CreatedAt
	user.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	var m models.User
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return userToEntity(&m), nil
}

// GetByEmail gets a user by normalized email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	var m models.User
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("email = ?", email).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return userToEntity(&m), nil
}

// EmailExists reports whether a user row exists for the email
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := GetDB(ctx, r.db).WithContext(ctx).Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Deactivate clears the active flag. User rows are never hard-deleted.
func (r *UserRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Updates(map[string]interface{}{
		"is_active":  false,
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func userToEntity(m *models.User) *entities.User {
	return &entities.User{
		ID:           m.ID,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		IsActive:     m.IsActive,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// UserProfileRepository implements profile data operations
type UserProfileRepository struct {
	db *gorm.DB
}

// NewUserProfileRepository creates a new profile repository
func NewUserProfileRepository(db *gorm.DB) *UserProfileRepository {
	return &UserProfileRepository{db: db}
}

// Create creates a new profile
func (r *UserProfileRepository) Create(ctx context.Context, profile *entities.UserProfile) error {
	m := profileToModel(profile)
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}
	profile.CreatedAt = m.CreatedAt
	profile.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByUserID gets the profile owned by a user
func (r *UserProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.UserProfile, error) {
	var m models.UserProfile
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("user_id = ?", userID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return profileToEntity(&m), nil
}

// Update persists every mutable profile column
func (r *UserProfileRepository) Update(ctx context.Context, profile *entities.UserProfile) error {
	updates := map[string]interface{}{
		"full_name":     profile.FullName,
		"date_of_birth": timePtr(profile.DateOfBirth),
		"gender":        stringPtr(profile.Gender),
		"address_line1": stringPtr(profile.AddressLine1),
		"address_line2": stringPtr(profile.AddressLine2),
		"city":          stringPtr(profile.City),
		"state":         stringPtr(profile.State),
		"pincode":       stringPtr(profile.Pincode),
		"mobile_number": stringPtr(profile.MobileNumber),
		"updated_at":    time.Now(),
	}

	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.UserProfile{}).Where("id = ?", profile.ID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func profileToModel(p *entities.UserProfile) *models.UserProfile {
	return &models.UserProfile{
		ID:           p.ID,
		UserID:       p.UserID,
		FullName:     p.FullName,
		DateOfBirth:  timePtr(p.DateOfBirth),
		Gender:       stringPtr(p.Gender),
		AddressLine1: stringPtr(p.AddressLine1),
		AddressLine2: stringPtr(p.AddressLine2),
		City:         stringPtr(p.City),
		State:        stringPtr(p.State),
		Pincode:      stringPtr(p.Pincode),
		MobileNumber: stringPtr(p.MobileNumber),
	}
}

func profileToEntity(m *models.UserProfile) *entities.UserProfile {
	return &entities.UserProfile{
		ID:           m.ID,
		UserID:       m.UserID,
		FullName:     m.FullName,
		DateOfBirth:  null.TimeFromPtr(m.DateOfBirth),
		Gender:       null.StringFromPtr(m.Gender),
		AddressLine1: null.StringFromPtr(m.AddressLine1),
		AddressLine2: null.StringFromPtr(m.AddressLine2),
		City:         null.StringFromPtr(m.City),
		State:        null.StringFromPtr(m.State),
		Pincode:      null.StringFromPtr(m.Pincode),
		MobileNumber: null.StringFromPtr(m.MobileNumber),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func stringPtr(s null.String) *string {
	return s.Ptr()
}

func timePtr(t null.Time) *time.Time {
	return t.Ptr()
}
