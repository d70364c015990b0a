package usecases

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"healthplans.backend/internal/domain/entities"
	domainerrors "healthplans.backend/internal/domain/errors"
	"healthplans.backend/internal/domain/repositories"
)

// ProfileUsecase handles reading and partially updating user profiles
type ProfileUsecase struct {
	userRepo    repositories.UserRepository
	profileRepo repositories.UserProfileRepository
}

// NewProfileUsecase creates a new profile usecase
func NewProfileUsecase(userRepo repositories.UserRepository, profileRepo repositories.UserProfileRepository) *ProfileUsecase {
	return &ProfileUsecase{
		userRepo:    userRepo,
		profileRepo: profileRepo,
	}
}

// Get returns the user with its profile attached
func (u *ProfileUsecase) Get(ctx context.Context, userID uuid.UUID) (*entities.User, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			return nil, domainerrors.NotFound("User not found")
		}
		return nil, err
	}

	profile, err := u.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			return nil, domainerrors.NotFound("Profile not found")
		}
		return nil, err
	}

	user.Profile = profile
	return user, nil
}

// Update applies the supplied fields to the profile. Only whitelisted
// fields are mutable; each present field is validated on its own and
// absent fields keep their current value.
func (u *ProfileUsecase) Update(ctx context.Context, userID uuid.UUID, input *entities.UpdateProfileInput) (*entities.User, error) {
	profile, err := u.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			return nil, domainerrors.NotFound("Profile not found")
		}
		return nil, err
	}

	details := map[string]string{}

	if input.FullName != nil {
		name := strings.TrimSpace(*input.FullName)
		if len(name) < 2 {
			details["full_name"] = "Full name is required"
		} else {
			profile.FullName = name
		}
	}
	if input.DateOfBirth != nil {
		if *input.DateOfBirth == "" {
			profile.DateOfBirth.Valid = false
		} else if dob, err := parseDate(*input.DateOfBirth); err != nil {
			details["date_of_birth"] = "Date of birth must be YYYY-MM-DD"
		} else {
			profile.DateOfBirth.SetValid(dob)
		}
	}
	if input.Gender != nil {
		if !entities.Gender(*input.Gender).IsValid() {
			details["gender"] = "Gender must be Male, Female or Other"
		} else {
			profile.Gender.SetValid(*input.Gender)
		}
	}
	if input.AddressLine1 != nil {
		profile.AddressLine1.SetValid(*input.AddressLine1)
	}
	if input.AddressLine2 != nil {
		profile.AddressLine2.SetValid(*input.AddressLine2)
	}
	if input.City != nil {
		profile.City.SetValid(*input.City)
	}
	if input.State != nil {
		profile.State.SetValid(*input.State)
	}
	if input.Pincode != nil {
		if *input.Pincode != "" && !isDigits(*input.Pincode, 6) {
			details["pincode"] = "Pincode must be 6 digits"
		} else {
			profile.Pincode.SetValid(*input.Pincode)
		}
	}
	if input.MobileNumber != nil {
		if *input.MobileNumber != "" && !isDigits(*input.MobileNumber, 10) {
			details["mobile_number"] = "Mobile number must be 10 digits"
		} else {
			profile.MobileNumber.SetValid(*input.MobileNumber)
		}
	}

	if len(details) > 0 {
		return nil, domainerrors.Validation(details)
	}

	if err := u.profileRepo.Update(ctx, profile); err != nil {
		return nil, err
	}

	return u.Get(ctx, userID)
}
