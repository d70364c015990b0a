package repositories

import (
	"context"

	"github.com/google/uuid"
	"healthplans.backend/internal/domain/entities"
)

// UserRepository defines user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
}

// UserProfileRepository defines profile data operations
type UserProfileRepository interface {
	Create(ctx context.Context, profile *entities.UserProfile) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.UserProfile, error)
	Update(ctx context.Context, profile *entities.UserProfile) error
}
