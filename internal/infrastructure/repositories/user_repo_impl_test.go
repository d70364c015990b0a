package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"healthplans.backend/internal/domain/entities"
	domainerrors "healthplans.backend/internal/domain/errors"
)

func TestUserRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	createUserTables(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := &entities.User{
		ID:           uuid.New(),
		Email:        "alice@mail.com",
		PasswordHash: "hash",
		IsActive:     true,
	}
	require.NoError(t, repo.Create(ctx, u))

	got, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, "alice@mail.com", got.Email)
	require.True(t, got.IsActive)

	got, err = repo.GetByEmail(ctx, "alice@mail.com")
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)

	_, err = repo.GetByEmail(ctx, "nobody@mail.com")
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	createUserTables(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entities.User{
		ID: uuid.New(), Email: "dup@mail.com", PasswordHash: "hash", IsActive: true,
	}))

	err := repo.Create(ctx, &entities.User{
		ID: uuid.New(), Email: "dup@mail.com", PasswordHash: "hash2", IsActive: true,
	})
	require.ErrorIs(t, err, domainerrors.ErrAlreadyExists)
}

func TestUserRepository_EmailExists(t *testing.T) {
	db := newTestDB(t)
	createUserTables(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	exists, err := repo.EmailExists(ctx, "alice@mail.com")
	require.NoError(t, err)
	require.False(t, exists)

	require.NoError(t, repo.Create(ctx, &entities.User{
		ID: uuid.New(), Email: "alice@mail.com", PasswordHash: "hash", IsActive: true,
	}))

	exists, err = repo.EmailExists(ctx, "alice@mail.com")
	require.NoError(t, err)
	require.True(t, exists)
}

func TestUserRepository_Deactivate(t *testing.T) {
	db := newTestDB(t)
	createUserTables(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := &entities.User{ID: uuid.New(), Email: "alice@mail.com", PasswordHash: "hash", IsActive: true}
	require.NoError(t, repo.Create(ctx, u))

	require.NoError(t, repo.Deactivate(ctx, u.ID))
	got, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	require.False(t, got.IsActive)

	require.ErrorIs(t, repo.Deactivate(ctx, uuid.New()), domainerrors.ErrNotFound)
}

func TestUserProfileRepository_CreateGetUpdate(t *testing.T) {
	db := newTestDB(t)
	createUserTables(t, db)
	userRepo := NewUserRepository(db)
	repo := NewUserProfileRepository(db)
	ctx := context.Background()

	u := &entities.User{ID: uuid.New(), Email: "alice@mail.com", PasswordHash: "hash", IsActive: true}
	require.NoError(t, userRepo.Create(ctx, u))

	p := &entities.UserProfile{ID: uuid.New(), UserID: u.ID, FullName: "Alice"}
	p.MobileNumber.SetValid("9876543210")
	require.NoError(t, repo.Create(ctx, p))

	got, err := repo.GetByUserID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, "Alice", got.FullName)
	require.Equal(t, "9876543210", got.MobileNumber.String)
	require.False(t, got.City.Valid)

	got.FullName = "Alice B"
	got.City.SetValid("Mumbai")
	dob := time.Date(1990, 12, 31, 0, 0, 0, 0, time.UTC)
	got.DateOfBirth.SetValid(dob)
	require.NoError(t, repo.Update(ctx, got))

	got, err = repo.GetByUserID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, "Alice B", got.FullName)
	require.Equal(t, "Mumbai", got.City.String)
	require.True(t, got.DateOfBirth.Valid)
	require.Equal(t, "1990-12-31", got.DateOfBirth.Time.Format("2006-01-02"))

	_, err = repo.GetByUserID(ctx, uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestUserProfileRepository_OneProfilePerUser(t *testing.T) {
	db := newTestDB(t)
	createUserTables(t, db)
	repo := NewUserProfileRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	require.NoError(t, repo.Create(ctx, &entities.UserProfile{ID: uuid.New(), UserID: userID, FullName: "First"}))

	err := repo.Create(ctx, &entities.UserProfile{ID: uuid.New(), UserID: userID, FullName: "Second"})
	require.ErrorIs(t, err, domainerrors.ErrAlreadyExists)
}
