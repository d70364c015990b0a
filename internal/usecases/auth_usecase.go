package usecases

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"healthplans.backend/internal/domain/entities"
	domainerrors "healthplans.backend/internal/domain/errors"
	"healthplans.backend/internal/domain/repositories"
	"healthplans.backend/pkg/crypto"
	"healthplans.backend/pkg/jwt"
	"healthplans.backend/pkg/logger"
	"healthplans.backend/pkg/redis"
)

// AuthUsecase handles registration, login and token lifecycle
type AuthUsecase struct {
	userRepo    repositories.UserRepository
	profileRepo repositories.UserProfileRepository
	uow         repositories.UnitOfWork
	jwtService  *jwt.Service
	denylist    *redis.TokenDenylist
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(
	userRepo repositories.UserRepository,
	profileRepo repositories.UserProfileRepository,
	uow repositories.UnitOfWork,
	jwtService *jwt.Service,
	denylist *redis.TokenDenylist,
) *AuthUsecase {
	return &AuthUsecase{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		uow:         uow,
		jwtService:  jwtService,
		denylist:    denylist,
	}
}

// Register creates a user and its profile atomically. Either both rows
// persist or neither does.
func (u *AuthUsecase) Register(ctx context.Context, input *entities.RegisterInput) (*entities.User, error) {
	details := map[string]string{}

	email := normalizeEmail(input.Email)
	if !isValidEmail(email) {
		details["email"] = "Invalid email format"
	}
	if len(input.Password) < 8 {
		details["password"] = "Password must be at least 8 characters"
	}
	fullName := strings.TrimSpace(input.FullName)
	if len(fullName) < 2 {
		details["full_name"] = "Full name is required"
	}
	if input.MobileNumber != "" && !isDigits(input.MobileNumber, 10) {
		details["mobile"] = "Mobile number must be 10 digits"
	}
	if len(details) > 0 {
		return nil, domainerrors.Validation(details)
	}

	exists, err := u.userRepo.EmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domainerrors.Conflict("Email already registered")
	}

	passwordHash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: passwordHash,
		IsActive:     true,
	}
	profile := &entities.UserProfile{
		ID:       uuid.New(),
		UserID:   user.ID,
		FullName: fullName,
	}
	if input.MobileNumber != "" {
		profile.MobileNumber.SetValid(input.MobileNumber)
	}

	err = u.uow.Do(ctx, func(ctx context.Context) error {
		if err := u.userRepo.Create(ctx, user); err != nil {
			return err
		}
		return u.profileRepo.Create(ctx, profile)
	})
	if err != nil {
		// The unique index decides races the EmailExists check missed.
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			return nil, domainerrors.Conflict("Email already registered")
		}
		return nil, err
	}

	user.Profile = profile
	return user, nil
}

// Login authenticates a user and issues a token pair. Unknown email,
// deactivated account and wrong password all return the same generic
// error to avoid user enumeration.
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	user, err := u.userRepo.GetByEmail(ctx, normalizeEmail(input.Email))
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, invalidCredentials()
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, invalidCredentials()
	}
	if !crypto.CheckPassword(input.Password, user.PasswordHash) {
		return nil, invalidCredentials()
	}

	tokenPair, err := u.jwtService.GenerateTokenPair(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	if profile, err := u.profileRepo.GetByUserID(ctx, user.ID); err == nil {
		user.Profile = profile
	}

	return &entities.AuthResponse{
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		ExpiresIn:    tokenPair.ExpiresIn,
		User:         user,
	}, nil
}

// Refresh rotates a refresh token: the old token's JTI is denylisted
// and a fresh pair is issued, so a used refresh token cannot be
// replayed.
func (u *AuthUsecase) Refresh(ctx context.Context, refreshToken string) (*jwt.TokenPair, error) {
	claims, err := u.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, invalidToken(err)
	}

	revoked, err := u.denylist.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, invalidToken(domainerrors.ErrTokenRevoked)
	}

	user, err := u.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, invalidToken(domainerrors.ErrNotFound)
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, invalidToken(domainerrors.ErrAccountInactive)
	}

	if err := u.denylist.Revoke(ctx, claims.ID, time.Until(claims.ExpiresAt.Time)); err != nil {
		return nil, err
	}

	return u.jwtService.GenerateTokenPair(user.ID, user.Email)
}

// Logout denylists the supplied refresh token. It is best-effort: the
// session is being abandoned either way, so every failure is swallowed.
func (u *AuthUsecase) Logout(ctx context.Context, refreshToken string) {
	if refreshToken == "" {
		return
	}
	claims, err := u.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		logger.Debug(ctx, "logout with unusable refresh token", zap.Error(err))
		return
	}
	if err := u.denylist.Revoke(ctx, claims.ID, time.Until(claims.ExpiresAt.Time)); err != nil {
		logger.Warn(ctx, "failed to denylist refresh token on logout", zap.Error(err))
	}
}

func invalidCredentials() error {
	return domainerrors.NewAppError(http.StatusUnauthorized, "Invalid email or password", domainerrors.ErrInvalidCredentials)
}

func invalidToken(err error) error {
	return domainerrors.NewAppError(http.StatusUnauthorized, "Invalid or expired refresh token", err)
}
