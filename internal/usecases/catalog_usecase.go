package usecases

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"healthplans.backend/internal/domain/entities"
	domainerrors "healthplans.backend/internal/domain/errors"
	"healthplans.backend/internal/domain/repositories"
	"healthplans.backend/pkg/utils"
)

// CatalogUsecase handles plan categories and health plans
type CatalogUsecase struct {
	categoryRepo repositories.PlanCategoryRepository
	planRepo     repositories.HealthPlanRepository
}

// NewCatalogUsecase creates a new catalog usecase
func NewCatalogUsecase(categoryRepo repositories.PlanCategoryRepository, planRepo repositories.HealthPlanRepository) *CatalogUsecase {
	return &CatalogUsecase{
		categoryRepo: categoryRepo,
		planRepo:     planRepo,
	}
}

// ListCategories lists categories, active only by default
func (u *CatalogUsecase) ListCategories(ctx context.Context, activeOnly bool) ([]*entities.PlanCategory, error) {
	return u.categoryRepo.List(ctx, activeOnly)
}

// GetCategory gets a category by ID
func (u *CatalogUsecase) GetCategory(ctx context.Context, id uuid.UUID) (*entities.PlanCategory, error) {
	category, err := u.categoryRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("Category not found")
		}
		return nil, err
	}
	return category, nil
}

// CreateCategory creates a new category
func (u *CatalogUsecase) CreateCategory(ctx context.Context, input *entities.CreateCategoryInput) (*entities.PlanCategory, error) {
	name := strings.TrimSpace(input.Name)
	if len(name) < 2 {
		return nil, domainerrors.Validation(map[string]string{"name": "Category name is required"})
	}

	category := &entities.PlanCategory{
		ID:       uuid.New(),
		Name:     name,
		IsActive: true,
	}
	if input.Description != "" {
		category.Description.SetValid(input.Description)
	}

	if err := u.categoryRepo.Create(ctx, category); err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			return nil, domainerrors.Conflict("Category name already exists")
		}
		return nil, err
	}
	return category, nil
}

// ListPlans lists active plans with pagination
func (u *CatalogUsecase) ListPlans(ctx context.Context, activeOnly bool, p utils.PaginationParams) ([]*entities.HealthPlan, error) {
	return u.planRepo.List(ctx, activeOnly, p.Limit, p.CalculateOffset())
}

// GetPlan gets a plan by ID
func (u *CatalogUsecase) GetPlan(ctx context.Context, id uuid.UUID) (*entities.HealthPlan, error) {
	plan, err := u.planRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("Plan not found")
		}
		return nil, err
	}
	return plan, nil
}

// ListPlansByCategory returns a category together with its active plans
func (u *CatalogUsecase) ListPlansByCategory(ctx context.Context, categoryID uuid.UUID) (*entities.CategoryPlans, error) {
	category, err := u.GetCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	plans, err := u.planRepo.ListByCategory(ctx, categoryID, true)
	if err != nil {
		return nil, err
	}

	return &entities.CategoryPlans{
		Category: category,
		Plans:    plans,
	}, nil
}

// CreatePlan creates a new health plan
func (u *CatalogUsecase) CreatePlan(ctx context.Context, input *entities.CreatePlanInput) (*entities.HealthPlan, error) {
	details := map[string]string{}
	if strings.TrimSpace(input.Name) == "" {
		details["name"] = "Plan name is required"
	}
	if input.CoverageAmount <= 0 {
		details["coverage_amount"] = "Coverage amount must be positive"
	}
	if input.PremiumMonthly <= 0 {
		details["premium_monthly"] = "Premium must be positive"
	}
	if input.PremiumYearly <= 0 {
		details["premium_yearly"] = "Premium must be positive"
	}
	if len(details) > 0 {
		return nil, domainerrors.Validation(details)
	}

	if _, err := u.GetCategory(ctx, input.CategoryID); err != nil {
		return nil, err
	}

	plan := &entities.HealthPlan{
		ID:             uuid.New(),
		CategoryID:     input.CategoryID,
		Name:           strings.TrimSpace(input.Name),
		CoverageAmount: input.CoverageAmount,
		PremiumMonthly: input.PremiumMonthly,
		PremiumYearly:  input.PremiumYearly,
		IsActive:       true,
	}
	if input.Description != "" {
		plan.Description.SetValid(input.Description)
	}
	if input.Features != "" {
		plan.Features.SetValid(input.Features)
	}

	if err := u.planRepo.Create(ctx, plan); err != nil {
		return nil, err
	}
	return plan, nil
}
