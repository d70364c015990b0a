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

// PlanCategoryRepository implements plan category data operations
type PlanCategoryRepository struct {
	db *gorm.DB
}

// NewPlanCategoryRepository creates a new plan category repository
func NewPlanCategoryRepository(db *gorm.DB) *PlanCategoryRepository {
	return &PlanCategoryRepository{db: db}
}

// Create creates a new category. Name uniqueness is backed by the DB
// index; a violation maps to ErrAlreadyExists.
func (r *PlanCategoryRepository) Create(ctx context.Context, category *entities.PlanCategory) error {
	m := &models.PlanCategory{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description.Ptr(),
		IsActive:    category.IsActive,
	}
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}
	category.CreatedAt = m.CreatedAt
	return nil
}

// GetByID gets a category by ID
func (r *PlanCategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.PlanCategory, error) {
	var m models.PlanCategory
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return categoryToEntity(&m), nil
}

// List lists categories, optionally active only
func (r *PlanCategoryRepository) List(ctx context.Context, activeOnly bool) ([]*entities.PlanCategory, error) {
	var rows []models.PlanCategory
	query := GetDB(ctx, r.db).WithContext(ctx).Order("name ASC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	categories := make([]*entities.PlanCategory, 0, len(rows))
	for i := range rows {
		categories = append(categories, categoryToEntity(&rows[i]))
	}
	return categories, nil
}

// Deactivate clears the active flag
func (r *PlanCategoryRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.PlanCategory{}).Where("id = ?", id).Update("is_active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func categoryToEntity(m *models.PlanCategory) *entities.PlanCategory {
	return &entities.PlanCategory{
		ID:          m.ID,
		Name:        m.Name,
		Description: null.StringFromPtr(m.Description),
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
	}
}

// HealthPlanRepository implements health plan data operations
type HealthPlanRepository struct {
	db *gorm.DB
}

// NewHealthPlanRepository creates a new health plan repository
func NewHealthPlanRepository(db *gorm.DB) *HealthPlanRepository {
	return &HealthPlanRepository{db: db}
}

// Create creates a new plan
func (r *HealthPlanRepository) Create(ctx context.Context, plan *entities.HealthPlan) error {
	m := &models.HealthPlan{
		ID:             plan.ID,
		CategoryID:     plan.CategoryID,
		Name:           plan.Name,
		Description:    plan.Description.Ptr(),
		CoverageAmount: plan.CoverageAmount,
		PremiumMonthly: plan.PremiumMonthly,
		PremiumYearly:  plan.PremiumYearly,
		Features:       plan.Features.Ptr(),
		IsActive:       plan.IsActive,
	}
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	plan.CreatedAt = m.CreatedAt
	plan.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets a plan by ID
func (r *HealthPlanRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.HealthPlan, error) {
	var m models.HealthPlan
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return planToEntity(&m), nil
}

// List lists plans with limit/offset pagination
func (r *HealthPlanRepository) List(ctx context.Context, activeOnly bool, limit, offset int) ([]*entities.HealthPlan, error) {
	var rows []models.HealthPlan
	query := GetDB(ctx, r.db).WithContext(ctx).Order("created_at DESC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	plans := make([]*entities.HealthPlan, 0, len(rows))
	for i := range rows {
		plans = append(plans, planToEntity(&rows[i]))
	}
	return plans, nil
}

// ListByCategory lists plans belonging to a category
func (r *HealthPlanRepository) ListByCategory(ctx context.Context, categoryID uuid.UUID, activeOnly bool) ([]*entities.HealthPlan, error) {
	var rows []models.HealthPlan
	query := GetDB(ctx, r.db).WithContext(ctx).Where("category_id = ?", categoryID).Order("created_at DESC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	plans := make([]*entities.HealthPlan, 0, len(rows))
	for i := range rows {
		plans = append(plans, planToEntity(&rows[i]))
	}
	return plans, nil
}

// Deactivate clears the active flag
func (r *HealthPlanRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.HealthPlan{}).Where("id = ?", id).Updates(map[string]interface{}{
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

func planToEntity(m *models.HealthPlan) *entities.HealthPlan {
	return &entities.HealthPlan{
		ID:             m.ID,
		CategoryID:     m.CategoryID,
		Name:           m.Name,
		Description:    null.StringFromPtr(m.Description),
		CoverageAmount: m.CoverageAmount,
		PremiumMonthly: m.PremiumMonthly,
		PremiumYearly:  m.PremiumYearly,
		Features:       null.StringFromPtr(m.Features),
		IsActive:       m.IsActive,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}
