package repositories

import (
	"context"

	"github.com/google/uuid"
	"healthplans.backend/internal/domain/entities"
)

// PlanCategoryRepository defines plan category data operations
type PlanCategoryRepository interface {
	Create(ctx context.Context, category *entities.PlanCategory) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.PlanCategory, error)
	List(ctx context.Context, activeOnly bool) ([]*entities.PlanCategory, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
}

// HealthPlanRepository defines health plan data operations
type HealthPlanRepository interface {
	Create(ctx context.Context, plan *entities.HealthPlan) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.HealthPlan, error)
	List(ctx context.Context, activeOnly bool, limit, offset int) ([]*entities.HealthPlan, error)
	ListByCategory(ctx context.Context, categoryID uuid.UUID, activeOnly bool) ([]*entities.HealthPlan, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
}
