package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"healthplans.backend/internal/domain/entities"
	domainerrors "healthplans.backend/internal/domain/errors"
)

func seedCategory(t *testing.T, repo *PlanCategoryRepository, name string, active bool) *entities.PlanCategory {
	t.Helper()
	c := &entities.PlanCategory{ID: uuid.New(), Name: name, IsActive: active}
	require.NoError(t, repo.Create(context.Background(), c))
	return c
}

func seedPlan(t *testing.T, repo *HealthPlanRepository, categoryID uuid.UUID, name string, active bool) *entities.HealthPlan {
	t.Helper()
	p := &entities.HealthPlan{
		ID:             uuid.New(),
		CategoryID:     categoryID,
		Name:           name,
		CoverageAmount: 500000,
		PremiumMonthly: 1000,
		PremiumYearly:  10000,
		IsActive:       active,
	}
	require.NoError(t, repo.Create(context.Background(), p))
	return p
}

func TestPlanCategoryRepository_CreateGetList(t *testing.T) {
	db := newTestDB(t)
	createCatalogTables(t, db)
	repo := NewPlanCategoryRepository(db)
	ctx := context.Background()

	family := seedCategory(t, repo, "Family", true)
	seedCategory(t, repo, "Individual", true)
	seedCategory(t, repo, "Retired", false)

	got, err := repo.GetByID(ctx, family.ID)
	require.NoError(t, err)
	require.Equal(t, "Family", got.Name)

	_, err = repo.GetByID(ctx, uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	active, err := repo.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, active, 2)

	all, err := repo.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, all, 3)
	// Sorted by name.
	require.Equal(t, "Family", all[0].Name)
	require.Equal(t, "Individual", all[1].Name)
	require.Equal(t, "Retired", all[2].Name)
}

func TestPlanCategoryRepository_CreatePersistsInactive(t *testing.T) {
	db := newTestDB(t)
	createCatalogTables(t, db)
	repo := NewPlanCategoryRepository(db)
	ctx := context.Background()

	// A false IsActive must reach the row, not be swallowed as a
	// zero value on insert.
	c := seedCategory(t, repo, "Retired", false)

	got, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	require.False(t, got.IsActive)

	active, err := repo.List(ctx, true)
	require.NoError(t, err)
	require.Empty(t, active)
}

func TestPlanCategoryRepository_DuplicateName(t *testing.T) {
	db := newTestDB(t)
	createCatalogTables(t, db)
	repo := NewPlanCategoryRepository(db)

	seedCategory(t, repo, "Family", true)
	err := repo.Create(context.Background(), &entities.PlanCategory{ID: uuid.New(), Name: "Family", IsActive: true})
	require.ErrorIs(t, err, domainerrors.ErrAlreadyExists)
}

func TestPlanCategoryRepository_Deactivate(t *testing.T) {
	db := newTestDB(t)
	createCatalogTables(t, db)
	repo := NewPlanCategoryRepository(db)
	ctx := context.Background()

	c := seedCategory(t, repo, "Family", true)
	require.NoError(t, repo.Deactivate(ctx, c.ID))

	got, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	require.False(t, got.IsActive)

	require.ErrorIs(t, repo.Deactivate(ctx, uuid.New()), domainerrors.ErrNotFound)
}

func TestHealthPlanRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	createCatalogTables(t, db)
	categoryRepo := NewPlanCategoryRepository(db)
	repo := NewHealthPlanRepository(db)
	ctx := context.Background()

	c := seedCategory(t, categoryRepo, "Family", true)
	p := &entities.HealthPlan{
		ID:             uuid.New(),
		CategoryID:     c.ID,
		Name:           "Silver Shield",
		CoverageAmount: 500000,
		PremiumMonthly: 1200,
		PremiumYearly:  12000,
		IsActive:       true,
	}
	p.Features.SetValid(`{"cashless": true}`)
	require.NoError(t, repo.Create(ctx, p))

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, "Silver Shield", got.Name)
	require.Equal(t, float64(1200), got.PremiumMonthly)
	require.Equal(t, `{"cashless": true}`, got.Features.String)
	require.False(t, got.Description.Valid)

	_, err = repo.GetByID(ctx, uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestHealthPlanRepository_CreatePersistsInactive(t *testing.T) {
	db := newTestDB(t)
	createCatalogTables(t, db)
	categoryRepo := NewPlanCategoryRepository(db)
	repo := NewHealthPlanRepository(db)
	ctx := context.Background()

	c := seedCategory(t, categoryRepo, "Family", true)
	p := seedPlan(t, repo, c.ID, "Retired Plan", false)

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.False(t, got.IsActive)

	active, err := repo.List(ctx, true, 0, 0)
	require.NoError(t, err)
	require.Empty(t, active)
}

func TestHealthPlanRepository_ListFiltersAndPaginates(t *testing.T) {
	db := newTestDB(t)
	createCatalogTables(t, db)
	categoryRepo := NewPlanCategoryRepository(db)
	repo := NewHealthPlanRepository(db)
	ctx := context.Background()

	c := seedCategory(t, categoryRepo, "Family", true)
	for i := 0; i < 5; i++ {
		seedPlan(t, repo, c.ID, "Plan", true)
	}
	seedPlan(t, repo, c.ID, "Retired Plan", false)

	active, err := repo.List(ctx, true, 0, 0)
	require.NoError(t, err)
	require.Len(t, active, 5)

	all, err := repo.List(ctx, false, 0, 0)
	require.NoError(t, err)
	require.Len(t, all, 6)

	page, err := repo.List(ctx, true, 2, 0)
	require.NoError(t, err)
	require.Len(t, page, 2)

	lastPage, err := repo.List(ctx, true, 2, 4)
	require.NoError(t, err)
	require.Len(t, lastPage, 1)
}

func TestHealthPlanRepository_ListByCategory(t *testing.T) {
	db := newTestDB(t)
	createCatalogTables(t, db)
	categoryRepo := NewPlanCategoryRepository(db)
	repo := NewHealthPlanRepository(db)
	ctx := context.Background()

	family := seedCategory(t, categoryRepo, "Family", true)
	individual := seedCategory(t, categoryRepo, "Individual", true)

	seedPlan(t, repo, family.ID, "Family Gold", true)
	seedPlan(t, repo, family.ID, "Family Old", false)
	seedPlan(t, repo, individual.ID, "Solo Silver", true)

	plans, err := repo.ListByCategory(ctx, family.ID, true)
	require.NoError(t, err)
	require.Len(t, plans, 1)
	require.Equal(t, "Family Gold", plans[0].Name)

	plans, err = repo.ListByCategory(ctx, family.ID, false)
	require.NoError(t, err)
	require.Len(t, plans, 2)
}

func TestHealthPlanRepository_Deactivate(t *testing.T) {
	db := newTestDB(t)
	createCatalogTables(t, db)
	categoryRepo := NewPlanCategoryRepository(db)
	repo := NewHealthPlanRepository(db)
	ctx := context.Background()

	c := seedCategory(t, categoryRepo, "Family", true)
	p := seedPlan(t, repo, c.ID, "Silver Shield", true)

	require.NoError(t, repo.Deactivate(ctx, p.ID))
	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.False(t, got.IsActive)

	require.ErrorIs(t, repo.Deactivate(ctx, uuid.New()), domainerrors.ErrNotFound)
}
