package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"healthplans.backend/internal/domain/entities"
	domainerrors "healthplans.backend/internal/domain/errors"
	"healthplans.backend/internal/interfaces/http/response"
	"healthplans.backend/internal/usecases"
	"healthplans.backend/pkg/utils"
)

// CatalogHandler handles plan category and health plan endpoints
type CatalogHandler struct {
	catalogUsecase *usecases.CatalogUsecase
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogUsecase *usecases.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{
		catalogUsecase: catalogUsecase,
	}
}

// ListCategories lists active categories
// GET /api/v1/catalog/categories
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.catalogUsecase.ListCategories(c.Request.Context(), true)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"categories": categories})
}

// GetCategory gets one category
// GET /api/v1/catalog/categories/:id
func (h *CatalogHandler) GetCategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.NotFound("Category not found"))
		return
	}

	category, err := h.catalogUsecase.GetCategory(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"category": category})
}

// CreateCategory creates a category
// POST /api/v1/catalog/categories
func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var input entities.CreateCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	category, err := h.catalogUsecase.CreateCategory(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message":  "Category created",
		"category": category,
	})
}

// ListPlans lists active plans with optional pagination
// GET /api/v1/catalog/plans?page=&limit=
func (h *CatalogHandler) ListPlans(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	params := utils.GetPaginationParams(page, limit)

	plans, err := h.catalogUsecase.ListPlans(c.Request.Context(), true, params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"plans": plans})
}

// GetPlan gets one plan
// GET /api/v1/catalog/plans/:id
func (h *CatalogHandler) GetPlan(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.NotFound("Plan not found"))
		return
	}

	plan, err := h.catalogUsecase.GetPlan(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"plan": plan})
}

// ListPlansByCategory lists the active plans of one category
// GET /api/v1/catalog/categories/:id/plans
func (h *CatalogHandler) ListPlansByCategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.NotFound("Category not found"))
		return
	}

	result, err := h.catalogUsecase.ListPlansByCategory(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// CreatePlan creates a health plan
// POST /api/v1/catalog/plans
func (h *CatalogHandler) CreatePlan(c *gin.Context) {
	var input entities.CreatePlanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	plan, err := h.catalogUsecase.CreatePlan(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message": "Plan created",
		"plan":    plan,
	})
}
