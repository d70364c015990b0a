package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"healthplans.backend/internal/domain/entities"
	domainerrors "healthplans.backend/internal/domain/errors"
	"healthplans.backend/internal/infrastructure/models"
)

// CartRepository implements cart data operations
type CartRepository struct {
	db *gorm.DB
}

// NewCartRepository creates a new cart repository
func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{db: db}
}

// Create creates a new cart
func (r *CartRepository) Create(ctx context.Context, cart *entities.Cart) error {
	m := &models.Cart{
		ID:       cart.ID,
		UserID:   cart.UserID,
		IsActive: cart.IsActive,
	}
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	cart.CreatedAt = m.CreatedAt
	cart.UpdatedAt = m.UpdatedAt
	return nil
}

// GetActiveByUser gets the user's single active cart
func (r *CartRepository) GetActiveByUser(ctx context.Context, userID uuid.UUID) (*entities.Cart, error) {
	var m models.Cart
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("user_id = ? AND is_active = ?", userID, true).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return cartToEntity(&m), nil
}

// Deactivate clears the active flag; items are left in place
func (r *CartRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Cart{}).Where("id = ?", id).Updates(map[string]interface{}{
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

// ClearItems hard-deletes every item in the cart
func (r *CartRepository) ClearItems(ctx context.Context, cartID uuid.UUID) error {
	return GetDB(ctx, r.db).WithContext(ctx).Where("cart_id = ?", cartID).Delete(&models.CartItem{}).Error
}

func cartToEntity(m *models.Cart) *entities.Cart {
	return &entities.Cart{
		ID:        m.ID,
		UserID:    m.UserID,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// CartItemRepository implements cart item data operations
type CartItemRepository struct {
	db *gorm.DB
}

// NewCartItemRepository creates a new cart item repository
func NewCartItemRepository(db *gorm.DB) *CartItemRepository {
	return &CartItemRepository{db: db}
}

// Create creates a new cart item
func (r *CartItemRepository) Create(ctx context.Context, item *entities.CartItem) error {
	m := &models.CartItem{
		ID:           item.ID,
		CartID:       item.CartID,
		PlanID:       item.PlanID,
		Quantity:     item.Quantity,
		BillingCycle: string(item.BillingCycle),
	}
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	item.CreatedAt = m.CreatedAt
	return nil
}

// GetByID gets a cart item by ID
func (r *CartItemRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.CartItem, error) {
	var m models.CartItem
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return cartItemToEntity(&m), nil
}

// GetByCartAndPlan gets the single item for a (cart, plan) pair
func (r *CartItemRepository) GetByCartAndPlan(ctx context.Context, cartID, planID uuid.UUID) (*entities.CartItem, error) {
	var m models.CartItem
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("cart_id = ? AND plan_id = ?", cartID, planID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return cartItemToEntity(&m), nil
}

// ListByCart lists all items in a cart
func (r *CartItemRepository) ListByCart(ctx context.Context, cartID uuid.UUID) ([]*entities.CartItem, error) {
	var rows []models.CartItem
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("cart_id = ?", cartID).Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.CartItem, 0, len(rows))
	for i := range rows {
		items = append(items, cartItemToEntity(&rows[i]))
	}
	return items, nil
}

// Update persists quantity and billing cycle
func (r *CartItemRepository) Update(ctx context.Context, item *entities.CartItem) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.CartItem{}).Where("id = ?", item.ID).Updates(map[string]interface{}{
		"quantity":      item.Quantity,
		"billing_cycle": string(item.BillingCycle),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Delete hard-deletes the item row
func (r *CartItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).Delete(&models.CartItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func cartItemToEntity(m *models.CartItem) *entities.CartItem {
	return &entities.CartItem{
		ID:           m.ID,
		CartID:       m.CartID,
		PlanID:       m.PlanID,
		Quantity:     m.Quantity,
		BillingCycle: entities.BillingCycle(m.BillingCycle),
		CreatedAt:    m.CreatedAt,
	}
}
