package repositories

import (
	"context"

	"github.com/google/uuid"
	"healthplans.backend/internal/domain/entities"
)

// CartRepository defines cart data operations
type CartRepository interface {
	Create(ctx context.Context, cart *entities.Cart) error
	GetActiveByUser(ctx context.Context, userID uuid.UUID) (*entities.Cart, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
	ClearItems(ctx context.Context, cartID uuid.UUID) error
}

// CartItemRepository defines cart item data operations. Items are
// hard-deleted on removal, unlike the soft-deleted aggregate rows.
type CartItemRepository interface {
	Create(ctx context.Context, item *entities.CartItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.CartItem, error)
	GetByCartAndPlan(ctx context.Context, cartID, planID uuid.UUID) (*entities.CartItem, error)
	ListByCart(ctx context.Context, cartID uuid.UUID) ([]*entities.CartItem, error)
	Update(ctx context.Context, item *entities.CartItem) error
	Delete(ctx context.Context, id uuid.UUID) error
}
