package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"healthplans.backend/internal/domain/entities"
	domainerrors "healthplans.backend/internal/domain/errors"
	"healthplans.backend/internal/domain/repositories"
)

// CartUsecase handles the shopping cart: one active cart per user,
// one item per (cart, plan) pair.
type CartUsecase struct {
	cartRepo repositories.CartRepository
	itemRepo repositories.CartItemRepository
	planRepo repositories.HealthPlanRepository
}

// NewCartUsecase creates a new cart usecase
func NewCartUsecase(
	cartRepo repositories.CartRepository,
	itemRepo repositories.CartItemRepository,
	planRepo repositories.HealthPlanRepository,
) *CartUsecase {
	return &CartUsecase{
		cartRepo: cartRepo,
		itemRepo: itemRepo,
		planRepo: planRepo,
	}
}

// GetCart returns the user's active cart, lazily creating one
func (u *CartUsecase) GetCart(ctx context.Context, userID uuid.UUID) (*entities.CartView, error) {
	cart, err := u.getOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	return u.buildView(ctx, cart)
}

// AddItem adds a plan to the cart. If an item for the plan already
// exists the quantities are summed and the billing cycle takes the new
// value instead of inserting a duplicate row.
func (u *CartUsecase) AddItem(ctx context.Context, userID uuid.UUID, input *entities.AddItemInput) (*entities.CartView, error) {
	quantity := input.Quantity
	if quantity == 0 {
		quantity = 1
	}
	cycle := entities.BillingCycle(input.BillingCycle)
	if cycle == "" {
		cycle = entities.BillingMonthly
	}

	plan, err := u.planRepo.GetByID(ctx, input.PlanID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("Plan not found")
		}
		return nil, err
	}
	if !plan.IsActive {
		return nil, domainerrors.BadRequest("Plan is not available")
	}
	if quantity < 1 {
		return nil, domainerrors.BadRequest("Quantity must be at least 1")
	}
	if !cycle.IsValid() {
		return nil, domainerrors.BadRequest("Invalid billing cycle")
	}

	cart, err := u.getOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	existing, err := u.itemRepo.GetByCartAndPlan(ctx, cart.ID, plan.ID)
	switch {
	case err == nil:
		existing.Quantity += quantity
		existing.BillingCycle = cycle
		if err := u.itemRepo.Update(ctx, existing); err != nil {
			return nil, err
		}
	case errors.Is(err, domainerrors.ErrNotFound):
		item := &entities.CartItem{
			ID:           uuid.New(),
			CartID:       cart.ID,
			PlanID:       plan.ID,
			Quantity:     quantity,
			BillingCycle: cycle,
		}
		if err := u.itemRepo.Create(ctx, item); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	return u.buildView(ctx, cart)
}

// UpdateItem partially updates an item in the caller's active cart.
// Items in other users' carts are indistinguishable from absent ones.
func (u *CartUsecase) UpdateItem(ctx context.Context, userID, itemID uuid.UUID, input *entities.UpdateItemInput) (*entities.CartView, error) {
	cart, item, err := u.ownedItem(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}

	if input.Quantity != nil {
		if *input.Quantity < 1 {
			return nil, domainerrors.BadRequest("Quantity must be at least 1")
		}
		item.Quantity = *input.Quantity
	}
	if input.BillingCycle != nil {
		cycle := entities.BillingCycle(*input.BillingCycle)
		if !cycle.IsValid() {
			return nil, domainerrors.BadRequest("Invalid billing cycle")
		}
		item.BillingCycle = cycle
	}

	if input.Quantity != nil || input.BillingCycle != nil {
		if err := u.itemRepo.Update(ctx, item); err != nil {
			return nil, err
		}
	}

	return u.buildView(ctx, cart)
}

// RemoveItem hard-deletes an item from the caller's active cart
func (u *CartUsecase) RemoveItem(ctx context.Context, userID, itemID uuid.UUID) (*entities.CartView, error) {
	cart, item, err := u.ownedItem(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}

	if err := u.itemRepo.Delete(ctx, item.ID); err != nil {
		return nil, err
	}

	return u.buildView(ctx, cart)
}

// ClearCart removes every item; the cart itself stays active
func (u *CartUsecase) ClearCart(ctx context.Context, userID uuid.UUID) (*entities.CartView, error) {
	cart, err := u.cartRepo.GetActiveByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("Cart not found")
		}
		return nil, err
	}

	if err := u.cartRepo.ClearItems(ctx, cart.ID); err != nil {
		return nil, err
	}

	return u.buildView(ctx, cart)
}

func (u *CartUsecase) getOrCreate(ctx context.Context, userID uuid.UUID) (*entities.Cart, error) {
	cart, err := u.cartRepo.GetActiveByUser(ctx, userID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	cart = &entities.Cart{
		ID:       uuid.New(),
		UserID:   userID,
		IsActive: true,
	}
	if err := u.cartRepo.Create(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// ownedItem resolves an item and enforces that it belongs to the
// caller's active cart. Both "no such item" and "someone else's item"
// come back as the same NotFound.
func (u *CartUsecase) ownedItem(ctx context.Context, userID, itemID uuid.UUID) (*entities.Cart, *entities.CartItem, error) {
	cart, err := u.cartRepo.GetActiveByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, nil, domainerrors.NotFound("Cart not found")
		}
		return nil, nil, err
	}

	item, err := u.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, nil, domainerrors.NotFound("Item not found in cart")
		}
		return nil, nil, err
	}
	if item.CartID != cart.ID {
		return nil, nil, domainerrors.NotFound("Item not found in cart")
	}

	return cart, item, nil
}

// buildView prices every item against the plan's current premium, so
// the total always reflects price changes made after the item was
// added.
func (u *CartUsecase) buildView(ctx context.Context, cart *entities.Cart) (*entities.CartView, error) {
	items, err := u.itemRepo.ListByCart(ctx, cart.ID)
	if err != nil {
		return nil, err
	}

	view := &entities.CartView{
		ID:        cart.ID,
		UserID:    cart.UserID,
		Items:     make([]*entities.CartItemView, 0, len(items)),
		ItemCount: len(items),
	}

	for _, item := range items {
		plan, err := u.planRepo.GetByID(ctx, item.PlanID)
		if err != nil {
			return nil, err
		}

		price := plan.PremiumMonthly
		if item.BillingCycle == entities.BillingYearly {
			price = plan.PremiumYearly
		}
		subtotal := price * float64(item.Quantity)

		view.Items = append(view.Items, &entities.CartItemView{
			ID:           item.ID,
			PlanID:       item.PlanID,
			PlanName:     plan.Name,
			Quantity:     item.Quantity,
			BillingCycle: item.BillingCycle,
			Price:        price,
			Subtotal:     subtotal,
		})
		view.Total += subtotal
	}

	return view, nil
}
