package commands

import (
	"context"
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"
)

// ErrActiveOrderExists signals the customer's previous order is not yet
// delivered. Surfaced to callers as a conflict.
var ErrActiveOrderExists = errs.NewConflictError("your last order must be completed")

// CreateOrderCommandHandler handles order placement. It snapshots meal prices
// into line items, computes the total, and persists the order with its items
// atomically in one transaction.
//
// The one-active-order-per-customer rule is enforced twice: a pre-check inside
// the transaction for a friendly error, and a partial unique index in the
// store that settles concurrent creation races.
type CreateOrderCommandHandler struct {
	uowFactory CreateOrderUoWFactory
	now        func() time.Time
}

// NewCreateOrderCommandHandler creates a handler for order placement.
func NewCreateOrderCommandHandler(uowFactory CreateOrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle processes the order creation command.
// Returns ErrActiveOrderExists if the customer already has a non-delivered
// order, and errs.ErrObjectNotFound if any requested meal is not on the
// restaurant's menu.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	_, err := orderRepo.GetActiveByCustomer(ctx, cmd.CustomerID())
	if err == nil {
		return ErrActiveOrderExists
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	items, err := h.buildLineItems(ctx, uow, cmd)
	if err != nil {
		return err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.CustomerID(),
		cmd.RestaurantID(),
		cmd.Address(),
		items,
		h.now(),
	)
	if err != nil {
		return err
	}

	if err = orderRepo.Add(ctx, newOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// buildLineItems resolves current meal prices and snapshots them into line
// items. Every requested meal must exist on the given restaurant's menu.
func (h *CreateOrderCommandHandler) buildLineItems(
	ctx context.Context,
	uow CreateOrderUoW,
	cmd CreateOrderCommand,
) ([]order.LineItem, error) {
	requested := cmd.Items()

	mealIDs := make([]kernel.UUID, 0, len(requested))
	for _, item := range requested {
		mealIDs = append(mealIDs, item.MealID)
	}

	meals, err := uow.MealRepository().GetByIDs(ctx, cmd.RestaurantID(), mealIDs)
	if err != nil {
		return nil, err
	}

	mealsByID := make(map[kernel.UUID]catalog.Meal, len(meals))
	for _, meal := range meals {
		mealsByID[meal.ID] = meal
	}

	items := make([]order.LineItem, 0, len(requested))
	for _, item := range requested {
		meal, ok := mealsByID[item.MealID]
		if !ok {
			return nil, errs.NewObjectNotFoundError("meal", item.MealID.String())
		}

		lineItem, err := order.NewLineItem(meal.ID, item.Quantity, meal.Price)
		if err != nil {
			return nil, err
		}
		items = append(items, lineItem)
	}

	return items, nil
}
