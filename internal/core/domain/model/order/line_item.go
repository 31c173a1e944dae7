package order

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrLineItemIsNotConstructed = errors.New(
	"LineItem must be created via NewLineItem constructor",
)

// LineItem is one meal-quantity pair within an order. The sub-total is a
// snapshot of price x quantity taken at order time; later catalog price
// changes never affect an existing order.
//
// Example:
//
//	price, _ := kernel.NewMoneyFromCents(1000)
//	item, err := order.NewLineItem(mealID, 2, price) // sub-total 20.00
type LineItem struct {
	mealID   kernel.UUID
	quantity int
	subTotal kernel.Money

	guard guard.ConstructorGuard
}

// NewLineItem creates a line item for the given meal, computing the immutable
// sub-total from the meal's current price. Quantity must be positive.
func NewLineItem(mealID kernel.UUID, quantity int, price kernel.Money) (LineItem, error) {
	if err := mealID.Validate(); err != nil {
		return LineItem{}, err
	}

	subTotal, err := price.MultiplyByQuantity(quantity)
	if err != nil {
		return LineItem{}, err
	}

	return LineItem{
		mealID:   mealID,
		quantity: quantity,
		subTotal: subTotal,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// RestoreLineItem rebuilds a line item from persistence with its stored
// sub-total, bypassing the price computation.
func RestoreLineItem(mealID kernel.UUID, quantity int, subTotal kernel.Money) (LineItem, error) {
	if err := mealID.Validate(); err != nil {
		return LineItem{}, err
	}
	if quantity <= 0 {
		return LineItem{}, errs.NewValueIsInvalidError("quantity")
	}

	return LineItem{
		mealID:   mealID,
		quantity: quantity,
		subTotal: subTotal,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the line item was created through a constructor.
func (li LineItem) Validate() error {
	return li.guard.Validate(ErrLineItemIsNotConstructed)
}

// MealID returns the referenced meal's identifier.
func (li LineItem) MealID() kernel.UUID {
	return li.mealID
}

// Quantity returns the ordered quantity.
func (li LineItem) Quantity() int {
	return li.quantity
}

// SubTotal returns the price snapshot for this line.
func (li LineItem) SubTotal() kernel.Money {
	return li.subTotal
}
