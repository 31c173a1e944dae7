package kernel

import (
	"fmt"

	"fooddelivery/internal/pkg/errs"
)

// Money is a monetary amount stored as integer cents. Keeping amounts in the
// smallest currency unit avoids floating point drift when line-item sub-totals
// are accumulated into an order total.
//
// Money is a value object: the zero value is a valid zero amount, and all
// arithmetic returns new values.
//
// Example:
//
//	price, _ := kernel.NewMoneyFromCents(1050) // $10.50
//	subTotal, _ := price.MultiplyByQuantity(3) // $31.50
type Money struct {
	cents int64
}

// NewMoneyFromCents builds a Money from an amount in cents.
// Negative amounts are invalid: nothing in the model charges the customer back.
func NewMoneyFromCents(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money amount",
			fmt.Errorf("%d cents is negative", cents))
	}
	return Money{cents: cents}, nil
}

// Cents returns the amount in cents.
func (m Money) Cents() int64 {
	return m.cents
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// MultiplyByQuantity returns the amount scaled by a positive quantity,
// as used for line-item sub-totals.
func (m Money) MultiplyByQuantity(quantity int) (Money, error) {
	if quantity <= 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	return Money{cents: m.cents * int64(quantity)}, nil
}

// IsEqual reports whether two amounts are the same.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// String renders the amount as a decimal, e.g. "10.50".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
