package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrListMealsQueryIsNotConstructed = errors.New(
	"ListMealsQuery must be created via NewListMealsQuery constructor",
)

// ListMealsQuery retrieves one restaurant's menu, newest first.
type ListMealsQuery struct { //nolint:recvcheck //using for validation
	restaurantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewListMealsQuery creates a menu listing query for one restaurant.
func NewListMealsQuery(restaurantID kernel.UUID) (ListMealsQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return ListMealsQuery{}, err
	}

	return ListMealsQuery{
		restaurantID: restaurantID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListMealsQuery) Validate() error {
	return q.guard.Validate(ErrListMealsQueryIsNotConstructed)
}

// RestaurantID returns the restaurant whose menu is requested.
func (q ListMealsQuery) RestaurantID() kernel.UUID {
	return q.restaurantID
}

// MealResponse is a catalog meal view with the current menu price.
type MealResponse struct {
	ID         kernel.UUID
	Name       string
	PriceCents int64
}
