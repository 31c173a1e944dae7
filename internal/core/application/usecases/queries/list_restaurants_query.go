package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrListRestaurantsQueryIsNotConstructed = errors.New(
	"ListRestaurantsQuery must be created via NewListRestaurantsQuery constructor",
)

// ListRestaurantsQuery retrieves all restaurants for customers browsing the
// catalog, newest first.
type ListRestaurantsQuery struct {
	guard guard.ConstructorGuard
}

// NewListRestaurantsQuery creates a parameterless catalog listing query.
func NewListRestaurantsQuery() ListRestaurantsQuery {
	return ListRestaurantsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListRestaurantsQuery) Validate() error {
	return q.guard.Validate(ErrListRestaurantsQueryIsNotConstructed)
}

// RestaurantResponse is a catalog restaurant view.
type RestaurantResponse struct {
	ID   kernel.UUID
	Name string
}
