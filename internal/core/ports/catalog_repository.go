package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/model/kernel"
)

// MealRepository reads meal projections from the catalog. Only what order
// creation needs; browsing endpoints query the read side directly.
type MealRepository interface {
	// GetByIDs retrieves the meals with the given IDs, limited to one
	// restaurant. Missing IDs are simply absent from the result; callers
	// decide whether that is an error.
	GetByIDs(ctx context.Context, restaurantID kernel.UUID, ids []kernel.UUID) ([]catalog.Meal, error)
}
