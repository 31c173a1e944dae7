package queries

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListMealsQueryHandler reads one restaurant's menu.
type ListMealsQueryHandler struct {
	db *gorm.DB
}

// NewListMealsQueryHandler creates a handler for menu listings.
func NewListMealsQueryHandler(db *gorm.DB) ListMealsQueryHandler {
	return ListMealsQueryHandler{db: db}
}

// Handle returns the restaurant's meals, newest first. An unknown restaurant
// simply yields an empty menu.
func (h ListMealsQueryHandler) Handle(
	ctx context.Context,
	query ListMealsQuery,
) ([]MealResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	meals := make([]MealResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			price_cents
		FROM meals
		WHERE restaurant_id = ?
		ORDER BY created_at DESC
	`, query.RestaurantID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var name string
		var priceCents int64

		if err = rows.Scan(&id, &name, &priceCents); err != nil {
			return nil, err
		}

		mealID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		meals = append(meals, MealResponse{
			ID:         mealID,
			Name:       name,
			PriceCents: priceCents,
		})
	}

	return meals, rows.Err()
}
