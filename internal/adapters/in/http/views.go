package http

import (
	"time"

	"fooddelivery/internal/core/application/usecases/queries"
)

// restaurantView is the JSON shape of a restaurant in catalog listings.
type restaurantView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// mealView is the JSON shape of a meal in catalog listings.
type mealView struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	PriceCents int64  `json:"price_cents"`
}

// orderView is the JSON shape of an order in listings and latest-order reads.
type orderView struct {
	ID           string     `json:"id"`
	RestaurantID string     `json:"restaurant_id"`
	Address      string     `json:"address"`
	TotalCents   int64      `json:"total_cents"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	PickedAt     *time.Time `json:"picked_at,omitempty"`
}

func toOrderView(o queries.OrderResponse) orderView {
	return orderView{
		ID:           o.ID.String(),
		RestaurantID: o.RestaurantID.String(),
		Address:      o.Address,
		TotalCents:   o.TotalCents,
		Status:       o.Status,
		CreatedAt:    o.CreatedAt,
		PickedAt:     o.PickedAt,
	}
}
