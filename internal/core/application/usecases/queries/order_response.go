// Package queries contains the read operations. Handlers read projections
// straight from the database with raw SQL; they never go through the
// aggregates or the unit of work, because nothing is written.
package queries

import (
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
)

// OrderResponse is the read-side projection of an order shared by the order
// listing and latest-order queries.
type OrderResponse struct {
	ID           kernel.UUID
	RestaurantID kernel.UUID
	Address      string
	TotalCents   int64
	Status       string
	CreatedAt    time.Time
	PickedAt     *time.Time
}
