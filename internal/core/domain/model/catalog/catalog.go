// Package catalog holds the read-only projections of restaurants and meals.
// The catalog is maintained outside this service; orders only read meal
// prices from it when snapshotting line-item sub-totals.
package catalog

import (
	"fooddelivery/internal/core/domain/model/kernel"
)

// Restaurant is a read-only catalog entry.
type Restaurant struct {
	ID   kernel.UUID
	Name string
}

// Meal is a read-only catalog entry belonging to one restaurant.
// Price is the current menu price; orders snapshot it at creation time.
type Meal struct {
	ID           kernel.UUID
	RestaurantID kernel.UUID
	Name         string
	Price        kernel.Money
}
