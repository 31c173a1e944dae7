package ports

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Besides plain CRUD it carries the two concurrency-sensitive operations of
// the lifecycle: the active-order lookups and the atomic claim.
type OrderRepository interface {
	// Add persists a new order with all its line items atomically.
	// Returns errs.ErrConflict if the customer already has an active order
	// (enforced by a partial unique index, so concurrent creates cannot both
	// succeed).
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its line items by ID.
	// Returns errs.ErrObjectNotFound if absent.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetActiveByCustomer retrieves the customer's current non-Delivered
	// order. Returns errs.ErrObjectNotFound if the customer has none.
	GetActiveByCustomer(ctx context.Context, customerID kernel.UUID) (*order.Order, error)

	// HasActiveForDriver reports whether the driver holds a non-Delivered order.
	HasActiveForDriver(ctx context.Context, driverID kernel.UUID) (bool, error)

	// Claim atomically assigns an unclaimed Ready order to a driver, moving it
	// to OnTheWay with the given pick-up time. The select-and-update is one
	// conditional statement; when no row matches (already claimed, not Ready,
	// or absent) it returns errs.ErrObjectNotFound. At most one of any number
	// of concurrent claimers succeeds.
	Claim(ctx context.Context, orderID kernel.UUID, driverID kernel.UUID, pickedAt time.Time) error

	// GetForDriver retrieves an order only if it belongs to the given driver.
	// Returns errs.ErrObjectNotFound otherwise; callers cannot distinguish a
	// foreign order from an absent one, which keeps the authorization check
	// non-enumerable.
	GetForDriver(ctx context.Context, orderID kernel.UUID, driverID kernel.UUID) (*order.Order, error)
}
