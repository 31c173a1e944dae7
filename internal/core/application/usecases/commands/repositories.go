// Package commands contains the write operations of the order lifecycle.
// Every command follows the same pattern: a validated command object built
// through a constructor, and a handler that runs the operation inside a unit
// of work: begin, deferred rollback, explicit commit.
package commands

import (
	"context"

	"fooddelivery/internal/core/ports"
)

// Unit of Work interfaces scoped to what each handler actually touches.
// Narrow interfaces keep handler tests small and stop handlers from reaching
// into repositories they have no business with.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// DriverRepoFactory provides the driver repository within a transaction.
	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	// MealRepoFactory provides the meal read repository within a transaction.
	MealRepoFactory interface {
		MealRepository() ports.MealRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CreateOrderUoW spans the order aggregate and the catalog read side,
	// so price snapshots and order rows commit or roll back together.
	CreateOrderUoW interface {
		TxManager
		OrderRepoFactory
		MealRepoFactory
	}

	// CreateOrderUoWFactory creates order-creation unit of work instances.
	CreateOrderUoWFactory interface {
		Create() CreateOrderUoW
	}

	// DriverUoW manages transactions for driver-only operations.
	DriverUoW interface {
		TxManager
		DriverRepoFactory
	}

	// DriverUoWFactory creates driver unit of work instances.
	DriverUoWFactory interface {
		Create() DriverUoW
	}
)
