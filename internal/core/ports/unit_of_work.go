// Package ports declares the outbound interfaces of the core: repositories,
// the unit of work, and the identity resolver. Adapters under
// internal/adapters/out implement them.
package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
)

// UnitOfWork coordinates a database transaction across the repositories it
// hands out. Repositories obtained from a unit of work execute inside its
// transaction once Begin has been called.
//
// Usage:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.OrderRepository().Add(ctx, o); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
//
// Rollback after a successful Commit is a no-op error and safe to defer.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	DriverRepository() DriverRepository
	MealRepository() MealRepository

	// TrackAggregate registers an aggregate modified in this unit of work,
	// for post-commit processing such as event publication.
	TrackAggregate(id kernel.UUID, aggregate interface{})
}

// UnitOfWorkFactory produces a fresh unit of work per business operation,
// keeping concurrent operations isolated from each other.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}
