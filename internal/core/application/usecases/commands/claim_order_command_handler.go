package commands

import (
	"context"
	"time"

	"fooddelivery/internal/pkg/errs"
)

// ErrDriverHasActiveOrder signals the driver is still out on a delivery and
// cannot claim another order until it is completed.
var ErrDriverHasActiveOrder = errs.NewConflictError("you can pick only one order at a time")

// ClaimOrderCommandHandler claims a Ready unassigned order for a driver.
//
// The claim itself is a single conditional update that sets driver, status,
// and pick-up time only where the order is still Ready and unassigned, so when
// two drivers race for the same order exactly one row update wins. The loser
// observes zero matched rows and gets errs.ErrObjectNotFound, which is
// distinguishable from ErrDriverHasActiveOrder returned by the busy-driver
// pre-check.
type ClaimOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	now        func() time.Time
}

// NewClaimOrderCommandHandler creates a handler for order claims.
func NewClaimOrderCommandHandler(uowFactory OrderUoWFactory) ClaimOrderCommandHandler {
	return ClaimOrderCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle processes the claim.
// Returns ErrDriverHasActiveOrder if the driver holds a non-delivered order,
// errs.ErrObjectNotFound if no matching unclaimed ready order exists.
func (h ClaimOrderCommandHandler) Handle(ctx context.Context, cmd ClaimOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	busy, err := orderRepo.HasActiveForDriver(ctx, cmd.DriverID())
	if err != nil {
		return err
	}
	if busy {
		return ErrDriverHasActiveOrder
	}

	if err = orderRepo.Claim(ctx, cmd.OrderID(), cmd.DriverID(), h.now()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
