package http

import (
	"net/http"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/auth"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// GetReadyOrders handles GET /api/driver/orders/ready. The listing is public:
// drivers browse it before authenticating a claim.
func (s *Server) GetReadyOrders(ctx echo.Context) error {
	query := queries.NewGetReadyOrdersQuery()

	orders, err := s.getReadyOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	views := make([]orderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, toOrderView(o))
	}
	return ctx.JSON(http.StatusOK, map[string]any{"orders": views})
}

// ClaimOrder handles POST /api/driver/order/pick.
func (s *Server) ClaimOrder(ctx echo.Context) error {
	principal, err := s.authenticate(ctx, auth.KindDriver)
	if err != nil {
		return fail(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.FormValue("order_id"))
	if err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("order_id", err))
	}

	cmd, err := commands.NewClaimOrderCommand(principal.ID, orderID)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.claimOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}
	return success(ctx)
}

// GetLatestDriverOrder handles GET /api/driver/order/latest.
func (s *Server) GetLatestDriverOrder(ctx echo.Context) error {
	principal, err := s.authenticate(ctx, auth.KindDriver)
	if err != nil {
		return fail(ctx, err)
	}

	query, err := queries.NewGetLatestDriverOrderQuery(principal.ID)
	if err != nil {
		return fail(ctx, err)
	}

	order, err := s.getLatestDriverOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, map[string]any{"order": toOrderView(order)})
}

// CompleteOrder handles POST /api/driver/order/complete.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	principal, err := s.authenticate(ctx, auth.KindDriver)
	if err != nil {
		return fail(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.FormValue("order_id"))
	if err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("order_id", err))
	}

	cmd, err := commands.NewCompleteOrderCommand(principal.ID, orderID)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.completeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}
	return success(ctx)
}

// GetWeeklyRevenue handles GET /api/driver/revenue.
func (s *Server) GetWeeklyRevenue(ctx echo.Context) error {
	principal, err := s.authenticate(ctx, auth.KindDriver)
	if err != nil {
		return fail(ctx, err)
	}

	query, err := queries.NewGetWeeklyRevenueQuery(principal.ID, s.now())
	if err != nil {
		return fail(ctx, err)
	}

	revenue, err := s.getWeeklyRevenueHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, map[string]any{"revenue": revenue})
}

// UpdateDriverLocation handles POST /api/driver/location/update.
func (s *Server) UpdateDriverLocation(ctx echo.Context) error {
	principal, err := s.authenticate(ctx, auth.KindDriver)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewUpdateDriverLocationCommand(principal.ID, ctx.FormValue("location"))
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.updateDriverLocationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}
	return success(ctx)
}
