package http

import (
	"net/http"
	"strconv"
	"time"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/auth"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// GetOrderNotification handles GET /api/restaurant/order/notification.
// last_request_time is accepted either as RFC 3339 or as Unix seconds.
func (s *Server) GetOrderNotification(ctx echo.Context) error {
	principal, err := s.authenticate(ctx, auth.KindRestaurant)
	if err != nil {
		return fail(ctx, err)
	}

	lastRequestTime, err := parseLastRequestTime(ctx.QueryParam("last_request_time"))
	if err != nil {
		return fail(ctx, err)
	}

	query, err := queries.NewGetOrderNotificationQuery(principal.ID, lastRequestTime)
	if err != nil {
		return fail(ctx, err)
	}

	count, err := s.getOrderNotificationHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, map[string]any{"notification": count})
}

func parseLastRequestTime(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, errs.NewValueIsRequiredError("last_request_time")
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	if secs, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return time.Unix(secs, 0), nil
	}
	return time.Time{}, errs.NewValueIsInvalidError("last_request_time")
}

// MarkOrderReady handles POST /api/restaurant/order/ready.
func (s *Server) MarkOrderReady(ctx echo.Context) error {
	principal, err := s.authenticate(ctx, auth.KindRestaurant)
	if err != nil {
		return fail(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.FormValue("order_id"))
	if err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("order_id", err))
	}

	cmd, err := commands.NewMarkOrderReadyCommand(principal.ID, orderID)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.markOrderReadyHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}
	return success(ctx)
}
