// Package http is the inbound HTTP adapter. It translates echo requests into
// commands and queries, resolves bearer tokens into principals at the edge,
// and keeps the legacy JSON body shapes ({"status":"success"} and
// {"status":"fail","error":...}) while mapping error kinds to proper HTTP
// status codes.
package http

import (
	"errors"
	"net/http"
	"time"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/auth"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	identityResolver ports.IdentityResolver
	now              func() time.Time

	// Command handlers
	createOrderHandler          commands.CreateOrderCommandHandler
	markOrderReadyHandler       commands.MarkOrderReadyCommandHandler
	claimOrderHandler           commands.ClaimOrderCommandHandler
	completeOrderHandler        commands.CompleteOrderCommandHandler
	updateDriverLocationHandler commands.UpdateDriverLocationCommandHandler

	// Query handlers
	listRestaurantsHandler          queries.ListRestaurantsQueryHandler
	listMealsHandler                queries.ListMealsQueryHandler
	getReadyOrdersHandler           queries.GetReadyOrdersQueryHandler
	getLatestCustomerOrderHandler   queries.GetLatestCustomerOrderQueryHandler
	getLatestDriverOrderHandler     queries.GetLatestDriverOrderQueryHandler
	getTrackedDriverLocationHandler queries.GetTrackedDriverLocationQueryHandler
	getWeeklyRevenueHandler         queries.GetWeeklyRevenueQueryHandler
	getOrderNotificationHandler     queries.GetOrderNotificationQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	identityResolver ports.IdentityResolver,
	createOrderHandler commands.CreateOrderCommandHandler,
	markOrderReadyHandler commands.MarkOrderReadyCommandHandler,
	claimOrderHandler commands.ClaimOrderCommandHandler,
	completeOrderHandler commands.CompleteOrderCommandHandler,
	updateDriverLocationHandler commands.UpdateDriverLocationCommandHandler,
	listRestaurantsHandler queries.ListRestaurantsQueryHandler,
	listMealsHandler queries.ListMealsQueryHandler,
	getReadyOrdersHandler queries.GetReadyOrdersQueryHandler,
	getLatestCustomerOrderHandler queries.GetLatestCustomerOrderQueryHandler,
	getLatestDriverOrderHandler queries.GetLatestDriverOrderQueryHandler,
	getTrackedDriverLocationHandler queries.GetTrackedDriverLocationQueryHandler,
	getWeeklyRevenueHandler queries.GetWeeklyRevenueQueryHandler,
	getOrderNotificationHandler queries.GetOrderNotificationQueryHandler,
) *Server {
	return &Server{
		identityResolver:                identityResolver,
		now:                             time.Now,
		createOrderHandler:              createOrderHandler,
		markOrderReadyHandler:           markOrderReadyHandler,
		claimOrderHandler:               claimOrderHandler,
		completeOrderHandler:            completeOrderHandler,
		updateDriverLocationHandler:     updateDriverLocationHandler,
		listRestaurantsHandler:          listRestaurantsHandler,
		listMealsHandler:                listMealsHandler,
		getReadyOrdersHandler:           getReadyOrdersHandler,
		getLatestCustomerOrderHandler:   getLatestCustomerOrderHandler,
		getLatestDriverOrderHandler:     getLatestDriverOrderHandler,
		getTrackedDriverLocationHandler: getTrackedDriverLocationHandler,
		getWeeklyRevenueHandler:         getWeeklyRevenueHandler,
		getOrderNotificationHandler:     getOrderNotificationHandler,
	}
}

// RegisterRoutes attaches all endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/customer/restaurants", s.ListRestaurants)
	e.GET("/api/customer/restaurants/:restaurant_id/meals", s.ListMeals)
	e.POST("/api/customer/order", s.CreateOrder)
	e.GET("/api/customer/order/latest", s.GetLatestCustomerOrder)
	e.GET("/api/customer/driver/location", s.GetTrackedDriverLocation)

	e.GET("/api/restaurant/order/notification", s.GetOrderNotification)
	e.POST("/api/restaurant/order/ready", s.MarkOrderReady)

	e.GET("/api/driver/orders/ready", s.GetReadyOrders)
	e.POST("/api/driver/order/pick", s.ClaimOrder)
	e.GET("/api/driver/order/latest", s.GetLatestDriverOrder)
	e.POST("/api/driver/order/complete", s.CompleteOrder)
	e.GET("/api/driver/revenue", s.GetWeeklyRevenue)
	e.POST("/api/driver/location/update", s.UpdateDriverLocation)
}

// authenticate resolves the request's access_token (query or form field) into
// a principal and checks it has the expected role.
func (s *Server) authenticate(ctx echo.Context, kind auth.PrincipalKind) (auth.Principal, error) {
	token := ctx.QueryParam("access_token")
	if token == "" {
		token = ctx.FormValue("access_token")
	}

	principal, err := s.identityResolver.Resolve(ctx.Request().Context(), token, s.now())
	if err != nil {
		return auth.Principal{}, err
	}

	if principal.Kind != kind {
		return auth.Principal{}, errs.NewAuthError("access token does not grant this role")
	}
	return principal, nil
}

// success writes the legacy success body.
func success(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "success"})
}

// fail maps the error kind to an HTTP status and writes the legacy fail body.
func fail(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrAuthFailed):
		status = http.StatusUnauthorized
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		status = http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrConflict):
		status = http.StatusConflict
	}

	return ctx.JSON(status, map[string]string{
		"status": "fail",
		"error":  err.Error(),
	})
}
