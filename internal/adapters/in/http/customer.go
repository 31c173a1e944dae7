package http

import (
	"encoding/json"
	"net/http"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/auth"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ListRestaurants handles GET /api/customer/restaurants.
func (s *Server) ListRestaurants(ctx echo.Context) error {
	query := queries.NewListRestaurantsQuery()

	restaurants, err := s.listRestaurantsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	views := make([]restaurantView, 0, len(restaurants))
	for _, r := range restaurants {
		views = append(views, restaurantView{ID: r.ID.String(), Name: r.Name})
	}
	return ctx.JSON(http.StatusOK, map[string]any{"restaurants": views})
}

// ListMeals handles GET /api/customer/restaurants/:restaurant_id/meals.
func (s *Server) ListMeals(ctx echo.Context) error {
	restaurantID, err := kernel.UUIDFromString(ctx.Param("restaurant_id"))
	if err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("restaurant_id", err))
	}

	query, err := queries.NewListMealsQuery(restaurantID)
	if err != nil {
		return fail(ctx, err)
	}

	meals, err := s.listMealsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	views := make([]mealView, 0, len(meals))
	for _, m := range meals {
		views = append(views, mealView{ID: m.ID.String(), Name: m.Name, PriceCents: m.PriceCents})
	}
	return ctx.JSON(http.StatusOK, map[string]any{"meals": views})
}

// createOrderRequest is the legacy order placement payload. order_details
// arrives as a JSON-encoded string inside the form body.
type createOrderRequest struct {
	RestaurantID string `json:"restaurant_id" form:"restaurant_id"`
	Address      string `json:"address" form:"address"`
	OrderDetails string `json:"order_details" form:"order_details"`
}

type orderDetail struct {
	MealID   string `json:"meal_id"`
	Quantity int    `json:"quantity"`
}

// CreateOrder handles POST /api/customer/order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	principal, err := s.authenticate(ctx, auth.KindCustomer)
	if err != nil {
		return fail(ctx, err)
	}

	var req createOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	restaurantID, err := kernel.UUIDFromString(req.RestaurantID)
	if err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("restaurant_id", err))
	}

	var details []orderDetail
	if err = json.Unmarshal([]byte(req.OrderDetails), &details); err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("order_details", err))
	}

	items := make([]commands.OrderItem, 0, len(details))
	for _, d := range details {
		mealID, mealErr := kernel.UUIDFromString(d.MealID)
		if mealErr != nil {
			return fail(ctx, errs.NewValueIsInvalidErrorWithCause("meal_id", mealErr))
		}
		items = append(items, commands.OrderItem{MealID: mealID, Quantity: d.Quantity})
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), principal.ID, restaurantID, req.Address, items)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}
	return success(ctx)
}

// GetLatestCustomerOrder handles GET /api/customer/order/latest.
func (s *Server) GetLatestCustomerOrder(ctx echo.Context) error {
	principal, err := s.authenticate(ctx, auth.KindCustomer)
	if err != nil {
		return fail(ctx, err)
	}

	query, err := queries.NewGetLatestCustomerOrderQuery(principal.ID)
	if err != nil {
		return fail(ctx, err)
	}

	order, err := s.getLatestCustomerOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, map[string]any{"order": toOrderView(order)})
}

// GetTrackedDriverLocation handles GET /api/customer/driver/location.
func (s *Server) GetTrackedDriverLocation(ctx echo.Context) error {
	principal, err := s.authenticate(ctx, auth.KindCustomer)
	if err != nil {
		return fail(ctx, err)
	}

	query, err := queries.NewGetTrackedDriverLocationQuery(principal.ID)
	if err != nil {
		return fail(ctx, err)
	}

	location, err := s.getTrackedDriverLocationHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, map[string]any{"location": location})
}
