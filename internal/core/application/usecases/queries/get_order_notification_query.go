package queries

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetOrderNotificationQueryIsNotConstructed = errors.New(
	"GetOrderNotificationQuery must be created via NewGetOrderNotificationQuery constructor",
)

// GetOrderNotificationQuery counts a restaurant's orders created after the
// restaurant's last poll. Only the count is computed; delivering the actual
// notification is out of scope.
type GetOrderNotificationQuery struct { //nolint:recvcheck //using for validation
	restaurantID    kernel.UUID
	lastRequestTime time.Time

	guard guard.ConstructorGuard
}

// NewGetOrderNotificationQuery creates a notification count query.
func NewGetOrderNotificationQuery(restaurantID kernel.UUID, lastRequestTime time.Time) (GetOrderNotificationQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return GetOrderNotificationQuery{}, err
	}
	if lastRequestTime.IsZero() {
		return GetOrderNotificationQuery{}, errs.NewValueIsRequiredError("last request time")
	}

	return GetOrderNotificationQuery{
		restaurantID:    restaurantID,
		lastRequestTime: lastRequestTime,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderNotificationQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderNotificationQueryIsNotConstructed)
}

// RestaurantID returns the polling restaurant's identifier.
func (q GetOrderNotificationQuery) RestaurantID() kernel.UUID {
	return q.restaurantID
}

// LastRequestTime returns the cutoff after which orders count as new.
func (q GetOrderNotificationQuery) LastRequestTime() time.Time {
	return q.lastRequestTime
}
