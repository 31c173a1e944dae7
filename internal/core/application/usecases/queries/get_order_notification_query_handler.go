package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrderNotificationQueryHandler counts new orders for a polling restaurant.
type GetOrderNotificationQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderNotificationQueryHandler creates a handler for notification polls.
func NewGetOrderNotificationQueryHandler(db *gorm.DB) GetOrderNotificationQueryHandler {
	return GetOrderNotificationQueryHandler{db: db}
}

// Handle returns how many of the restaurant's orders were created after the
// last request time.
func (h GetOrderNotificationQueryHandler) Handle(
	ctx context.Context,
	query GetOrderNotificationQuery,
) (int64, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM orders
		WHERE restaurant_id = ? AND created_at > ?
	`, query.RestaurantID().Bytes(), query.LastRequestTime()).Scan(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
