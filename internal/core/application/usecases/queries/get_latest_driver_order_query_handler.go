package queries

import (
	"context"

	"fooddelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetLatestDriverOrderQueryHandler reads the order with the latest pick-up
// time among a driver's orders.
type GetLatestDriverOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetLatestDriverOrderQueryHandler creates a handler for the driver's
// latest-order view.
func NewGetLatestDriverOrderQueryHandler(db *gorm.DB) GetLatestDriverOrderQueryHandler {
	return GetLatestDriverOrderQueryHandler{db: db}
}

// Handle returns the driver's order with the maximum picked_at.
// Returns errs.ErrObjectNotFound if the driver never picked an order up.
func (h GetLatestDriverOrderQueryHandler) Handle(
	ctx context.Context,
	query GetLatestDriverOrderQuery,
) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			restaurant_id,
			address,
			total_cents,
			status,
			created_at,
			picked_at
		FROM orders
		WHERE driver_id = ?
		ORDER BY picked_at DESC
		LIMIT 1
	`, query.DriverID().Bytes()).Rows()
	if err != nil {
		return OrderResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return OrderResponse{}, err
		}
		return OrderResponse{}, errs.NewObjectNotFoundError("order", query.DriverID().String())
	}

	return scanOrderResponse(rows)
}
