package queries

import (
	"context"

	"fooddelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetLatestCustomerOrderQueryHandler reads a customer's most recent order.
type GetLatestCustomerOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetLatestCustomerOrderQueryHandler creates a handler for the customer's
// latest-order view.
func NewGetLatestCustomerOrderQueryHandler(db *gorm.DB) GetLatestCustomerOrderQueryHandler {
	return GetLatestCustomerOrderQueryHandler{db: db}
}

// Handle returns the most recently created order for the customer.
// Returns errs.ErrObjectNotFound if the customer never placed one.
func (h GetLatestCustomerOrderQueryHandler) Handle(
	ctx context.Context,
	query GetLatestCustomerOrderQuery,
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
		WHERE customer_id = ?
		ORDER BY created_at DESC
		LIMIT 1
	`, query.CustomerID().Bytes()).Rows()
	if err != nil {
		return OrderResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return OrderResponse{}, err
		}
		return OrderResponse{}, errs.NewObjectNotFoundError("order", query.CustomerID().String())
	}

	return scanOrderResponse(rows)
}
