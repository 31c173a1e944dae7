package queries

import (
	"context"
	"database/sql"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetReadyOrdersQueryHandler lists claimable orders for drivers.
// The listing is advisory only: an order shown here may already be gone by
// the time a driver tries to claim it, and the claim's conditional update is
// what settles that race.
type GetReadyOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetReadyOrdersQueryHandler creates a handler for the ready-orders listing.
func NewGetReadyOrdersQueryHandler(db *gorm.DB) GetReadyOrdersQueryHandler {
	return GetReadyOrdersQueryHandler{db: db}
}

// Handle returns all Ready unassigned orders, newest first.
func (h GetReadyOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetReadyOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]OrderResponse, 0)

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
		WHERE status = ? AND driver_id IS NULL
		ORDER BY created_at DESC
	`, order.Ready).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		resp, scanErr := scanOrderResponse(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, resp)
	}

	return orders, rows.Err()
}

// scanOrderResponse reads one row of the shared order projection column set.
func scanOrderResponse(rows *sql.Rows) (OrderResponse, error) {
	var id, restaurantID uuid.UUID
	var address string
	var totalCents int64
	var status int
	var createdAt time.Time
	var pickedAt *time.Time

	if err := rows.Scan(&id, &restaurantID, &address, &totalCents, &status, &createdAt, &pickedAt); err != nil {
		return OrderResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderResponse{}, err
	}

	restID, err := kernel.UUIDFromBytes(restaurantID[:])
	if err != nil {
		return OrderResponse{}, err
	}

	return OrderResponse{
		ID:           orderID,
		RestaurantID: restID,
		Address:      address,
		TotalCents:   totalCents,
		Status:       order.Status(status).String(),
		CreatedAt:    createdAt,
		PickedAt:     pickedAt,
	}, nil
}
