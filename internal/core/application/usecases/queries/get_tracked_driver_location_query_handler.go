package queries

import (
	"context"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetTrackedDriverLocationQueryHandler resolves the customer's current
// OnTheWay order to its driver's last reported location.
//
// Both absence cases are explicit not-found errors, never a nil dereference:
// the customer may have no order on the way, and the driver may not have
// reported a location yet.
type GetTrackedDriverLocationQueryHandler struct {
	db *gorm.DB
}

// NewGetTrackedDriverLocationQueryHandler creates a handler for driver tracking.
func NewGetTrackedDriverLocationQueryHandler(db *gorm.DB) GetTrackedDriverLocationQueryHandler {
	return GetTrackedDriverLocationQueryHandler{db: db}
}

// Handle returns the tracked driver's location.
// Returns errs.ErrObjectNotFound when the customer has no OnTheWay order or
// the assigned driver has not reported a location.
func (h GetTrackedDriverLocationQueryHandler) Handle(
	ctx context.Context,
	query GetTrackedDriverLocationQuery,
) (string, error) {
	if err := query.Validate(); err != nil {
		return "", err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			d.location
		FROM orders o
		JOIN drivers d ON d.id = o.driver_id
		WHERE o.customer_id = ? AND o.status = ?
		ORDER BY o.picked_at DESC
		LIMIT 1
	`, query.CustomerID().Bytes(), order.OnTheWay).Rows()
	if err != nil {
		return "", err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return "", err
		}
		return "", errs.NewObjectNotFoundError("order on the way", query.CustomerID().String())
	}

	var location *string
	if err = rows.Scan(&location); err != nil {
		return "", err
	}

	if location == nil {
		return "", errs.NewObjectNotFoundError("driver location", query.CustomerID().String())
	}

	return *location, nil
}
