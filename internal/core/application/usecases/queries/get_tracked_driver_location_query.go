package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetTrackedDriverLocationQueryIsNotConstructed = errors.New(
	"GetTrackedDriverLocationQuery must be created via NewGetTrackedDriverLocationQuery constructor",
)

// GetTrackedDriverLocationQuery retrieves the location of the driver carrying
// the customer's current in-flight order.
type GetTrackedDriverLocationQuery struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetTrackedDriverLocationQuery creates a tracking query for a customer.
func NewGetTrackedDriverLocationQuery(customerID kernel.UUID) (GetTrackedDriverLocationQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetTrackedDriverLocationQuery{}, err
	}

	return GetTrackedDriverLocationQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTrackedDriverLocationQuery) Validate() error {
	return q.guard.Validate(ErrGetTrackedDriverLocationQueryIsNotConstructed)
}

// CustomerID returns the tracking customer's identifier.
func (q GetTrackedDriverLocationQuery) CustomerID() kernel.UUID {
	return q.customerID
}
