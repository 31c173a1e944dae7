package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetLatestCustomerOrderQueryIsNotConstructed = errors.New(
	"GetLatestCustomerOrderQuery must be created via NewGetLatestCustomerOrderQuery constructor",
)

// GetLatestCustomerOrderQuery retrieves the customer's most recently created
// order, regardless of status.
type GetLatestCustomerOrderQuery struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetLatestCustomerOrderQuery creates a latest-order query for a customer.
func NewGetLatestCustomerOrderQuery(customerID kernel.UUID) (GetLatestCustomerOrderQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetLatestCustomerOrderQuery{}, err
	}

	return GetLatestCustomerOrderQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetLatestCustomerOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetLatestCustomerOrderQueryIsNotConstructed)
}

// CustomerID returns the asking customer's identifier.
func (q GetLatestCustomerOrderQuery) CustomerID() kernel.UUID {
	return q.customerID
}
