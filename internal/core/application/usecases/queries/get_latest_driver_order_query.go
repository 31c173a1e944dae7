package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetLatestDriverOrderQueryIsNotConstructed = errors.New(
	"GetLatestDriverOrderQuery must be created via NewGetLatestDriverOrderQuery constructor",
)

// GetLatestDriverOrderQuery retrieves the order a driver most recently
// picked up, delivered or not.
type GetLatestDriverOrderQuery struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetLatestDriverOrderQuery creates a latest-order query for a driver.
func NewGetLatestDriverOrderQuery(driverID kernel.UUID) (GetLatestDriverOrderQuery, error) {
	if err := driverID.Validate(); err != nil {
		return GetLatestDriverOrderQuery{}, err
	}

	return GetLatestDriverOrderQuery{
		driverID: driverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetLatestDriverOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetLatestDriverOrderQueryIsNotConstructed)
}

// DriverID returns the asking driver's identifier.
func (q GetLatestDriverOrderQuery) DriverID() kernel.UUID {
	return q.driverID
}
