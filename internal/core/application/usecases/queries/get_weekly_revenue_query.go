package queries

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetWeeklyRevenueQueryIsNotConstructed = errors.New(
	"GetWeeklyRevenueQuery must be created via NewGetWeeklyRevenueQuery constructor",
)

// GetWeeklyRevenueQuery retrieves a driver's per-day delivered-order revenue
// over the Monday-to-Sunday week containing the reference time.
type GetWeeklyRevenueQuery struct { //nolint:recvcheck //using for validation
	driverID      kernel.UUID
	referenceTime time.Time

	guard guard.ConstructorGuard
}

// NewGetWeeklyRevenueQuery creates a weekly revenue query.
// The reference time picks the week; callers normally pass time.Now().
func NewGetWeeklyRevenueQuery(driverID kernel.UUID, referenceTime time.Time) (GetWeeklyRevenueQuery, error) {
	if err := driverID.Validate(); err != nil {
		return GetWeeklyRevenueQuery{}, err
	}
	if referenceTime.IsZero() {
		return GetWeeklyRevenueQuery{}, errs.NewValueIsRequiredError("reference time")
	}

	return GetWeeklyRevenueQuery{
		driverID:      driverID,
		referenceTime: referenceTime,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetWeeklyRevenueQuery) Validate() error {
	return q.guard.Validate(ErrGetWeeklyRevenueQueryIsNotConstructed)
}

// DriverID returns the asking driver's identifier.
func (q GetWeeklyRevenueQuery) DriverID() kernel.UUID {
	return q.driverID
}

// ReferenceTime returns the instant that selects the reported week.
func (q GetWeeklyRevenueQuery) ReferenceTime() time.Time {
	return q.referenceTime
}
