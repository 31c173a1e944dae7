// Package driver contains the Driver aggregate.
//
// A driver holds at most one active (non-Delivered) order at a time; that rule
// spans aggregates and is checked inside the claim transaction. The aggregate
// itself only owns the driver's last reported location.
package driver

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

var ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")

// Driver represents a delivery driver. The location is the raw string the
// driver's device last reported; it is nil until the first report and carries
// no geospatial semantics here.
type Driver struct {
	id       kernel.UUID
	location *string

	isConstructed bool
}

// NewDriver creates a driver with no reported location yet.
func NewDriver(id kernel.UUID) (*Driver, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &Driver{
		id:            id,
		isConstructed: true,
	}, nil
}

// RestoreDriver rebuilds a driver from persistence.
func RestoreDriver(id kernel.UUID, location *string) (*Driver, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &Driver{
		id:            id,
		location:      location,
		isConstructed: true,
	}, nil
}

// Validate ensures the Driver instance was properly constructed.
func (d *Driver) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDriverIsNotConstructed
	}
	return nil
}

// ID returns the driver's unique identifier.
func (d *Driver) ID() kernel.UUID {
	return d.id
}

// Location returns the last reported location, or nil if never reported.
func (d *Driver) Location() *string {
	return d.location
}

// ReportLocation overwrites the stored location unconditionally.
// An empty report is rejected rather than erasing the previous one.
func (d *Driver) ReportLocation(location string) error {
	if location == "" {
		return errs.NewValueIsRequiredError("location")
	}

	d.location = &location
	return nil
}
