package order

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory functions.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root of the order lifecycle, from creation through
// driver claim to delivery.
//
// Order maintains these invariants:
//   - Delivery address is never empty
//   - There is at least one line item
//   - Total equals the sum of line-item sub-totals
//   - Status transitions are forward-only (see Status)
//   - A driver is set exactly when the status is OnTheWay or Delivered
//
// Fields are private; all mutation goes through validated methods. The
// one-active-order-per-customer rule spans aggregate instances and is
// enforced by the persistence layer.
type Order struct {
	id           kernel.UUID
	customerID   kernel.UUID
	restaurantID kernel.UUID

	// driverID is the claiming driver's ID (nil until claimed)
	driverID *kernel.UUID

	address string
	items   []LineItem
	total   kernel.Money
	status  Status

	createdAt time.Time
	pickedAt  *time.Time

	isConstructed bool
}

// NewOrder creates an order in Cooking status with no driver assigned.
// The total is computed from the line items; the address must be non-empty
// and items non-empty.
//
// Example:
//
//	item, _ := order.NewLineItem(mealID, 2, price)
//	o, err := order.NewOrder(kernel.NewUUID(), customerID, restaurantID,
//	    "221B Baker Street", []order.LineItem{item}, time.Now())
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	address string,
	items []LineItem,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        Cooking,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setRestaurantID(restaurantID),
		o.setAddress(address),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order from persistence. Unlike NewOrder it accepts
// any valid status and an already-assigned driver, but still checks the
// status/driver consistency rule and the total/sub-total sum invariant.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	address string,
	items []LineItem,
	total kernel.Money,
	status Status,
	driverID *kernel.UUID,
	createdAt time.Time,
	pickedAt *time.Time,
) (*Order, error) {
	o := &Order{
		createdAt:     createdAt,
		pickedAt:      pickedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setRestaurantID(restaurantID),
		o.setAddress(address),
		o.setItems(items),
		status.Validate(),
		status.ValidateCanHaveDriver(driverID != nil),
	); err != nil {
		return nil, err
	}

	if !o.total.IsEqual(total) {
		return nil, errs.NewValueIsInvalidError("total does not match sum of line item sub-totals")
	}

	o.status = status
	o.driverID = driverID
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
// Called when reconstructing orders from persistence.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the ordering customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// RestaurantID returns the preparing restaurant's identifier.
func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

// Driver returns the claiming driver's ID, or nil if unclaimed.
func (o *Order) Driver() *kernel.UUID {
	return o.driverID
}

// Address returns the delivery address.
func (o *Order) Address() string {
	return o.address
}

// Items returns the order's line items. The returned slice is a copy.
func (o *Order) Items() []LineItem {
	items := make([]LineItem, len(o.items))
	copy(items, o.items)
	return items
}

// Total returns the order total, equal to the sum of line-item sub-totals.
func (o *Order) Total() kernel.Money {
	return o.total
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// PickedAt returns the claim timestamp, or nil if the order was never claimed.
func (o *Order) PickedAt() *time.Time {
	return o.pickedAt
}

// MarkReady transitions the order from Cooking to Ready, making it visible
// to drivers browsing available work.
func (o *Order) MarkReady() error {
	newStatus, err := o.status.MarkReady()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Pick claims the order for a driver: sets the driver, moves the status to
// OnTheWay, and records the pick-up time.
//
// Pick enforces the in-aggregate half of the claim rules; the at-most-one
// winner guarantee across concurrent drivers lives in the repository's
// conditional update.
func (o *Order) Pick(driverID kernel.UUID, at time.Time) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Pick()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.driverID = &driverID
	o.pickedAt = &at
	return nil
}

// Complete marks the order as Delivered, the final state. The driver is
// freed up for the next claim once the change is persisted.
func (o *Order) Complete() error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	o.restaurantID = restaurantID
	return nil
}

func (o *Order) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	o.address = address
	return nil
}

func (o *Order) setItems(items []LineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("order items")
	}

	total := kernel.Money{}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		total = total.Add(item.SubTotal())
	}

	o.items = make([]LineItem, len(items))
	copy(o.items, items)
	o.total = total
	return nil
}
