package order

import (
	"fmt"

	"fooddelivery/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. Transitions are
// forward-only; there is no cancellation path.
//
//	Cooking ──> Ready ──> OnTheWay ──> Delivered
//
// Cooking is set at creation, Ready by the restaurant, OnTheWay when a driver
// claims the order, and Delivered when the driver completes it.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Cooking is the initial status: the restaurant is preparing the order.
	Cooking

	// Ready means the order awaits a driver claim.
	Ready

	// OnTheWay means a driver has claimed the order and is delivering it.
	OnTheWay

	// Delivered is the final state. Delivered orders no longer count against
	// the customer's or driver's active-order limit.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Cooking:   "Cooking",
		Ready:     "Ready",
		OnTheWay:  "OnTheWay",
		Delivered: "Delivered",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Cooking:   "Cooking",
		Ready:     "Ready",
		OnTheWay:  "OnTheWay",
		Delivered: "Delivered",
	}
}

// Validate checks the Status value is one of the defined lifecycle states.
// Used when reconstructing orders from persistence.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String implements fmt.Stringer. Safe to call on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsActive reports whether an order in this status still counts against the
// one-active-order limit of its customer and driver.
func (s Status) IsActive() bool {
	return s == Cooking || s == Ready || s == OnTheWay
}

// ValidateCanHaveDriver checks consistency between status and driver
// assignment: an order has a driver exactly when it is OnTheWay or Delivered.
func (s Status) ValidateCanHaveDriver(hasDriver bool) error {
	if hasDriver && s != OnTheWay && s != Delivered {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to have a driver", s.String()))
	}

	if !hasDriver && (s == OnTheWay || s == Delivered) {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to have no driver", s.String()))
	}

	return nil
}

// MarkReady transitions Cooking -> Ready.
// Returns an error for any other starting state.
func (s Status) MarkReady() (Status, error) {
	if s != Cooking {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to mark ready", s.String()))
	}
	return Ready, nil
}

// Pick transitions Ready -> OnTheWay. Only unclaimed ready orders may be
// picked; the persistence layer additionally enforces this atomically so two
// drivers cannot both win the same order.
func (s Status) Pick() (Status, error) {
	if s != Ready {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to pick", s.String()))
	}
	return OnTheWay, nil
}

// Complete transitions OnTheWay -> Delivered, the final state.
func (s Status) Complete() (Status, error) {
	if s != OnTheWay {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to complete", s.String()))
	}
	return Delivered, nil
}
