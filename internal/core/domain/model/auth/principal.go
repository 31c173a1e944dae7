// Package auth defines the authenticated principal passed into every
// principal-scoped operation. Handlers resolve a bearer token into a
// Principal once at the edge and pass it explicitly; no ambient session
// state exists anywhere in the core.
package auth

import (
	"fmt"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

// PrincipalKind is the actor role a token resolves to.
type PrincipalKind string

const (
	KindCustomer   PrincipalKind = "customer"
	KindDriver     PrincipalKind = "driver"
	KindRestaurant PrincipalKind = "restaurant"
)

// Validate checks the kind is one of the defined roles.
func (k PrincipalKind) Validate() error {
	switch k {
	case KindCustomer, KindDriver, KindRestaurant:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("principal kind",
			fmt.Errorf("%q is not a known principal kind", string(k)))
	}
}

// Principal is the authenticated actor performing a request.
type Principal struct {
	Kind PrincipalKind
	ID   kernel.UUID
}

// Validate checks both the kind and the identifier.
func (p Principal) Validate() error {
	if err := p.Kind.Validate(); err != nil {
		return err
	}
	return p.ID.Validate()
}
