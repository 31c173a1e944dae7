// Package guard implements the constructor guard pattern for value objects
// and commands. Embedding a ConstructorGuard in a struct makes it possible to
// detect whether the struct was built through its designated constructor or
// left as a zero value, so invariants established by the constructor can be
// relied upon everywhere else.
package guard

import "errors"

// ErrNotConstructed is the default error returned by Validate when the guard
// is a zero value and the caller did not supply a specific error.
var ErrNotConstructed = errors.New("object must be created via its constructor")

// ConstructorGuard tracks whether the enclosing object went through its
// constructor. The zero value fails validation.
type ConstructorGuard struct {
	constructed bool
}

// NewConstructorGuard returns a guard in the constructed state.
// Constructors set this as the last step once all invariants hold.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{constructed: true}
}

// Validate returns nil if the enclosing object was properly constructed.
// Otherwise it returns notConstructedErr, or ErrNotConstructed when nil.
func (g ConstructorGuard) Validate(notConstructedErr error) error {
	if g.constructed {
		return nil
	}
	if notConstructedErr != nil {
		return notConstructedErr
	}
	return ErrNotConstructed
}
