// Package guard implements the constructor guard pattern used by domain
// value objects and aggregates. Embedding a ConstructorGuard in a struct makes
// it possible to tell a properly constructed instance apart from a zero value,
// which keeps validation inside the designated constructor functions.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is supplied for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as created through its constructor.
// The zero value fails validation, so structs embedding a guard cannot be
// used meaningfully when instantiated directly.
//
// Example:
//
//	type Money struct {
//	    amount   int64
//	    currency Currency
//	    guard    guard.ConstructorGuard
//	}
//
//	func NewMoney(amount int64, currency Currency) (Money, error) {
//	    // validation ...
//	    return Money{amount: amount, currency: currency, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (m Money) Validate() error {
//	    return m.guard.Validate(ErrMoneyIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the embedding object as
// properly constructed. Call it only from constructor functions.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when
// validationError is nil) if the embedding object was not created through
// its constructor, nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
