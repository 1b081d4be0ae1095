// Package guard lets values detect that they were built by their constructor
// rather than as a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is given.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in values that must only be created through a
// constructor. The zero value fails Validate.
//
// Example usage:
//
//	var ErrCommandNotConstructed = errors.New("SubmitWizardCommand must be created via NewSubmitWizardCommand")
//
//	type SubmitWizardCommand struct {
//	    kind  wizard.Kind
//	    guard guard.ConstructorGuard
//	}
//
//	func (c SubmitWizardCommand) Validate() error {
//	    return c.guard.Validate(ErrCommandNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that marks its owner as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is
// nil) if the owner was not created through its constructor.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
