package procedure

import "errors"

// ErrInvalidMethodDescriptor is the only error this package produces.
//
// It is returned by the method Procure variants when the supplied descriptor
// does not denote an invocable method: a nil method expression, a name the
// object's type does not declare, or (with type checks enabled) a method
// whose bound shape is not func(P) R. Every other operation is total.
//
// When raising is disabled via WithoutRaising, descriptor validation is
// skipped entirely and an invalid descriptor is an unchecked precondition
// violation: the constructors return a nil error and the misuse surfaces, if
// at all, when the adapter is invoked.
var ErrInvalidMethodDescriptor = errors.New("procedure: invalid method descriptor")
