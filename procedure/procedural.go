package procedure

// Unit is the payload/result type of niladic and void procedures.
//
// Go has no variadic type parameters, so the canonical procedure shape is a
// single payload type P and a single result type R. A procedure that takes
// nothing or returns nothing uses Unit in that position. See Procure0 for a
// facade that hides the Unit plumbing for plain func() R values.
type Unit struct{}

// Procedural is the uniform invocation contract.
//
// Any stored procedure — a function value, a closure, a call-operator object,
// or an object bound to one of its methods — can be invoked through this one
// interface without the call site knowing which kind it holds.
//
// Invoke performs exactly one direct call into the borrowed procedure and
// returns its result unchanged. It is total at this layer: failures, panics
// and blocking all belong to the wrapped procedure.
type Procedural[P, R any] interface {
	Invoke(P) R
}

// ComparablyProcedural extends Procedural with identity comparison.
//
// Equals reports whether both sides wrap the same underlying procedure
// (for method adapters: the same object and the same method). It is a pure
// read of identity data captured at construction and never fails.
//
// Prefer the plain Procedural variant when comparison is not needed; the
// comparable adapters carry identity data the plain ones do not.
type ComparablyProcedural[P, R any] interface {
	Procedural[P, R]
	Equals(other ComparablyProcedural[P, R]) bool
}

// NotEquals is the derived negation of Equals.
func NotEquals[P, R any](a, b ComparablyProcedural[P, R]) bool {
	return !a.Equals(b)
}
