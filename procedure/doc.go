// Package procedure provides a borrow-only, type-erased stored-procedure
// abstraction for Go.
//
// Any invocable entity — a function value, a closure, a call-operator object,
// or an object bound to one of its methods — can be invoked through one
// uniform interface, Procedural[P, R], without the call site knowing which
// kind it holds.
//
// # What is a stored procedure?
//
// Anything you can call later. The point of erasing its kind is the same as
// the point of any interface: the consumer declares what it needs (invoke
// with P, get back R) and stops caring how that is satisfied.
//
// # Why borrow-only?
//
// The adapters never own the wrapped procedure or its receiver object. They
// hold func values and pointers, both of which are already non-owning
// references in Go, and they perform no lifetime extension, no buffering and
// no queueing. Invoke is exactly one direct call. A procedure that blocks,
// blocks its caller for exactly as long as a direct call would.
//
// This keeps the abstraction honest: it adds a uniform surface and identity
// comparison, and nothing else.
//
// # Construction
//
// The Procure family is the only construction surface, one name per argument
// shape:
//
//	p := procedure.Procure(handler)                               // func / closure
//	p := procedure.ProcureVia(&obj, procedure.Of[string, int]())  // call-operator object
//	p, err := procedure.ProcureMethod(&acct, (*Account).Balance, procedure.Of[procedure.Unit, int]())
//	p, err := procedure.ProcureNamed(&acct, "Balance", procedure.Of[procedure.Unit, int]())
//
// The Guide value produced by Of pins the payload and result types where they
// cannot be deduced from the argument itself. It is a phantom marker: no
// data, no runtime effect.
//
// # Comparison
//
// Every Procure variant has a Comparably counterpart returning
// ComparablyProcedural, which adds Equals. Two comparable adapters are equal
// when they wrap the same procedure — for method adapters, the same object
// and the same method. Comparability costs an identity key captured at
// construction; code that never compares should use the plain variants.
//
// With introspection disabled (see Configure and WithoutIntrospection),
// equality degrades to comparing the adapter values themselves, which is
// meaningful only while the caller keeps at most one adapter per distinct
// procedure. The registry subpackage enforces that invariant for callers who
// want it enforced.
//
// # Failure
//
// The single fallible operation is constructing a method adapter over an
// invalid descriptor, reported as ErrInvalidMethodDescriptor. Everything else
// is total at this layer; whatever the wrapped procedure does — fail, panic,
// block — propagates unchanged.
package procedure
