package procedure

import (
	"fmt"

	"github.com/on-the-ground/procedure_ive_go/procedure/internal/identity"
)

// The Procure family is the construction surface of the package: one name per
// argument shape, each borrowing its procedure and returning it behind the
// uniform interface.
//
//	Procure(fn)                      function or closure
//	ProcureVia(object, guide)        call-operator object
//	ProcureMethod(obj, expr, guide)  object + typed method expression
//	ProcureNamed(obj, name, guide)   object + method name, via reflection
//
// Each has a Comparably counterpart returning ComparablyProcedural. Only the
// method variants can fail, and only on an invalid descriptor.

// Procure wraps a function or closure. The signature is read directly off fn,
// so no guide is needed. Total.
func Procure[P, R any](fn func(P) R) Procedural[P, R] {
	return callably[P, R]{call: fn}
}

// ProcureComparably is Procure with identity capture. Two adapters over the
// same stored function value compare equal.
//
// Identity is the code address of fn. Closures created from the same literal
// share it, as do method values of one method over different receivers; when
// the receiver must participate in identity, wrap the pair with ProcureMethod
// instead of passing a bound method value here.
func ProcureComparably[P, R any](fn func(P) R) ComparablyProcedural[P, R] {
	return &comparablyCallably[P, R]{call: fn, id: identity.OfFunc(fn)}
}

// ProcureVia wraps a call-operator object. The guide pins P and R, which
// cannot be deduced from the object alone. Total.
func ProcureVia[P, R any](object Callable[P, R], _ Guide[P, R]) Procedural[P, R] {
	return callably[P, R]{call: object.Call}
}

// ProcureViaComparably is ProcureVia with identity capture.
//
// Pass the object as a pointer: its identity is its address. A value object
// has no stable address and distinguishes itself by type only.
func ProcureViaComparably[P, R any](object Callable[P, R], _ Guide[P, R]) ComparablyProcedural[P, R] {
	return &comparablyCallably[P, R]{
		call: object.Call,
		id:   identity.OfObject(object, object.Call),
	}
}

// ProcureMethod wraps one method of a borrowed object, identified by a method
// expression such as (*Account).Deposit. The expression already carries P and
// R; the guide keeps the construction surface uniform with ProcureNamed.
//
// A nil method expression is the invalid-descriptor case: it returns
// ErrInvalidMethodDescriptor while raising is enabled, and is an unchecked
// precondition otherwise.
func ProcureMethod[T any, P, R any](object *T, method func(*T, P) R, _ Guide[P, R]) (Procedural[P, R], error) {
	if settings.raising && method == nil {
		return nil, fmt.Errorf("%w: nil method expression for %T", ErrInvalidMethodDescriptor, object)
	}
	return methodic[P, R]{call: func(p P) R { return method(object, p) }}, nil
}

// ProcureMethodComparably is ProcureMethod with identity capture: the pair
// (object address, method expression code address).
func ProcureMethodComparably[T any, P, R any](object *T, method func(*T, P) R, _ Guide[P, R]) (ComparablyProcedural[P, R], error) {
	if settings.raising && method == nil {
		return nil, fmt.Errorf("%w: nil method expression for %T", ErrInvalidMethodDescriptor, object)
	}
	return &comparablyMethodic[P, R]{
		call: func(p P) R { return method(object, p) },
		id:   identity.OfMethod(object, identity.OfFunc(method).Method),
	}, nil
}

// ProcureNamed wraps a method resolved by name through reflection. The guide
// is load-bearing here: a name carries no type information at all.
//
// With raising enabled, an unknown name — or, with type checks enabled, a
// method whose bound shape is not func(P) R — returns
// ErrInvalidMethodDescriptor. With raising disabled the resolution error is
// discarded and invoking the adapter panics.
func ProcureNamed[P, R any](object any, name string, _ Guide[P, R]) (Procedural[P, R], error) {
	call, _, err := resolveNamed[P, R](object, name)
	if err != nil {
		if settings.raising {
			return nil, err
		}
		call = func(P) R { panic(err) }
	}
	return methodic[P, R]{call: call}, nil
}

// ProcureNamedComparably is ProcureNamed with identity capture: the pair
// (object address, resolved method code address).
func ProcureNamedComparably[P, R any](object any, name string, _ Guide[P, R]) (ComparablyProcedural[P, R], error) {
	call, descriptor, err := resolveNamed[P, R](object, name)
	if err != nil {
		if settings.raising {
			return nil, err
		}
		call = func(P) R { panic(err) }
	}
	return &comparablyMethodic[P, R]{
		call: call,
		id:   identity.OfMethod(object, descriptor),
	}, nil
}

// MustProcureMethod panics instead of returning the descriptor error.
func MustProcureMethod[T any, P, R any](object *T, method func(*T, P) R, g Guide[P, R]) Procedural[P, R] {
	p, err := ProcureMethod(object, method, g)
	if err != nil {
		panic(err)
	}
	return p
}

// MustProcureMethodComparably panics instead of returning the descriptor error.
func MustProcureMethodComparably[T any, P, R any](object *T, method func(*T, P) R, g Guide[P, R]) ComparablyProcedural[P, R] {
	p, err := ProcureMethodComparably(object, method, g)
	if err != nil {
		panic(err)
	}
	return p
}

// MustProcureNamed panics instead of returning the descriptor error.
func MustProcureNamed[P, R any](object any, name string, g Guide[P, R]) Procedural[P, R] {
	p, err := ProcureNamed(object, name, g)
	if err != nil {
		panic(err)
	}
	return p
}

// MustProcureNamedComparably panics instead of returning the descriptor error.
func MustProcureNamedComparably[P, R any](object any, name string, g Guide[P, R]) ComparablyProcedural[P, R] {
	p, err := ProcureNamedComparably(object, name, g)
	if err != nil {
		panic(err)
	}
	return p
}
