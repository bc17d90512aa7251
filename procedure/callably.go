package procedure

import (
	"github.com/on-the-ground/procedure_ive_go/procedure/internal/identity"
)

// callably invokes any directly callable procedure: a function value, a
// closure, or a call-operator object reduced to its Call method.
//
// It borrows. The caller keeps the wrapped value alive for as long as the
// adapter is in use; nothing here extends its lifetime.
type callably[P, R any] struct {
	call func(P) R
}

func (c callably[P, R]) Invoke(p P) R {
	return c.call(p)
}

// comparablyCallably is the comparable variant of callably. It additionally
// captures the identity key of the borrowed procedure at construction, which
// is the only extra cost comparability carries.
type comparablyCallably[P, R any] struct {
	call func(P) R
	id   identity.Key
}

func (c *comparablyCallably[P, R]) Invoke(p P) R {
	return c.call(p)
}

// Equals implements the dual equality strategy.
//
// With introspection enabled (the default) the right operand is recognized by
// its concrete adapter specialization: a different kind of adapter is never
// equal, the same kind compares captured identity keys.
//
// With introspection disabled the two erased values' own addresses are
// compared instead. That is only meaningful while at most one adapter exists
// per distinct procedure — a caller contract this package does not enforce.
// The registry package enforces it for callers who want that.
func (c *comparablyCallably[P, R]) Equals(other ComparablyProcedural[P, R]) bool {
	if !settings.introspection {
		return identity.OfErased(c) == identity.OfErased(other)
	}
	o, ok := other.(*comparablyCallably[P, R])
	if !ok {
		return false
	}
	return c.id == o.id
}
