package procedure

import (
	"github.com/on-the-ground/procedure_ive_go/procedure/internal/identity"
)

// Arity facades over the canonical single-payload form. Each captures the
// identity of the original function before wrapping it, so the comparable
// variants keep exact equality semantics even though invocation goes through
// an adapter closure.

// Pair carries two payloads through the single payload slot.
type Pair[A, B any] struct {
	First  A
	Second B
}

// PairOf builds a Pair. Convenience for Invoke call sites.
func PairOf[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{First: a, Second: b}
}

// Procure0 wraps a niladic function as a Procedural over Unit.
func Procure0[R any](fn func() R) Procedural[Unit, R] {
	return callably[Unit, R]{call: func(Unit) R { return fn() }}
}

// Procure0Comparably is Procure0 with identity capture from fn itself, not
// from the wrapper closure.
func Procure0Comparably[R any](fn func() R) ComparablyProcedural[Unit, R] {
	return &comparablyCallably[Unit, R]{
		call: func(Unit) R { return fn() },
		id:   identity.OfFunc(fn),
	}
}

// Procure2 wraps a two-parameter function as a Procedural over Pair.
func Procure2[P1, P2, R any](fn func(P1, P2) R) Procedural[Pair[P1, P2], R] {
	return callably[Pair[P1, P2], R]{
		call: func(p Pair[P1, P2]) R { return fn(p.First, p.Second) },
	}
}

// Procure2Comparably is Procure2 with identity capture from fn itself.
func Procure2Comparably[P1, P2, R any](fn func(P1, P2) R) ComparablyProcedural[Pair[P1, P2], R] {
	return &comparablyCallably[Pair[P1, P2], R]{
		call: func(p Pair[P1, P2]) R { return fn(p.First, p.Second) },
		id:   identity.OfFunc(fn),
	}
}
