package procedure

// Callable is the call-operator contract.
//
// An object satisfying Callable plays the role a functor plays elsewhere: a
// value whose type carries one distinguished Call method. ProcureVia wraps
// such objects without caring about anything else they can do.
type Callable[P, R any] interface {
	Call(P) R
}

// Guide is a stateless marker that pins the payload and result types at a
// Procure call site.
//
// A free function exposes its signature directly, so Procure needs no help.
// A call-operator object or a named method does not: the compiler cannot
// deduce P and R from the object alone, and a method name is just a string.
// Passing Of[P, R]() resolves the type parameters without the caller spelling
// them out on the Procure call itself.
//
// Guide carries no data, compares to nothing and has no runtime effect.
type Guide[P, R any] struct{}

// Of produces the Guide for a payload/result pair.
func Of[P, R any]() Guide[P, R] {
	return Guide[P, R]{}
}
