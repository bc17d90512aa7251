package procedure

import (
	"fmt"
	"reflect"

	"github.com/on-the-ground/procedure_ive_go/procedure/internal/identity"
)

// methodic invokes one method of a borrowed object. It is a distinct adapter
// kind from callably so that introspective equality never confuses a bound
// method with a plain callable, even when both forward to the same code.
type methodic[P, R any] struct {
	call func(P) R
}

func (m methodic[P, R]) Invoke(p P) R {
	return m.call(p)
}

// comparablyMethodic is the comparable variant of methodic. Its identity is
// the pair (object address, method descriptor), not a single code pointer.
type comparablyMethodic[P, R any] struct {
	call func(P) R
	id   identity.Key
}

func (m *comparablyMethodic[P, R]) Invoke(p P) R {
	return m.call(p)
}

// Equals follows the same dual strategy as the callable adapter, but the
// introspective identity compared is the object/descriptor pair.
func (m *comparablyMethodic[P, R]) Equals(other ComparablyProcedural[P, R]) bool {
	if !settings.introspection {
		return identity.OfErased(m) == identity.OfErased(other)
	}
	o, ok := other.(*comparablyMethodic[P, R])
	if !ok {
		return false
	}
	return m.id == o.id
}

// resolveNamed resolves a method name on object into a typed call function
// and the descriptor identity of the resolved method.
//
// With type checks enabled the resolved method must have exactly the shape
// func(P) R once bound; anything else is reported as an invalid descriptor.
// With type checks disabled the method is invoked through reflection and a
// shape mismatch surfaces as a panic at invocation time, not before.
func resolveNamed[P, R any](object any, name string) (func(P) R, uintptr, error) {
	if object == nil {
		return nil, 0, fmt.Errorf("%w: nil object for method %q", ErrInvalidMethodDescriptor, name)
	}
	mt, ok := reflect.TypeOf(object).MethodByName(name)
	if !ok {
		return nil, 0, fmt.Errorf("%w: %T has no method %q", ErrInvalidMethodDescriptor, object, name)
	}
	// The method expression func, unlike a reflected method value, has a code
	// pointer unique to this method.
	descriptor := mt.Func.Pointer()

	bound := reflect.ValueOf(object).Method(mt.Index)
	if typed, ok := bound.Interface().(func(P) R); ok {
		return typed, descriptor, nil
	}
	if settings.typeChecks {
		var p P
		var r R
		return nil, 0, fmt.Errorf(
			"%w: method %q on %T is %s, want func(%T) %T",
			ErrInvalidMethodDescriptor, name, object, bound.Type(), p, r,
		)
	}
	call := func(p P) R {
		out := bound.Call([]reflect.Value{reflect.ValueOf(p)})
		return out[0].Interface().(R)
	}
	return call, descriptor, nil
}
