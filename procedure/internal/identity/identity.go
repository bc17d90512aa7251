// Package identity extracts comparable identity keys from borrowed
// procedures. A key is the pair of addresses that distinguishes one stored
// procedure from another: the object address (zero for free functions) and
// the code address of the function or method.
package identity

import (
	"encoding/binary"
	"reflect"

	"github.com/cespare/xxhash/v2"
)

// Key identifies one stored procedure.
//
// Keys compare with ==. A zero Object field means the procedure is not bound
// to an object; a zero Method field means the identity is the object alone.
type Key struct {
	Object uintptr
	Method uintptr
}

// OfFunc returns the identity of a function or closure value: its code
// address.
//
// Re-procuring the same stored function value yields the same key. The
// granularity is the code address, so closures created from one literal are
// indistinguishable from each other, as are method values of one method over
// different receivers; the method adapters exist for the receiver-sensitive
// case.
func OfFunc(fn any) Key {
	return Key{Method: reflect.ValueOf(fn).Pointer()}
}

// OfObject returns the identity of a call-operator object together with the
// code address of its Call method.
//
// The object must be pointer-shaped for its identity to be an address; a
// value object yields a zero Object field and only distinguishes by type.
// The comparable Procure variants document this precondition.
func OfObject(object any, call any) Key {
	return Key{
		Object: pointerOf(object),
		Method: reflect.ValueOf(call).Pointer(),
	}
}

// OfMethod returns the identity of an object/method-descriptor pair.
// descriptor is the code address of the method expression or, for named
// descriptors, of the reflected method function.
func OfMethod(object any, descriptor uintptr) Key {
	return Key{
		Object: pointerOf(object),
		Method: descriptor,
	}
}

// OfErased returns the address identity of an erased adapter value itself.
// This is the degraded identity used when introspective equality is disabled.
func OfErased(v any) uintptr {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Func, reflect.Map, reflect.Chan:
		return rv.Pointer()
	default:
		return 0
	}
}

// Sum64 digests the key for bucketing and log correlation.
func (k Key) Sum64() uint64 {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], uint64(k.Object))
	binary.LittleEndian.PutUint64(buf[8:], uint64(k.Method))
	return xxhash.Sum64(buf[:])
}

func pointerOf(object any) uintptr {
	rv := reflect.ValueOf(object)
	switch rv.Kind() {
	case reflect.Pointer, reflect.UnsafePointer:
		return rv.Pointer()
	default:
		return 0
	}
}
