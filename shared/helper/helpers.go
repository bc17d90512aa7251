package helper

import (
	"fmt"
)

// GetTypedValueOf safely asserts the result of a getter function to the
// expected type T. Returns an error if the type assertion fails.
//
// The registry stores adapters erased to any; this is the narrow waist
// through which they come back out typed.
func GetTypedValueOf[T any](getFn func() (any, error)) (T, error) {
	var zero T

	res, err := getFn()
	if err != nil {
		return zero, fmt.Errorf("failed to get value: %w", err)
	}

	val, ok := res.(T)
	if !ok {
		return zero, fmt.Errorf("unexpected type: %T", res)
	}

	return val, nil
}

// GetTypedValueOf2 is the ok-style variant of GetTypedValueOf for getters
// that report presence instead of an error.
func GetTypedValueOf2[T any](getFn func() (any, bool)) (res T, ok bool) {
	var raw any
	if raw, ok = getFn(); ok {
		res, ok = raw.(T)
	}
	return
}

// MustGetTypedValue is the panic-on-failure variant of GetTypedValueOf.
// Use when a failed assertion means the caller's bookkeeping is broken
// (e.g., a registry entry stored under the wrong identity).
func MustGetTypedValue[T any](getFn func() (any, error)) T {
	res, err := GetTypedValueOf[T](getFn)
	if err != nil {
		panic(err)
	}
	return res
}
