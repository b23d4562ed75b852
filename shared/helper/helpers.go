package helper

import (
	"errors"
	"fmt"
)

// ErrUnexpectedType is wrapped by GetTypedValueOf when the fetched value is not a T.
var ErrUnexpectedType = errors.New("unexpected type")

// GetTypedValueOf calls getFn and asserts its result to T.
// A getter error is wrapped as-is; a value of the wrong dynamic type yields
// an error wrapping ErrUnexpectedType that names both types.
func GetTypedValueOf[T any](getFn func() (any, error)) (T, error) {
	var zero T

	res, err := getFn()
	if err != nil {
		return zero, fmt.Errorf("failed to get value: %w", err)
	}

	val, ok := res.(T)
	if !ok {
		return zero, fmt.Errorf("%w: got %T, want %T", ErrUnexpectedType, res, zero)
	}

	return val, nil
}

// GetTypedValueOf2 calls a comma-ok getter and asserts its result to T.
// ok is false both when getFn reports nothing was found and when the found
// value is not a T. A stored nil never asserts to T, so it also yields ok false.
func GetTypedValueOf2[T any](getFn func() (any, bool)) (res T, ok bool) {
	var raw any
	if raw, ok = getFn(); ok {
		res, ok = raw.(T)
	}
	return
}

// MustGetTypedValue is the panic-on-failure variant of GetTypedValueOf.
// Use when a missing or mistyped value is a programming error.
func MustGetTypedValue[T any](getFn func() (any, error)) T {
	res, err := GetTypedValueOf[T](getFn)
	if err != nil {
		panic(err)
	}
	return res
}
