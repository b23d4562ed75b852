package args

import (
	"math"

	"github.com/on-the-ground/callargs/shared/helper"
)

// Get looks up an argument by key.
//
//   - An integer key indexes the positional values. Negative keys count from
//     the end. An index out of range yields (nil, nil).
//   - A Key looks up the keyed values. A missing key yields (nil, nil).
//   - Any other key, including a plain string, yields an *InvalidKeyTypeError.
//
// Use Arg or Kwarg to tell a missing argument from a stored nil.
func (a *Arguments) Get(key any) (any, error) {
	if k, ok := key.(Key); ok {
		v, _ := a.Kwarg(k)
		return v, nil
	}
	idx, ok := toIndex(key)
	if !ok {
		return nil, NewInvalidKeyTypeError(key)
	}
	v, _ := a.Arg(idx)
	return v, nil
}

// Arg returns the positional value at i. Negative i counts from the end.
func (a *Arguments) Arg(i int) (any, bool) {
	if i < 0 {
		i += len(a.positional)
	}
	if i < 0 || i >= len(a.positional) {
		return nil, false
	}
	return a.positional[i], true
}

// Kwarg returns the keyed value for k.
func (a *Arguments) Kwarg(k Key) (any, bool) {
	v, ok := a.keyed[k]
	return v, ok
}

// toIndex accepts every integer kind. Values that do not fit in an int are
// mapped to an index that is always out of range.
func toIndex(key any) (int, bool) {
	switch k := key.(type) {
	case int:
		return k, true
	case int8:
		return int(k), true
	case int16:
		return int(k), true
	case int32:
		return int(k), true
	case int64:
		if k > math.MaxInt || k < math.MinInt {
			return math.MaxInt, true
		}
		return int(k), true
	case uint:
		return clampUnsigned(uint64(k)), true
	case uint8:
		return int(k), true
	case uint16:
		return int(k), true
	case uint32:
		return clampUnsigned(uint64(k)), true
	case uint64:
		return clampUnsigned(k), true
	case uintptr:
		return clampUnsigned(uint64(k)), true
	default:
		return 0, false
	}
}

func clampUnsigned(u uint64) int {
	if u > math.MaxInt {
		return math.MaxInt
	}
	return int(u)
}

// GetAs looks up key with Get and asserts the result to T.
func GetAs[T any](a *Arguments, key any) (T, error) {
	return helper.GetTypedValueOf[T](func() (any, error) {
		return a.Get(key)
	})
}

// MustGetAs is the panic-on-failure variant of GetAs.
func MustGetAs[T any](a *Arguments, key any) T {
	return helper.MustGetTypedValue[T](func() (any, error) {
		return a.Get(key)
	})
}

// ArgAs returns the positional value at i asserted to T.
// ok is false when i is out of range or the value is not a T.
func ArgAs[T any](a *Arguments, i int) (T, bool) {
	return helper.GetTypedValueOf2[T](func() (any, bool) {
		return a.Arg(i)
	})
}

// KwargAs returns the keyed value for k asserted to T.
func KwargAs[T any](a *Arguments, k Key) (T, bool) {
	return helper.GetTypedValueOf2[T](func() (any, bool) {
		return a.Kwarg(k)
	})
}
