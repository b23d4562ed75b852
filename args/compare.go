package args

import (
	"reflect"
)

// Comparison is the result of Compare.
//
// Go has no three-valued boolean, so the "these values cannot be compared"
// outcome gets its own constant instead of collapsing into false.
type Comparison int

const (
	// Incomparable means other is not a bundle of the same variant.
	Incomparable Comparison = iota
	// Different means the bundles are of the same variant but differ in a field.
	Different
	// Same means positional, keyed and block are all equal.
	Same
)

func (c Comparison) String() string {
	switch c {
	case Different:
		return "different"
	case Same:
		return "same"
	default:
		return "incomparable"
	}
}

// Compare compares a with other.
// Fields are checked in order positional, keyed, block, stopping at the first mismatch.
// Stored values are compared with reflect.DeepEqual semantics; blocks by identity.
func (a *Arguments) Compare(other any) Comparison {
	o, ok := other.(*Arguments)
	if !ok || o == nil || o.variant != a.variant {
		return Incomparable
	}
	if !positionalEqual(a.positional, o.positional) {
		return Different
	}
	if !keyedEqual(a.keyed, o.keyed) {
		return Different
	}
	if a.block != o.block {
		return Different
	}
	return Same
}

// Equal reports whether Compare returns Same.
func (a *Arguments) Equal(other any) bool {
	return a.Compare(other) == Same
}

// StrictEqual behaves exactly like Equal. It is the method hash tables call
// to resolve collisions between keys with the same Hash.
func (a *Arguments) StrictEqual(other any) bool {
	return a.Compare(other) == Same
}

func positionalEqual(a, b []any) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !reflect.DeepEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

func keyedEqual(a, b map[Key]any) bool {
	if len(a) != len(b) {
		return false
	}
	for k, av := range a {
		bv, ok := b[k]
		if !ok || !reflect.DeepEqual(av, bv) {
			return false
		}
	}
	return true
}
