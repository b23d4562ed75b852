package args

import (
	"fmt"
	"maps"
	"slices"
)

// Key identifies a keyed argument.
// It is a distinct type so that a plain string is never mistaken for one by Get.
type Key string

// variant tags the concrete kind of a bundle.
type variant uint8

const (
	variantPlain variant = iota
	variantNull
)

func (v variant) String() string {
	switch v {
	case variantNull:
		return "args.Null"
	default:
		return "args.Arguments"
	}
}

// Arguments is an immutable bundle of positional values, keyed values and an
// optional trailing Block.
type Arguments struct {
	variant    variant
	positional []any
	keyed      map[Key]any
	block      *Block
}

// New captures the given arguments. The slice and map are copied,
// so later changes to them are not observed by the bundle.
// A nil positional or keyed argument is stored as an empty one.
func New(positional []any, keyed map[Key]any, block *Block) *Arguments {
	return &Arguments{
		variant:    variantPlain,
		positional: normalizePositional(positional),
		keyed:      normalizeKeyed(keyed),
		block:      block,
	}
}

func normalizePositional(p []any) []any {
	if p == nil {
		return []any{}
	}
	return slices.Clone(p)
}

func normalizeKeyed(k map[Key]any) map[Key]any {
	if k == nil {
		return map[Key]any{}
	}
	return maps.Clone(k)
}

// Positional returns a copy of the positional values.
func (a *Arguments) Positional() []any {
	return slices.Clone(a.positional)
}

// Keyed returns a copy of the keyed values.
func (a *Arguments) Keyed() map[Key]any {
	return maps.Clone(a.keyed)
}

// Block returns the trailing callable, or nil when none was captured.
func (a *Arguments) Block() *Block {
	return a.block
}

// Len returns the number of positional values.
func (a *Arguments) Len() int {
	return len(a.positional)
}

// IsNull reports whether a is the bundle returned by Null.
// It is a variant check; an explicitly constructed empty bundle is not null.
func (a *Arguments) IsNull() bool {
	return a.variant == variantNull
}

// Any reports whether at least one positional value, keyed value or block was captured.
func (a *Arguments) Any() bool {
	return len(a.positional) > 0 || len(a.keyed) > 0 || a.block != nil
}

// None is the negation of Any.
func (a *Arguments) None() bool {
	return !a.Any()
}

// Empty is an alias of None.
func (a *Arguments) Empty() bool {
	return a.None()
}

// Blank is an alias of None.
func (a *Arguments) Blank() bool {
	return a.None()
}

// Present is an alias of Any.
func (a *Arguments) Present() bool {
	return a.Any()
}

func (a *Arguments) String() string {
	return fmt.Sprintf("%s{positional: %v, keyed: %v, block: %v}",
		a.variant, a.positional, a.keyed, a.block)
}
