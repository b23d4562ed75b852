package purefn

import (
	"github.com/on-the-ground/callargs/args"
)

// Tableize memoizes pureFn by its whole argument bundle in a Table of maxTableSize entries.
func Tableize[O any](
	pureFn func(*args.Arguments) O,
	maxTableSize uint32,
	opts ...TableOption,
) func(*args.Arguments) O {
	return TableizeWith(pureFn, NewTable[O](maxTableSize, opts...))
}

// TableizeWith memoizes pureFn in the given store.
func TableizeWith[O any](
	pureFn func(*args.Arguments) O,
	memo Store[O],
) func(*args.Arguments) O {
	return func(a *args.Arguments) O {
		v, ok := memo.Load(a)
		if !ok {
			v = pureFn(a)
			memo.Store(a, v)
		}
		return v
	}
}

func positional(vals ...any) *args.Arguments {
	return args.New(vals, nil, nil)
}

// argAt is only called on bundles built by positional, so the assertion cannot fail.
func argAt[T any](a *args.Arguments, i int) T {
	v, _ := args.ArgAs[T](a, i)
	return v
}

func TableizeI1O1[I1, O1 any](
	pureFn func(I1) O1,
	maxTableSize uint32,
	opts ...TableOption,
) func(I1) O1 {
	tableized := Tableize(
		func(a *args.Arguments) O1 {
			return pureFn(argAt[I1](a, 0))
		},
		maxTableSize, opts...,
	)
	return func(i1 I1) O1 {
		return tableized(positional(i1))
	}
}

func TableizeI2O1[I1, I2, O1 any](
	pureFn func(I1, I2) O1,
	maxTableSize uint32,
	opts ...TableOption,
) func(I1, I2) O1 {
	tableized := Tableize(
		func(a *args.Arguments) O1 {
			return pureFn(argAt[I1](a, 0), argAt[I2](a, 1))
		},
		maxTableSize, opts...,
	)
	return func(i1 I1, i2 I2) O1 {
		return tableized(positional(i1, i2))
	}
}

func TableizeI3O1[I1, I2, I3, O1 any](
	pureFn func(I1, I2, I3) O1,
	maxTableSize uint32,
	opts ...TableOption,
) func(I1, I2, I3) O1 {
	tableized := Tableize(
		func(a *args.Arguments) O1 {
			return pureFn(argAt[I1](a, 0), argAt[I2](a, 1), argAt[I3](a, 2))
		},
		maxTableSize, opts...,
	)
	return func(i1 I1, i2 I2, i3 I3) O1 {
		return tableized(positional(i1, i2, i3))
	}
}

func TableizeI4O1[I1, I2, I3, I4, O1 any](
	pureFn func(I1, I2, I3, I4) O1,
	maxTableSize uint32,
	opts ...TableOption,
) func(I1, I2, I3, I4) O1 {
	tableized := Tableize(
		func(a *args.Arguments) O1 {
			return pureFn(argAt[I1](a, 0), argAt[I2](a, 1), argAt[I3](a, 2), argAt[I4](a, 3))
		},
		maxTableSize, opts...,
	)
	return func(i1 I1, i2 I2, i3 I3, i4 I4) O1 {
		return tableized(positional(i1, i2, i3, i4))
	}
}

type result[O1, O2 any] struct {
	O1 O1
	O2 O2
}

func TableizeI1O2[I1, O1, O2 any](
	pureFn func(I1) (O1, O2),
	maxTableSize uint32,
	opts ...TableOption,
) func(I1) (O1, O2) {
	tableized := Tableize(
		func(a *args.Arguments) result[O1, O2] {
			o1, o2 := pureFn(argAt[I1](a, 0))
			return result[O1, O2]{O1: o1, O2: o2}
		},
		maxTableSize, opts...,
	)
	return func(i1 I1) (O1, O2) {
		res := tableized(positional(i1))
		return res.O1, res.O2
	}
}

func TableizeI2O2[I1, I2, O1, O2 any](
	pureFn func(I1, I2) (O1, O2),
	maxTableSize uint32,
	opts ...TableOption,
) func(I1, I2) (O1, O2) {
	tableized := Tableize(
		func(a *args.Arguments) result[O1, O2] {
			o1, o2 := pureFn(argAt[I1](a, 0), argAt[I2](a, 1))
			return result[O1, O2]{O1: o1, O2: o2}
		},
		maxTableSize, opts...,
	)
	return func(i1 I1, i2 I2) (O1, O2) {
		res := tableized(positional(i1, i2))
		return res.O1, res.O2
	}
}

func TableizeI3O2[I1, I2, I3, O1, O2 any](
	pureFn func(I1, I2, I3) (O1, O2),
	maxTableSize uint32,
	opts ...TableOption,
) func(I1, I2, I3) (O1, O2) {
	tableized := Tableize(
		func(a *args.Arguments) result[O1, O2] {
			o1, o2 := pureFn(argAt[I1](a, 0), argAt[I2](a, 1), argAt[I3](a, 2))
			return result[O1, O2]{O1: o1, O2: o2}
		},
		maxTableSize, opts...,
	)
	return func(i1 I1, i2 I2, i3 I3) (O1, O2) {
		res := tableized(positional(i1, i2, i3))
		return res.O1, res.O2
	}
}

func TableizeI4O2[I1, I2, I3, I4, O1, O2 any](
	pureFn func(I1, I2, I3, I4) (O1, O2),
	maxTableSize uint32,
	opts ...TableOption,
) func(I1, I2, I3, I4) (O1, O2) {
	tableized := Tableize(
		func(a *args.Arguments) result[O1, O2] {
			o1, o2 := pureFn(argAt[I1](a, 0), argAt[I2](a, 1), argAt[I3](a, 2), argAt[I4](a, 3))
			return result[O1, O2]{O1: o1, O2: o2}
		},
		maxTableSize, opts...,
	)
	return func(i1 I1, i2 I2, i3 I3, i4 I4) (O1, O2) {
		res := tableized(positional(i1, i2, i3, i4))
		return res.O1, res.O2
	}
}
