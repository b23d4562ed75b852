package args

import "sync"

var nullArguments = sync.OnceValue(func() *Arguments {
	return &Arguments{
		variant:    variantNull,
		positional: []any{},
		keyed:      map[Key]any{},
	}
})

// Null returns the process-wide bundle that stands for "no arguments".
// Every call returns the same pointer.
func Null() *Arguments {
	return nullArguments()
}
