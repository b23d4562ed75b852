// Package args captures the arguments of a call as a single immutable value.
//
// An Arguments bundle holds three things:
//   - positional values, in order,
//   - keyed values, addressed by Key,
//   - an optional trailing Block.
//
// Bundles compare structurally and hash consistently with that comparison,
// which makes them usable as memoization keys (see package purefn), as a
// record of a deferred invocation, or as the captured input of a test spy.
//
// There is exactly one "no arguments were captured" bundle per process,
// returned by Null. It is distinguished from an explicitly constructed empty
// bundle by its variant, not by its contents:
//
//	args.New(nil, nil, nil).Equal(args.Null()) // false
//	args.Null().Equal(args.Null())             // true
//
// Example:
//
//	a := args.New([]any{"foo"}, map[args.Key]any{"limit": 10}, nil)
//	first, _ := a.Get(0)                 // "foo"
//	limit, _ := a.Get(args.Key("limit")) // 10
//	_, err := a.Get("limit")             // *InvalidKeyTypeError
package args
