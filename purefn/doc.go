// Package purefn provides memoization utilities for pure functions.
//
// Tableize is not just a utility to add memoization.
// Tableize is a tool that *forces the developer to ask*:
//
//	→ "Is this function really pure?"
//	→ "Can this computation be treated as a lazy table?"
//
// Calls are keyed by their captured arguments (see package args). A bundle
// hashes structurally, so inputs do not need to be comparable: slices, maps
// and structs containing them work as memo keys.
//
// Features:
//   - Tableize / TableizeWith: memoize a function of a whole *args.Arguments.
//   - TableizeI1O1 to TableizeI4O2: typed memoizers for common arities.
//   - Table: a bounded hash table with dual-generation rotation that only
//     compares keys whose hashes collide.
//   - RistrettoStore: a Store backed by a ristretto cache.
//
// WARNING: Do not use Tableize on impure functions (e.g., those depending on time, I/O, etc).
package purefn
