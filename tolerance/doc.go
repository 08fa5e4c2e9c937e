// SPDX-License-Identifier: MIT

// Package tolerance holds the numeric tolerance context shared by every
// approximate comparison in lvgeom.
//
// What & Why:
//
//	Floating-point geometry cannot rely on exact equality. Two points are
//	"the same" when their coordinates differ by at most epsilon, a line
//	"contains" a point when the perpendicular distance is at most epsilon,
//	and so on. This package owns that epsilon.
//
// Two ways to use it:
//
//   - Process-wide: Epsilon / SetEpsilon / Reset. Every geom predicate reads
//     the current value at call time, so a change affects all subsequent
//     comparisons. The value is stored atomically.
//   - Explicit: a Tolerance value (Current, Resolve(opts...)) can be passed
//     to the *Within variants in geom when a caller wants a private epsilon.
//
// Complexity:
//
//	All operations are O(1).
package tolerance
