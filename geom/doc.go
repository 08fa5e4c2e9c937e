// SPDX-License-Identifier: MIT

// Package geom models vectors, matrices, lines, planes and line segments and
// answers geometric questions about them: parallelism, perpendicularity,
// containment, intersection, distance, closest point, rotation, reflection.
//
// What & Why:
//
//	Every approximate comparison (Eql, Contains, IsParallelTo, Rank, ...) is
//	made against the tolerance context of package tolerance, read at call
//	time. Exact floating-point equality is never used for geometric
//	predicates.
//
//	Vector, Line, Plane and LineSegment form a closed variant (Object). Binary
//	operations switch on the argument's concrete type and, where the formula
//	is symmetric, forward to the argument's own method so that each formula
//	lives in exactly one place (Line.DistanceFrom(*Plane) calls
//	Plane.DistanceFrom(*Line)).
//
// Failure model:
//
//	Nothing panics on user input. Fallible operations return (value, error)
//	with package sentinels (errors.Is). Predicates whose relation is not
//	defined for the given pair (a plane "containing" a plane) return
//	ErrUndefined, the third state next to true and false.
//
// Values:
//
//	All results are freshly allocated; no two objects share mutable state.
//	The canonical constants (I, J, K, LineX/Y/Z, PlaneXY/YZ/ZX) are frozen:
//	mutating them fails with ErrImmutable, while Dup returns an independent,
//	mutable copy.
//
// Indexing is 0-based throughout.
package geom
