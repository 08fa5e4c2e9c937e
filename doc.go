// Package lvgeom is a small computational-geometry toolkit: vectors,
// matrices, lines, planes and line segments in 2D and 3D, compared under a
// single configurable tolerance.
//
// What is inside?
//
//	A pure Go library that brings together:
//		• Vectors of any dimension: arithmetic, dot/cross products, angles
//		• Dense matrices: products, determinant, rank, inverse, rotations
//		• Infinite lines and planes: containment, distance, intersection
//		• Finite line segments clamped against the same primitives
//		• Planar polygons with convex/reflex vertex classification
//
// Everything is organized under three subpackages:
//
//	tolerance/: the shared epsilon (atomic global + explicit Tolerance values)
//	geom/:      Vector, Matrix, Line, Plane, LineSegment and rotations
//	polygon/:   closed vertex cycles on a plane
//
// Quick sketch:
//
//	      z
//	      │   · P
//	      │  /
//	      │ / l
//	      │/______ y
//	     /
//	    x
//
//	l := geom.LineZ
//	d, _ := l.DistanceFrom(geom.NewVector(3, 4, 9)) // 5
//
// Values returned by the API are fresh copies; the named constants (I, J, K,
// LineX, PlaneXY, ...) are frozen and refuse mutation.
//
//	go get github.com/katalvlaran/lvgeom/geom
package lvgeom
