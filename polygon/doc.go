// SPDX-License-Identifier: MIT

// Package polygon holds a closed, planar vertex cycle and classifies its
// vertices as convex or reflex.
//
// The cycle is a container/ring of *geom.Vector (3D; 2D input is padded)
// and the supporting plane is computed once with geom.FromPoints, so the
// vertex list must be coplanar. The plane's normal fixes orientation: for an
// anticlockwise list it points toward the viewer, and a vertex is convex when
// its turn agrees with that normal.
//
// Vertices are looked up by coordinates within the current tolerance; the
// first matching vertex in cycle order wins.
package polygon
