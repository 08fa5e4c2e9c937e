// SPDX-License-Identifier: MIT
// Package geom_test contains test helpers
//
// Purpose:
//   - Small constructors that fail the test instead of returning errors.
//   - Tolerance-aware comparisons with readable failure messages.

package geom_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvgeom/geom"
)

// delta is the absolute slack for float comparisons in tests.
const delta = 1e-9

// vec is shorthand for geom.NewVector.
func vec(els ...float64) *geom.Vector { return geom.NewVector(els...) }

// MustMatrix builds a matrix from row literals or fails the test.
func MustMatrix(t testing.TB, rows ...[]float64) *geom.Matrix {
	t.Helper()
	m, err := geom.NewMatrix(rows)
	require.NoError(t, err)

	return m
}

// MustLine builds a line or fails the test.
func MustLine(t testing.TB, anchor, direction *geom.Vector) *geom.Line {
	t.Helper()
	l, err := geom.NewLine(anchor, direction)
	require.NoError(t, err)

	return l
}

// MustPlane builds a plane or fails the test.
func MustPlane(t testing.TB, anchor, normal *geom.Vector) *geom.Plane {
	t.Helper()
	p, err := geom.NewPlane(anchor, normal)
	require.NoError(t, err)

	return p
}

// MustSegment builds a segment or fails the test.
func MustSegment(t testing.TB, start, end *geom.Vector) *geom.LineSegment {
	t.Helper()
	s, err := geom.NewLineSegment(start, end)
	require.NoError(t, err)

	return s
}

// requireVecEql fails unless got equals want within the current tolerance.
func requireVecEql(t testing.TB, want, got *geom.Vector) {
	t.Helper()
	require.NotNil(t, got)
	require.Truef(t, want.Eql(got), "want %v, got %v", want, got)
}

// requireMatEql fails unless got equals want within the current tolerance.
func requireMatEql(t testing.TB, want, got *geom.Matrix) {
	t.Helper()
	require.NotNil(t, got)
	require.Truef(t, want.Eql(got), "want\n%v\ngot\n%v", want, got)
}

// randomCube returns a point uniformly inside [-50, 50)³.
func randomCube(rng *rand.Rand) *geom.Vector {
	return geom.RandomVector(3, rng).Multiply(100).Map(func(x float64, _ int) float64 { return x - 50 })
}
