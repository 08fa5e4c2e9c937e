// SPDX-License-Identifier: MIT

// Package geom - rotation matrices.
//
// Conventions:
//   - Positive angles are anticlockwise when looking down the axis toward the
//     origin (right-hand rule).
//   - Arbitrary-axis 3D rotations come from r3.NewRotation (unit quaternion)
//     and are applied as its 3×3 matrix.

package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Rotation returns the 2×2 anticlockwise rotation by theta radians.
func Rotation(theta float64) *Matrix {
	s, c := math.Sincos(theta)

	return &Matrix{r: 2, c: 2, data: []float64{c, -s, s, c}}
}

// RotationAbout returns the 3×3 rotation by theta radians about axis.
// Implementation:
//   - Stage 1: axis must be 3D (ErrNot3D) and non-zero (ErrZeroVector).
//   - Stage 2: build the quaternion rotation and copy out its matrix.
func RotationAbout(theta float64, axis *Vector) (*Matrix, error) {
	if axis == nil {
		return nil, geomErrorf(opRotation, ErrNilObject)
	}
	if len(axis.elements) != 3 {
		return nil, geomErrorf(opRotation, ErrNot3D)
	}
	a := r3.Vec{X: axis.elements[0], Y: axis.elements[1], Z: axis.elements[2]}
	if r3.Norm(a) == 0 {
		return nil, geomErrorf(opRotation, ErrZeroVector)
	}

	return FromGonum(axisRotation(theta, a)), nil
}

// RotationX returns the rotation by theta about the x axis.
func RotationX(theta float64) *Matrix {
	s, c := math.Sincos(theta)

	return &Matrix{r: 3, c: 3, data: []float64{
		1, 0, 0,
		0, c, -s,
		0, s, c,
	}}
}

// RotationY returns the rotation by theta about the y axis.
func RotationY(theta float64) *Matrix {
	s, c := math.Sincos(theta)

	return &Matrix{r: 3, c: 3, data: []float64{
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	}}
}

// RotationZ returns the rotation by theta about the z axis.
func RotationZ(theta float64) *Matrix {
	s, c := math.Sincos(theta)

	return &Matrix{r: 3, c: 3, data: []float64{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	}}
}

// axisRotation returns the rotation by theta about axis (normalized by r3).
// The axis must be non-zero; public callers check it first.
func axisRotation(theta float64, axis r3.Vec) *r3.Mat {
	return r3.NewRotation(theta, axis).Mat()
}
