// SPDX-License-Identifier: MIT
// Package: geom
//
// Purpose:
//   - Single source of truth for argument checks shared by all types
//     (nil objects, 2D/3D promotion, dimension equality).
//   - Bridges between *Vector/*Matrix and gonum's spatial/r3 value types,
//     which carry the Line/Plane/Segment formulas, plus the few
//     tolerance-aware helpers r3 has no notion of.
//
// Note:
//   - Validators return plain sentinels; call sites wrap with geomErrorf.

package geom

import (
	"math"
	"strconv"

	"gonum.org/v1/gonum/spatial/r3"
)

// validateObject rejects a nil interface and typed nil pointers.
func validateObject(obj Object) error {
	switch o := obj.(type) {
	case nil:
		return ErrNilObject
	case *Vector:
		if o == nil {
			return ErrNilObject
		}
	case *Line:
		if o == nil {
			return ErrNilObject
		}
	case *Plane:
		if o == nil {
			return ErrNilObject
		}
	case *LineSegment:
		if o == nil {
			return ErrNilObject
		}
	}

	return nil
}

// validateSameLen checks that two element slices can be combined pairwise.
func validateSameLen(a, b []float64) error {
	if len(a) != len(b) {
		return ErrDimensionMismatch
	}

	return nil
}

// toR3 promotes a 2D vector to 3D by appending 0 and copies a 3D vector.
// Any other dimension is ErrDimensionMismatch.
func toR3(v *Vector) (r3.Vec, error) {
	if v == nil {
		return r3.Vec{}, ErrNilObject
	}
	switch len(v.elements) {
	case 2:
		return r3.Vec{X: v.elements[0], Y: v.elements[1]}, nil
	case 3:
		return r3.Vec{X: v.elements[0], Y: v.elements[1], Z: v.elements[2]}, nil
	default:
		return r3.Vec{}, ErrDimensionMismatch
	}
}

// fromR3 materializes a fresh 3D *Vector.
func fromR3(a r3.Vec) *Vector {
	return &Vector{elements: []float64{a.X, a.Y, a.Z}}
}

// coords and fromCoords give index access to the components.
func coords(a r3.Vec) [3]float64 { return [3]float64{a.X, a.Y, a.Z} }

func fromCoords(c [3]float64) r3.Vec { return r3.Vec{X: c[0], Y: c[1], Z: c[2]} }

// mirror returns the reflection of p through the point c: 2c - p.
func mirror(p, c r3.Vec) r3.Vec { return r3.Sub(r3.Scale(2, c), p) }

// eql compares coordinates within the current tolerance.
func eql(a, b r3.Vec) bool {
	eps := epsilon()

	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps && math.Abs(a.Z-b.Z) <= eps
}

// angleBetween returns the unsigned angle between two non-zero directions.
// Callers guarantee non-zero moduli (unit directions and normals).
func angleBetween(a, b r3.Vec) float64 {
	return math.Acos(clampUnit(r3.Cos(a, b)))
}

// isParallelAngle reports theta ≈ 0 or theta ≈ π.
func isParallelAngle(theta float64) bool {
	eps := epsilon()

	return math.Abs(theta) <= eps || math.Abs(theta-math.Pi) <= eps
}

// clampUnit guards acos against roundoff overshoot.
func clampUnit(x float64) float64 {
	if x < -1 {
		return -1
	}
	if x > 1 {
		return 1
	}

	return x
}

// rotateAbout applies m to p around the fixed point c: c + m·(p - c).
func rotateAbout(m *r3.Mat, p, c r3.Vec) r3.Vec {
	return r3.Add(c, m.MulVec(r3.Sub(p, c)))
}

// toR3Mat copies a 3×3 Matrix into an r3.Mat.
func toR3Mat(r *Matrix) (*r3.Mat, error) {
	if r == nil {
		return nil, ErrNilObject
	}
	if r.r != 3 || r.c != 3 {
		return nil, ErrDimensionMismatch
	}
	data := make([]float64, 9)
	copy(data, r.data)

	return r3.NewMat(data), nil
}

// formatFloat renders x the way String expects: shortest round-trip
// decimal, no negative zero, and exponent form only for magnitudes below
// 1e-6 or from 1e21 up.
func formatFloat(x float64) string {
	if x == 0 {
		return "0"
	}
	if a := math.Abs(x); a < 1e-6 || a >= 1e21 {
		return strconv.FormatFloat(x, 'g', -1, 64)
	}

	return strconv.FormatFloat(x, 'f', -1, 64)
}
