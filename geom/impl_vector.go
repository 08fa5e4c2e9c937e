// SPDX-License-Identifier: MIT

// Package geom - Vector: variable-length numeric tuple.
//
// Purpose:
//   - Arithmetic (Add, Subtract, Multiply, Dot, Cross) with explicit
//     dimension checks instead of panics.
//   - Angles and the parallel/anti-parallel/perpendicular predicates under
//     the tolerance context.
//   - Affine transforms (Rotate, ReflectionIn) that dispatch on the pivot's
//     kind.
//
// Values:
//   - Every transforming method returns a new Vector. SetElements and Set are
//     the only in-place mutations; on the frozen constants I, J, K they fail
//     with ErrImmutable.

package geom

import (
	"math"
	"math/rand"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lvgeom/tolerance"
)

// Vector is an ordered sequence of float64 values (dimension 0..N).
type Vector struct {
	elements []float64
	frozen   bool // canonical constants reject mutation
}

// Canonical unit vectors. Frozen; use Dup for a mutable copy.
var (
	I = frozenVector(1, 0, 0)
	J = frozenVector(0, 1, 0)
	K = frozenVector(0, 0, 1)
)

func frozenVector(els ...float64) *Vector {
	v := NewVector(els...)
	v.frozen = true

	return v
}

// epsilon is the tolerance every comparison in this package reads.
func epsilon() float64 { return tolerance.Epsilon() }

// NewVector returns a Vector holding a copy of els.
// Complexity: O(n).
func NewVector(els ...float64) *Vector {
	cp := make([]float64, len(els))
	copy(cp, els)

	return &Vector{elements: cp}
}

// ZeroVector returns the n-dimensional zero vector (n < 0 is treated as 0).
func ZeroVector(n int) *Vector {
	if n < 0 {
		n = 0
	}

	return &Vector{elements: make([]float64, n)}
}

// RandomVector returns an n-dimensional vector with elements in [0, 1).
// rng may be nil, in which case the package-level source is used.
func RandomVector(n int, rng *rand.Rand) *Vector {
	v := ZeroVector(n)
	for i := range v.elements {
		if rng != nil {
			v.elements[i] = rng.Float64()
		} else {
			v.elements[i] = rand.Float64()
		}
	}

	return v
}

// At returns the i-th element (0-based) or ErrOutOfRange.
func (v *Vector) At(i int) (float64, error) {
	if i < 0 || i >= len(v.elements) {
		return 0, geomErrorf(opVectorAt, ErrOutOfRange)
	}

	return v.elements[i], nil
}

// Dimensions returns the number of elements.
func (v *Vector) Dimensions() int { return len(v.elements) }

// Elements returns a copy of the elements.
func (v *Vector) Elements() []float64 {
	cp := make([]float64, len(v.elements))
	copy(cp, v.elements)

	return cp
}

// Modulus returns the Euclidean length.
func (v *Vector) Modulus() float64 {
	return math.Sqrt(floats.Dot(v.elements, v.elements))
}

// Eql reports element-wise equality within the current tolerance.
// Vectors of different dimension are never equal.
func (v *Vector) Eql(w *Vector) bool {
	return v.EqlWithin(w, tolerance.Current())
}

// EqlWithin is Eql under an explicit tolerance.
func (v *Vector) EqlWithin(w *Vector, tol tolerance.Tolerance) bool {
	if w == nil || len(v.elements) != len(w.elements) {
		return false
	}
	for i, x := range v.elements {
		if !tol.Equal(x, w.elements[i]) {
			return false
		}
	}

	return true
}

// Dup returns an independent, mutable copy (also of a frozen constant).
func (v *Vector) Dup() *Vector {
	return NewVector(v.elements...)
}

// Map returns a new Vector with fn applied to each element; i is 0-based.
func (v *Vector) Map(fn func(x float64, i int) float64) *Vector {
	out := ZeroVector(len(v.elements))
	for i, x := range v.elements {
		out.elements[i] = fn(x, i)
	}

	return out
}

// ForEach calls fn for each element in order; i is 0-based.
func (v *Vector) ForEach(fn func(x float64, i int)) {
	for i, x := range v.elements {
		fn(x, i)
	}
}

// ToUnitVector returns v/|v|. The zero vector is returned as an unchanged copy.
func (v *Vector) ToUnitVector() *Vector {
	r := v.Modulus()
	if r == 0 {
		return v.Dup()
	}

	return v.Multiply(1 / r)
}

// AngleFrom returns the unsigned angle in [0, π] between v and w.
// Implementation:
//   - Stage 1: dimensions must match (ErrDimensionMismatch).
//   - Stage 2: a zero-modulus operand has no direction (ErrUndefined).
//   - Stage 3: acos of the clamped cosine.
func (v *Vector) AngleFrom(w *Vector) (float64, error) {
	if w == nil {
		return 0, geomErrorf(opAngleFrom, ErrNilObject)
	}
	if err := validateSameLen(v.elements, w.elements); err != nil {
		return 0, geomErrorf(opAngleFrom, err)
	}
	var dot, mod1, mod2 float64
	for i, x := range v.elements {
		y := w.elements[i]
		dot += x * y
		mod1 += x * x
		mod2 += y * y
	}
	mod1 = math.Sqrt(mod1)
	mod2 = math.Sqrt(mod2)
	if mod1*mod2 == 0 {
		return 0, geomErrorf(opAngleFrom, ErrUndefined)
	}

	return math.Acos(clampUnit(dot / (mod1 * mod2))), nil
}

// IsParallelTo reports whether the angle between v and w is within tolerance of 0.
func (v *Vector) IsParallelTo(w *Vector) (bool, error) {
	theta, err := v.AngleFrom(w)
	if err != nil {
		return false, err
	}

	return theta <= epsilon(), nil
}

// IsAntiparallelTo reports whether the angle between v and w is within tolerance of π.
func (v *Vector) IsAntiparallelTo(w *Vector) (bool, error) {
	theta, err := v.AngleFrom(w)
	if err != nil {
		return false, err
	}

	return math.Abs(theta-math.Pi) <= epsilon(), nil
}

// IsPerpendicularTo reports |v·w| <= tolerance.
func (v *Vector) IsPerpendicularTo(w *Vector) (bool, error) {
	dot, err := v.Dot(w)
	if err != nil {
		return false, err
	}

	return math.Abs(dot) <= epsilon(), nil
}

// Add returns v + w.
func (v *Vector) Add(w *Vector) (*Vector, error) {
	if w == nil {
		return nil, geomErrorf(opVectorAdd, ErrNilObject)
	}
	if err := validateSameLen(v.elements, w.elements); err != nil {
		return nil, geomErrorf(opVectorAdd, err)
	}
	out := v.Dup()
	floats.Add(out.elements, w.elements)

	return out, nil
}

// Subtract returns v - w.
func (v *Vector) Subtract(w *Vector) (*Vector, error) {
	if w == nil {
		return nil, geomErrorf(opVectorSub, ErrNilObject)
	}
	if err := validateSameLen(v.elements, w.elements); err != nil {
		return nil, geomErrorf(opVectorSub, err)
	}
	out := v.Dup()
	floats.Sub(out.elements, w.elements)

	return out, nil
}

// Multiply returns k·v.
func (v *Vector) Multiply(k float64) *Vector {
	out := v.Dup()
	floats.Scale(k, out.elements)

	return out
}

// Dot returns the scalar product.
func (v *Vector) Dot(w *Vector) (float64, error) {
	if w == nil {
		return 0, geomErrorf(opDot, ErrNilObject)
	}
	if err := validateSameLen(v.elements, w.elements); err != nil {
		return 0, geomErrorf(opDot, err)
	}

	return floats.Dot(v.elements, w.elements), nil
}

// Cross returns v × w; both operands must be 3D.
func (v *Vector) Cross(w *Vector) (*Vector, error) {
	if w == nil {
		return nil, geomErrorf(opCross, ErrNilObject)
	}
	if len(v.elements) != 3 || len(w.elements) != 3 {
		return nil, geomErrorf(opCross, ErrNot3D)
	}
	a := r3.Vec{X: v.elements[0], Y: v.elements[1], Z: v.elements[2]}
	b := r3.Vec{X: w.elements[0], Y: w.elements[1], Z: w.elements[2]}

	return fromR3(r3.Cross(a, b)), nil
}

// Max returns the element with the largest magnitude (sign preserved), 0 when empty.
func (v *Vector) Max() float64 {
	var m float64
	for _, x := range v.elements {
		if math.Abs(x) > math.Abs(m) {
			m = x
		}
	}

	return m
}

// IndexOf returns the 0-based index of the first element exactly equal to x.
func (v *Vector) IndexOf(x float64) (int, bool) {
	for i, y := range v.elements {
		if y == x {
			return i, true
		}
	}

	return -1, false
}

// ToDiagonalMatrix returns the square matrix with v on its diagonal.
func (v *Vector) ToDiagonalMatrix() *Matrix {
	return Diagonal(v.elements...)
}

// Round rounds every element to the nearest integer.
func (v *Vector) Round() *Vector {
	return v.Map(func(x float64, _ int) float64 { return math.Round(x) })
}

// SnapTo replaces every element within tolerance of x by x.
func (v *Vector) SnapTo(x float64) *Vector {
	eps := epsilon()

	return v.Map(func(y float64, _ int) float64 {
		if math.Abs(y-x) <= eps {
			return x
		}

		return y
	})
}

// DistanceFrom returns the distance from v (as a point) to obj.
// Lines, planes and segments own the formula; v forwards to them.
func (v *Vector) DistanceFrom(obj Object) (float64, error) {
	if err := validateObject(obj); err != nil {
		return 0, geomErrorf(opVectorDist, err)
	}
	switch o := obj.(type) {
	case *Line:
		return o.DistanceFrom(v)
	case *Plane:
		return o.DistanceFrom(v)
	case *LineSegment:
		return o.DistanceFrom(v)
	case *Vector:
		if err := validateSameLen(v.elements, o.elements); err != nil {
			return 0, geomErrorf(opVectorDist, err)
		}
		if len(v.elements) == 0 {
			return 0, nil
		}

		return floats.Distance(v.elements, o.elements, 2), nil
	}

	return 0, geomErrorf(opVectorDist, ErrUndefined)
}

// LiesOn reports whether v lies on a Line or LineSegment.
func (v *Vector) LiesOn(obj Object) (bool, error) {
	if err := validateObject(obj); err != nil {
		return false, geomErrorf(opVectorLiesOn, err)
	}
	switch o := obj.(type) {
	case *Line:
		return o.Contains(v)
	case *LineSegment:
		return o.Contains(v)
	}

	return false, geomErrorf(opVectorLiesOn, ErrUndefined)
}

// LiesIn reports whether v lies in the plane.
func (v *Vector) LiesIn(p *Plane) (bool, error) {
	if p == nil {
		return false, geomErrorf(opVectorLiesIn, ErrNilObject)
	}

	return p.Contains(v)
}

// Rotate rotates v by theta radians.
//   - 2D: pivot must be a 2D point (*Vector).
//   - 3D: pivot must be a *Line; the rotation is anchored at the line's point
//     closest to v.
//
// Any other dimension is ErrDimensionMismatch.
func (v *Vector) Rotate(theta float64, pivot Object) (*Vector, error) {
	switch len(v.elements) {
	case 2:
		return v.rotate2(Rotation(theta), pivot)
	case 3:
		line, ok := pivot.(*Line)
		if !ok || line == nil {
			return nil, geomErrorf(opVectorRotate, ErrUndefined)
		}
		return v.rotate3(axisRotation(theta, line.direction), line)
	}

	return nil, geomErrorf(opVectorRotate, ErrDimensionMismatch)
}

// RotateBy is Rotate with an explicit rotation matrix (2×2 for 2D, 3×3 for 3D).
func (v *Vector) RotateBy(R *Matrix, pivot Object) (*Vector, error) {
	if R == nil {
		return nil, geomErrorf(opVectorRotate, ErrNilObject)
	}
	switch len(v.elements) {
	case 2:
		if R.r != 2 || R.c != 2 {
			return nil, geomErrorf(opVectorRotate, ErrDimensionMismatch)
		}

		return v.rotate2(R, pivot)
	case 3:
		line, ok := pivot.(*Line)
		if !ok || line == nil {
			return nil, geomErrorf(opVectorRotate, ErrUndefined)
		}
		m, err := toR3Mat(R)
		if err != nil {
			return nil, geomErrorf(opVectorRotate, err)
		}

		return v.rotate3(m, line)
	}

	return nil, geomErrorf(opVectorRotate, ErrDimensionMismatch)
}

// rotate2 rotates a 2D vector about a 2D pivot point with the 2×2 matrix R.
func (v *Vector) rotate2(R *Matrix, pivot Object) (*Vector, error) {
	p, ok := pivot.(*Vector)
	if !ok || p == nil {
		return nil, geomErrorf(opVectorRotate, ErrUndefined)
	}
	if len(p.elements) != 2 {
		return nil, geomErrorf(opVectorRotate, ErrDimensionMismatch)
	}
	x := v.elements[0] - p.elements[0]
	y := v.elements[1] - p.elements[1]
	r := R.data

	return NewVector(
		p.elements[0]+r[0]*x+r[1]*y,
		p.elements[1]+r[2]*x+r[3]*y,
	), nil
}

// rotate3 rotates a 3D vector with m about the closest point of line.
func (v *Vector) rotate3(m *r3.Mat, line *Line) (*Vector, error) {
	p := r3.Vec{X: v.elements[0], Y: v.elements[1], Z: v.elements[2]}
	c := line.footOf(p)

	return fromR3(rotateAbout(m, p, c)), nil
}

// ReflectionIn mirrors v in a point, line or plane.
//   - point: Q + (Q - v), dimensions must match.
//   - line/plane: C + (C - v) where C is the pivot's closest point to v.
func (v *Vector) ReflectionIn(obj Object) (*Vector, error) {
	if err := validateObject(obj); err != nil {
		return nil, geomErrorf(opVectorReflec, err)
	}
	switch o := obj.(type) {
	case *Vector:
		if err := validateSameLen(v.elements, o.elements); err != nil {
			return nil, geomErrorf(opVectorReflec, err)
		}

		return v.Map(func(x float64, i int) float64 {
			return o.elements[i] + (o.elements[i] - x)
		}), nil
	case *Line, *Plane:
		p, err := toR3(v)
		if err != nil {
			return nil, geomErrorf(opVectorReflec, err)
		}
		var c r3.Vec
		if l, ok := o.(*Line); ok {
			c = l.footOf(p)
		} else {
			c = o.(*Plane).footOf(p)
		}

		return fromR3(mirror(p, c)), nil
	}

	return nil, geomErrorf(opVectorReflec, ErrUndefined)
}

// To3D pads a 2D vector with a trailing 0 and copies a 3D vector.
func (v *Vector) To3D() (*Vector, error) {
	p, err := toR3(v)
	if err != nil {
		return nil, geomErrorf(opTo3D, err)
	}

	return fromR3(p), nil
}

// SetElements replaces the contents with a copy of els.
func (v *Vector) SetElements(els ...float64) error {
	if v.frozen {
		return geomErrorf(opVectorSet, ErrImmutable)
	}
	v.elements = append(make([]float64, 0, len(els)), els...)

	return nil
}

// Set replaces the i-th element (0-based).
func (v *Vector) Set(i int, x float64) error {
	if v.frozen {
		return geomErrorf(opVectorSet, ErrImmutable)
	}
	if i < 0 || i >= len(v.elements) {
		return geomErrorf(opVectorSet, ErrOutOfRange)
	}
	v.elements[i] = x

	return nil
}

// String renders the vector as "[e1, e2, ...]".
func (v *Vector) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, x := range v.elements {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(formatFloat(x))
	}
	sb.WriteString("]")

	return sb.String()
}
