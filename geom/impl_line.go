// SPDX-License-Identifier: MIT

// Package geom - Line: infinite 3D line as anchor + unit direction.
//
// Purpose:
//   - Distance, containment, intersection and closest-point queries against
//     every member of the Object variant.
//   - Rigid transforms (Translate, Rotate, Reverse, ReflectionIn).
//
// Dispatch:
//   - Plane and LineSegment own the formulas for their pairs; Line forwards
//     to them so each formula exists once.

package geom

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Line is the set {anchor + t·direction}. direction always has unit length.
type Line struct {
	anchor    r3.Vec
	direction r3.Vec
	frozen    bool
}

// Axis lines through the origin. Frozen; use Dup for a mutable copy.
var (
	LineX = &Line{direction: r3.Vec{X: 1}, frozen: true}
	LineY = &Line{direction: r3.Vec{Y: 1}, frozen: true}
	LineZ = &Line{direction: r3.Vec{Z: 1}, frozen: true}
)

// NewLine returns the line through anchor along direction.
// 2D inputs are padded with z = 0.
// Errors: ErrDimensionMismatch (other dimensions), ErrZeroVector (zero direction).
func NewLine(anchor, direction *Vector) (*Line, error) {
	a, d, err := lineVectors(anchor, direction)
	if err != nil {
		return nil, geomErrorf(opNewLine, err)
	}

	return &Line{anchor: a, direction: d}, nil
}

func lineVectors(anchor, direction *Vector) (r3.Vec, r3.Vec, error) {
	a, err := toR3(anchor)
	if err != nil {
		return r3.Vec{}, r3.Vec{}, err
	}
	d, err := toR3(direction)
	if err != nil {
		return r3.Vec{}, r3.Vec{}, err
	}
	if r3.Norm(d) == 0 {
		return r3.Vec{}, r3.Vec{}, ErrZeroVector
	}

	return a, r3.Unit(d), nil
}

// newLine3 builds a line from raw coordinates; d must be non-zero.
func newLine3(a, d r3.Vec) *Line {
	return &Line{anchor: a, direction: r3.Unit(d)}
}

// Anchor returns a copy of the anchor point.
func (l *Line) Anchor() *Vector { return fromR3(l.anchor) }

// Direction returns a copy of the unit direction.
func (l *Line) Direction() *Vector { return fromR3(l.direction) }

// Eql reports that l and m describe the same set of points: parallel (or
// anti-parallel) and m's anchor lies on l.
func (l *Line) Eql(m *Line) bool {
	if m == nil {
		return false
	}

	return l.isParallelToLine(m) && l.distanceFromPoint(m.anchor) <= epsilon()
}

// Dup returns an independent, mutable copy.
func (l *Line) Dup() *Line {
	return &Line{anchor: l.anchor, direction: l.direction}
}

// Translate returns l shifted by v (2D or 3D).
func (l *Line) Translate(v *Vector) (*Line, error) {
	t, err := toR3(v)
	if err != nil {
		return nil, geomErrorf(opLineTranslate, err)
	}

	return &Line{anchor: r3.Add(l.anchor, t), direction: l.direction}, nil
}

// IsParallelTo reports (anti)parallelism with a line, segment or plane.
// A point has no direction: ErrUndefined.
func (l *Line) IsParallelTo(obj Object) (bool, error) {
	if err := validateObject(obj); err != nil {
		return false, geomErrorf(opLineParallel, err)
	}
	switch o := obj.(type) {
	case *Line:
		return l.isParallelToLine(o), nil
	case *LineSegment:
		return l.isParallelToLine(o.line), nil
	case *Plane:
		return o.IsParallelTo(l)
	}

	return false, geomErrorf(opLineParallel, ErrUndefined)
}

func (l *Line) isParallelToLine(m *Line) bool {
	return isParallelAngle(angleBetween(l.direction, m.direction))
}

// DistanceFrom returns the shortest distance between l and obj.
// Implementation:
//   - point: |AP|·sinθ where θ is the angle between AP and the direction.
//   - line: parallel -> distance to the other anchor; otherwise the
//     projection of A-B on the common normal.
//   - plane, segment: forwarded.
func (l *Line) DistanceFrom(obj Object) (float64, error) {
	if err := validateObject(obj); err != nil {
		return 0, geomErrorf(opLineDist, err)
	}
	switch o := obj.(type) {
	case *Plane:
		return o.DistanceFrom(l)
	case *LineSegment:
		return o.DistanceFrom(l)
	case *Line:
		return l.distanceFromLine(o), nil
	case *Vector:
		p, err := toR3(o)
		if err != nil {
			return 0, geomErrorf(opLineDist, err)
		}

		return l.distanceFromPoint(p), nil
	}

	return 0, geomErrorf(opLineDist, ErrUndefined)
}

func (l *Line) distanceFromLine(m *Line) float64 {
	if l.isParallelToLine(m) {
		return l.distanceFromPoint(m.anchor)
	}
	n := r3.Unit(r3.Cross(l.direction, m.direction))

	return math.Abs(r3.Dot(r3.Sub(l.anchor, m.anchor), n))
}

func (l *Line) distanceFromPoint(p r3.Vec) float64 {
	pa := r3.Sub(p, l.anchor)
	mod := r3.Norm(pa)
	if mod == 0 {
		return 0
	}
	cos := r3.Dot(pa, l.direction) / mod
	sin2 := 1 - cos*cos
	if sin2 < 0 {
		sin2 = 0
	}

	return math.Abs(mod * math.Sqrt(sin2))
}

// Contains reports whether every point of obj lies on l.
// A plane is never a subset of a line: ErrUndefined.
func (l *Line) Contains(obj Object) (bool, error) {
	if err := validateObject(obj); err != nil {
		return false, geomErrorf(opLineContains, err)
	}
	switch o := obj.(type) {
	case *Vector:
		p, err := toR3(o)
		if err != nil {
			return false, geomErrorf(opLineContains, err)
		}

		return l.distanceFromPoint(p) <= epsilon(), nil
	case *LineSegment:
		eps := epsilon()

		return l.distanceFromPoint(o.start) <= eps && l.distanceFromPoint(o.end) <= eps, nil
	case *Line:
		return l.Eql(o), nil
	}

	return false, geomErrorf(opLineContains, ErrUndefined)
}

// PositionOf returns t such that p = anchor + t·direction.
// A point off the line is ErrNotContained.
func (l *Line) PositionOf(p *Vector) (float64, error) {
	q, err := toR3(p)
	if err != nil {
		return 0, geomErrorf(opLinePosition, err)
	}
	if l.distanceFromPoint(q) > epsilon() {
		return 0, geomErrorf(opLinePosition, ErrNotContained)
	}

	return l.position(q), nil
}

// position is the signed parameter of p's projection onto l.
func (l *Line) position(p r3.Vec) float64 {
	return r3.Dot(r3.Sub(p, l.anchor), l.direction)
}

// footOf returns the projection of p onto l.
func (l *Line) footOf(p r3.Vec) r3.Vec {
	return r3.Add(l.anchor, r3.Scale(l.position(p), l.direction))
}

// LiesIn reports whether l lies in the plane.
func (l *Line) LiesIn(p *Plane) (bool, error) {
	if p == nil {
		return false, geomErrorf(opLineLiesIn, ErrNilObject)
	}

	return p.Contains(l)
}

// Intersects reports whether l meets obj in exactly one point.
// Parallel lines never intersect, coincident ones included.
func (l *Line) Intersects(obj Object) (bool, error) {
	if err := validateObject(obj); err != nil {
		return false, geomErrorf(opLineIntersects, err)
	}
	switch o := obj.(type) {
	case *Plane:
		return o.Intersects(l)
	case *Line:
		return !l.isParallelToLine(o) && l.distanceFromLine(o) <= epsilon(), nil
	case *LineSegment:
		if l.isParallelToLine(o.line) {
			return false, nil
		}
		d, err := o.DistanceFrom(l)
		if err != nil {
			return false, err
		}

		return d <= epsilon(), nil
	}

	return false, geomErrorf(opLineIntersects, ErrUndefined)
}

// IntersectionWith returns the unique common point of l and obj.
// Errors: ErrNoIntersection when they do not meet, ErrUndefined for a point.
func (l *Line) IntersectionWith(obj Object) (*Vector, error) {
	if err := validateObject(obj); err != nil {
		return nil, geomErrorf(opLineIntersect, err)
	}
	switch o := obj.(type) {
	case *Plane:
		return o.IntersectionWithLine(l)
	case *LineSegment:
		return o.IntersectionWith(l)
	case *Line:
		ok, _ := l.Intersects(o)
		if !ok {
			return nil, geomErrorf(opLineIntersect, ErrNoIntersection)
		}

		return fromR3(l.meet(o)), nil
	}

	return nil, geomErrorf(opLineIntersect, ErrUndefined)
}

// meet solves anchor + k·X = m.anchor + s·Y for k on intersecting lines.
func (l *Line) meet(m *Line) r3.Vec {
	x, y := l.direction, m.direction
	pq := r3.Sub(l.anchor, m.anchor)
	xDotQsubP := -r3.Dot(x, pq)
	yDotPsubQ := r3.Dot(y, pq)
	xDotX := r3.Norm2(x)
	yDotY := r3.Norm2(y)
	xDotY := r3.Dot(x, y)
	k := (xDotQsubP*yDotY/xDotX + xDotY*yDotPsubQ) / (yDotY - xDotY*xDotY)

	return r3.Add(l.anchor, r3.Scale(k, x))
}

// PointClosestTo returns the point of l nearest to obj.
//   - point: the foot of the perpendicular.
//   - line: the intersection if any; ErrParallel for parallel lines; for skew
//     lines the intersection of l with the plane containing the other line
//     and the common normal.
//   - segment: the foot of the segment's closest point to l.
//   - plane: the intersection point; ErrParallel when parallel.
func (l *Line) PointClosestTo(obj Object) (*Vector, error) {
	if err := validateObject(obj); err != nil {
		return nil, geomErrorf(opLineClosest, err)
	}
	switch o := obj.(type) {
	case *Vector:
		p, err := toR3(o)
		if err != nil {
			return nil, geomErrorf(opLineClosest, err)
		}

		return fromR3(l.footOf(p)), nil
	case *LineSegment:
		p, err := o.PointClosestTo(l)
		if err != nil {
			return nil, err
		}

		return l.PointClosestTo(p)
	case *Line:
		c, err := l.closestToLine(o)
		if err != nil {
			return nil, geomErrorf(opLineClosest, err)
		}

		return fromR3(c), nil
	case *Plane:
		if o.isParallelToLine(l) {
			return nil, geomErrorf(opLineClosest, ErrParallel)
		}

		return fromR3(o.meetLine(l)), nil
	}

	return nil, geomErrorf(opLineClosest, ErrUndefined)
}

func (l *Line) closestToLine(m *Line) (r3.Vec, error) {
	if ok, _ := l.Intersects(m); ok {
		return l.meet(m), nil
	}
	if l.isParallelToLine(m) {
		return r3.Vec{}, ErrParallel
	}
	n := r3.Cross(r3.Cross(l.direction, m.direction), m.direction)
	aux := newPlane3(m.anchor, n)

	return aux.meetLine(l), nil
}

// Rotate returns l rotated by theta radians about pivot.
// pivot is a *Line or a point; a point stands for the line through it
// parallel to the z axis. The anchor turns about the pivot's point closest to
// it and the direction turns with the pivot's direction.
func (l *Line) Rotate(theta float64, pivot Object) (*Line, error) {
	axis, err := pivotLine(pivot)
	if err != nil {
		return nil, geomErrorf(opLineRotate, err)
	}

	return l.rotateBy(axisRotation(theta, axis.direction), axis), nil
}

func (l *Line) rotateBy(r *r3.Mat, axis *Line) *Line {
	c := axis.footOf(l.anchor)

	return newLine3(rotateAbout(r, l.anchor, c), r.MulVec(l.direction))
}

// pivotLine resolves a rotation pivot to a line.
func pivotLine(pivot Object) (*Line, error) {
	if err := validateObject(pivot); err != nil {
		return nil, err
	}
	switch o := pivot.(type) {
	case *Line:
		return o, nil
	case *Vector:
		p, err := toR3(o)
		if err != nil {
			return nil, err
		}

		return &Line{anchor: p, direction: r3.Vec{Z: 1}}, nil
	}

	return nil, ErrUndefined
}

// Reverse returns l with the direction negated.
func (l *Line) Reverse() *Line {
	return &Line{anchor: l.anchor, direction: r3.Scale(-1, l.direction)}
}

// ReflectionIn mirrors l in a plane, line or point.
//   - plane: mirror the anchor and the tip anchor+direction.
//   - line: rotate by π about it.
//   - point: mirror the anchor only.
func (l *Line) ReflectionIn(obj Object) (*Line, error) {
	if err := validateObject(obj); err != nil {
		return nil, geomErrorf(opLineReflect, err)
	}
	switch o := obj.(type) {
	case *Plane:
		newA := mirror(l.anchor, o.footOf(l.anchor))
		tip := r3.Add(l.anchor, l.direction)
		newD := r3.Sub(mirror(tip, o.footOf(tip)), newA)

		return newLine3(newA, newD), nil
	case *Line:
		return l.Rotate(math.Pi, o)
	case *Vector:
		p, err := toR3(o)
		if err != nil {
			return nil, geomErrorf(opLineReflect, err)
		}

		return &Line{anchor: mirror(l.anchor, p), direction: l.direction}, nil
	}

	return nil, geomErrorf(opLineReflect, ErrUndefined)
}

// SetVectors replaces anchor and direction in place.
func (l *Line) SetVectors(anchor, direction *Vector) error {
	if l.frozen {
		return geomErrorf(opLineSet, ErrImmutable)
	}
	a, d, err := lineVectors(anchor, direction)
	if err != nil {
		return geomErrorf(opLineSet, err)
	}
	l.anchor, l.direction = a, d

	return nil
}

// String implements fmt.Stringer.
func (l *Line) String() string {
	return fmt.Sprintf("Line{anchor: %v, direction: %v}", fromR3(l.anchor), fromR3(l.direction))
}
