// SPDX-License-Identifier: MIT

// Package geom - Plane: anchor point + unit normal.
//
// Purpose:
//   - Construction from an anchor and normal, from three points, or as the
//     best-fit plane through a coplanar polygon (FromPoints).
//   - Parallelism, distance, containment and intersection with lines,
//     planes and segments.
//   - Rigid transforms (Translate, Rotate, RotateBy, ReflectionIn).

package geom

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Plane is the set {p : (p - anchor)·normal = 0}. normal has unit length.
type Plane struct {
	anchor r3.Vec
	normal r3.Vec
	frozen bool
}

// Coordinate planes through the origin. Frozen; use Dup for a mutable copy.
var (
	PlaneXY = &Plane{normal: r3.Vec{Z: 1}, frozen: true}
	PlaneYZ = &Plane{normal: r3.Vec{X: 1}, frozen: true}
	PlaneZX = &Plane{normal: r3.Vec{Y: 1}, frozen: true}

	PlaneYX = PlaneXY
	PlaneZY = PlaneYZ
	PlaneXZ = PlaneZX
)

// NewPlane returns the plane through anchor with the given normal.
// 2D inputs are padded with z = 0.
// Errors: ErrDimensionMismatch, ErrZeroVector.
func NewPlane(anchor, normal *Vector) (*Plane, error) {
	a, n, err := planeVectors(anchor, normal)
	if err != nil {
		return nil, geomErrorf(opNewPlane, err)
	}

	return &Plane{anchor: a, normal: n}, nil
}

func planeVectors(anchor, normal *Vector) (r3.Vec, r3.Vec, error) {
	a, err := toR3(anchor)
	if err != nil {
		return r3.Vec{}, r3.Vec{}, err
	}
	n, err := toR3(normal)
	if err != nil {
		return r3.Vec{}, r3.Vec{}, err
	}
	if r3.Norm(n) == 0 {
		return r3.Vec{}, r3.Vec{}, ErrZeroVector
	}

	return a, r3.Unit(n), nil
}

// NewPlaneThroughPoints returns the plane through a, b and c with normal
// (b - a) × (c - a). Collinear points give ErrZeroVector.
func NewPlaneThroughPoints(a, b, c *Vector) (*Plane, error) {
	pa, err := toR3(a)
	if err != nil {
		return nil, geomErrorf(opNewPlane, err)
	}
	pb, err := toR3(b)
	if err != nil {
		return nil, geomErrorf(opNewPlane, err)
	}
	pc, err := toR3(c)
	if err != nil {
		return nil, geomErrorf(opNewPlane, err)
	}
	n := r3.Cross(r3.Sub(pb, pa), r3.Sub(pc, pa))
	if r3.Norm(n) == 0 {
		return nil, geomErrorf(opNewPlane, ErrZeroVector)
	}

	return newPlane3(pa, n), nil
}

// newPlane3 builds a plane from raw coordinates; n must be non-zero.
func newPlane3(a, n r3.Vec) *Plane {
	return &Plane{anchor: a, normal: r3.Unit(n)}
}

// turnNormal is the unit normal of the turn c -> b -> a, or the zero vector
// when the three points are collinear.
func turnNormal(a, b, c r3.Vec) r3.Vec {
	n := r3.Cross(r3.Sub(a, b), r3.Sub(c, b))
	if r3.Norm(n) == 0 {
		return r3.Vec{}
	}

	return r3.Unit(n)
}

// FromPoints returns the plane through a coplanar, ordered point list.
// MAIN DESCRIPTION:
//   - The normal is the sum of the unit normals of every run of three
//     consecutive points plus the two triples that wrap around the ends, so
//     an anticlockwise list yields a normal pointing toward the viewer.
//
// Implementation:
//   - Stage 1: at least three points (ErrBadShape); each 2D or 3D.
//   - Stage 2: for each new triple (A newest, B middle, C oldest) add
//     unit((A-B)×(C-B)); a normal not (anti)parallel to the previous one
//     means the points left the plane (ErrNonCoplanar). Degenerate triples
//     (zero normal) are not compared.
//   - Stage 3: add the wrap-around normals and anchor at the first point.
//
// Complexity:
//   - Time O(n), Space O(n).
func FromPoints(points ...*Vector) (*Plane, error) {
	if len(points) < 3 {
		return nil, geomErrorf(opFromPoints, ErrBadShape)
	}
	list := make([]r3.Vec, 0, len(points))
	var total, prev r3.Vec
	for _, pt := range points {
		p, err := toR3(pt)
		if err != nil {
			return nil, geomErrorf(opFromPoints, err)
		}
		list = append(list, p)
		n := len(list)
		if n < 3 {
			continue
		}
		a, b, c := list[n-1], list[n-2], list[n-3]
		normal := turnNormal(a, b, c)
		if n > 3 && r3.Norm(normal) != 0 && r3.Norm(prev) != 0 {
			if !isParallelAngle(angleBetween(normal, prev)) {
				return nil, geomErrorf(opFromPoints, ErrNonCoplanar)
			}
		}
		total = r3.Add(total, normal)
		prev = normal
	}
	n := len(list)
	a, b, c, d := list[1], list[0], list[n-1], list[n-2]
	total = r3.Add(total, turnNormal(a, b, c))
	total = r3.Add(total, turnNormal(b, c, d))
	if r3.Norm(total) == 0 {
		return nil, geomErrorf(opFromPoints, ErrZeroVector)
	}

	return newPlane3(list[0], total), nil
}

// Anchor returns a copy of the anchor point.
func (p *Plane) Anchor() *Vector { return fromR3(p.anchor) }

// Normal returns a copy of the unit normal.
func (p *Plane) Normal() *Vector { return fromR3(p.normal) }

// Eql reports that p and q are the same set of points.
func (p *Plane) Eql(q *Plane) bool {
	if q == nil {
		return false
	}

	return p.containsPoint(q.anchor) && p.isParallelToPlane(q)
}

// Dup returns an independent, mutable copy.
func (p *Plane) Dup() *Plane {
	return &Plane{anchor: p.anchor, normal: p.normal}
}

// Translate returns p shifted by v (2D or 3D).
func (p *Plane) Translate(v *Vector) (*Plane, error) {
	t, err := toR3(v)
	if err != nil {
		return nil, geomErrorf(opPlaneTranslate, err)
	}

	return &Plane{anchor: r3.Add(p.anchor, t), normal: p.normal}, nil
}

// IsParallelTo reports parallelism with a plane, line or segment.
// Points: ErrUndefined.
func (p *Plane) IsParallelTo(obj Object) (bool, error) {
	if err := validateObject(obj); err != nil {
		return false, geomErrorf(opPlaneParallel, err)
	}
	switch o := obj.(type) {
	case *Plane:
		return p.isParallelToPlane(o), nil
	case *Line:
		return p.isParallelToLine(o), nil
	case *LineSegment:
		return p.isParallelToLine(o.line), nil
	}

	return false, geomErrorf(opPlaneParallel, ErrUndefined)
}

func (p *Plane) isParallelToPlane(q *Plane) bool {
	return isParallelAngle(angleBetween(p.normal, q.normal))
}

func (p *Plane) isParallelToLine(l *Line) bool {
	return math.Abs(r3.Dot(p.normal, l.direction)) <= epsilon()
}

// IsPerpendicularTo reports normals at right angles within tolerance.
func (p *Plane) IsPerpendicularTo(q *Plane) bool {
	if q == nil {
		return false
	}

	return math.Abs(math.Pi/2-angleBetween(p.normal, q.normal)) <= epsilon()
}

// DistanceFrom returns the shortest distance from p to obj; 0 when they
// meet.
func (p *Plane) DistanceFrom(obj Object) (float64, error) {
	if err := validateObject(obj); err != nil {
		return 0, geomErrorf(opPlaneDist, err)
	}
	switch o := obj.(type) {
	case *LineSegment:
		return o.DistanceFrom(p)
	case *Plane:
		if !p.isParallelToPlane(o) {
			return 0, nil
		}

		return math.Abs(r3.Dot(r3.Sub(p.anchor, o.anchor), p.normal)), nil
	case *Line:
		if !p.isParallelToLine(o) {
			return 0, nil
		}

		return math.Abs(r3.Dot(r3.Sub(p.anchor, o.anchor), p.normal)), nil
	case *Vector:
		q, err := toR3(o)
		if err != nil {
			return 0, geomErrorf(opPlaneDist, err)
		}
		d := math.Abs(r3.Dot(r3.Sub(p.anchor, q), p.normal))
		if d <= epsilon() {
			return 0, nil
		}

		return d, nil
	}

	return 0, geomErrorf(opPlaneDist, ErrUndefined)
}

// Contains reports whether every point of obj lies in p.
// Plane-in-plane containment is ErrUndefined; use Eql.
func (p *Plane) Contains(obj Object) (bool, error) {
	if err := validateObject(obj); err != nil {
		return false, geomErrorf(opPlaneContains, err)
	}
	switch o := obj.(type) {
	case *Vector:
		q, err := toR3(o)
		if err != nil {
			return false, geomErrorf(opPlaneContains, err)
		}

		return p.containsPoint(q), nil
	case *Line:
		return p.containsPoint(o.anchor) && p.containsPoint(r3.Add(o.anchor, o.direction)), nil
	case *LineSegment:
		return p.containsPoint(o.start) && p.containsPoint(o.end), nil
	}

	return false, geomErrorf(opPlaneContains, ErrUndefined)
}

func (p *Plane) containsPoint(q r3.Vec) bool {
	return math.Abs(r3.Dot(p.normal, r3.Sub(p.anchor, q))) <= epsilon()
}

// Intersects reports whether p meets a line or plane in a proper
// intersection (non-parallel), or whether a segment crosses it.
// Points: ErrUndefined.
func (p *Plane) Intersects(obj Object) (bool, error) {
	if err := validateObject(obj); err != nil {
		return false, geomErrorf(opPlaneIntersects, err)
	}
	switch o := obj.(type) {
	case *Plane:
		return !p.isParallelToPlane(o), nil
	case *Line:
		return !p.isParallelToLine(o), nil
	case *LineSegment:
		return o.Intersects(p)
	}

	return false, geomErrorf(opPlaneIntersects, ErrUndefined)
}

// IntersectionWithLine returns the point where l crosses p.
func (p *Plane) IntersectionWithLine(l *Line) (*Vector, error) {
	if l == nil {
		return nil, geomErrorf(opPlaneLine, ErrNilObject)
	}
	if p.isParallelToLine(l) {
		return nil, geomErrorf(opPlaneLine, ErrNoIntersection)
	}

	return fromR3(p.meetLine(l)), nil
}

// meetLine solves for the crossing point of a non-parallel line.
func (p *Plane) meetLine(l *Line) r3.Vec {
	k := r3.Dot(p.normal, r3.Sub(p.anchor, l.anchor)) / r3.Dot(p.normal, l.direction)

	return r3.Add(l.anchor, r3.Scale(k, l.direction))
}

// IntersectionWithPlane returns the line shared by two non-parallel planes.
// Implementation:
//   - Stage 1: direction = unit(N₁ × N₂).
//   - Stage 2: pick the first coordinate i (cycling 1..3) whose companion
//     2×2 system in the other two coordinates has |det| above the
//     tolerance; that coordinate is set to 0 on the anchor.
//   - Stage 3: solve the 2×2 system with the matrix inverse and place the
//     solution in the remaining coordinates.
func (p *Plane) IntersectionWithPlane(q *Plane) (*Line, error) {
	if q == nil {
		return nil, geomErrorf(opPlanePlane, ErrNilObject)
	}
	if p.isParallelToPlane(q) {
		return nil, geomErrorf(opPlanePlane, ErrNoIntersection)
	}
	direction := r3.Unit(r3.Cross(p.normal, q.normal))
	n, o := coords(p.normal), coords(q.normal)

	var (
		solver *Matrix
		i      int
		err    error
	)
	for i = 1; i <= 3; i++ {
		solver, err = NewMatrix([][]float64{
			{n[i%3], n[(i+1)%3]},
			{o[i%3], o[(i+1)%3]},
		})
		if err != nil {
			return nil, geomErrorf(opPlanePlane, err)
		}
		det, _ := solver.Determinant()
		if math.Abs(det) > epsilon() {
			break
		}
	}
	if i > 3 {
		return nil, geomErrorf(opPlanePlane, ErrSingular)
	}
	inv, err := solver.Inverse()
	if err != nil {
		return nil, geomErrorf(opPlanePlane, err)
	}
	x := r3.Dot(p.normal, p.anchor)
	y := r3.Dot(q.normal, q.anchor)
	sol := [2]float64{
		inv.data[0]*x + inv.data[1]*y,
		inv.data[2]*x + inv.data[3]*y,
	}
	var anchor [3]float64
	for j := 1; j <= 3; j++ {
		if j == i {
			continue
		}
		anchor[j-1] = sol[(j+(5-i)%3)%3]
	}

	return newLine3(fromCoords(anchor), direction), nil
}

// IntersectionWith returns the intersection of p and obj: a *Vector for a
// line or segment, a *Line for a plane.
func (p *Plane) IntersectionWith(obj Object) (Object, error) {
	if err := validateObject(obj); err != nil {
		return nil, geomErrorf(opPlaneIntersect, err)
	}
	switch o := obj.(type) {
	case *Line:
		return p.IntersectionWithLine(o)
	case *Plane:
		return p.IntersectionWithPlane(o)
	case *LineSegment:
		return o.IntersectionWith(p)
	}

	return nil, geomErrorf(opPlaneIntersect, ErrUndefined)
}

// PointClosestTo returns the orthogonal projection of point onto p.
func (p *Plane) PointClosestTo(point *Vector) (*Vector, error) {
	q, err := toR3(point)
	if err != nil {
		return nil, geomErrorf(opPlaneClosest, err)
	}

	return fromR3(p.footOf(q)), nil
}

func (p *Plane) footOf(q r3.Vec) r3.Vec {
	return r3.Add(q, r3.Scale(r3.Dot(r3.Sub(p.anchor, q), p.normal), p.normal))
}

// Rotate returns p rotated by theta radians about axis.
func (p *Plane) Rotate(theta float64, axis *Line) (*Plane, error) {
	if axis == nil {
		return nil, geomErrorf(opPlaneRotate, ErrNilObject)
	}

	return p.rotateBy(axisRotation(theta, axis.direction), axis), nil
}

// RotateBy is Rotate with an explicit 3×3 rotation matrix.
func (p *Plane) RotateBy(r *Matrix, axis *Line) (*Plane, error) {
	if axis == nil {
		return nil, geomErrorf(opPlaneRotate, ErrNilObject)
	}
	m, err := toR3Mat(r)
	if err != nil {
		return nil, geomErrorf(opPlaneRotate, err)
	}
	if r3.Norm(m.MulVec(p.normal)) == 0 {
		return nil, geomErrorf(opPlaneRotate, ErrZeroVector)
	}

	return p.rotateBy(m, axis), nil
}

func (p *Plane) rotateBy(r *r3.Mat, axis *Line) *Plane {
	c := axis.footOf(p.anchor)

	return newPlane3(rotateAbout(r, p.anchor, c), r.MulVec(p.normal))
}

// ReflectionIn mirrors p in a plane, line or point.
func (p *Plane) ReflectionIn(obj Object) (*Plane, error) {
	if err := validateObject(obj); err != nil {
		return nil, geomErrorf(opPlaneReflect, err)
	}
	switch o := obj.(type) {
	case *Plane:
		newA := mirror(p.anchor, o.footOf(p.anchor))
		tip := r3.Add(p.anchor, p.normal)
		newN := r3.Sub(mirror(tip, o.footOf(tip)), newA)

		return newPlane3(newA, newN), nil
	case *Line:
		return p.Rotate(math.Pi, o)
	case *Vector:
		q, err := toR3(o)
		if err != nil {
			return nil, geomErrorf(opPlaneReflect, err)
		}

		return &Plane{anchor: mirror(p.anchor, q), normal: p.normal}, nil
	}

	return nil, geomErrorf(opPlaneReflect, ErrUndefined)
}

// SetVectors replaces anchor and normal in place.
func (p *Plane) SetVectors(anchor, normal *Vector) error {
	if p.frozen {
		return geomErrorf(opPlaneSet, ErrImmutable)
	}
	a, n, err := planeVectors(anchor, normal)
	if err != nil {
		return geomErrorf(opPlaneSet, err)
	}
	p.anchor, p.normal = a, n

	return nil
}

// String implements fmt.Stringer.
func (p *Plane) String() string {
	return fmt.Sprintf("Plane{anchor: %v, normal: %v}", fromR3(p.anchor), fromR3(p.normal))
}
