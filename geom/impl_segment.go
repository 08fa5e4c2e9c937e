// SPDX-License-Identifier: MIT

// Package geom - LineSegment: the finite piece of a line between two points.
//
// The segment caches its supporting Line (anchor = start, direction toward
// end). Line-level answers are computed there and clamped to [start, end].

package geom

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// LineSegment joins start to end (both 3D).
type LineSegment struct {
	start, end r3.Vec
	line       *Line
}

// NewLineSegment returns the segment from start to end (2D points padded).
// Errors: ErrDimensionMismatch, ErrZeroVector (start == end).
func NewLineSegment(start, end *Vector) (*LineSegment, error) {
	s, err := toR3(start)
	if err != nil {
		return nil, geomErrorf(opNewSegment, err)
	}
	e, err := toR3(end)
	if err != nil {
		return nil, geomErrorf(opNewSegment, err)
	}
	seg, err := newSegment3(s, e)
	if err != nil {
		return nil, geomErrorf(opNewSegment, err)
	}

	return seg, nil
}

func newSegment3(s, e r3.Vec) (*LineSegment, error) {
	d := r3.Sub(e, s)
	if r3.Norm(d) == 0 {
		return nil, ErrZeroVector
	}

	return &LineSegment{start: s, end: e, line: newLine3(s, d)}, nil
}

// Start returns a copy of the start point.
func (s *LineSegment) Start() *Vector { return fromR3(s.start) }

// End returns a copy of the end point.
func (s *LineSegment) End() *Vector { return fromR3(s.end) }

// Line returns a copy of the supporting line.
func (s *LineSegment) Line() *Line { return s.line.Dup() }

// Eql reports equal endpoints in either orientation.
func (s *LineSegment) Eql(t *LineSegment) bool {
	if t == nil {
		return false
	}

	return (eql(s.start, t.start) && eql(s.end, t.end)) ||
		(eql(s.start, t.end) && eql(s.end, t.start))
}

// Dup returns an independent copy.
func (s *LineSegment) Dup() *LineSegment {
	return &LineSegment{start: s.start, end: s.end, line: s.line.Dup()}
}

// Length returns |end - start|.
func (s *LineSegment) Length() float64 { return r3.Norm(r3.Sub(s.end, s.start)) }

// ToVector returns end - start.
func (s *LineSegment) ToVector() *Vector { return fromR3(r3.Sub(s.end, s.start)) }

// Midpoint returns (start + end) / 2.
func (s *LineSegment) Midpoint() *Vector { return fromR3(s.midpoint()) }

func (s *LineSegment) midpoint() r3.Vec { return r3.Scale(0.5, r3.Add(s.start, s.end)) }

// BisectingPlane returns the plane through the midpoint normal to the segment.
func (s *LineSegment) BisectingPlane() *Plane {
	return newPlane3(s.midpoint(), r3.Sub(s.end, s.start))
}

// Translate returns s shifted by v (2D or 3D).
func (s *LineSegment) Translate(v *Vector) (*LineSegment, error) {
	t, err := toR3(v)
	if err != nil {
		return nil, geomErrorf(opSegmentTranslate, err)
	}

	return &LineSegment{
		start: r3.Add(s.start, t),
		end:   r3.Add(s.end, t),
		line:  &Line{anchor: r3.Add(s.line.anchor, t), direction: s.line.direction},
	}, nil
}

// IsParallelTo answers for the supporting line.
func (s *LineSegment) IsParallelTo(obj Object) (bool, error) {
	return s.line.IsParallelTo(obj)
}

// DistanceFrom returns the distance between obj and the point of s closest
// to it. Parallel configurations have no unique closest point and are
// measured from the endpoints instead.
func (s *LineSegment) DistanceFrom(obj Object) (float64, error) {
	if err := validateObject(obj); err != nil {
		return 0, geomErrorf(opSegmentDist, err)
	}
	switch o := obj.(type) {
	case *Plane:
		if o.isParallelToLine(s.line) {
			return o.DistanceFrom(fromR3(s.start))
		}
	case *Line:
		if o.isParallelToLine(s.line) {
			return o.distanceFromPoint(s.start), nil
		}
	case *LineSegment:
		if o.line.isParallelToLine(s.line) {
			return s.parallelDistance(o), nil
		}
	}
	p, err := s.PointClosestTo(obj)
	if err != nil {
		return 0, err
	}
	if q, ok := obj.(*Vector); ok {
		q3, err := toR3(q)
		if err != nil {
			return 0, geomErrorf(opSegmentDist, err)
		}

		return p.DistanceFrom(fromR3(q3))
	}

	return p.DistanceFrom(obj)
}

// parallelDistance is the smallest endpoint-to-segment distance.
func (s *LineSegment) parallelDistance(t *LineSegment) float64 {
	best := math.Inf(1)
	for _, pair := range [...]struct {
		seg *LineSegment
		p   r3.Vec
	}{{t, s.start}, {t, s.end}, {s, t.start}, {s, t.end}} {
		q := pair.seg.clamp(pair.seg.line.footOf(pair.p))
		if d := r3.Norm(r3.Sub(q, pair.p)); d < best {
			best = d
		}
	}

	return best
}

// Contains reports whether a point or a whole segment lies on s.
// Lines and planes are never subsets of a segment: ErrUndefined.
func (s *LineSegment) Contains(obj Object) (bool, error) {
	if err := validateObject(obj); err != nil {
		return false, geomErrorf(opSegmentContains, err)
	}
	switch o := obj.(type) {
	case *Vector:
		p, err := toR3(o)
		if err != nil {
			return false, geomErrorf(opSegmentContains, err)
		}

		return s.containsPoint(p), nil
	case *LineSegment:
		return s.containsPoint(o.start) && s.containsPoint(o.end), nil
	}

	return false, geomErrorf(opSegmentContains, ErrUndefined)
}

// containsPoint: p is start, or start-p points against end-start and is no
// longer than the segment.
func (s *LineSegment) containsPoint(p r3.Vec) bool {
	if eql(s.start, p) {
		return true
	}
	v := r3.Sub(s.start, p)
	seg := r3.Sub(s.end, s.start)
	anti := isAntiparallel(v, seg)

	return anti && r3.Norm(v) <= r3.Norm(seg)
}

func isAntiparallel(a, b r3.Vec) bool {
	if r3.Norm(a) == 0 || r3.Norm(b) == 0 {
		return false
	}

	return math.Abs(angleBetween(a, b)-math.Pi) <= epsilon()
}

// Intersects reports whether s and obj share a point.
func (s *LineSegment) Intersects(obj Object) (bool, error) {
	_, err := s.IntersectionWith(obj)
	if errors.Is(err, ErrNoIntersection) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}

// IntersectionWith returns the point shared by s and a line, plane or
// segment; ErrNoIntersection when the crossing point of the supporting line
// falls outside s.
func (s *LineSegment) IntersectionWith(obj Object) (*Vector, error) {
	if err := validateObject(obj); err != nil {
		return nil, geomErrorf(opSegmentIntersect, err)
	}
	var (
		p   r3.Vec
		err error
	)
	switch o := obj.(type) {
	case *Plane:
		if o.isParallelToLine(s.line) {
			return nil, geomErrorf(opSegmentIntersect, ErrNoIntersection)
		}
		p = o.meetLine(s.line)
	case *Line:
		p, err = s.lineMeet(o)
	case *LineSegment:
		p, err = s.lineMeet(o.line)
		if err == nil && !o.containsPoint(p) {
			err = ErrNoIntersection
		}
	default:
		err = ErrUndefined
	}
	if err != nil {
		return nil, geomErrorf(opSegmentIntersect, err)
	}
	if !s.containsPoint(p) {
		return nil, geomErrorf(opSegmentIntersect, ErrNoIntersection)
	}

	return fromR3(p), nil
}

func (s *LineSegment) lineMeet(l *Line) (r3.Vec, error) {
	ok, _ := s.line.Intersects(l)
	if !ok {
		return r3.Vec{}, ErrNoIntersection
	}

	return s.line.meet(l), nil
}

// PointClosestTo returns the point of s nearest to obj.
//   - plane: the crossing point of the supporting line, clamped to s;
//     ErrParallel when the segment is parallel to the plane.
//   - point, line, segment: the closest point on the supporting line if it
//     lies on s, otherwise the nearer endpoint by the sign of its position.
func (s *LineSegment) PointClosestTo(obj Object) (*Vector, error) {
	if err := validateObject(obj); err != nil {
		return nil, geomErrorf(opSegmentClosest, err)
	}
	var p r3.Vec
	if pl, ok := obj.(*Plane); ok {
		if pl.isParallelToLine(s.line) {
			return nil, geomErrorf(opSegmentClosest, ErrParallel)
		}
		p = pl.meetLine(s.line)
	} else {
		v, err := s.line.PointClosestTo(obj)
		if err != nil {
			return nil, err
		}
		p = r3.Vec{X: v.elements[0], Y: v.elements[1], Z: v.elements[2]}
	}

	return fromR3(s.clamp(p)), nil
}

// clamp maps a point of the supporting line onto s.
func (s *LineSegment) clamp(p r3.Vec) r3.Vec {
	if s.containsPoint(p) {
		return p
	}
	if s.line.position(p) < 0 {
		return s.start
	}

	return s.end
}

// SetPoints replaces both endpoints in place.
func (s *LineSegment) SetPoints(start, end *Vector) error {
	a, err := toR3(start)
	if err != nil {
		return geomErrorf(opSegmentSet, err)
	}
	b, err := toR3(end)
	if err != nil {
		return geomErrorf(opSegmentSet, err)
	}
	seg, err := newSegment3(a, b)
	if err != nil {
		return geomErrorf(opSegmentSet, err)
	}
	*s = *seg

	return nil
}

// String implements fmt.Stringer.
func (s *LineSegment) String() string {
	return fmt.Sprintf("LineSegment{start: %v, end: %v}", fromR3(s.start), fromR3(s.end))
}
