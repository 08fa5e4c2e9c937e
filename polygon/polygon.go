// SPDX-License-Identifier: MIT

package polygon

import (
	"container/ring"
	"math"

	"github.com/katalvlaran/lvgeom/geom"
	"github.com/katalvlaran/lvgeom/tolerance"
)

const (
	opNew       = "polygon.New"
	opNeighbors = "Polygon.Neighbors"
	opConvex    = "Polygon.IsConvex"
)

// VertexType classifies a vertex by its interior angle.
type VertexType int

const (
	// VertexConvex: interior angle in [0, π).
	VertexConvex VertexType = iota
	// VertexReflex: interior angle in [π, 2π).
	VertexReflex
)

// String implements fmt.Stringer.
func (t VertexType) String() string {
	if t == VertexReflex {
		return "reflex"
	}

	return "convex"
}

// Polygon is a closed vertex cycle lying in one plane.
type Polygon struct {
	head  *ring.Ring
	n     int
	plane *geom.Plane
}

// New builds a polygon from an ordered, coplanar vertex list.
// Implementation:
//   - Stage 1: at least three vertices (ErrTooFewVertices).
//   - Stage 2: the supporting plane via geom.FromPoints (ErrNonCoplanar etc.).
//   - Stage 3: copy the vertices, promoted to 3D, into a ring.
func New(points ...*geom.Vector) (*Polygon, error) {
	if len(points) < 3 {
		return nil, polygonErrorf(opNew, ErrTooFewVertices)
	}
	plane, err := geom.FromPoints(points...)
	if err != nil {
		return nil, polygonErrorf(opNew, err)
	}
	r := ring.New(len(points))
	for _, p := range points {
		v, err := p.To3D()
		if err != nil {
			return nil, polygonErrorf(opNew, err)
		}
		r.Value = v
		r = r.Next()
	}

	return &Polygon{head: r, n: len(points), plane: plane}, nil
}

// Len returns the number of vertices.
func (p *Polygon) Len() int { return p.n }

// Plane returns a copy of the supporting plane.
func (p *Polygon) Plane() *geom.Plane { return p.plane.Dup() }

// Vertices returns copies of the vertices in cycle order.
func (p *Polygon) Vertices() []*geom.Vector {
	out := make([]*geom.Vector, 0, p.n)
	p.head.Do(func(x any) {
		out = append(out, x.(*geom.Vector).Dup())
	})

	return out
}

// nodeFor returns the ring element holding v.
func (p *Polygon) nodeFor(v *geom.Vector) (*ring.Ring, error) {
	if v == nil {
		return nil, geom.ErrNilObject
	}
	q, err := v.To3D()
	if err != nil {
		return nil, err
	}
	r := p.head
	for i := 0; i < p.n; i++ {
		if r.Value.(*geom.Vector).Eql(q) {
			return r, nil
		}
		r = r.Next()
	}

	return nil, ErrUnknownVertex
}

// Neighbors returns copies of the vertices before and after v.
func (p *Polygon) Neighbors(v *geom.Vector) (prev, next *geom.Vector, err error) {
	r, err := p.nodeFor(v)
	if err != nil {
		return nil, nil, polygonErrorf(opNeighbors, err)
	}

	return r.Prev().Value.(*geom.Vector).Dup(), r.Next().Value.(*geom.Vector).Dup(), nil
}

// IsConvex reports whether the interior angle at v is below π.
// Implementation:
//   - Stage 1: A = next - v, B = prev - v.
//   - Stage 2: angle(A, B) ≈ 0 -> convex; ≈ π -> not convex.
//   - Stage 3: otherwise convex iff (A × B)·normal > 0.
func (p *Polygon) IsConvex(v *geom.Vector) (bool, error) {
	r, err := p.nodeFor(v)
	if err != nil {
		return false, polygonErrorf(opConvex, err)
	}
	cur := r.Value.(*geom.Vector)
	a, err := r.Next().Value.(*geom.Vector).Subtract(cur)
	if err != nil {
		return false, polygonErrorf(opConvex, err)
	}
	b, err := r.Prev().Value.(*geom.Vector).Subtract(cur)
	if err != nil {
		return false, polygonErrorf(opConvex, err)
	}
	theta, err := a.AngleFrom(b)
	if err != nil {
		return false, polygonErrorf(opConvex, err)
	}
	eps := tolerance.Epsilon()
	if theta <= eps {
		return true, nil
	}
	if math.Abs(theta-math.Pi) <= eps {
		return false, nil
	}
	cross, err := a.Cross(b)
	if err != nil {
		return false, polygonErrorf(opConvex, err)
	}
	turn, err := cross.Dot(p.plane.Normal())
	if err != nil {
		return false, polygonErrorf(opConvex, err)
	}

	return turn > 0, nil
}

// IsReflex is the negation of IsConvex.
func (p *Polygon) IsReflex(v *geom.Vector) (bool, error) {
	ok, err := p.IsConvex(v)
	if err != nil {
		return false, err
	}

	return !ok, nil
}

// Type classifies v.
func (p *Polygon) Type(v *geom.Vector) (VertexType, error) {
	ok, err := p.IsConvex(v)
	if err != nil {
		return VertexConvex, err
	}
	if ok {
		return VertexConvex, nil
	}

	return VertexReflex, nil
}

// Types classifies every vertex in cycle order.
func (p *Polygon) Types() ([]VertexType, error) {
	out := make([]VertexType, 0, p.n)
	for _, v := range p.Vertices() {
		t, err := p.Type(v)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}

	return out, nil
}
