// SPDX-License-Identifier: MIT

// Package geom: the closed Object variant used for argument dispatch.
// This file contains ONLY the variant declaration and compile-time
// conformance checks; behaviour lives in the impl_* files.

package geom

import "fmt"

// Kind tags the concrete shape behind an Object.
type Kind int

const (
	// KindPoint is a *Vector used as a position.
	KindPoint Kind = iota
	// KindLine is a *Line.
	KindLine
	// KindPlane is a *Plane.
	KindPlane
	// KindSegment is a *LineSegment.
	KindSegment
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindPoint:
		return "point"
	case KindLine:
		return "line"
	case KindPlane:
		return "plane"
	case KindSegment:
		return "segment"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Object is the closed set {*Vector, *Line, *Plane, *LineSegment}.
// The unexported marker keeps the set closed: every type switch over an
// Object in this package is exhaustive.
type Object interface {
	fmt.Stringer

	// Kind reports which member of the variant this is.
	Kind() Kind

	object()
}

// Compile-time assertions for variant membership.
var (
	_ Object = (*Vector)(nil)
	_ Object = (*Line)(nil)
	_ Object = (*Plane)(nil)
	_ Object = (*LineSegment)(nil)

	_ fmt.Stringer = (*Matrix)(nil)
)

func (*Vector) object()      {}
func (*Line) object()        {}
func (*Plane) object()       {}
func (*LineSegment) object() {}

// Kind implements Object.
func (*Vector) Kind() Kind { return KindPoint }

// Kind implements Object.
func (*Line) Kind() Kind { return KindLine }

// Kind implements Object.
func (*Plane) Kind() Kind { return KindPlane }

// Kind implements Object.
func (*LineSegment) Kind() Kind { return KindSegment }
