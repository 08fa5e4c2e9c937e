// SPDX-License-Identifier: MIT

package geom_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvgeom/geom"
)

// Every failure keeps its sentinel for errors.Is and names the operation
// that produced it.
func TestErrors_CarryOperationTag(t *testing.T) {
	var nilLine *geom.Line
	seg := MustSegment(t, vec(0, 0, 0), vec(1, 1, 1))
	for _, tc := range []struct {
		name string
		call func() error
		want error
		tag  string
	}{
		{"line set frozen", func() error {
			return geom.LineY.SetVectors(vec(1, 1, 1), geom.J)
		}, geom.ErrImmutable, "Line.SetVectors"},
		{"line set zero direction", func() error {
			return geom.LineX.Dup().SetVectors(vec(1, 1, 1), vec(0, 0, 0))
		}, geom.ErrZeroVector, "Line.SetVectors"},
		{"plane set frozen", func() error {
			return geom.PlaneZX.SetVectors(vec(1, 1, 1), geom.K)
		}, geom.ErrImmutable, "Plane.SetVectors"},
		{"plane set bad dimension", func() error {
			return geom.PlaneXY.Dup().SetVectors(vec(1, 1, 1, 1), geom.K)
		}, geom.ErrDimensionMismatch, "Plane.SetVectors"},
		{"segment set degenerate", func() error {
			return seg.Dup().SetPoints(vec(2, 2, 2), vec(2, 2, 2))
		}, geom.ErrZeroVector, "LineSegment.SetPoints"},
		{"line parallel to point", func() error {
			_, err := geom.LineX.IsParallelTo(vec(1, 2, 3))
			return err
		}, geom.ErrUndefined, "Line.IsParallelTo"},
		{"line distance to nil", func() error {
			_, err := geom.LineX.DistanceFrom(nilLine)
			return err
		}, geom.ErrNilObject, "Line.DistanceFrom"},
		{"line distance to 4D point", func() error {
			_, err := geom.LineX.DistanceFrom(vec(1, 2, 3, 4))
			return err
		}, geom.ErrDimensionMismatch, "Line.DistanceFrom"},
		{"line contains plane", func() error {
			_, err := geom.LineX.Contains(geom.PlaneXY)
			return err
		}, geom.ErrUndefined, "Line.Contains"},
		{"line intersects point", func() error {
			_, err := geom.LineX.Intersects(vec(1, 0, 0))
			return err
		}, geom.ErrUndefined, "Line.Intersects"},
		{"line lies in nil", func() error {
			_, err := geom.LineX.LiesIn(nil)
			return err
		}, geom.ErrNilObject, "Line.LiesIn"},
		{"plane parallel to point", func() error {
			_, err := geom.PlaneXY.IsParallelTo(vec(1, 1, 1))
			return err
		}, geom.ErrUndefined, "Plane.IsParallelTo"},
		{"plane distance to nil", func() error {
			_, err := geom.PlaneXY.DistanceFrom(nil)
			return err
		}, geom.ErrNilObject, "Plane.DistanceFrom"},
		{"plane contains plane", func() error {
			_, err := geom.PlaneXY.Contains(geom.PlaneXY)
			return err
		}, geom.ErrUndefined, "Plane.Contains"},
		{"plane intersects point", func() error {
			_, err := geom.PlaneXY.Intersects(vec(0, 0, 0))
			return err
		}, geom.ErrUndefined, "Plane.Intersects"},
		{"plane intersection with point", func() error {
			_, err := geom.PlaneXY.IntersectionWith(vec(0, 0, 0))
			return err
		}, geom.ErrUndefined, "Plane.IntersectionWith"},
		{"segment distance to nil", func() error {
			_, err := seg.DistanceFrom(nil)
			return err
		}, geom.ErrNilObject, "LineSegment.DistanceFrom"},
		{"segment contains line", func() error {
			_, err := seg.Contains(geom.LineX)
			return err
		}, geom.ErrUndefined, "LineSegment.Contains"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.call()
			require.ErrorIs(t, err, tc.want)
			require.ErrorContains(t, err, tc.tag+": ")
		})
	}
}
