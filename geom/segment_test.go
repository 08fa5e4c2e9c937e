// SPDX-License-Identifier: MIT

package geom_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvgeom/geom"
)

type SegmentSuite struct {
	suite.Suite
	diag  *geom.LineSegment // (5,5,5) -> (10,10,10)
	short *geom.LineSegment // (1,1,0) -> (1,2,0)
}

func (s *SegmentSuite) SetupTest() {
	s.diag = MustSegment(s.T(), vec(5, 5, 5), vec(10, 10, 10))
	s.short = MustSegment(s.T(), vec(1, 1, 0), vec(1, 2, 0))
}

func TestSegmentSuite(t *testing.T) {
	suite.Run(t, new(SegmentSuite))
}

func (s *SegmentSuite) TestConstruction() {
	_, err := geom.NewLineSegment(vec(1, 1, 1), vec(1, 1, 1))
	s.Require().ErrorIs(err, geom.ErrZeroVector)
	_, err = geom.NewLineSegment(vec(1), vec(1, 1, 1))
	s.Require().ErrorIs(err, geom.ErrDimensionMismatch)

	seg := MustSegment(s.T(), vec(1, 2), vec(3, 4))
	requireVecEql(s.T(), vec(1, 2, 0), seg.Start())
	requireVecEql(s.T(), vec(3, 4, 0), seg.End())
	s.True(seg.Line().Eql(MustLine(s.T(), vec(1, 2), vec(1, 1))))
}

func (s *SegmentSuite) TestEqlAndDup() {
	require := require.New(s.T())

	require.True(s.diag.Eql(s.diag))
	require.False(s.diag.Eql(s.short))
	require.True(s.diag.Eql(MustSegment(s.T(), vec(10, 10, 10), vec(5, 5, 5))))

	dup := s.diag.Dup()
	require.True(s.diag.Eql(dup))
	require.NoError(dup.SetPoints(vec(23, 87, 56), vec(10, 10, 10)))
	require.False(s.diag.Eql(dup))
	requireVecEql(s.T(), vec(5, 5, 5), s.diag.Start())
}

func (s *SegmentSuite) TestMeasures() {
	require := require.New(s.T())

	require.InDelta(math.Sqrt(75), s.diag.Length(), delta)
	requireVecEql(s.T(), vec(5, 5, 5), s.diag.ToVector())
	requireVecEql(s.T(), vec(7.5, 7.5, 7.5), s.diag.Midpoint())
	require.True(s.diag.BisectingPlane().Eql(MustPlane(s.T(), vec(7.5, 7.5, 7.5), vec(1, 1, 1))))
}

func (s *SegmentSuite) TestTranslate() {
	moved, err := s.diag.Translate(vec(9, 2, 7))
	s.Require().NoError(err)
	s.True(moved.Eql(MustSegment(s.T(), vec(14, 7, 12), vec(19, 12, 17))))
	s.True(moved.Line().Eql(MustLine(s.T(), vec(14, 7, 12), vec(1, 1, 1))))
}

func (s *SegmentSuite) TestIsParallelTo() {
	require := require.New(s.T())

	for _, tc := range []struct {
		name string
		seg  *geom.LineSegment
		obj  geom.Object
		want bool
	}{
		{"y axis", s.short, geom.LineY, true},
		{"z axis", s.short, geom.LineZ, false},
		{"xy plane", s.short, geom.PlaneXY, true},
		{"yz plane", s.short, geom.PlaneYZ, true},
		{"zx plane", s.short, geom.PlaneZX, false},
		{"other segment", s.diag, s.short, false},
		{"itself", s.short, s.short, true},
	} {
		ok, err := tc.seg.IsParallelTo(tc.obj)
		require.NoError(err, tc.name)
		require.Equal(tc.want, ok, tc.name)
	}
}

func (s *SegmentSuite) TestContains() {
	require := require.New(s.T())

	for _, tc := range []struct {
		obj  geom.Object
		want bool
	}{
		{s.diag.Midpoint(), true},
		{vec(5, 5, 5), true},
		{vec(10, 10, 10), true},
		{vec(4.9999, 4.9999, 4.9999), false},
		{vec(10.00001, 10.00001, 10.00001), false},
		{MustSegment(s.T(), vec(5, 5, 5), vec(8, 8, 8)), true},
		{MustSegment(s.T(), vec(7, 7, 7), vec(10, 10, 10)), true},
		{MustSegment(s.T(), vec(4, 4, 4), vec(8, 8, 8)), false},
	} {
		ok, err := s.diag.Contains(tc.obj)
		require.NoError(err, tc.obj.String())
		require.Equal(tc.want, ok, tc.obj.String())
	}

	_, err := s.diag.Contains(geom.LineX)
	require.ErrorIs(err, geom.ErrUndefined)
}

func (s *SegmentSuite) TestDistanceFrom() {
	require := require.New(s.T())

	for _, tc := range []struct {
		name string
		obj  geom.Object
		want float64
	}{
		{"point below start", vec(5, 5, 0), 5},
		{"point past end", vec(10, 12, 10), 2},
		{"x axis", geom.LineX, math.Sqrt(2 * 25)},
		{"skew line", MustLine(s.T(), vec(11, 10, 10), vec(0, 1)), 1},
		{"xy plane", geom.PlaneXY, 5},
		{"segment", MustSegment(s.T(), vec(7, 0, 0), vec(9, 0, 0)), math.Sqrt(4 + 25 + 25)},
		{"parallel segment", MustSegment(s.T(), vec(12, 11, 11), vec(20, 19, 19)), math.Sqrt(2 + 2*2)},
	} {
		d, err := s.diag.DistanceFrom(tc.obj)
		require.NoError(err, tc.name)
		require.InDelta(tc.want, d, delta, tc.name)
	}
}

func (s *SegmentSuite) TestIntersection() {
	require := require.New(s.T())

	for _, obj := range []geom.Object{
		geom.LineX, geom.LineY, geom.LineZ,
		geom.PlaneXY, geom.PlaneYZ, geom.PlaneZX,
		s.short,
	} {
		ok, err := s.diag.Intersects(obj)
		require.NoError(err, obj.String())
		require.False(ok, obj.String())
	}

	p, err := s.diag.IntersectionWith(s.diag.BisectingPlane())
	require.NoError(err)
	requireVecEql(s.T(), s.diag.Midpoint(), p)

	p, err = MustSegment(s.T(), vec(0, 4, 4), vec(0, 8, 4)).IntersectionWith(MustSegment(s.T(), vec(0, 6, 2), vec(0, 6, 6)))
	require.NoError(err)
	requireVecEql(s.T(), vec(0, 6, 4), p)

	_, err = MustSegment(s.T(), vec(0, 4, 4), vec(0, 8, 4)).IntersectionWith(MustSegment(s.T(), vec(2, 6, 2), vec(0, 6, 6)))
	require.ErrorIs(err, geom.ErrNoIntersection)

	ok, err := s.diag.Intersects(MustSegment(s.T(), vec(6, 7, 7), vec(9, 7, 7)))
	require.NoError(err)
	require.True(ok)

	_, err = s.diag.Intersects(vec(5, 5, 5))
	require.ErrorIs(err, geom.ErrUndefined)
}

func (s *SegmentSuite) TestPointClosestTo() {
	require := require.New(s.T())

	_, err := s.short.PointClosestTo(geom.LineY)
	require.ErrorIs(err, geom.ErrParallel)

	xShifted, err := geom.LineX.Translate(vec(0, 10))
	require.NoError(err)

	for _, tc := range []struct {
		name string
		obj  geom.Object
		want *geom.Vector
	}{
		{"x axis", geom.LineX, vec(1, 1, 0)},
		{"shifted x axis", xShifted, vec(1, 2, 0)},
		{"skew z line", MustLine(s.T(), vec(0, 1.5, 0), vec(0, 0, 1)), vec(1, 1.5, 0)},
		{"xz plane", geom.PlaneXZ, vec(1, 1, 0)},
		{"point", vec(7, 1.25, 3), vec(1, 1.25, 0)},
	} {
		p, err := s.short.PointClosestTo(tc.obj)
		require.NoError(err, tc.name)
		requireVecEql(s.T(), tc.want, p)
	}

	_, err = s.short.PointClosestTo(geom.PlaneYZ)
	require.ErrorIs(err, geom.ErrParallel)
}

func (s *SegmentSuite) TestString() {
	s.Equal("LineSegment{start: [1, 1, 0], end: [1, 2, 0]}", s.short.String())
	s.Equal(geom.KindSegment, s.short.Kind())
}
