// SPDX-License-Identifier: MIT

package geom_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvgeom/geom"
)

type LineSuite struct {
	suite.Suite
	diag *geom.Line // through the origin along (1, 1, 1)
}

func (s *LineSuite) SetupTest() {
	s.diag = MustLine(s.T(), vec(0, 0, 0), vec(1, 1, 1))
}

func TestLineSuite(t *testing.T) {
	suite.Run(t, new(LineSuite))
}

func (s *LineSuite) TestConstruction() {
	require := require.New(s.T())

	l, err := geom.NewLine(vec(1, 2), vec(0, 3))
	require.NoError(err)
	requireVecEql(s.T(), vec(1, 2, 0), l.Anchor())
	requireVecEql(s.T(), vec(0, 1, 0), l.Direction())

	_, err = geom.NewLine(vec(0, 0, 0), vec(0, 0, 0))
	require.ErrorIs(err, geom.ErrZeroVector)
	_, err = geom.NewLine(vec(0, 0, 0, 0), vec(1, 0, 0))
	require.ErrorIs(err, geom.ErrDimensionMismatch)
	_, err = geom.NewLine(nil, vec(1, 0, 0))
	require.ErrorIs(err, geom.ErrNilObject)
}

func (s *LineSuite) TestDupIsIndependent() {
	require := require.New(s.T())

	l := geom.LineX.Dup()
	require.True(l.Eql(geom.LineX))
	require.NoError(l.SetVectors(vec(8, 2, 5), vec(2, 5, 6)))
	requireVecEql(s.T(), vec(0, 0, 0), geom.LineX.Anchor())
	requireVecEql(s.T(), geom.I, geom.LineX.Direction())
	require.False(l.Eql(geom.LineX))

	a := geom.LineX.Anchor()
	require.NoError(a.Set(0, 7))
	requireVecEql(s.T(), vec(0, 0, 0), geom.LineX.Anchor())

	require.ErrorIs(geom.LineX.SetVectors(vec(1, 1, 1), geom.J), geom.ErrImmutable)
}

func (s *LineSuite) TestEqlAntiparallel() {
	s.True(geom.LineX.Eql(MustLine(s.T(), vec(0, 0, 0), vec(-12, 0, 0))))
	s.False(geom.LineX.Eql(nil))
}

func (s *LineSuite) TestContains() {
	require := require.New(s.T())

	for _, tc := range []struct {
		p    *geom.Vector
		want bool
	}{
		{vec(99, 0, 0), true},
		{vec(99, 1, 0), false},
		{vec(99, 0, 2), false},
		{vec(-3, 0), true},
	} {
		ok, err := geom.LineX.Contains(tc.p)
		require.NoError(err)
		require.Equal(tc.want, ok, tc.p.String())
	}

	ok, err := s.diag.Contains(MustSegment(s.T(), vec(-2, -2, -2), vec(13, 13, 13)))
	require.NoError(err)
	require.True(ok)

	_, err = geom.LineX.Contains(geom.PlaneXY)
	require.ErrorIs(err, geom.ErrUndefined)
}

func (s *LineSuite) TestIsParallelTo() {
	require := require.New(s.T())

	for _, tc := range []struct {
		name string
		l    *geom.Line
		obj  geom.Object
		want bool
	}{
		{"antiparallel line", geom.LineX, MustLine(s.T(), vec(0, 0, -12), vec(-4, 0, 0)), true},
		{"line in parallel plane", geom.LineX, MustPlane(s.T(), vec(0, 0, -4), geom.K), true},
		{"line through plane", geom.LineZ, MustPlane(s.T(), vec(0, 0, -4), geom.K), false},
		{"segment along z", geom.LineZ, MustSegment(s.T(), vec(9, 2, 6), vec(9, 2, 44)), true},
		{"tilted segment", geom.LineZ, MustSegment(s.T(), vec(9, 3, 6), vec(9, 2, 44)), false},
	} {
		ok, err := tc.l.IsParallelTo(tc.obj)
		require.NoError(err, tc.name)
		require.Equal(tc.want, ok, tc.name)
	}

	_, err := geom.LineX.IsParallelTo(vec(1, 2, 3))
	require.ErrorIs(err, geom.ErrUndefined)
}

func (s *LineSuite) TestTranslateAndReverse() {
	require := require.New(s.T())

	l, err := geom.LineX.Translate(vec(0, 0, 12))
	require.NoError(err)
	require.True(l.Eql(MustLine(s.T(), vec(0, 0, 12), geom.I)))
	requireVecEql(s.T(), vec(0, 0, 0), geom.LineX.Anchor())

	r := geom.LineX.Reverse()
	requireVecEql(s.T(), vec(-1, 0, 0), r.Direction())
	require.True(r.Eql(geom.LineX))
}

func (s *LineSuite) TestIntersectionWith() {
	require := require.New(s.T())

	rng := rand.New(rand.NewSource(17))
	o := vec(-5, -5, -5)
	for i := 0; i < 5; i++ {
		v, _ := o.Add(geom.RandomVector(3, rng).Multiply(10))
		v1, _ := o.Add(geom.RandomVector(3, rng).Multiply(10))
		v2, _ := o.Add(geom.RandomVector(3, rng).Multiply(10))
		l1 := MustLine(s.T(), v, v1)
		shifted, _ := v.Add(v1.Multiply(-20 + 40*rng.Float64()))
		l2 := MustLine(s.T(), shifted, v2)

		p, err := l1.IntersectionWith(l2)
		require.NoError(err)
		ok, err := l1.Contains(p)
		require.NoError(err)
		require.True(ok)
		ok, err = l2.Contains(p)
		require.NoError(err)
		require.True(ok)
	}

	p, err := MustLine(s.T(), vec(5, 0), vec(0, 1)).IntersectionWith(MustLine(s.T(), vec(0, 0), vec(-1, -1)))
	require.NoError(err)
	requireVecEql(s.T(), vec(5, 5, 0), p)

	ok, err := geom.LineX.Intersects(MustSegment(s.T(), vec(7, -4, 0), vec(7, 5, 0)))
	require.NoError(err)
	require.True(ok)
	ok, err = geom.LineX.Intersects(MustSegment(s.T(), vec(7, -4, -1), vec(7, 5, 0)))
	require.NoError(err)
	require.False(ok)

	_, err = geom.LineX.IntersectionWith(MustLine(s.T(), vec(0, 1, 0), geom.I))
	require.ErrorIs(err, geom.ErrNoIntersection)
	ok, err = geom.LineX.Intersects(geom.LineX)
	require.NoError(err)
	require.False(ok, "coincident lines have no unique intersection")

	p, err = geom.LineZ.IntersectionWith(MustPlane(s.T(), vec(0, 0, 4), geom.K))
	require.NoError(err)
	requireVecEql(s.T(), vec(0, 0, 4), p)
}

func (s *LineSuite) TestPositionOf() {
	require := require.New(s.T())

	l := MustLine(s.T(), vec(0, 0, 0), vec(1, 1, -1))
	pos, err := l.PositionOf(vec(3, 3, -3))
	require.NoError(err)
	require.InDelta(math.Sqrt(27), pos, delta)

	_, err = l.PositionOf(vec(3, 3, 3))
	require.ErrorIs(err, geom.ErrNotContained)
}

func (s *LineSuite) TestPointClosestTo() {
	require := require.New(s.T())

	p, err := geom.LineX.PointClosestTo(vec(26, -2, 18))
	require.NoError(err)
	requireVecEql(s.T(), vec(26, 0, 0), p)

	p, err = geom.LineX.PointClosestTo(MustLine(s.T(), vec(0, 0, 24), vec(1, 1, 0)))
	require.NoError(err)
	requireVecEql(s.T(), vec(0, 0, 0), p)

	p, err = MustLine(s.T(), vec(0, 0, 24), vec(1, 1, 0)).PointClosestTo(MustLine(s.T(), vec(0, 0, 0), vec(-1, 0, 0)))
	require.NoError(err)
	requireVecEql(s.T(), vec(0, 0, 24), p)

	p, err = geom.LineX.PointClosestTo(MustSegment(s.T(), vec(3, 5), vec(9, 9)))
	require.NoError(err)
	requireVecEql(s.T(), vec(3, 0, 0), p)

	p, err = geom.LineX.PointClosestTo(MustSegment(s.T(), vec(2, -2, 2), vec(4, 2, 2)))
	require.NoError(err)
	requireVecEql(s.T(), vec(3, 0, 0), p)

	_, err = geom.LineX.PointClosestTo(MustLine(s.T(), vec(0, 5, 0), geom.I))
	require.ErrorIs(err, geom.ErrParallel)

	p, err = s.diag.PointClosestTo(geom.PlaneXY)
	require.NoError(err)
	requireVecEql(s.T(), vec(0, 0, 0), p)
	_, err = geom.LineX.PointClosestTo(geom.PlaneXY)
	require.ErrorIs(err, geom.ErrParallel)
}

func (s *LineSuite) TestDistanceFrom() {
	require := require.New(s.T())

	d, err := geom.LineX.DistanceFrom(MustLine(s.T(), vec(0, 0, 24), vec(1, 1, 0)))
	require.NoError(err)
	require.InDelta(24, d, delta)

	d, err = MustLine(s.T(), vec(12, 0, 0), geom.K).DistanceFrom(geom.PlaneYZ)
	require.NoError(err)
	require.InDelta(12, d, delta)

	d, err = MustLine(s.T(), vec(12, 0, 0), vec(1, 0, 200)).DistanceFrom(geom.PlaneYZ)
	require.NoError(err)
	require.Equal(0.0, d)

	d, err = geom.LineX.DistanceFrom(MustSegment(s.T(), vec(12, 3, 3), vec(15, 4, 3)))
	require.NoError(err)
	require.InDelta(math.Sqrt(18), d, delta)

	d, err = geom.LineX.DistanceFrom(MustLine(s.T(), vec(0, 3, 4), vec(-1, 0, 0)))
	require.NoError(err)
	require.InDelta(5, d, delta)

	d, err = geom.LineX.DistanceFrom(MustSegment(s.T(), vec(0, 3, 4), vec(9, 3, 4)))
	require.NoError(err)
	require.InDelta(5, d, delta)
}

func (s *LineSuite) TestReflectionIn() {
	require := require.New(s.T())

	r, err := geom.LineZ.ReflectionIn(vec(28, 0, -12))
	require.NoError(err)
	require.True(r.Eql(MustLine(s.T(), vec(56, 0, 0), geom.K.Multiply(-1))))

	r, err = geom.LineX.ReflectionIn(MustLine(s.T(), vec(0, 0, 0), vec(1, 0, 1)))
	require.NoError(err)
	require.True(r.Eql(geom.LineZ))

	mirror := MustPlane(s.T(), vec(5, 0, 0), vec(1, 0, 1))
	l1 := geom.LineX.Dup()
	l2 := MustLine(s.T(), vec(5, 0, 0), geom.K)
	r, err = l1.ReflectionIn(mirror)
	require.NoError(err)
	require.True(r.Eql(l2))
	r, err = l2.ReflectionIn(mirror)
	require.NoError(err)
	require.True(r.Eql(l1))

	r, err = MustLine(s.T(), vec(-4, 3), vec(0, -1)).ReflectionIn(vec(0, 0))
	require.NoError(err)
	require.True(r.Eql(MustLine(s.T(), vec(4, 100), vec(0, 4))))

	_, err = geom.LineX.ReflectionIn(MustSegment(s.T(), vec(0, 0, 0), vec(1, 1, 1)))
	require.ErrorIs(err, geom.ErrUndefined)
}

func (s *LineSuite) TestRotate() {
	require := require.New(s.T())

	r, err := geom.LineX.Rotate(math.Pi, MustLine(s.T(), vec(12, 0, 0), vec(1, 0, 1)))
	require.NoError(err)
	require.True(r.Eql(MustLine(s.T(), vec(12, 0, 0), geom.K)))

	r, err = MustLine(s.T(), vec(10, 0, 0), vec(0, 1, 1)).Rotate(-math.Pi/2, geom.LineY)
	require.NoError(err)
	require.True(r.Eql(MustLine(s.T(), vec(0, 0, 10), vec(1, -1, 0))))

	r, err = MustLine(s.T(), vec(9, 0), geom.J).Rotate(math.Pi/2, vec(9, 9))
	require.NoError(err)
	require.True(r.Eql(MustLine(s.T(), vec(0, 9), geom.I)))

	_, err = geom.LineX.Rotate(1, geom.PlaneXY)
	require.ErrorIs(err, geom.ErrUndefined)
}

func (s *LineSuite) TestLiesInAndString() {
	ok, err := geom.LineX.LiesIn(geom.PlaneXY)
	s.Require().NoError(err)
	s.True(ok)
	ok, err = geom.LineZ.LiesIn(geom.PlaneXY)
	s.Require().NoError(err)
	s.False(ok)

	s.Equal("Line{anchor: [0, 0, 0], direction: [1, 0, 0]}", geom.LineX.String())
	s.Equal(geom.KindLine, geom.LineX.Kind())
}
