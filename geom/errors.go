// SPDX-License-Identifier: MIT
// Package geom: sentinel error set.
// All operations return these sentinels (optionally wrapped with an operation
// tag via geomErrorf) and tests match them with errors.Is. No operation
// panics on user-triggered conditions.

package geom

import (
	"errors"
	"fmt"
)

// ERROR TAXONOMY
// --------------
// dimension mismatch -> degenerate geometry -> undefined relation.
// Callers that need hard failures wrap the constructors themselves.

var (
	// ErrDimensionMismatch indicates operands of incompatible length or shape
	// (Add of a 2D and a 3D vector, Multiply with a.Cols != b.Rows, ...).
	ErrDimensionMismatch = errors.New("geom: dimension mismatch")

	// ErrNot3D signals that an operation defined only in three dimensions
	// (cross product, 3D rotation axis) received another dimension.
	ErrNot3D = errors.New("geom: operand is not three-dimensional")

	// ErrOutOfRange indicates an element, row or column index outside bounds.
	ErrOutOfRange = errors.New("geom: index out of range")

	// ErrBadShape indicates a malformed matrix literal (ragged rows, zero-width
	// rows) or an invalid requested shape.
	ErrBadShape = errors.New("geom: invalid shape")

	// ErrEmptyMatrix is returned by operations that have no meaning on the
	// 0×0 matrix (Multiply, Inverse, Max, ...).
	ErrEmptyMatrix = errors.New("geom: empty matrix")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("geom: matrix is not square")

	// ErrSingular is returned when inverting a matrix whose determinant is
	// within tolerance of zero.
	ErrSingular = errors.New("geom: singular matrix")

	// ErrZeroVector signals a zero-modulus direction, normal or rotation axis.
	ErrZeroVector = errors.New("geom: zero-length vector")

	// ErrNonCoplanar is returned by FromPoints when the points do not lie in
	// one plane within tolerance.
	ErrNonCoplanar = errors.New("geom: points are not coplanar")

	// ErrNoIntersection is returned by IntersectionWith when the objects do
	// not meet.
	ErrNoIntersection = errors.New("geom: objects do not intersect")

	// ErrParallel is returned when a closest point is not unique because the
	// objects are parallel.
	ErrParallel = errors.New("geom: objects are parallel")

	// ErrNotContained is returned by PositionOf for a point off the line.
	ErrNotContained = errors.New("geom: point does not lie on the line")

	// ErrUndefined is the "unknown" state of tri-state predicates: the relation
	// cannot be expressed for the given pair (angle with a zero vector, a plane
	// containing a plane, a line parallel to a point, ...).
	ErrUndefined = errors.New("geom: relation undefined for operands")

	// ErrImmutable is returned when mutating a canonical constant.
	ErrImmutable = errors.New("geom: canonical constant is immutable")

	// ErrNilObject indicates that a nil receiver or argument was used.
	ErrNilObject = errors.New("geom: nil object")
)

// Operation tags for geomErrorf; keep them grep-able.
const (
	opNewVector    = "NewVector"
	opVectorSet    = "Vector.Set"
	opVectorAt     = "Vector.At"
	opAngleFrom    = "Vector.AngleFrom"
	opVectorAdd    = "Vector.Add"
	opVectorSub    = "Vector.Subtract"
	opDot          = "Vector.Dot"
	opCross        = "Vector.Cross"
	opVectorDist   = "Vector.DistanceFrom"
	opVectorRotate = "Vector.Rotate"
	opVectorReflec = "Vector.ReflectionIn"
	opTo3D         = "Vector.To3D"
	opVectorLiesOn = "Vector.LiesOn"
	opVectorLiesIn = "Vector.LiesIn"

	opNewMatrix   = "NewMatrix"
	opMatrixAt    = "Matrix.At"
	opMatrixSet   = "Matrix.Set"
	opMatrixElems = "Matrix.SetElements"
	opRow         = "Matrix.Row"
	opCol         = "Matrix.Col"
	opMatrixAdd   = "Matrix.Add"
	opMatrixSub   = "Matrix.Subtract"
	opMul         = "Matrix.Multiply"
	opMulVec      = "Matrix.MultiplyVector"
	opScale       = "Matrix.Scale"
	opMinor       = "Matrix.Minor"
	opMatrixMax   = "Matrix.Max"
	opDiagonal    = "Matrix.Diagonal"
	opDeterminant = "Matrix.Determinant"
	opTrace       = "Matrix.Trace"
	opAugment     = "Matrix.Augment"
	opInverse     = "Matrix.Inverse"
	opRotation    = "RotationAbout"
	opToGonum     = "Matrix.ToGonum"

	opNewLine        = "NewLine"
	opLineSet        = "Line.SetVectors"
	opLineParallel   = "Line.IsParallelTo"
	opLineDist       = "Line.DistanceFrom"
	opLineContains   = "Line.Contains"
	opLineLiesIn     = "Line.LiesIn"
	opLineIntersects = "Line.Intersects"
	opLineTranslate  = "Line.Translate"
	opLinePosition   = "Line.PositionOf"
	opLineIntersect  = "Line.IntersectionWith"
	opLineClosest    = "Line.PointClosestTo"
	opLineRotate     = "Line.Rotate"
	opLineReflect    = "Line.ReflectionIn"

	opNewPlane        = "NewPlane"
	opPlaneSet        = "Plane.SetVectors"
	opPlaneParallel   = "Plane.IsParallelTo"
	opPlaneDist       = "Plane.DistanceFrom"
	opPlaneContains   = "Plane.Contains"
	opPlaneIntersects = "Plane.Intersects"
	opPlaneIntersect  = "Plane.IntersectionWith"
	opFromPoints      = "FromPoints"
	opPlaneTranslate  = "Plane.Translate"
	opPlaneLine       = "Plane.IntersectionWithLine"
	opPlanePlane      = "Plane.IntersectionWithPlane"
	opPlaneClosest    = "Plane.PointClosestTo"
	opPlaneRotate     = "Plane.Rotate"
	opPlaneReflect    = "Plane.ReflectionIn"

	opNewSegment       = "NewLineSegment"
	opSegmentSet       = "LineSegment.SetPoints"
	opSegmentDist      = "LineSegment.DistanceFrom"
	opSegmentContains  = "LineSegment.Contains"
	opSegmentTranslate = "LineSegment.Translate"
	opSegmentIntersect = "LineSegment.IntersectionWith"
	opSegmentClosest   = "LineSegment.PointClosestTo"
)

// geomErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Use only when err != nil.
func geomErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
