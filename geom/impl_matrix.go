// SPDX-License-Identifier: MIT

// Package geom - Matrix: row-major dense storage, constructors and
// element-wise operations.
//
// Purpose:
//   - Provide a flat row-major buffer with the explicit index formula i*c + j.
//   - Keep the public surface panic-free: At/Set/Row/Col return errors.
//   - Allow the empty (0×0) matrix; operations that have no meaning on it
//     report ErrEmptyMatrix.
//
// Complexity quicksheet:
//   - NewMatrix: O(r*c); At/Set: O(1); Dup/Map/Add/Subtract: O(r*c).

package geom

import (
	"math"
	"math/rand"
	"strings"

	"github.com/katalvlaran/lvgeom/tolerance"
)

// Formatting literals for String.
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]"
	_fmtSep      = ", "
	_fmtRowSep   = "\n"
)

// Matrix is a rectangular array of float64 values in row-major order.
//   - r, c hold dimensions (both 0 for the empty matrix).
//   - data has length r*c; element (i, j) lives at i*c + j.
type Matrix struct {
	r, c int
	data []float64
}

// NewMatrix builds a matrix from row literals (copied).
// MAIN DESCRIPTION:
//   - Public constructor from nested slices.
//
// Implementation:
//   - Stage 1: no rows -> empty matrix.
//   - Stage 2: every row must have the first row's non-zero width, else ErrBadShape.
//   - Stage 3: copy rows into the flat buffer.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewMatrix(rows [][]float64) (*Matrix, error) {
	m, err := matrixFromRows(rows)
	if err != nil {
		return nil, geomErrorf(opNewMatrix, err)
	}

	return m, nil
}

// SetElements replaces the contents of m with the given rows (copied),
// under the same shape rules as NewMatrix. m is left untouched on error.
func (m *Matrix) SetElements(rows [][]float64) error {
	n, err := matrixFromRows(rows)
	if err != nil {
		return geomErrorf(opMatrixElems, err)
	}
	*m = *n

	return nil
}

// matrixFromRows validates row literals and copies them into a flat buffer.
func matrixFromRows(rows [][]float64) (*Matrix, error) {
	if len(rows) == 0 {
		return &Matrix{}, nil
	}
	c := len(rows[0])
	if c == 0 {
		return nil, ErrBadShape
	}
	m := &Matrix{r: len(rows), c: c, data: make([]float64, len(rows)*c)}
	for i, row := range rows {
		if len(row) != c {
			return nil, ErrBadShape
		}
		copy(m.data[i*c:(i+1)*c], row)
	}

	return m, nil
}

// newZeroMatrix allocates an r×c zero matrix without validation.
func newZeroMatrix(r, c int) *Matrix {
	if r <= 0 || c <= 0 {
		return &Matrix{}
	}

	return &Matrix{r: r, c: c, data: make([]float64, r*c)}
}

// ZeroMatrix returns the r×c zero matrix; a non-positive dimension yields the
// empty matrix.
func ZeroMatrix(r, c int) *Matrix { return newZeroMatrix(r, c) }

// ColumnMatrix returns v as an n×1 matrix.
func ColumnMatrix(v *Vector) *Matrix {
	m := newZeroMatrix(len(v.elements), 1)
	copy(m.data, v.elements)

	return m
}

// Identity returns the n×n identity matrix.
func Identity(n int) *Matrix {
	m := newZeroMatrix(n, n)
	for i := 0; i < m.r; i++ {
		m.data[i*n+i] = 1
	}

	return m
}

// Diagonal returns the square matrix with els on its diagonal.
func Diagonal(els ...float64) *Matrix {
	n := len(els)
	m := newZeroMatrix(n, n)
	for i, x := range els {
		m.data[i*n+i] = x
	}

	return m
}

// RandomMatrix returns an r×c matrix with elements in [0, 1).
// rng may be nil, in which case the package-level source is used.
func RandomMatrix(r, c int, rng *rand.Rand) *Matrix {
	m := newZeroMatrix(r, c)
	for i := range m.data {
		if rng != nil {
			m.data[i] = rng.Float64()
		} else {
			m.data[i] = rand.Float64()
		}
	}

	return m
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.c }

// Dimensions returns (rows, cols).
func (m *Matrix) Dimensions() (int, int) { return m.r, m.c }

// At returns element (i, j), 0-based.
func (m *Matrix) At(i, j int) (float64, error) {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return 0, geomErrorf(opMatrixAt, ErrOutOfRange)
	}

	return m.data[i*m.c+j], nil
}

// Set writes element (i, j), 0-based.
func (m *Matrix) Set(i, j int, x float64) error {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return geomErrorf(opMatrixSet, ErrOutOfRange)
	}
	m.data[i*m.c+j] = x

	return nil
}

// Row returns row i as a Vector.
func (m *Matrix) Row(i int) (*Vector, error) {
	if i < 0 || i >= m.r {
		return nil, geomErrorf(opRow, ErrOutOfRange)
	}

	return NewVector(m.data[i*m.c : (i+1)*m.c]...), nil
}

// Col returns column j as a Vector.
func (m *Matrix) Col(j int) (*Vector, error) {
	if j < 0 || j >= m.c {
		return nil, geomErrorf(opCol, ErrOutOfRange)
	}
	v := ZeroVector(m.r)
	for i := 0; i < m.r; i++ {
		v.elements[i] = m.data[i*m.c+j]
	}

	return v, nil
}

// IsSameSizeAs reports equal shapes.
func (m *Matrix) IsSameSizeAs(n *Matrix) bool {
	return n != nil && m.r == n.r && m.c == n.c
}

// IsSquare reports rows == cols (true for the empty matrix).
func (m *Matrix) IsSquare() bool { return m.r == m.c }

// Eql reports same shape and element-wise equality within the current tolerance.
func (m *Matrix) Eql(n *Matrix) bool {
	return m.EqlWithin(n, tolerance.Current())
}

// EqlWithin is Eql under an explicit tolerance.
func (m *Matrix) EqlWithin(n *Matrix, tol tolerance.Tolerance) bool {
	if !m.IsSameSizeAs(n) {
		return false
	}
	for k, x := range m.data {
		if !tol.Equal(x, n.data[k]) {
			return false
		}
	}

	return true
}

// Dup returns an independent copy.
func (m *Matrix) Dup() *Matrix {
	out := &Matrix{r: m.r, c: m.c, data: make([]float64, len(m.data))}
	copy(out.data, m.data)

	return out
}

// Map returns a new matrix with fn applied to every element; i, j are 0-based.
func (m *Matrix) Map(fn func(x float64, i, j int) float64) *Matrix {
	out := m.Dup()
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			k := i*m.c + j
			out.data[k] = fn(m.data[k], i, j)
		}
	}

	return out
}

// Add returns m + n. An empty receiver yields a copy of itself.
func (m *Matrix) Add(n *Matrix) (*Matrix, error) {
	return m.elementwise(n, opMatrixAdd, func(a, b float64) float64 { return a + b })
}

// Subtract returns m - n. An empty receiver yields a copy of itself.
func (m *Matrix) Subtract(n *Matrix) (*Matrix, error) {
	return m.elementwise(n, opMatrixSub, func(a, b float64) float64 { return a - b })
}

func (m *Matrix) elementwise(n *Matrix, tag string, fn func(a, b float64) float64) (*Matrix, error) {
	if n == nil {
		return nil, geomErrorf(tag, ErrNilObject)
	}
	if m.r == 0 {
		return m.Dup(), nil
	}
	if !m.IsSameSizeAs(n) {
		return nil, geomErrorf(tag, ErrDimensionMismatch)
	}
	out := m.Dup()
	for k := range out.data {
		out.data[k] = fn(m.data[k], n.data[k])
	}

	return out, nil
}

// Scale returns k·m.
func (m *Matrix) Scale(k float64) (*Matrix, error) {
	if m.r == 0 {
		return nil, geomErrorf(opScale, ErrEmptyMatrix)
	}

	return m.Map(func(x float64, _, _ int) float64 { return x * k }), nil
}

// Transpose returns mᵀ.
func (m *Matrix) Transpose() *Matrix {
	out := newZeroMatrix(m.c, m.r)
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			out.data[j*m.r+i] = m.data[i*m.c+j]
		}
	}

	return out
}

// Max returns the element with the largest magnitude (sign preserved).
func (m *Matrix) Max() (float64, error) {
	if m.r == 0 {
		return 0, geomErrorf(opMatrixMax, ErrEmptyMatrix)
	}
	var best float64
	for _, x := range m.data {
		if math.Abs(x) > math.Abs(best) {
			best = x
		}
	}

	return best, nil
}

// IndexOf returns the first (row-major) position holding exactly x.
func (m *Matrix) IndexOf(x float64) (int, int, bool) {
	for k, y := range m.data {
		if y == x {
			return k / m.c, k % m.c, true
		}
	}

	return -1, -1, false
}

// Diagonal returns the leading diagonal of a square matrix.
func (m *Matrix) Diagonal() (*Vector, error) {
	if !m.IsSquare() {
		return nil, geomErrorf(opDiagonal, ErrNonSquare)
	}
	v := ZeroVector(m.r)
	for i := 0; i < m.r; i++ {
		v.elements[i] = m.data[i*m.c+i]
	}

	return v, nil
}

// Round rounds every element to the nearest integer.
func (m *Matrix) Round() *Matrix {
	return m.Map(func(x float64, _, _ int) float64 { return math.Round(x) })
}

// SnapTo replaces every element within tolerance of x by x.
func (m *Matrix) SnapTo(x float64) *Matrix {
	eps := epsilon()

	return m.Map(func(y float64, _, _ int) float64 {
		if math.Abs(y-x) <= eps {
			return x
		}

		return y
	})
}

// String renders rows as "[a, b]" joined by newlines; the empty matrix is "[]".
func (m *Matrix) String() string {
	if m.r == 0 {
		return _fmtRowOpen + _fmtRowClose
	}
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		if i > 0 {
			sb.WriteString(_fmtRowSep)
		}
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			sb.WriteString(formatFloat(m.data[i*m.c+j]))
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
