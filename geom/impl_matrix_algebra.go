// SPDX-License-Identifier: MIT

// Package geom - Matrix linear algebra: products, minors, elimination,
// determinant, rank and inverse.
//
// Determinism:
//   - Fixed loop orders; elimination never swaps rows. A zero pivot is
//     repaired by adding the first lower row with a non-zero entry in that
//     column, so results are reproducible bit-for-bit.

package geom

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// CanMultiplyFromLeft reports whether m·n is defined (m.Cols == n.Rows).
func (m *Matrix) CanMultiplyFromLeft(n *Matrix) bool {
	if n == nil || m.r == 0 || n.r == 0 {
		return false
	}

	return m.c == n.r
}

// Multiply returns m·n.
// MAIN DESCRIPTION:
//   - Row-major i→k→j product over the flat buffers.
//
// Implementation:
//   - Stage 1: both non-empty (ErrEmptyMatrix) and m.Cols == n.Rows
//     (ErrDimensionMismatch).
//   - Stage 2: accumulate row i of the result from scaled rows k of n,
//     skipping zero coefficients.
//
// Complexity:
//   - Time O(r*k*c), Space O(r*c).
func (m *Matrix) Multiply(n *Matrix) (*Matrix, error) {
	if n == nil {
		return nil, geomErrorf(opMul, ErrNilObject)
	}
	if m.r == 0 || n.r == 0 {
		return nil, geomErrorf(opMul, ErrEmptyMatrix)
	}
	if m.c != n.r {
		return nil, geomErrorf(opMul, ErrDimensionMismatch)
	}
	res := newZeroMatrix(m.r, n.c)
	var (
		i, j, k                            int
		av                                 float64
		rowOffsetA, rowOffsetB, rowOffsetR int
	)
	for i = 0; i < m.r; i++ {
		rowOffsetA = i * m.c
		rowOffsetR = i * n.c
		for k = 0; k < m.c; k++ {
			av = m.data[rowOffsetA+k]
			if av == 0 {
				continue
			}
			rowOffsetB = k * n.c
			for j = 0; j < n.c; j++ {
				res.data[rowOffsetR+j] += av * n.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// MultiplyVector returns m·v as a Vector (v is treated as a column).
func (m *Matrix) MultiplyVector(v *Vector) (*Vector, error) {
	if v == nil {
		return nil, geomErrorf(opMulVec, ErrNilObject)
	}
	if m.r == 0 {
		return nil, geomErrorf(opMulVec, ErrEmptyMatrix)
	}
	if m.c != len(v.elements) {
		return nil, geomErrorf(opMulVec, ErrDimensionMismatch)
	}
	out := ZeroVector(m.r)
	for i := 0; i < m.r; i++ {
		var sum float64
		row := m.data[i*m.c : (i+1)*m.c]
		for k, x := range row {
			sum += x * v.elements[k]
		}
		out.elements[i] = sum
	}

	return out, nil
}

// Minor returns the rows×cols block whose top-left corner is (i, j).
// Indices wrap cyclically past the last row/column, so the block may be
// larger than m.
func (m *Matrix) Minor(i, j, rows, cols int) (*Matrix, error) {
	if m.r == 0 {
		return nil, geomErrorf(opMinor, ErrEmptyMatrix)
	}
	if rows <= 0 || cols <= 0 {
		return nil, geomErrorf(opMinor, ErrBadShape)
	}
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return nil, geomErrorf(opMinor, ErrOutOfRange)
	}
	out := newZeroMatrix(rows, cols)
	for a := 0; a < rows; a++ {
		src := ((i + a) % m.r) * m.c
		for b := 0; b < cols; b++ {
			out.data[a*cols+b] = m.data[src+(j+b)%m.c]
		}
	}

	return out, nil
}

// ToRightTriangular returns the upper-triangular form of m by Gaussian
// elimination without row exchanges.
// Implementation:
//   - Stage 1: for pivot i with an exactly zero entry, add the first lower
//     row whose entry in column i is non-zero.
//   - Stage 2: eliminate column i from every lower row; entries left of and
//     at the pivot column are set to exactly 0.
//
// Complexity:
//   - Time O(min(r,c)*r*c), Space O(r*c).
func (m *Matrix) ToRightTriangular() *Matrix {
	out := m.Dup()
	n, c := out.r, out.c
	d := out.data
	steps := n
	if c < steps {
		steps = c
	}
	for i := 0; i < steps; i++ {
		pivotRow := d[i*c : (i+1)*c]
		if pivotRow[i] == 0 {
			for j := i + 1; j < n; j++ {
				if d[j*c+i] != 0 {
					for p := 0; p < c; p++ {
						pivotRow[p] += d[j*c+p]
					}
					break
				}
			}
		}
		if pivotRow[i] == 0 {
			continue
		}
		for j := i + 1; j < n; j++ {
			row := d[j*c : (j+1)*c]
			multiplier := row[i] / pivotRow[i]
			for p := 0; p < c; p++ {
				if p <= i {
					row[p] = 0
				} else {
					row[p] -= pivotRow[p] * multiplier
				}
			}
		}
	}

	return out
}

// Determinant returns det(m): the product of the triangular form's diagonal.
// The empty matrix has determinant 1.
func (m *Matrix) Determinant() (float64, error) {
	if m.r == 0 {
		return 1, nil
	}
	if !m.IsSquare() {
		return 0, geomErrorf(opDeterminant, ErrNonSquare)
	}
	t := m.ToRightTriangular()
	det := t.data[0]
	for i := 1; i < t.r; i++ {
		det *= t.data[i*t.c+i]
	}

	return det, nil
}

// IsSingular reports a square matrix whose |det| is within tolerance of 0
// relative to the product of its row norms (the Hadamard bound on |det|),
// so uniformly scaling m never changes the answer. A zero row is singular.
func (m *Matrix) IsSingular() bool {
	if !m.IsSquare() {
		return false
	}
	det, err := m.Determinant()
	if err != nil {
		return false
	}
	bound := 1.0
	for i := 0; i < m.r; i++ {
		bound *= floats.Norm(m.data[i*m.c:(i+1)*m.c], 2)
	}

	return math.Abs(det) <= epsilon()*bound
}

// Trace returns the sum of the diagonal; 0 for the empty matrix.
func (m *Matrix) Trace() (float64, error) {
	if !m.IsSquare() {
		return 0, geomErrorf(opTrace, ErrNonSquare)
	}
	var tr float64
	for i := 0; i < m.r; i++ {
		tr += m.data[i*m.c+i]
	}

	return tr, nil
}

// Rank counts rows of the triangular form holding any entry larger than
// the tolerance in magnitude.
func (m *Matrix) Rank() int {
	t := m.ToRightTriangular()
	eps := epsilon()
	rank := 0
	for i := 0; i < t.r; i++ {
		for _, x := range t.data[i*t.c : (i+1)*t.c] {
			if math.Abs(x) > eps {
				rank++
				break
			}
		}
	}

	return rank
}

// Augment returns [m | n]. An empty receiver yields a copy of itself.
func (m *Matrix) Augment(n *Matrix) (*Matrix, error) {
	if n == nil {
		return nil, geomErrorf(opAugment, ErrNilObject)
	}
	if m.r == 0 {
		return m.Dup(), nil
	}
	if m.r != n.r {
		return nil, geomErrorf(opAugment, ErrDimensionMismatch)
	}
	c := m.c + n.c
	out := newZeroMatrix(m.r, c)
	for i := 0; i < m.r; i++ {
		copy(out.data[i*c:], m.data[i*m.c:(i+1)*m.c])
		copy(out.data[i*c+m.c:], n.data[i*n.c:(i+1)*n.c])
	}

	return out, nil
}

// Inverse returns m⁻¹.
// MAIN DESCRIPTION:
//   - Gauss-Jordan on [m | I].
//
// Implementation:
//   - Stage 1: reject empty (ErrEmptyMatrix), non-square (ErrNonSquare) and
//     singular (ErrSingular) input.
//   - Stage 2: triangularize [m | I].
//   - Stage 3: from the last row up, normalize the pivot row and clear the
//     pivot column in every row above it.
//   - Stage 4: the right half is the inverse.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func (m *Matrix) Inverse() (*Matrix, error) {
	if m.r == 0 {
		return nil, geomErrorf(opInverse, ErrEmptyMatrix)
	}
	if !m.IsSquare() {
		return nil, geomErrorf(opInverse, ErrNonSquare)
	}
	if m.IsSingular() {
		return nil, geomErrorf(opInverse, ErrSingular)
	}
	n := m.r
	aug, err := m.Augment(Identity(n))
	if err != nil {
		return nil, geomErrorf(opInverse, err)
	}
	t := aug.ToRightTriangular()
	c := t.c
	d := t.data
	for i := n - 1; i >= 0; i-- {
		pivotRow := d[i*c : (i+1)*c]
		divisor := pivotRow[i]
		for p := range pivotRow {
			pivotRow[p] /= divisor
		}
		for j := 0; j < i; j++ {
			row := d[j*c : (j+1)*c]
			factor := row[i]
			for p := range row {
				row[p] -= pivotRow[p] * factor
			}
		}
	}
	inv := newZeroMatrix(n, n)
	for i := 0; i < n; i++ {
		copy(inv.data[i*n:(i+1)*n], d[i*c+n:(i+1)*c])
	}

	return inv, nil
}
