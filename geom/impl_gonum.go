// SPDX-License-Identifier: MIT

// Package geom - interop with gonum's mat package.
//
// Both directions copy; no storage is shared with gonum values.

package geom

import "gonum.org/v1/gonum/mat"

// ToGonum returns m as a *mat.Dense. gonum has no 0×0 matrices, so the
// empty matrix is ErrEmptyMatrix.
func (m *Matrix) ToGonum() (*mat.Dense, error) {
	if m.r == 0 {
		return nil, geomErrorf(opToGonum, ErrEmptyMatrix)
	}
	data := make([]float64, len(m.data))
	copy(data, m.data)

	return mat.NewDense(m.r, m.c, data), nil
}

// FromGonum copies any gonum matrix into a new Matrix.
// Complexity: O(r*c).
func FromGonum(g mat.Matrix) *Matrix {
	if g == nil {
		return &Matrix{}
	}
	r, c := g.Dims()
	out := newZeroMatrix(r, c)
	for i := 0; i < out.r; i++ {
		for j := 0; j < out.c; j++ {
			out.data[i*c+j] = g.At(i, j)
		}
	}

	return out
}

// ToGonum returns v as a *mat.VecDense (column vector).
func (v *Vector) ToGonum() (*mat.VecDense, error) {
	if len(v.elements) == 0 {
		return nil, geomErrorf(opToGonum, ErrEmptyMatrix)
	}

	return mat.NewVecDense(len(v.elements), v.Elements()), nil
}
