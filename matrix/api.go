// SPDX-License-Identifier: MIT
// Package matrix: public constructors and conversion facades.
//
// Purpose:
//   - Bridge between the [][]float64 shape used at the JSON/CLI boundary and *Dense.
//   - Provide neutral elements (identity) and comparison helpers used by tests and callers.

package matrix

import (
	"fmt"
	"math"
)

// NewFromRows builds a *Dense from a rectangular [][]float64 (copied).
//
// Errors:
//   - ErrInvalidDimensions (no rows / empty rows), ErrRagged, ErrNaNInf.
//
// Complexity: O(r*c).
func NewFromRows(rows [][]float64) (*Dense, error) {
	if err := ValidateRows(rows); err != nil {
		return nil, err
	}
	out, err := NewDense(len(rows), len(rows[0]))
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		for j, v := range row {
			if err = out.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// ToRows copies m into a fresh [][]float64. A nil matrix yields nil.
func ToRows(m Matrix) [][]float64 {
	if ValidateNotNil(m) != nil {
		return nil
	}
	rows := make([][]float64, m.Rows())
	for i := range rows {
		rows[i] = make([]float64, m.Cols())
		for j := range rows[i] {
			rows[i][j], _ = m.At(i, j)
		}
	}

	return rows
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing + O(n) writes on the diagonal.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// AllClose reports whether a and b have identical shapes and |a[i,j]-b[i,j]| ≤ tol everywhere.
// A negative tol is treated as |tol|. NaN never compares close.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
func AllClose(a, b Matrix, tol float64) (bool, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, fmt.Errorf("AllClose: %w", err)
	}
	tol = math.Abs(tol)

	var i, j int
	var av, bv float64
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			av, _ = a.At(i, j)
			bv, _ = b.At(i, j)
			if !(math.Abs(av-bv) <= tol) {
				return false, nil
			}
		}
	}

	return true, nil
}
