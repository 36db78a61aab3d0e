// SPDX-License-Identifier: MIT

// Arithmetic kernels of the calculator: Add, Sub, Mul, Transpose, Scale.
// Each kernel checks shapes before touching a cell, works on a row-major
// snapshot of its operands and returns a new *Dense.
// Determinant and Inverse live in impl_determinant.go and impl_inverse.go.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial accumulator for dot products and expansions.
const ZeroSum = 0.0

const (
	opAdd         = "Add"
	opSub         = "Sub"
	opMul         = "Mul"
	opTranspose   = "Transpose"
	opScale       = "Scale"
	opDeterminant = "Determinant"
	opInverse     = "Inverse"
	opAdjugate    = "Adjugate"
	opCofactor    = "Cofactor"
)

// matrixErrorf prefixes a non-nil err with the kernel name.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// cells returns m's values in row-major order. A *Dense shares its buffer,
// so the result must be treated as read-only; any other Matrix is copied
// through At.
func cells(m Matrix) ([]float64, error) {
	if d, ok := m.(*Dense); ok {
		return d.data, nil
	}

	rows, cols := m.Rows(), m.Cols()
	out := make([]float64, 0, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
	}

	return out, nil
}

// addSub returns a + sign·b for sign ∈ {+1, −1}.
func addSub(a, b Matrix, sign float64, opTag string) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	av, err := cells(a)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	bv, err := cells(b)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	res, err := NewDense(a.Rows(), a.Cols())
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	for idx := range res.data {
		res.data[idx] = av[idx] + sign*bv[idx]
	}

	return res, nil
}

// Add returns A + B.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (shapes differ).
//
// Complexity: O(r*c).
func Add(a, b Matrix) (Matrix, error) { return addSub(a, b, +1, opAdd) }

// Sub returns A − B.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (shapes differ).
//
// Complexity: O(r*c).
func Sub(a, b Matrix) (Matrix, error) { return addSub(a, b, -1, opSub) }

// Mul returns the product A·B, shaped rows(A)×cols(B).
//
// Implementation:
//   - Stage 1: ValidateMulCompatible (cols(A) == rows(B)).
//   - Stage 2: snapshot both operands.
//   - Stage 3: accumulate row i of C as Σ_k A[i][k]·B[k][·]; zero A cells are skipped.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity: O(r*n*c) time, O(r*c) extra memory.
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	av, err := cells(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	bv, err := cells(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	n, inner, m := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(n, m)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	for i := 0; i < n; i++ {
		out := res.data[i*m : (i+1)*m]
		for k, x := range av[i*inner : (i+1)*inner] {
			if x == ZeroSum {
				continue
			}
			for j, y := range bv[k*m : (k+1)*m] {
				out[j] += x * y
			}
		}
	}

	return res, nil
}

// Transpose returns mᵀ; m is left untouched.
//
// Errors:
//   - ErrNilMatrix.
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	src, err := cells(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	for idx, v := range src {
		i, j := idx/cols, idx%cols
		res.data[j*rows+i] = v
	}

	return res, nil
}

// Scale returns alpha·m. Inverse uses it to divide the adjugate by det.
//
// Errors:
//   - ErrNilMatrix, ErrNaNInf (a scaled cell overflows).
func Scale(m Matrix, alpha float64) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	src, err := cells(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	res, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	for idx, v := range src {
		s := alpha * v
		if math.IsNaN(s) || math.IsInf(s, 0) {
			return nil, matrixErrorf(opScale, ErrNaNInf)
		}
		res.data[idx] = s
	}

	return res, nil
}
