// SPDX-License-Identifier: MIT

// Package ops provides LU-backed matrix operations for the lvlmath/matrix package.
// They complement the cofactor kernels in matrix for orders past
// matrix.MaxCofactorSize, where Laplace expansion becomes impractical.
package ops

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlmath/matrix"
)

// toGonum copies a validated square matrix.Matrix into a *mat.Dense.
func toGonum(m matrix.Matrix) *mat.Dense {
	rows := matrix.ToRows(m)
	n := len(rows)
	flat := make([]float64, 0, n*len(rows[0]))
	for _, row := range rows {
		flat = append(flat, row...)
	}

	return mat.NewDense(n, len(rows[0]), flat)
}

// fromGonum copies a *mat.Dense back into a *matrix.Dense.
func fromGonum(g *mat.Dense) (*matrix.Dense, error) {
	r, c := g.Dims()
	out, err := matrix.NewDense(r, c)
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if err = out.Set(i, j, g.At(i, j)); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// Determinant returns det(m) through a partially pivoted LU factorization.
//
// Implementation:
//   - Stage 1: matrix.ValidateSquare(m).
//   - Stage 2: factorize with mat.LU and read Det().
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare.
//
// Complexity: O(n³) time, O(n²) memory.
func Determinant(m matrix.Matrix) (float64, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return 0, fmt.Errorf("LU Determinant: %w", err)
	}

	var lu mat.LU
	lu.Factorize(toGonum(m))

	return lu.Det(), nil
}
