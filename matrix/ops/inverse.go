// SPDX-License-Identifier: MIT

package ops

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlmath/matrix"
)

// Inverse returns the inverse of the square matrix m, or an error if m is not square or singular.
// Blueprint:
//
//	Stage 1 (Validate): ensure m is square.
//	Stage 2 (Decompose): A = P·L·U via mat.LU; det == 0 → matrix.ErrSingular.
//	Stage 3 (Execute): solve A·X = I for X.
//	Stage 4 (Finalize): copy X back into a *matrix.Dense.
//
// Like matrix.Inverse, any det != 0 yields a result: a finite mat.Condition
// from gonum (condition number above mat.ConditionTolerance) keeps the solved
// X. Only an infinite condition, a zero pivot, is reported as
// matrix.ErrSingular; cells that overflow give matrix.ErrNaNInf.
//
// Complexity: O(n³) time, O(n²) memory, where n = m.Rows().
func Inverse(m matrix.Matrix) (matrix.Matrix, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, fmt.Errorf("LU Inverse: %w", err)
	}

	a := toGonum(m)
	var lu mat.LU
	lu.Factorize(a)
	if lu.Det() == 0 {
		return nil, fmt.Errorf("LU Inverse: det = 0: %w", matrix.ErrSingular)
	}

	n := m.Rows()
	id := mat.NewDiagDense(n, nil)
	for i := 0; i < n; i++ {
		id.SetDiag(i, 1)
	}
	var x mat.Dense
	if err := lu.SolveTo(&x, false, id); err != nil {
		var cond mat.Condition
		if !errors.As(err, &cond) || math.IsInf(float64(cond), 1) {
			return nil, fmt.Errorf("LU Inverse: %v: %w", err, matrix.ErrSingular)
		}
	}

	out, err := fromGonum(&x)
	if err != nil {
		return nil, fmt.Errorf("LU Inverse: %w", err)
	}

	return out, nil
}
