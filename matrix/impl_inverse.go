// SPDX-License-Identifier: MIT

// Package matrix - inverse via closed form (2×2) and adjugate/determinant (n>2).

package matrix

import "fmt"

// Inverse returns m⁻¹ for a square, non-singular matrix.
//
// Implementation:
//   - Stage 1: ValidateSquare(m); det := Determinant(m).
//   - Stage 2: det == 0 → ErrSingular (exact comparison, no epsilon).
//   - Stage 3: 1×1 → [1/a]; 2×2 → [[d,−b],[−c,a]] / det.
//   - Stage 4: n>2 → Adjugate(m).
//   - Stage 5: Scale by 1/det.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular; ErrNaNInf if the division overflows.
//
// Complexity:
//   - 2×2: O(1). n>2: O(n² · (n-1)!) for the cofactors.
func Inverse(m Matrix) (Matrix, error) {
	det, err := Determinant(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if det == 0 {
		return nil, matrixErrorf(opInverse, fmt.Errorf("det = 0: %w", ErrSingular))
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	switch d.r {
	case 1:
		out, _ := NewDense(1, 1)
		if err = out.Set(0, 0, 1/det); err != nil {
			return nil, matrixErrorf(opInverse, err)
		}

		return out, nil
	case 2:
		a, b, c, dd := d.data[0], d.data[1], d.data[2], d.data[3]
		closed, _ := NewDense(2, 2)
		closed.data[0], closed.data[1] = dd, -b
		closed.data[2], closed.data[3] = -c, a

		return scaleInverse(closed, det)
	}

	adj, err := Adjugate(d)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return scaleInverse(adj, det)
}

// scaleInverse returns m/det through Scale.
func scaleInverse(m Matrix, det float64) (Matrix, error) {
	out, err := Scale(m, 1/det)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return out, nil
}
