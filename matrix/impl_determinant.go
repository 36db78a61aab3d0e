// SPDX-License-Identifier: MIT

// Package matrix - determinant by recursive Laplace (cofactor) expansion.
//
// Purpose:
//   - Closed-form base cases (1×1, 2×2) and first-row expansion for n>2.
//   - Shared helpers (Cofactor, CofactorMatrix) reused by Inverse.
//
// Complexity:
//   - O(n!) time; acceptable up to MaxCofactorSize. Larger inputs belong to ops.Determinant (LU).

package matrix

// asDense returns m itself when it is a *Dense, or a materialized *Dense copy otherwise.
// Callers must have validated m as non-nil.
func asDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	out, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	var i, j int
	var v float64
	for i = 0; i < out.r; i++ {
		for j = 0; j < out.c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			out.data[i*out.c+j] = v
		}
	}

	return out, nil
}

// Determinant returns det(m) for a square matrix.
//
// Implementation:
//   - Stage 1: ValidateSquare(m); materialize as *Dense.
//   - Stage 2: 1×1 → m[0][0]; 2×2 → a·d − b·c.
//   - Stage 3: n>2 → Σ_c (−1)^c · m[0][c] · det(minor(0, c)), sign starting at +1.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n!), Space O(n²) per recursion level.
func Determinant(m Matrix) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	d, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return laplace(d), nil
}

// laplace is the recursive kernel; d is square and non-empty.
func laplace(d *Dense) float64 {
	switch d.r {
	case 1:
		return d.data[0]
	case 2:
		return d.data[0]*d.data[3] - d.data[1]*d.data[2]
	}

	det := ZeroSum
	sign := 1.0
	for c := 0; c < d.c; c++ {
		a := d.data[c]
		if a != 0 {
			minor, _ := d.Minor(0, c) // in range by construction
			det += sign * a * laplace(minor)
		}
		sign = -sign
	}

	return det
}

// Cofactor returns C[i][j] = (−1)^(i+j) · det(minor(i, j)) of a square matrix.
// For a 1×1 matrix the cofactor is defined as 1.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrOutOfRange.
func Cofactor(m Matrix, i, j int) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opCofactor, err)
	}
	d, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf(opCofactor, err)
	}
	if _, err = d.indexOf(i, j); err != nil {
		return 0, matrixErrorf(opCofactor, denseErrorf(ctxMinor, i, j, err))
	}

	return cofactor(d, i, j), nil
}

// cofactor assumes d square and (i, j) in range.
func cofactor(d *Dense, i, j int) float64 {
	if d.r == 1 {
		return 1
	}
	minor, _ := d.Minor(i, j)
	v := laplace(minor)
	if (i+j)%2 == 1 {
		return -v
	}

	return v
}

// CofactorMatrix returns the n×n matrix of cofactors of a square m.
// Complexity: O(n² · (n-1)!).
func CofactorMatrix(m Matrix) (Matrix, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opCofactor, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opCofactor, err)
	}

	out, _ := NewDense(d.r, d.c)
	var i, j int
	for i = 0; i < d.r; i++ {
		for j = 0; j < d.c; j++ {
			out.data[i*out.c+j] = cofactor(d, i, j)
		}
	}

	return out, nil
}

// Adjugate returns adj(m) = transpose(CofactorMatrix(m)).
func Adjugate(m Matrix) (Matrix, error) {
	cof, err := CofactorMatrix(m)
	if err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}

	return Transpose(cof)
}
