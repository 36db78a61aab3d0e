// SPDX-License-Identifier: MIT

// Package matrix is the matrix engine behind the lvlmath calculator.
//
// The matrix package provides:
//
//   - Dense: a row-major float64 matrix with bounds-checked At/Set that
//     never panic on user input.
//   - Element-wise Add/Sub, Mul, Transpose and Scale kernels.
//   - Determinant by recursive Laplace expansion along the first row.
//   - Inverse: closed form for 2×2, adjugate/cofactor method for n>2.
//   - Format: a fixed-precision bracketed grid for display.
//
// All kernels validate shapes up front and return sentinel errors
// (ErrDimensionMismatch, ErrNonSquare, ErrSingular, …) wrapped with the
// operation name, so callers match them with errors.Is.
//
// The cofactor kernels are O(n!) and intended for small matrices
// (see MaxCofactorSize). matrix/ops offers LU-based alternatives.
package matrix
