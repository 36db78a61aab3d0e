// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by kernels and callers.
// Errors live in errors.go; constructors and facades in api.go.
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	Clone() Matrix
}

// MaxCofactorSize is the largest order for which the cofactor (Laplace)
// kernels are considered affordable. Determinant and Inverse in this package
// are O(n!) and stay correct past this bound, but callers that accept
// user-sized input should route larger matrices to an LU kernel (see ops).
const MaxCofactorSize = 4

// DefaultTolerance is the absolute tolerance used by AllClose-based checks.
const DefaultTolerance = 1e-9
