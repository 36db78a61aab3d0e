// SPDX-License-Identifier: MIT

package workbench

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlmath/matrix"
	"github.com/katalvlaran/lvlmath/matrix/ops"
)

// Sentinel result texts.
const (
	TextSingular          = "Singular matrix - no inverse exists"
	TextDimensionMismatch = "Dimension mismatch"
	TextFailed            = "Computation failed"
)

// ErrPanic wraps a panic recovered inside Compute.
var ErrPanic = errors.New("workbench: recovered panic")

// Result is the outcome of one Compute call.
//
// On success Matrix (add, subtract, multiply, transpose, inverse) or Scalar
// (determinant) is set and Text holds the rendered result. On failure only
// Text and Err are set.
type Result struct {
	Op     Op          `json:"-"`
	Matrix [][]float64 `json:"matrix,omitempty"`
	Scalar *float64    `json:"scalar,omitempty"`
	Text   string      `json:"text"`
	Err    error       `json:"-"`
}

// OK reports whether the computation succeeded.
func (r Result) OK() bool { return r.Err == nil }

// Compute runs op over a (and b for binary ops).
//
// Implementation:
//   - Stage 1: build matrix.Dense operands (ragged → dimension mismatch).
//   - Stage 2: dispatch on op; determinant and inverse of an order above
//     matrix.MaxCofactorSize use matrix/ops.
//   - Stage 3: render Text; map any error or panic to its sentinel.
//
// b is ignored for unary ops.
func Compute(op Op, a, b [][]float64) (res Result) {
	res.Op = op
	defer func() {
		if r := recover(); r != nil {
			res = failure(op, fmt.Errorf("%v: %w", r, ErrPanic))
		}
	}()

	ma, err := matrix.NewFromRows(a)
	if err != nil {
		return failure(op, err)
	}
	var mb *matrix.Dense
	if op.Binary() {
		if mb, err = matrix.NewFromRows(b); err != nil {
			return failure(op, err)
		}
	}

	var out matrix.Matrix
	switch op {
	case OpAdd:
		out, err = matrix.Add(ma, mb)
	case OpSubtract:
		out, err = matrix.Sub(ma, mb)
	case OpMultiply:
		out, err = matrix.Mul(ma, mb)
	case OpTranspose:
		out, err = matrix.Transpose(ma)
	case OpInverse:
		if ma.Rows() > matrix.MaxCofactorSize {
			out, err = ops.Inverse(ma)
		} else {
			out, err = matrix.Inverse(ma)
		}
	case OpDeterminant:
		var det float64
		if ma.Rows() > matrix.MaxCofactorSize {
			det, err = ops.Determinant(ma)
		} else {
			det, err = matrix.Determinant(ma)
		}
		if err != nil {
			return failure(op, err)
		}
		if det == 0 {
			det = 0 // fold -0
		}
		res.Scalar = &det
		res.Text = "det = " + matrix.FormatCell(det)

		return res
	default:
		err = fmt.Errorf("%s: %w", op, ErrUnknownOp)
	}
	if err != nil {
		return failure(op, err)
	}

	res.Matrix = matrix.ToRows(out)
	res.Text = matrix.Format(out)

	return res
}

// failure builds the sentinel Result for err.
func failure(op Op, err error) Result {
	return Result{Op: op, Text: SentinelText(err), Err: err}
}

// SentinelText maps an engine error to its user-facing sentinel.
func SentinelText(err error) string {
	switch {
	case errors.Is(err, matrix.ErrSingular):
		return TextSingular
	case errors.Is(err, matrix.ErrDimensionMismatch),
		errors.Is(err, matrix.ErrNonSquare),
		errors.Is(err, matrix.ErrRagged),
		errors.Is(err, matrix.ErrInvalidDimensions):
		return TextDimensionMismatch
	}

	return TextFailed
}
