// SPDX-License-Identifier: MIT

// Dense: the storage behind every calculator operand.
//
// A Dense is built once per operand grid, filled cell by cell from user
// input and then handed to the kernels. Cells are finite by construction:
// Set refuses NaN and ±Inf so no kernel has to re-check its inputs.
//
// Cost: NewDense and Clone O(r*c); At and Set O(1); Minor O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

const (
	ctxAt     = "At"
	ctxSet    = "Set"
	ctxInduce = "Induced"
	ctxMinor  = "Minor"
)

// denseErrorf tags err with the Dense method and the offending cell.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense holds an r×c grid in one slice; cell (i, j) lives at data[i*c+j].
type Dense struct {
	r, c int
	data []float64
}

var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense returns a zero-filled rows×cols matrix. Both dimensions must be
// positive, otherwise ErrInvalidDimensions.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

func (m *Dense) Rows() int { return m.r }

func (m *Dense) Cols() int { return m.c }

// indexOf maps (row, col) to its slice offset. The bare sentinel is returned;
// callers add context.
func (m *Dense) indexOf(row, col int) (int, error) {
	if uint(row) >= uint(m.r) || uint(col) >= uint(m.c) {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At reads cell (row, col).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set writes v into cell (row, col).
//
// Errors:
//   - ErrOutOfRange, ErrNaNInf (v is NaN or ±Inf; the cell keeps its value).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Clone returns an independent copy.
func (m *Dense) Clone() Matrix {
	return &Dense{r: m.r, c: m.c, data: append([]float64(nil), m.data...)}
}

// String prints one "[a, b, …]" line per row with %g values. It is meant for
// logs and test failures; Format renders the calculator grid.
func (m *Dense) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		row := m.data[i*m.c : (i+1)*m.c]
		b.WriteByte('[')
		for j, v := range row {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%g", v)
		}
		b.WriteString("]\n")
	}

	return b.String()
}

// Induced copies the cells picked by rowsIdx × colsIdx into a new matrix, in
// the order given. An index may repeat.
//
// Errors:
//   - ErrInvalidDimensions (an index set is empty), ErrOutOfRange.
func (m *Dense) Induced(rowsIdx, colsIdx []int) (*Dense, error) {
	out, err := NewDense(len(rowsIdx), len(colsIdx))
	if err != nil {
		return nil, fmt.Errorf("Dense.%s: %w", ctxInduce, err)
	}

	for i, ri := range rowsIdx {
		for j, cj := range colsIdx {
			off, err := m.indexOf(ri, cj)
			if err != nil {
				return nil, denseErrorf(ctxInduce, ri, cj, err)
			}
			out.data[i*out.c+j] = m.data[off]
		}
	}

	return out, nil
}

// Minor returns the (r-1)×(c-1) copy of m with row `row` and column `col`
// removed: Induced over every other row and column, in order.
//
// Errors:
//   - ErrOutOfRange (bad coordinates), ErrInvalidDimensions (1×n or n×1 source).
//
// Complexity:
//   - Time O(r*c), Space O((r-1)*(c-1)).
func (m *Dense) Minor(row, col int) (*Dense, error) {
	if _, err := m.indexOf(row, col); err != nil {
		return nil, denseErrorf(ctxMinor, row, col, err)
	}
	out, err := m.Induced(skipIndex(m.r, row), skipIndex(m.c, col))
	if err != nil {
		return nil, denseErrorf(ctxMinor, row, col, err)
	}

	return out, nil
}

// skipIndex returns 0..n-1 without skip.
func skipIndex(n, skip int) []int {
	idx := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if i != skip {
			idx = append(idx, i)
		}
	}

	return idx
}
