// SPDX-License-Identifier: MIT

// Package matrix - user-facing textual rendering of a result grid.

package matrix

import (
	"fmt"
	"strings"
)

// FormatMinWidth is the minimum width of one rendered cell.
const FormatMinWidth = 8

const (
	_gridTopLeft     = "┌"
	_gridTopRight    = "┐"
	_gridBottomLeft  = "└"
	_gridBottomRight = "┘"
	_gridSide        = "│"
	_negZero         = "-0.00"
	_posZero         = "0.00"
)

// FormatCell renders one value with two decimals; "-0.00" collapses to "0.00".
func FormatCell(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	if s == _negZero {
		return _posZero
	}

	return s
}

// Format renders m as a bracketed grid:
//
//	┌                   ┐
//	│    19.00    22.00 │
//	│    43.00    50.00 │
//	└                   ┘
//
// Every value is fixed to 2 decimals and right-aligned in a field whose width is
// max(FormatMinWidth, widest cell). A nil matrix renders as "".
// Complexity: O(r*c).
func Format(m Matrix) string {
	if ValidateNotNil(m) != nil {
		return ""
	}
	rows, cols := m.Rows(), m.Cols()

	cells := make([]string, 0, rows*cols)
	width := FormatMinWidth
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, _ := m.At(i, j) // in range by construction
			s := FormatCell(v)
			if len(s) > width {
				width = len(s)
			}
			cells = append(cells, s)
		}
	}

	inner := cols*width + (cols - 1)
	pad := strings.Repeat(" ", inner+2)

	var b strings.Builder
	b.WriteString(_gridTopLeft + pad + _gridTopRight + "\n")
	for i = 0; i < rows; i++ {
		b.WriteString(_gridSide + " ")
		for j = 0; j < cols; j++ {
			if j > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(fmt.Sprintf("%*s", width, cells[i*cols+j]))
		}
		b.WriteString(" " + _gridSide + "\n")
	}
	b.WriteString(_gridBottomLeft + pad + _gridBottomRight)

	return b.String()
}
