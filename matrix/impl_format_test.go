// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlmath/matrix"
)

func TestFormatCell(t *testing.T) {
	assert.Equal(t, "1.00", matrix.FormatCell(1))
	assert.Equal(t, "-2.50", matrix.FormatCell(-2.5))
	assert.Equal(t, "0.33", matrix.FormatCell(1.0/3))
	assert.Equal(t, "0.00", matrix.FormatCell(-0.001))
	assert.Equal(t, "0.00", matrix.FormatCell(math.Copysign(0, -1)))
}

func TestFormat_Grid2x2(t *testing.T) {
	got := matrix.Format(MustRows(t, [][]float64{{19, 22}, {43, 50}}))
	want := strings.Join([]string{
		"┌                   ┐",
		"│    19.00    22.00 │",
		"│    43.00    50.00 │",
		"└                   ┘",
	}, "\n")
	require.Equal(t, want, got)
}

func TestFormat_WideCellGrowsColumns(t *testing.T) {
	got := matrix.Format(MustRows(t, [][]float64{{123456.5, 1}}))
	lines := strings.Split(got, "\n")
	require.Len(t, lines, 3)
	require.Equal(t, "│ 123456.50      1.00 │", lines[1])
	require.Equal(t, len(lines[0]), len(lines[1]))
}

func TestFormat_Nil(t *testing.T) {
	require.Equal(t, "", matrix.Format(nil))
}
