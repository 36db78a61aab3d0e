// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlmath/matrix"
)

func TestDeterminant_BaseCases(t *testing.T) {
	for _, tc := range []struct {
		name string
		rows [][]float64
		want float64
	}{
		{"1x1", [][]float64{{-3.5}}, -3.5},
		{"2x2", [][]float64{{1, 2}, {3, 4}}, -2},
		{"3x3", [][]float64{{6, 1, 1}, {4, -2, 5}, {2, 8, 7}}, -306},
		{"3x3 singular", [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}, 0},
		{"4x4 identity", [][]float64{{1, 0, 0, 0}, {0, 1, 0, 0}, {0, 0, 1, 0}, {0, 0, 0, 1}}, 1},
		{"4x4", [][]float64{{1, 0, 2, -1}, {3, 0, 0, 5}, {2, 1, 4, -3}, {1, 0, 5, 0}}, 30},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := matrix.Determinant(MustRows(t, tc.rows))
			require.NoError(t, err)
			require.InDelta(t, tc.want, got, tol)
		})
	}
}

func TestDeterminant_NonSquare(t *testing.T) {
	_, err := matrix.Determinant(MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = matrix.Determinant(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestDeterminant_TransposeInvariant checks det(Aᵀ) == det(A).
func TestDeterminant_TransposeInvariant(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(1))
	for n := 1; n <= 5; n++ {
		for trial := 0; trial < 10; trial++ {
			a := RandomSquare(t, rng, n)
			at, err := matrix.Transpose(a)
			require.NoError(t, err)

			d1, err := matrix.Determinant(a)
			require.NoError(t, err)
			d2, err := matrix.Determinant(at)
			require.NoError(t, err)
			require.InDelta(t, d1, d2, tol, "n=%d trial=%d", n, trial)
		}
	}
}

func TestDeterminant_FallbackMatchesDense(t *testing.T) {
	a := MustRows(t, [][]float64{{2, -1, 0}, {-1, 2, -1}, {0, -1, 2}})
	d1, err := matrix.Determinant(a)
	require.NoError(t, err)
	d2, err := matrix.Determinant(hide{a})
	require.NoError(t, err)
	require.Equal(t, d1, d2)
	require.InDelta(t, 4.0, d1, tol)
}

func TestCofactor_SignPattern(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 2, 3}, {0, 4, 5}, {1, 0, 6}})

	c01, err := matrix.Cofactor(m, 0, 1)
	require.NoError(t, err)
	// minor(0,1) = [[0,5],[1,6]] → det -5, sign − → 5
	require.InDelta(t, 5.0, c01, tol)

	_, err = matrix.Cofactor(m, 0, 3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestAdjugate_Known3x3(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 2, 3}, {0, 4, 5}, {1, 0, 6}})

	adj, err := matrix.Adjugate(m)
	require.NoError(t, err)
	RequireClose(t, [][]float64{
		{24, -12, -2},
		{5, 3, -5},
		{-4, 2, 4},
	}, adj)
}
