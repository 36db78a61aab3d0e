// SPDX-License-Identifier: MIT

package ops_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlmath/matrix"
	"github.com/katalvlaran/lvlmath/matrix/ops"
)

func randomSquare(t *testing.T, rng *rand.Rand, n int) *matrix.Dense {
	t.Helper()
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			rows[i][j] = float64(rng.Intn(11) - 5)
		}
	}
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

// TestDeterminant_MatchesCofactor compares the LU determinant with Laplace expansion.
func TestDeterminant_MatchesCofactor(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for n := 1; n <= 5; n++ {
		for trial := 0; trial < 10; trial++ {
			a := randomSquare(t, rng, n)
			want, err := matrix.Determinant(a)
			require.NoError(t, err)
			got, err := ops.Determinant(a)
			require.NoError(t, err)
			require.InDelta(t, want, got, 1e-6, "n=%d trial=%d", n, trial)
		}
	}
}

func TestDeterminant_NonSquare(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	_, err = ops.Determinant(m)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestInverse_MatchesCofactor(t *testing.T) {
	a, err := matrix.NewFromRows([][]float64{{2, 0, 1}, {1, 3, 2}, {1, 1, 1}})
	require.NoError(t, err)

	want, err := matrix.Inverse(a)
	require.NoError(t, err)
	got, err := ops.Inverse(a)
	require.NoError(t, err)

	ok, err := matrix.AllClose(want, got, 1e-9)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestInverse_LargeProductIsIdentity(t *testing.T) {
	a, err := matrix.NewFromRows([][]float64{
		{4, 1, 0, 0, 0, 0},
		{1, 4, 1, 0, 0, 0},
		{0, 1, 4, 1, 0, 0},
		{0, 0, 1, 4, 1, 0},
		{0, 0, 0, 1, 4, 1},
		{0, 0, 0, 0, 1, 4},
	})
	require.NoError(t, err)

	inv, err := ops.Inverse(a)
	require.NoError(t, err)
	p, err := matrix.Mul(a, inv)
	require.NoError(t, err)
	id, err := matrix.NewIdentity(6)
	require.NoError(t, err)
	ok, err := matrix.AllClose(id, p, 1e-9)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestInverse_Singular(t *testing.T) {
	a, err := matrix.NewFromRows([][]float64{{1, 2}, {2, 4}})
	require.NoError(t, err)
	_, err = ops.Inverse(a)
	require.ErrorIs(t, err, matrix.ErrSingular)
}

func TestInverse_IllConditionedKeepsResult(t *testing.T) {
	a, err := matrix.NewFromRows([][]float64{{1, 0}, {0, 1e-20}})
	require.NoError(t, err)

	got, err := ops.Inverse(a)
	require.NoError(t, err)
	want, err := matrix.Inverse(a)
	require.NoError(t, err)

	v, err := got.At(1, 1)
	require.NoError(t, err)
	require.InEpsilon(t, 1e20, v, 1e-12)
	v, err = got.At(0, 0)
	require.NoError(t, err)
	require.InDelta(t, 1.0, v, matrix.DefaultTolerance)

	w, err := want.At(1, 1)
	require.NoError(t, err)
	require.InEpsilon(t, w, 1e20, 1e-12)
}
