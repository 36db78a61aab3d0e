// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlmath/calc"
)

// run executes the root command with args against an isolated config.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("LVLMATH_DB", filepath.Join(dir, "history.db"))
	t.Setenv("LVLMATH_LOG_LEVEL", "error")

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--config", filepath.Join(dir, "missing.yaml")}, args...))
	err := root.Execute()

	return out.String(), err
}

func TestCLI_Calc(t *testing.T) {
	out, err := run(t, "calc", "2+3*4")
	require.NoError(t, err)
	assert.Equal(t, "14\n", out)

	out, err = run(t, "calc", "1/0")
	require.ErrorIs(t, err, calc.ErrDivisionByZero)
	assert.Contains(t, out, calc.KeypadError)
}

func TestCLI_Matrix(t *testing.T) {
	out, err := run(t, "matrix", "multiply", "--a", "1,2;3,4", "--b", "5,6;7,8")
	require.NoError(t, err)
	assert.Contains(t, out, "19.00")
	assert.Contains(t, out, "50.00")

	out, err = run(t, "matrix", "det", "--a", "1,2;3,4")
	require.NoError(t, err)
	assert.Contains(t, out, "det = -2.00")

	out, err = run(t, "matrix", "inverse", "--a", "1,2;2,4")
	require.NoError(t, err)
	assert.Contains(t, out, "Singular matrix - no inverse exists")

	_, err = run(t, "matrix", "trace", "--a", "1")
	require.Error(t, err)
}

func TestCLI_Integral(t *testing.T) {
	out, err := run(t, "integral", "power", "-p", "a=1", "-p", "n=1")
	require.NoError(t, err)
	assert.Contains(t, out, "0.5·x^2 + C")

	out, err = run(t, "integral", "rules")
	require.NoError(t, err)
	for _, name := range []string{"power", "trig", "exponential", "logarithmic", "polynomial"} {
		assert.Contains(t, out, name)
	}

	_, err = run(t, "integral", "power", "-p", "q=1")
	require.Error(t, err)
}

func TestCLI_Plot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	_, err := run(t, "plot", "x^2", "--x", "-2,2", "--y", "0,4", "-o", path)
	require.NoError(t, err)
	assert.FileExists(t, path)

	bad := filepath.Join(t.TempDir(), "bad.png")
	_, err = run(t, "plot", "x^2", "--x", "2,-2", "-o", bad)
	require.Error(t, err)
	assert.NoFileExists(t, bad)
}

func TestCLI_HistoryEmpty(t *testing.T) {
	out, err := run(t, "history", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "no history yet")

	_, err = run(t, "history", "delete", "nope")
	require.Error(t, err)
}

func TestCLI_SolveRequiresProblem(t *testing.T) {
	_, err := run(t, "solve")
	require.Error(t, err)
}
