// SPDX-License-Identifier: MIT

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRows(t *testing.T) {
	rows, err := parseRows("1,2;3,4")
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 2}, {3, 4}}, rows)

	rows, err = parseRows(" 1 -2.5 ; 0 4 ")
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, -2.5}, {0, 4}}, rows)

	rows, err = parseRows("")
	require.NoError(t, err)
	assert.Nil(t, rows)

	for _, in := range []string{"1,x", "1,2;;3,4", "1,2;"} {
		_, err = parseRows(in)
		assert.ErrorIs(t, err, errFlag, in)
	}
}

func TestParseParams(t *testing.T) {
	p, err := parseParams([]string{"a=3", " n = -1 "})
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"a": 3, "n": -1}, p)

	for _, in := range []string{"a", "=1", "a=b"} {
		_, err = parseParams([]string{in})
		assert.ErrorIs(t, err, errFlag, in)
	}
}
