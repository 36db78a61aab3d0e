// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var errFlag = errors.New("lvlmath: invalid flag value")

// parseRows reads a matrix written as "1,2;3,4": rows split on ';', cells
// on ',' or whitespace. An empty string yields nil.
func parseRows(s string) ([][]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	var rows [][]float64
	for i, line := range strings.Split(s, ";") {
		fields := strings.FieldsFunc(line, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' })
		if len(fields) == 0 {
			return nil, fmt.Errorf("row %d is empty: %w", i+1, errFlag)
		}
		row := make([]float64, len(fields))
		for j, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("row %d cell %d %q: %w", i+1, j+1, f, errFlag)
			}
			row[j] = v
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// parseParams reads key=value pairs into a map.
func parseParams(pairs []string) (map[string]float64, error) {
	out := make(map[string]float64, len(pairs))
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			return nil, fmt.Errorf("param %q is not key=value: %w", p, errFlag)
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return nil, fmt.Errorf("param %q: %w", p, errFlag)
		}
		out[k] = f
	}

	return out, nil
}
