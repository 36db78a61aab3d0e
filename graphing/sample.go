// SPDX-License-Identifier: MIT

package graphing

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvlmath/calc"
)

// Sampling defaults.
const (
	DefaultSamples = 200
	MaxSamples     = 5000
)

// DefaultRange is used for an axis whose range is unset.
var DefaultRange = Range{Min: -10, Max: 10}

var (
	// ErrRange is returned for a range with Min ≥ Max or non-finite bounds.
	ErrRange = errors.New("graphing: invalid range")

	// ErrNoPoints is returned when the expression is undefined on the whole range.
	ErrNoPoints = errors.New("graphing: expression undefined on range")
)

// Range is a closed interval [Min, Max].
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// RangeOf builds a Range from a [min, max] pair; anything else yields DefaultRange.
func RangeOf(pair []float64) Range {
	if len(pair) != 2 {
		return DefaultRange
	}

	return Range{Min: pair[0], Max: pair[1]}
}

// Validate rejects empty, inverted or non-finite ranges.
func (r Range) Validate() error {
	if math.IsNaN(r.Min) || math.IsNaN(r.Max) || math.IsInf(r.Min, 0) || math.IsInf(r.Max, 0) || r.Min >= r.Max {
		return fmt.Errorf("[%v, %v]: %w", r.Min, r.Max, ErrRange)
	}

	return nil
}

// Point is one sample.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Series is a run of consecutive defined samples.
type Series []Point

// Compile parses a plot expression over x with the calc built-in functions.
func Compile(expr string) (*calc.Program, error) {
	return calc.Compile(expr, calc.WithVariables("x"), calc.WithFunctions())
}

// Sample evaluates expr at n evenly spaced points of xr (n outside
// [2, MaxSamples] becomes DefaultSamples) and splits the result at
// undefined points.
//
// Errors:
//   - calc parse errors, ErrRange, ErrNoPoints.
func Sample(expr string, xr Range, n int) ([]Series, error) {
	prog, err := Compile(expr)
	if err != nil {
		return nil, err
	}

	return SampleProgram(prog, xr, n)
}

// SampleProgram is Sample over an already compiled program.
func SampleProgram(prog *calc.Program, xr Range, n int) ([]Series, error) {
	if err := xr.Validate(); err != nil {
		return nil, err
	}
	if n < 2 || n > MaxSamples {
		n = DefaultSamples
	}

	var (
		out     []Series
		current Series
		env     = map[string]float64{"x": 0}
		step    = (xr.Max - xr.Min) / float64(n-1)
	)
	for i := 0; i < n; i++ {
		x := xr.Min + float64(i)*step
		if i == n-1 {
			x = xr.Max
		}
		env["x"] = x
		y, err := prog.Eval(env)
		if err != nil {
			if !undefined(err) {
				return nil, err
			}
			if len(current) > 0 {
				out = append(out, current)
				current = nil
			}
			continue
		}
		current = append(current, Point{X: x, Y: y})
	}
	if len(current) > 0 {
		out = append(out, current)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%q: %w", prog.String(), ErrNoPoints)
	}

	return out, nil
}

func undefined(err error) bool {
	return errors.Is(err, calc.ErrNonFinite) || errors.Is(err, calc.ErrDivisionByZero)
}
