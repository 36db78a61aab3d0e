// SPDX-License-Identifier: MIT

package integral

import (
	"fmt"
	"math"
	"strconv"
)

// Error is the result string surfaced by Evaluator when Compute fails.
const Error = "Error"

// Compute evaluates rule id over p and returns the formatted result.
//
// Implementation:
//   - Stage 1: resolve id; read every declared parameter (missing or
//     non-finite → ErrMalformed).
//   - Stage 2: switch on id and apply the closed form.
//   - Stage 3: reject non-finite intermediates, then render.
//
// Keys not declared by the rule are ignored.
//
// Complexity: O(1).
func Compute(id RuleID, p Params) (string, error) {
	r, err := Lookup(id)
	if err != nil {
		return "", err
	}
	for _, d := range r.Params {
		v, ok := p[d.Key]
		if !ok {
			return "", ruleErrorf(id, fmt.Errorf("missing %q: %w", d.Key, ErrMalformed))
		}
		if !finite(v) {
			return "", ruleErrorf(id, fmt.Errorf("%q = %v: %w", d.Key, v, ErrMalformed))
		}
	}

	var out string
	switch id {
	case Power:
		out, err = power(p["a"], p["n"])
	case Trig:
		out, err = trig(p["a"], p["b"], p["func"])
	case Exponential:
		out, err = exponential(p["a"], p["b"])
	case Logarithmic:
		out, err = logarithmic(p["a"])
	case Polynomial:
		out, err = definite(p["c"], p["n"], p["lower"], p["upper"])
	}
	if err != nil {
		return "", ruleErrorf(id, err)
	}

	return out, nil
}

// power: ∫ a·x^n dx.
func power(a, n float64) (string, error) {
	if n == -1 {
		return num(a) + "·ln|x| + C", nil
	}
	k := n + 1
	coef := a / k
	if !finite(coef) {
		return "", ErrMalformed
	}

	return num(coef) + "·x^" + num(k) + " + C", nil
}

// trig: ∫ a·sin(bx) dx or ∫ a·cos(bx) dx.
func trig(a, b, fn float64) (string, error) {
	switch fn {
	case FuncSin:
		coef := -a / b
		if !finite(coef) {
			return "", ErrMalformed
		}

		return num(coef) + "·cos(" + num(b) + "x) + C", nil
	case FuncCos:
		coef := a / b
		if !finite(coef) {
			return "", ErrMalformed
		}

		return num(coef) + "·sin(" + num(b) + "x) + C", nil
	}

	return "", fmt.Errorf("func = %v: %w", fn, ErrMalformed)
}

// exponential: ∫ a·e^(bx) dx.
func exponential(a, b float64) (string, error) {
	coef := a / b
	if !finite(coef) {
		return "", ErrMalformed
	}

	return num(coef) + "·e^(" + num(b) + "x) + C", nil
}

// logarithmic: ∫ a·ln(x) dx.
func logarithmic(a float64) (string, error) {
	return num(a) + "·(x·ln(x) - x) + C", nil
}

// definite: ∫[lower, upper] c·x^n dx, rendered with six decimals.
func definite(c, n, lower, upper float64) (string, error) {
	var v float64
	if n == -1 {
		v = c * (math.Log(math.Abs(upper)) - math.Log(math.Abs(lower)))
	} else {
		k := n + 1
		v = c / k * (math.Pow(upper, k) - math.Pow(lower, k))
	}
	if !finite(v) {
		return "", ErrMalformed
	}
	s := fmt.Sprintf("%.6f", v)
	if s == "-0.000000" {
		s = "0.000000"
	}

	return "= " + s, nil
}

// num renders v in its shortest round-trip decimal form; -0 renders as "0".
func num(v float64) string {
	if v == 0 {
		v = 0
	}

	return strconv.FormatFloat(v, 'f', -1, 64)
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
