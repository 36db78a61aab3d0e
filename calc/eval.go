// SPDX-License-Identifier: MIT

package calc

import (
	"fmt"
	"math"
	"strconv"
)

// Program is a compiled expression. It is immutable and safe for concurrent use.
type Program struct {
	src  string
	root node
	vars []string
}

// Compile parses src under opts.
//
// Errors:
//   - ErrEmpty, ErrSyntax, ErrUnknownIdent.
func Compile(src string, opts ...Option) (*Program, error) {
	o := gatherOptions(opts)
	root, err := parse(src, o)
	if err != nil {
		return nil, err
	}
	vars := make([]string, 0, len(o.vars))
	for v := range o.vars {
		vars = append(vars, v)
	}

	return &Program{src: src, root: root, vars: vars}, nil
}

// String returns the source text the Program was compiled from.
func (p *Program) String() string { return p.src }

// Eval evaluates the Program with vars bound. Every variable declared at
// Compile time must be present.
//
// Errors:
//   - ErrUnboundVariable, ErrDivisionByZero, ErrNonFinite.
func (p *Program) Eval(vars map[string]float64) (float64, error) {
	for _, name := range p.vars {
		if _, ok := vars[name]; !ok {
			return 0, fmt.Errorf("calc: %q: %w", name, ErrUnboundVariable)
		}
	}

	return p.root.eval(vars)
}

// Eval parses and evaluates a keypad expression: numbers, + - * / ^ and parentheses.
func Eval(src string) (float64, error) {
	p, err := Compile(src)
	if err != nil {
		return 0, err
	}

	return p.Eval(nil)
}

// FormatResult renders v in its shortest round-trip decimal form; -0 renders as "0".
func FormatResult(v float64) string {
	if v == 0 {
		v = 0
	}

	return strconv.FormatFloat(v, 'f', -1, 64)
}

func (n numNode) eval(map[string]float64) (float64, error) { return float64(n), nil }

func (n varNode) eval(env map[string]float64) (float64, error) {
	v, ok := env[string(n)]
	if !ok {
		return 0, fmt.Errorf("calc: %q: %w", string(n), ErrUnboundVariable)
	}

	return checked(v)
}

func (n negNode) eval(env map[string]float64) (float64, error) {
	v, err := n.x.eval(env)
	if err != nil {
		return 0, err
	}

	return -v, nil
}

func (n callNode) eval(env map[string]float64) (float64, error) {
	v, err := n.arg.eval(env)
	if err != nil {
		return 0, err
	}
	r, err := checked(n.fn(v))
	if err != nil {
		return 0, fmt.Errorf("calc: %s(%v): %w", n.name, v, err)
	}

	return r, nil
}

func (n binNode) eval(env map[string]float64) (float64, error) {
	l, err := n.l.eval(env)
	if err != nil {
		return 0, err
	}
	r, err := n.r.eval(env)
	if err != nil {
		return 0, err
	}

	switch n.op {
	case tokPlus:
		return checked(l + r)
	case tokMinus:
		return checked(l - r)
	case tokStar:
		return checked(l * r)
	case tokSlash:
		if r == 0 {
			return 0, ErrDivisionByZero
		}

		return checked(l / r)
	case tokCaret:
		if l == 0 && r < 0 {
			return 0, ErrDivisionByZero
		}

		return checked(math.Pow(l, r))
	}

	return 0, fmt.Errorf("calc: operator %d: %w", n.op, ErrSyntax)
}

func checked(v float64) (float64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrNonFinite
	}

	return v, nil
}
