// SPDX-License-Identifier: MIT

package calc

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty is returned for blank input.
	ErrEmpty = errors.New("calc: empty expression")

	// ErrSyntax is returned for any token sequence outside the grammar.
	ErrSyntax = errors.New("calc: syntax error")

	// ErrUnknownIdent is returned for an identifier that was not declared.
	ErrUnknownIdent = errors.New("calc: unknown identifier")

	// ErrDivisionByZero is returned when a divisor evaluates to zero.
	ErrDivisionByZero = errors.New("calc: division by zero")

	// ErrNonFinite is returned when an intermediate value is NaN or ±Inf.
	ErrNonFinite = errors.New("calc: non-finite result")

	// ErrUnboundVariable is returned when Program.Eval lacks a declared variable.
	ErrUnboundVariable = errors.New("calc: unbound variable")
)

// syntaxErrorf reports err at byte offset pos of the source.
func syntaxErrorf(pos int, format string, args ...any) error {
	return fmt.Errorf("calc: at %d: %s: %w", pos, fmt.Sprintf(format, args...), ErrSyntax)
}
