// SPDX-License-Identifier: MIT

package workbench

import (
	"errors"
	"fmt"
	"strings"
)

// Op selects a matrix operation.
type Op int

const (
	OpAdd Op = iota
	OpSubtract
	OpMultiply
	OpDeterminant
	OpTranspose
	OpInverse
)

// ErrUnknownOp is returned by ParseOp for an unrecognised name.
var ErrUnknownOp = errors.New("workbench: unknown operation")

var opNames = [...]string{
	OpAdd:         "add",
	OpSubtract:    "subtract",
	OpMultiply:    "multiply",
	OpDeterminant: "determinant",
	OpTranspose:   "transpose",
	OpInverse:     "inverse",
}

// Ops lists every operation in declaration order.
func Ops() []Op {
	return []Op{OpAdd, OpSubtract, OpMultiply, OpDeterminant, OpTranspose, OpInverse}
}

// String returns the lowercase operation name.
func (o Op) String() string {
	if o < OpAdd || o > OpInverse {
		return fmt.Sprintf("Op(%d)", int(o))
	}

	return opNames[o]
}

// Binary reports whether o takes a second operand.
func (o Op) Binary() bool { return o == OpAdd || o == OpSubtract || o == OpMultiply }

// ParseOp resolves a case-insensitive name produced by String.
// The short aliases "sub", "mul", "det" and "inv" are accepted too.
func ParseOp(s string) (Op, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "sub":
		return OpSubtract, nil
	case "mul":
		return OpMultiply, nil
	case "det":
		return OpDeterminant, nil
	case "inv":
		return OpInverse, nil
	}
	for i, name := range opNames {
		if name == s {
			return Op(i), nil
		}
	}

	return 0, fmt.Errorf("%q: %w", s, ErrUnknownOp)
}
