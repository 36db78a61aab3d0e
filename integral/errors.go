// SPDX-License-Identifier: MIT

package integral

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownRule is returned for a RuleID outside the closed rule set.
	ErrUnknownRule = errors.New("integral: unknown rule")

	// ErrMalformed is returned when parameters are missing or invalid, or when
	// the closed form produces a non-finite value.
	ErrMalformed = errors.New("integral: malformed expression")
)

// ruleErrorf tags err with the rule name: "integral.power: <err>".
func ruleErrorf(id RuleID, err error) error {
	return fmt.Errorf("integral.%s: %w", id, err)
}
