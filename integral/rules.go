// SPDX-License-Identifier: MIT

package integral

import "strings"

// RuleID identifies one rule of the closed set.
type RuleID int

const (
	Power RuleID = iota
	Trig
	Exponential
	Logarithmic
	Polynomial
)

// Trig selector values for the "func" parameter.
const (
	FuncSin = 0
	FuncCos = 1
)

// Param declares one named numeric input of a rule.
type Param struct {
	Key     string  `json:"key"`
	Label   string  `json:"label"`
	Default float64 `json:"default"`
}

// Rule is the immutable catalogue entry of a RuleID.
type Rule struct {
	ID      RuleID  `json:"-"`
	Name    string  `json:"id"`
	Label   string  `json:"label"`
	Formula string  `json:"formula"`
	Params  []Param `json:"params"`
}

// Params maps a parameter key to its value.
type Params map[string]float64

var ruleNames = [...]string{
	Power:       "power",
	Trig:        "trig",
	Exponential: "exponential",
	Logarithmic: "logarithmic",
	Polynomial:  "polynomial",
}

// String returns the stable lowercase identifier ("power", "trig", ...).
func (id RuleID) String() string {
	if !id.Valid() {
		return "unknown"
	}

	return ruleNames[id]
}

// Valid reports whether id belongs to the closed set.
func (id RuleID) Valid() bool { return id >= Power && id <= Polynomial }

// ParseRuleID resolves a case-insensitive identifier produced by String.
func ParseRuleID(s string) (RuleID, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range ruleNames {
		if name == s {
			return RuleID(i), nil
		}
	}

	return 0, ruleErrorf(RuleID(-1), ErrUnknownRule)
}

// catalogue is indexed by RuleID; entries are never mutated.
var catalogue = [...]Rule{
	Power: {
		ID: Power, Name: "power", Label: "Power Rule",
		Formula: "∫ a·x^n dx = a/(n+1)·x^(n+1) + C   (n = -1: a·ln|x| + C)",
		Params: []Param{
			{Key: "a", Label: "Coefficient (a)", Default: 1},
			{Key: "n", Label: "Exponent (n)", Default: 2},
		},
	},
	Trig: {
		ID: Trig, Name: "trig", Label: "Trigonometric",
		Formula: "∫ a·sin(bx) dx = -a/b·cos(bx) + C;  ∫ a·cos(bx) dx = a/b·sin(bx) + C",
		Params: []Param{
			{Key: "a", Label: "Coefficient (a)", Default: 1},
			{Key: "b", Label: "Frequency (b)", Default: 1},
			{Key: "func", Label: "Function (0 = sin, 1 = cos)", Default: FuncSin},
		},
	},
	Exponential: {
		ID: Exponential, Name: "exponential", Label: "Exponential",
		Formula: "∫ a·e^(bx) dx = a/b·e^(bx) + C",
		Params: []Param{
			{Key: "a", Label: "Coefficient (a)", Default: 1},
			{Key: "b", Label: "Rate (b)", Default: 1},
		},
	},
	Logarithmic: {
		ID: Logarithmic, Name: "logarithmic", Label: "Logarithmic",
		Formula: "∫ a·ln(x) dx = a·(x·ln(x) - x) + C",
		Params: []Param{
			{Key: "a", Label: "Coefficient (a)", Default: 1},
		},
	},
	Polynomial: {
		ID: Polynomial, Name: "polynomial", Label: "Definite Power",
		Formula: "∫[lower, upper] c·x^n dx = c/(n+1)·(upper^(n+1) - lower^(n+1))",
		Params: []Param{
			{Key: "c", Label: "Coefficient (c)", Default: 1},
			{Key: "n", Label: "Exponent (n)", Default: 1},
			{Key: "lower", Label: "Lower bound", Default: 0},
			{Key: "upper", Label: "Upper bound", Default: 2},
		},
	},
}

// Rules returns the catalogue in RuleID order. The returned slice is a copy.
func Rules() []Rule {
	out := make([]Rule, len(catalogue))
	for i, r := range catalogue {
		r.Params = append([]Param(nil), r.Params...)
		out[i] = r
	}

	return out
}

// Lookup returns the catalogue entry of id.
func Lookup(id RuleID) (Rule, error) {
	if !id.Valid() {
		return Rule{}, ruleErrorf(id, ErrUnknownRule)
	}
	r := catalogue[id]
	r.Params = append([]Param(nil), r.Params...)

	return r, nil
}

// Defaults returns a fresh Params holding every declared default of id.
func Defaults(id RuleID) (Params, error) {
	r, err := Lookup(id)
	if err != nil {
		return nil, err
	}
	p := make(Params, len(r.Params))
	for _, d := range r.Params {
		p[d.Key] = d.Default
	}

	return p, nil
}
