// SPDX-License-Identifier: MIT

// Package integral is a closed, table-driven evaluator of integration rules.
//
// What:
//
//   - Five rules (Power, Trig, Exponential, Logarithmic, Polynomial), each a
//     constant record with a label, a formula description and an ordered list
//     of numeric parameters with defaults.
//   - Compute maps (RuleID, Params) to a formatted antiderivative
//     ("0.5·x^3 + C") or, for the definite Polynomial rule, to an evaluated
//     number ("= 2.000000").
//   - Evaluator is the caller-held selector: switching the active rule resets
//     parameters to defaults and clears the previous result; failures surface
//     as the Error string instead of propagating.
//
// Dispatch is a switch over RuleID; the rule set is not extensible at runtime.
//
// Errors:
//
//	ErrUnknownRule - RuleID outside the closed set.
//	ErrMalformed   - missing parameter, out-of-domain selector or a
//	                 non-finite intermediate (b = 0, ln 0, 0^-k).
package integral
