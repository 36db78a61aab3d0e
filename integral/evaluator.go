// SPDX-License-Identifier: MIT

package integral

import (
	"fmt"

	"go.uber.org/zap"
)

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithLogger routes evaluation failures to log. A nil logger panics.
func WithLogger(log *zap.Logger) Option {
	if log == nil {
		panic("integral: WithLogger(nil)")
	}

	return func(e *Evaluator) { e.log = log }
}

// Evaluator holds the active rule, its parameters and the last result.
// It is not safe for concurrent use; every caller owns its instance.
type Evaluator struct {
	rule   RuleID
	params Params
	result string
	log    *zap.Logger
}

// NewEvaluator returns an Evaluator with Power selected at its defaults.
func NewEvaluator(opts ...Option) *Evaluator {
	e := &Evaluator{log: zap.NewNop()}
	for _, opt := range opts {
		opt(e)
	}
	_ = e.Select(Power)

	return e
}

// Select activates id, resets parameters to its defaults and clears the result.
// An unknown id leaves the Evaluator unchanged.
func (e *Evaluator) Select(id RuleID) error {
	p, err := Defaults(id)
	if err != nil {
		return err
	}
	e.rule, e.params, e.result = id, p, ""

	return nil
}

// Rule returns the active RuleID.
func (e *Evaluator) Rule() RuleID { return e.rule }

// Params returns a copy of the current parameter values.
func (e *Evaluator) Params() Params {
	out := make(Params, len(e.params))
	for k, v := range e.params {
		out[k] = v
	}

	return out
}

// Set assigns a declared parameter of the active rule.
func (e *Evaluator) Set(key string, v float64) error {
	if _, ok := e.params[key]; !ok {
		return ruleErrorf(e.rule, fmt.Errorf("unknown parameter %q: %w", key, ErrMalformed))
	}
	e.params[key] = v

	return nil
}

// Evaluate computes the active rule and stores the result. Failures never
// propagate: the stored and returned result is Error.
func (e *Evaluator) Evaluate() string {
	out, err := Compute(e.rule, e.params)
	if err != nil {
		e.log.Debug("integral evaluation failed",
			zap.Stringer("rule", e.rule),
			zap.Error(err))
		out = Error
	}
	e.result = out

	return out
}

// Result returns the last stored result, or "" after Select.
func (e *Evaluator) Result() string { return e.result }
