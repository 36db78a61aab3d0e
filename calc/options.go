// SPDX-License-Identifier: MIT

package calc

import "math"

// Option configures Compile.
type Option func(*options)

type options struct {
	vars      map[string]struct{}
	functions bool
}

// WithVariables declares identifiers that Program.Eval binds at evaluation time.
// Names shadow constants and functions of the same spelling.
func WithVariables(names ...string) Option {
	return func(o *options) {
		for _, n := range names {
			o.vars[n] = struct{}{}
		}
	}
}

// WithFunctions enables the built-in unary functions and the constants pi and e.
func WithFunctions() Option {
	return func(o *options) { o.functions = true }
}

func gatherOptions(opts []Option) options {
	o := options{vars: make(map[string]struct{})}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// builtins are the unary functions available under WithFunctions.
var builtins = map[string]func(float64) float64{
	"sin":  math.Sin,
	"cos":  math.Cos,
	"tan":  math.Tan,
	"sqrt": math.Sqrt,
	"ln":   math.Log,
	"log":  math.Log10,
	"exp":  math.Exp,
	"abs":  math.Abs,
}

// constants are the named values available under WithFunctions.
var constants = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
}
