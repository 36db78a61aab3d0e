// SPDX-License-Identifier: MIT

package workbench

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Exposed operand sizes.
const (
	MinSize     = 2
	MaxSize     = 4
	DefaultSize = 2
)

var (
	// ErrSize is returned for a size outside MinSize..MaxSize.
	ErrSize = errors.New("workbench: size out of range")

	// ErrCell is returned by SetCell for coordinates outside the current size.
	ErrCell = errors.New("workbench: cell out of range")
)

// Operand names one of the two caller-held buffers.
type Operand int

const (
	OperandA Operand = iota
	OperandB
)

// Option configures a Calculator.
type Option func(*Calculator)

// WithLogger routes failed calculations to log. A nil logger panics.
func WithLogger(log *zap.Logger) Option {
	if log == nil {
		panic("workbench: WithLogger(nil)")
	}

	return func(c *Calculator) { c.log = log }
}

// WithSize sets the initial operand size. An out-of-range size panics.
func WithSize(n int) Option {
	if n < MinSize || n > MaxSize {
		panic(fmt.Sprintf("workbench: WithSize(%d): %v", n, ErrSize))
	}

	return func(c *Calculator) { c.size = n }
}

// Calculator is the interactive matrix session: two n×n buffers, the
// selected Op and the last Result. It is not safe for concurrent use.
type Calculator struct {
	size int
	a, b [][]float64
	op   Op
	last Result
	log  *zap.Logger
}

// NewCalculator returns a Calculator with zeroed DefaultSize buffers and OpAdd.
func NewCalculator(opts ...Option) *Calculator {
	c := &Calculator{size: DefaultSize, op: OpAdd, log: zap.NewNop()}
	for _, opt := range opts {
		opt(c)
	}
	c.Reset()

	return c
}

// Size returns the current operand order.
func (c *Calculator) Size() int { return c.size }

// Op returns the selected operation.
func (c *Calculator) Op() Op { return c.op }

// Resize discards both buffers and allocates fresh zeroed n×n ones.
func (c *Calculator) Resize(n int) error {
	if n < MinSize || n > MaxSize {
		return fmt.Errorf("Resize(%d): %w", n, ErrSize)
	}
	c.size = n
	c.Reset()

	return nil
}

// Reset zeroes both buffers at the current size and clears the last Result.
func (c *Calculator) Reset() {
	c.a = zeros(c.size)
	c.b = zeros(c.size)
	c.last = Result{}
}

// SetOp selects the operation; buffers are kept.
func (c *Calculator) SetOp(op Op) { c.op = op }

// SetCell writes v into operand which at (i, j).
func (c *Calculator) SetCell(which Operand, i, j int, v float64) error {
	if i < 0 || i >= c.size || j < 0 || j >= c.size {
		return fmt.Errorf("SetCell(%d, %d): %w", i, j, ErrCell)
	}
	switch which {
	case OperandA:
		c.a[i][j] = v
	case OperandB:
		c.b[i][j] = v
	default:
		return fmt.Errorf("SetCell: operand %d: %w", which, ErrCell)
	}

	return nil
}

// Operand returns a copy of the buffer which.
func (c *Calculator) Operand(which Operand) [][]float64 {
	src := c.a
	if which == OperandB {
		src = c.b
	}

	return clone(src)
}

// Calculate runs the selected Op over the buffers and keeps the Result.
func (c *Calculator) Calculate() Result {
	c.last = Compute(c.op, c.a, c.b)
	if !c.last.OK() {
		c.log.Debug("matrix calculation failed",
			zap.Stringer("op", c.op),
			zap.Int("size", c.size),
			zap.Error(c.last.Err))
	}

	return c.last
}

// Last returns the Result of the previous Calculate, or the zero Result.
func (c *Calculator) Last() Result { return c.last }

func zeros(n int) [][]float64 {
	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, n)
	}

	return out
}

func clone(src [][]float64) [][]float64 {
	out := make([][]float64, len(src))
	for i := range src {
		out[i] = append([]float64(nil), src[i]...)
	}

	return out
}
