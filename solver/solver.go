// SPDX-License-Identifier: MIT

package solver

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Completer sends one Request upstream and returns the raw completion text.
type Completer interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// Solver validates requests, calls a Completer and decodes the result.
type Solver struct {
	c   Completer
	log *zap.Logger
}

// New returns a Solver over c. A nil logger is replaced by zap.NewNop.
func New(c Completer, log *zap.Logger) *Solver {
	if log == nil {
		log = zap.NewNop()
	}

	return &Solver{c: c, log: log}
}

// Solve returns the decoded Solution for req. Undecodable upstream text is
// not an error: the returned Solution is raw.
//
// Errors:
//   - ErrEmptyProblem, ErrNotConfigured, ErrRateLimited, ErrUsageLimit, ErrUpstream.
func (s *Solver) Solve(ctx context.Context, req Request) (*Solution, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	content, err := s.c.Complete(ctx, req)
	if err != nil {
		s.log.Warn("completion failed",
			zap.String("type", ProblemType(req)),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err))

		return nil, fmt.Errorf("Solve: %w", err)
	}

	sol := ParseContent(content)
	s.log.Info("completion received",
		zap.String("type", ProblemType(req)),
		zap.Int("content_len", len(content)),
		zap.Bool("raw", sol.IsRaw()),
		zap.Duration("elapsed", time.Since(start)))

	return sol, nil
}

// HistoryText is the problem text stored with a Solution: the extracted
// statement, else the submitted text, else "Image problem".
func HistoryText(req Request, sol *Solution) string {
	if sol != nil && sol.ProblemExtracted != "" {
		return sol.ProblemExtracted
	}
	if req.Problem != "" {
		return req.Problem
	}

	return "Image problem"
}
