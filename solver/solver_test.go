// SPDX-License-Identifier: MIT

package solver_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/katalvlaran/lvlmath/solver"
)

type stubCompleter struct {
	content string
	err     error
	calls   int
}

func (s *stubCompleter) Complete(_ context.Context, _ solver.Request) (string, error) {
	s.calls++

	return s.content, s.err
}

func TestSolver_Structured(t *testing.T) {
	stub := &stubCompleter{content: "```json\n" + sampleSolution + "\n```"}
	sol, err := solver.New(stub, zaptest.NewLogger(t)).Solve(context.Background(), solver.Request{Problem: "x^2-4=0"})
	require.NoError(t, err)
	assert.False(t, sol.IsRaw())
	assert.Equal(t, 1, stub.calls)
}

func TestSolver_RawIsNotAnError(t *testing.T) {
	stub := &stubCompleter{content: "I think the answer is 4"}
	sol, err := solver.New(stub, nil).Solve(context.Background(), solver.Request{Problem: "2+2"})
	require.NoError(t, err)
	assert.True(t, sol.IsRaw())
	assert.Equal(t, "I think the answer is 4", sol.RawResponse)
}

func TestSolver_EmptyRequestSkipsUpstream(t *testing.T) {
	stub := &stubCompleter{}
	_, err := solver.New(stub, nil).Solve(context.Background(), solver.Request{})
	require.ErrorIs(t, err, solver.ErrEmptyProblem)
	assert.Zero(t, stub.calls)
}

func TestSolver_UpstreamErrorWrapped(t *testing.T) {
	stub := &stubCompleter{err: solver.ErrRateLimited}
	_, err := solver.New(stub, nil).Solve(context.Background(), solver.Request{Problem: "x"})
	require.ErrorIs(t, err, solver.ErrRateLimited)
}
