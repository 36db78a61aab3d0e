// SPDX-License-Identifier: MIT

package solver

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/genai"
)

func TestMapGenAIError(t *testing.T) {
	assert.ErrorIs(t, mapGenAIError(genai.APIError{Code: 429}), ErrRateLimited)
	assert.ErrorIs(t, mapGenAIError(genai.APIError{Code: 402}), ErrUsageLimit)
	assert.ErrorIs(t, mapGenAIError(genai.APIError{Code: 500, Message: "boom"}), ErrUpstream)
	assert.ErrorIs(t, mapGenAIError(errors.New("dial tcp: refused")), ErrUpstream)
}

func TestNewGenAI_RequiresKey(t *testing.T) {
	_, err := NewGenAI(context.Background(), GenAIConfig{})
	assert.ErrorIs(t, err, ErrNotConfigured)
}
