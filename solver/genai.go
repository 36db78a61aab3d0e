// SPDX-License-Identifier: MIT

package solver

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

// DefaultGenAIModel is the Gemini model used when none is configured.
const DefaultGenAIModel = "gemini-2.5-flash"

const responseMIMEJSON = "application/json"

// GenAIConfig configures a GenAI completer.
type GenAIConfig struct {
	APIKey string
	Model  string
	// BaseURL overrides the Gemini API endpoint.
	BaseURL string
	Logger  *zap.Logger
}

// GenAI is a Completer backed by the Gemini API.
type GenAI struct {
	client *genai.Client
	model  string
	log    *zap.Logger
}

// NewGenAI creates the underlying genai client.
func NewGenAI(ctx context.Context, cfg GenAIConfig) (*GenAI, error) {
	if cfg.APIKey == "" {
		return nil, ErrNotConfigured
	}
	cc := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	g := &GenAI{client: client, model: cfg.Model, log: cfg.Logger}
	if g.model == "" {
		g.model = DefaultGenAIModel
	}
	if g.log == nil {
		g.log = zap.NewNop()
	}

	return g, nil
}

// Complete sends req as one user turn (text plus inline upload bytes) with
// SystemPrompt as the system instruction and a JSON response type.
func (g *GenAI) Complete(ctx context.Context, req Request) (string, error) {
	parts := []*genai.Part{genai.NewPartFromText(UserPrompt(req))}
	if req.HasUpload() {
		data, err := req.Upload()
		if err != nil {
			return "", err
		}
		parts = append(parts, genai.NewPartFromBytes(data, req.MIME()))
	}

	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(SystemPrompt, genai.RoleUser),
		Temperature:       genai.Ptr[float32](DefaultTemperature),
		ResponseMIMEType:  responseMIMEJSON,
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	g.log.Debug("genai request", zap.String("model", g.model), zap.Int("parts", len(parts)))
	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, cfg)
	if err != nil {
		return "", mapGenAIError(err)
	}

	return resp.Text(), nil
}

// mapGenAIError maps Gemini API status codes onto the package sentinels.
func mapGenAIError(err error) error {
	var apiErr genai.APIError
	if !errors.As(err, &apiErr) {
		return fmt.Errorf("genai: %v: %w", err, ErrUpstream)
	}

	switch apiErr.Code {
	case http.StatusTooManyRequests:
		return ErrRateLimited
	case http.StatusPaymentRequired:
		return ErrUsageLimit
	}

	return fmt.Errorf("genai: %v: %w", err, ErrUpstream)
}
