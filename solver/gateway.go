// SPDX-License-Identifier: MIT

package solver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Gateway defaults.
const (
	DefaultGatewayURL   = "https://ai.gateway.lovable.dev/v1"
	DefaultGatewayModel = "google/gemini-2.5-flash"
	DefaultTemperature  = 0.3
	DefaultTimeout      = 2 * time.Minute
)

// maxErrorBody bounds how much of an upstream error body is kept.
const maxErrorBody = 512

// GatewayConfig configures a Gateway. Zero fields take the defaults above.
type GatewayConfig struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float64
	Timeout     time.Duration
	HTTPClient  *http.Client
	Logger      *zap.Logger
}

// Gateway is a Completer for an OpenAI-compatible chat completions endpoint.
type Gateway struct {
	apiKey      string
	baseURL     string
	model       string
	temperature float64
	httpClient  *http.Client
	log         *zap.Logger
}

// NewGateway returns a Gateway for cfg.
func NewGateway(cfg GatewayConfig) *Gateway {
	g := &Gateway{
		apiKey:      cfg.APIKey,
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		model:       cfg.Model,
		temperature: cfg.Temperature,
		httpClient:  cfg.HTTPClient,
		log:         cfg.Logger,
	}
	if g.baseURL == "" {
		g.baseURL = DefaultGatewayURL
	}
	if g.model == "" {
		g.model = DefaultGatewayModel
	}
	if g.temperature == 0 {
		g.temperature = DefaultTemperature
	}
	if g.httpClient == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = DefaultTimeout
		}
		g.httpClient = &http.Client{Timeout: timeout}
	}
	if g.log == nil {
		g.log = zap.NewNop()
	}

	return g
}

type chatMessage struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

type chatPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageURL `json:"image_url,omitempty"`
}

type imageURL struct {
	URL string `json:"url"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// buildMessages renders the system turn and the user turn for req.
// Uploads travel as a data URL next to the extraction prompt.
func buildMessages(req Request) []chatMessage {
	msgs := []chatMessage{{Role: "system", Content: SystemPrompt}}
	if !req.HasUpload() {
		return append(msgs, chatMessage{Role: "user", Content: UserPrompt(req)})
	}

	return append(msgs, chatMessage{Role: "user", Content: []chatPart{
		{Type: "text", Text: UserPrompt(req)},
		{Type: "image_url", ImageURL: &imageURL{URL: "data:" + req.MIME() + ";base64," + req.ImageBase64}},
	}})
}

// Complete posts req to {BaseURL}/chat/completions and returns the first
// choice's content ("" when the upstream returns no choices).
func (g *Gateway) Complete(ctx context.Context, req Request) (string, error) {
	if g.apiKey == "" {
		return "", ErrNotConfigured
	}

	body, err := json.Marshal(chatRequest{
		Model:       g.model,
		Messages:    buildMessages(req),
		Temperature: g.temperature,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+g.apiKey)

	g.log.Debug("gateway request", zap.String("model", g.model), zap.Bool("upload", req.HasUpload()))
	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("request failed: %v: %w", err, ErrUpstream)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %v: %w", err, ErrUpstream)
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		g.log.Warn("gateway rate limited", zap.ByteString("body", truncate(raw)))

		return "", ErrRateLimited
	case resp.StatusCode == http.StatusPaymentRequired:
		g.log.Warn("gateway usage limit", zap.ByteString("body", truncate(raw)))

		return "", ErrUsageLimit
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		g.log.Error("gateway error", zap.Int("status", resp.StatusCode), zap.ByteString("body", truncate(raw)))

		return "", fmt.Errorf("AI error: %d: %w", resp.StatusCode, ErrUpstream)
	}

	var out chatResponse
	if err = json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("parse response: %v: %w", err, ErrUpstream)
	}
	if out.Error != nil {
		return "", fmt.Errorf("API error: %s: %w", out.Error.Message, ErrUpstream)
	}
	if len(out.Choices) == 0 {
		return "", nil
	}

	return out.Choices[0].Message.Content, nil
}

func truncate(b []byte) []byte {
	if len(b) > maxErrorBody {
		return b[:maxErrorBody]
	}

	return b
}
