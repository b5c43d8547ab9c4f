package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/yash7800/Todo/internal/generation"
)

const (
	// DefaultBaseURL is the public OpenAI API root.
	DefaultBaseURL = "https://api.openai.com/v1"
	// DefaultModel is used when no model is configured.
	DefaultModel = "gpt-3.5-turbo"

	serviceName = "openai"
)

// Config configures a Generator.
type Config struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float64
	// HTTPClient is optional; http.DefaultClient's transport is used when nil.
	HTTPClient *http.Client
}

// Generator calls POST {BaseURL}/chat/completions.
type Generator struct {
	apiKey      string
	endpoint    string
	model       string
	temperature float64
	client      *http.Client
	logger      *slog.Logger
}

// Ensure Generator implements generation.Generator interface
var _ generation.Generator = (*Generator)(nil)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	N           int           `json:"n"`
}

type chatResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Index   int `json:"index"`
		Message *struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// NewGenerator creates a Generator. The API key is required.
func NewGenerator(cfg Config, logger *slog.Logger) (*Generator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: openai API key cannot be empty", generation.ErrInvalidConfig)
	}

	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{}
	}

	return &Generator{
		apiKey:      cfg.APIKey,
		endpoint:    baseURL + "/chat/completions",
		model:       model,
		temperature: cfg.Temperature,
		client:      client,
		logger:      logger.With(slog.String("component", "openai_generator")),
	}, nil
}

// GenerateSummary implements generation.Generator.
func (g *Generator) GenerateSummary(ctx context.Context, prompt string) (*generation.Summary, error) {
	if prompt == "" {
		return nil, generation.ErrEmptyPrompt
	}

	body, err := json.Marshal(chatRequest{
		Model:       g.model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: g.temperature,
		N:           1,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+g.apiKey)
	req.Header.Set("Content-Type", "application/json")

	g.logger.DebugContext(ctx, "calling chat completions",
		slog.String("model", g.model),
		slog.Int("prompt_length", len(prompt)))

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openai request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read openai response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, generation.NewUpstreamError(serviceName, resp.StatusCode, string(respBody))
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", generation.ErrInvalidResponse, err)
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message == nil ||
		parsed.Choices[0].Message.Content == "" {
		return nil, fmt.Errorf("%w: missing choices[0].message.content", generation.ErrInvalidResponse)
	}

	model := parsed.Model
	if model == "" {
		model = g.model
	}

	g.logger.DebugContext(ctx, "chat completion received",
		slog.String("model", model),
		slog.Int("summary_length", len(parsed.Choices[0].Message.Content)))

	return &generation.Summary{
		Text:  parsed.Choices[0].Message.Content,
		Model: model,
	}, nil
}
