package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/yash7800/Todo/internal/generation"
	"google.golang.org/genai"
)

const (
	// DefaultModel is used when no model name is configured.
	DefaultModel = "gemini-2.0-flash"

	serviceName = "gemini"
)

// Config holds the Gemini-specific generator settings.
type Config struct {
	APIKey      string
	Model       string
	Temperature float64
	// BaseURL overrides the API endpoint. Empty means the public endpoint.
	BaseURL string
	// HTTPClient is optional.
	HTTPClient *http.Client
}

// contentGenerator is the subset of *genai.Models used by GeminiGenerator.
type contentGenerator interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

// GeminiGenerator implements generation.Generator using the Gemini API.
type GeminiGenerator struct {
	logger      *slog.Logger
	models      contentGenerator
	model       string
	temperature float32
}

// Ensure GeminiGenerator implements generation.Generator interface
var _ generation.Generator = (*GeminiGenerator)(nil)

// NewGeminiGenerator creates a GeminiGenerator backed by a genai client.
func NewGeminiGenerator(ctx context.Context, logger *slog.Logger, cfg Config) (*GeminiGenerator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if err := validateConfig(ctx, logger, cfg); err != nil {
		return nil, err
	}

	clientConfig := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: cfg.HTTPClient,
	}
	if cfg.BaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v",
			generation.ErrInvalidConfig, err)
	}

	return newWithModels(logger, client.Models, cfg), nil
}

func newWithModels(logger *slog.Logger, models contentGenerator, cfg Config) *GeminiGenerator {
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	return &GeminiGenerator{
		logger:      logger.With(slog.String("component", "gemini_generator")),
		models:      models,
		model:       model,
		temperature: float32(cfg.Temperature),
	}
}

// GenerateSummary implements generation.Generator. It requests a single
// candidate and makes exactly one API call.
func (g *GeminiGenerator) GenerateSummary(ctx context.Context, prompt string) (*generation.Summary, error) {
	if prompt == "" {
		return nil, generation.ErrEmptyPrompt
	}

	contents := []*genai.Content{{
		Role:  "user",
		Parts: []*genai.Part{{Text: prompt}},
	}}
	temperature := g.temperature

	g.logger.DebugContext(ctx, "Making Gemini API call",
		"model", g.model,
		"prompt_length", len(prompt))

	resp, err := g.models.GenerateContent(ctx, g.model, contents, &genai.GenerateContentConfig{
		CandidateCount: 1,
		Temperature:    &temperature,
	})
	if err != nil {
		return nil, mapError(err)
	}

	text, err := extractText(resp)
	if err != nil {
		return nil, err
	}

	model := g.model
	if resp.ModelVersion != "" {
		model = resp.ModelVersion
	}

	g.logger.DebugContext(ctx, "Gemini API call successful",
		"model", model,
		"summary_length", len(text))

	return &generation.Summary{Text: text, Model: model}, nil
}

// extractText concatenates the text parts of the first candidate.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", fmt.Errorf("%w: nil response", generation.ErrInvalidResponse)
	}
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("%w: no content generated", generation.ErrInvalidResponse)
	}
	candidate := resp.Candidates[0]
	if candidate == nil || candidate.Content == nil {
		return "", fmt.Errorf("%w: empty content in response", generation.ErrInvalidResponse)
	}
	if candidate.FinishReason == genai.FinishReasonSafety {
		return "", fmt.Errorf("%w: content blocked by safety filters", generation.ErrInvalidResponse)
	}

	var b strings.Builder
	for _, part := range candidate.Content.Parts {
		if part != nil && !part.Thought {
			b.WriteString(part.Text)
		}
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("%w: response has no text", generation.ErrInvalidResponse)
	}
	return b.String(), nil
}

// mapError converts genai API errors into *generation.UpstreamError. Other
// errors (transport failures, context deadlines) are returned wrapped.
func mapError(err error) error {
	var apiErr genai.APIError
	if !errors.As(err, &apiErr) {
		var apiErrPtr *genai.APIError
		if !errors.As(err, &apiErrPtr) || apiErrPtr == nil {
			return fmt.Errorf("gemini request failed: %w", err)
		}
		apiErr = *apiErrPtr
	}

	body, marshalErr := json.Marshal(map[string]any{"error": apiErr})
	if marshalErr != nil {
		body = []byte(apiErr.Message)
	}
	return generation.NewUpstreamError(serviceName, apiErr.Code, string(body))
}
