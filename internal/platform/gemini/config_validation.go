package gemini

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/yash7800/Todo/internal/generation"
)

// validateConfig checks that the settings needed to reach the Gemini API are present.
func validateConfig(ctx context.Context, logger *slog.Logger, cfg Config) error {
	if cfg.APIKey == "" {
		logger.ErrorContext(ctx, "Missing Gemini API key")
		return fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}

	if cfg.Temperature < 0 || cfg.Temperature > 2 {
		return fmt.Errorf("%w: temperature %.2f out of range [0, 2]",
			generation.ErrInvalidConfig, cfg.Temperature)
	}

	return nil
}
