package generation

import "context"

// Summary is the text produced by a Generator.
type Summary struct {
	Text  string
	Model string
}

// Generator produces a summary for a prompt.
type Generator interface {
	// GenerateSummary sends prompt to the language model and returns the
	// first completion. It requests a single choice and does not retry.
	//
	// Errors wrap ErrEmptyPrompt, ErrInvalidResponse, or an *UpstreamError
	// (which unwraps to ErrUnauthorized / ErrRateLimited where applicable).
	// Timeouts surface as the context or transport error unchanged.
	GenerateSummary(ctx context.Context, prompt string) (*Summary, error)
}
