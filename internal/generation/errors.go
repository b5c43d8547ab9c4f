package generation

import (
	"errors"
	"fmt"
	"net/http"
)

// Common errors returned by the generation package
var (
	// ErrInvalidResponse is returned when the upstream response lacks the
	// expected text or cannot be parsed.
	ErrInvalidResponse = errors.New("invalid response from language model")

	// ErrInvalidConfig is returned when the generator configuration is invalid
	ErrInvalidConfig = errors.New("invalid generator configuration")

	// ErrEmptyPrompt is returned when asked to complete an empty prompt.
	ErrEmptyPrompt = errors.New("prompt cannot be empty")

	// ErrUnauthorized is returned when an upstream service rejects our credentials.
	ErrUnauthorized = errors.New("upstream rejected credentials")

	// ErrRateLimited is returned when an upstream service throttles us.
	ErrRateLimited = errors.New("upstream rate limit exceeded")
)

// UpstreamError is a non-success response from an external HTTP service.
// It is shared by the language model and chat webhook clients.
type UpstreamError struct {
	// Service names the upstream, e.g. "openai", "gemini", "slack".
	Service string
	// StatusCode is the HTTP status returned by the upstream.
	StatusCode int
	// Body is the raw error payload as received.
	Body string
}

// Error implements the error interface.
func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s API error (%d): %s", e.Service, e.StatusCode, e.Body)
}

// Unwrap maps well-known status codes onto the package sentinels so that
// errors.Is(err, ErrUnauthorized) works for any provider.
func (e *UpstreamError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusTooManyRequests:
		return ErrRateLimited
	default:
		return nil
	}
}

// NewUpstreamError creates an UpstreamError.
func NewUpstreamError(service string, statusCode int, body string) *UpstreamError {
	return &UpstreamError{
		Service:    service,
		StatusCode: statusCode,
		Body:       body,
	}
}
