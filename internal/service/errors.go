package service

import (
	"errors"
	"fmt"
)

// Common service errors. The API layer maps these to HTTP status codes.
var (
	// ErrConfiguration indicates the server lacks credentials needed for the
	// operation. API layer should map this to HTTP 500 with a generic message.
	ErrConfiguration = errors.New("server configuration error")

	// ErrNoPendingTodos indicates there is nothing to summarize.
	// API layer should map this to HTTP 400.
	ErrNoPendingTodos = errors.New("no pending todos to summarize")

	// ErrSummarizationFailed is matched by every *SummarizationError.
	ErrSummarizationFailed = errors.New("summarization failed")
)

// Messages reported to callers for summarization failures.
const (
	MsgSummaryFailed = "Failed to generate and send summary"
	MsgUnauthorized  = "Invalid API key - check your API credentials"
	MsgRateLimited   = "API rate limit exceeded"
	MsgTimedOut      = "API request timed out"
)

// SummarizationError is returned when text generation or chat delivery fails.
type SummarizationError struct {
	// Message is safe to show to the user.
	Message string
	// Details is the redacted text of the underlying failure.
	Details string
	// Cause is the underlying error.
	Cause error
}

// Error implements the error interface.
func (e *SummarizationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the cause so upstream sentinels stay matchable.
func (e *SummarizationError) Unwrap() error {
	return e.Cause
}

// Is makes every SummarizationError match ErrSummarizationFailed.
func (e *SummarizationError) Is(target error) bool {
	return target == ErrSummarizationFailed
}
