package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net"
	"strings"
	"time"

	"github.com/yash7800/Todo/internal/domain"
	"github.com/yash7800/Todo/internal/events"
	"github.com/yash7800/Todo/internal/generation"
	"github.com/yash7800/Todo/internal/notify"
	"github.com/yash7800/Todo/internal/platform/logger"
	"github.com/yash7800/Todo/internal/redact"
	"github.com/yash7800/Todo/internal/store"
)

// PromptPreamble starts every summary prompt.
const PromptPreamble = "Summarize these pending tasks in a concise, motivational way:\n"

const (
	defaultLLMTimeout    = 10 * time.Second
	defaultNotifyTimeout = 5 * time.Second
)

// SummaryConfig tunes the summarization pipeline. Zero values use defaults.
type SummaryConfig struct {
	LLMTimeout    time.Duration
	NotifyTimeout time.Duration
	Header        string
}

// Prompt is the text sent to the language model.
type Prompt string

// SummaryResult is returned by a successful Summarize call.
type SummaryResult struct {
	Summary      string
	PendingCount int
	Model        string
}

// SummaryService generates a summary of pending todos and posts it to chat.
type SummaryService interface {
	Summarize(ctx context.Context) (*SummaryResult, error)
}

type summaryServiceImpl struct {
	store     store.TodoStore
	generator generation.Generator
	notifier  notify.Notifier
	emitter   events.EventEmitter
	logger    *slog.Logger
	cfg       SummaryConfig
}

// NewSummaryService creates a SummaryService. generator and notifier may be nil
// when their credentials are not configured; Summarize then fails with
// ErrConfiguration.
func NewSummaryService(
	todoStore store.TodoStore,
	generator generation.Generator,
	notifier notify.Notifier,
	emitter events.EventEmitter,
	log *slog.Logger,
	cfg SummaryConfig,
) (SummaryService, error) {
	if todoStore == nil {
		return nil, errors.New("todoStore cannot be nil")
	}
	if emitter == nil {
		emitter = events.NopEmitter{}
	}
	if log == nil {
		log = slog.Default()
	}
	if cfg.LLMTimeout <= 0 {
		cfg.LLMTimeout = defaultLLMTimeout
	}
	if cfg.NotifyTimeout <= 0 {
		cfg.NotifyTimeout = defaultNotifyTimeout
	}
	if cfg.Header == "" {
		cfg.Header = notify.DefaultHeader
	}

	return &summaryServiceImpl{
		store:     todoStore,
		generator: generator,
		notifier:  notifier,
		emitter:   emitter,
		logger:    log.With("component", "summary_service"),
		cfg:       cfg,
	}, nil
}

// BuildPrompt renders the prompt for the given pending todos.
func BuildPrompt(pending []domain.Todo) Prompt {
	lines := make([]string, 0, len(pending))
	for _, t := range pending {
		lines = append(lines, "- "+t.Text)
	}
	return Prompt(PromptPreamble + strings.Join(lines, "\n"))
}

// Summarize implements SummaryService.
func (s *summaryServiceImpl) Summarize(ctx context.Context) (*SummaryResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if s.generator == nil || s.notifier == nil {
		log.ErrorContext(ctx, "summarization requested without required credentials",
			"generator_configured", s.generator != nil,
			"notifier_configured", s.notifier != nil)
		return nil, ErrConfiguration
	}

	todos, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	pending := domain.PendingTodos(todos)
	if len(pending) == 0 {
		return nil, ErrNoPendingTodos
	}

	prompt := BuildPrompt(pending)
	log.InfoContext(ctx, "generating summary", "pending_count", len(pending))

	summary, err := s.generate(ctx, prompt)
	if err != nil {
		return nil, s.fail(ctx, log, len(pending), err)
	}

	delivery, err := s.deliver(ctx, summary)
	if err != nil {
		return nil, s.fail(ctx, log, len(pending), err)
	}

	log.InfoContext(ctx, "summary sent",
		"pending_count", len(pending),
		"model", summary.Model,
		"webhook_status", delivery.StatusCode)
	emitEvent(ctx, s.emitter, s.logger, events.TypeSummarySent,
		events.SummaryPayload{PendingCount: len(pending)})

	return &SummaryResult{
		Summary:      summary.Text,
		PendingCount: len(pending),
		Model:        summary.Model,
	}, nil
}

func (s *summaryServiceImpl) generate(ctx context.Context, prompt Prompt) (*generation.Summary, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.LLMTimeout)
	defer cancel()

	summary, err := s.generator.GenerateSummary(ctx, string(prompt))
	if err != nil {
		return nil, err
	}
	if summary == nil || summary.Text == "" {
		return nil, generation.ErrInvalidResponse
	}
	return summary, nil
}

func (s *summaryServiceImpl) deliver(ctx context.Context, summary *generation.Summary) (*notify.Delivery, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.NotifyTimeout)
	defer cancel()

	return s.notifier.Notify(ctx, notify.Message{Header: s.cfg.Header, Body: summary.Text})
}

func (s *summaryServiceImpl) fail(ctx context.Context, log *slog.Logger, pending int, cause error) error {
	sumErr := NewSummarizationError(cause)
	log.ErrorContext(ctx, "summarization failed",
		"message", sumErr.Message,
		"error", sumErr.Details)
	emitEvent(ctx, s.emitter, s.logger, events.TypeSummaryFailed,
		events.SummaryPayload{PendingCount: pending, Reason: sumErr.Message})
	return sumErr
}

// NewSummarizationError classifies cause into a user-facing message.
func NewSummarizationError(cause error) *SummarizationError {
	return &SummarizationError{
		Message: summarizationMessage(cause),
		Details: redact.Error(cause),
		Cause:   cause,
	}
}

func summarizationMessage(err error) string {
	switch {
	case errors.Is(err, generation.ErrUnauthorized):
		return MsgUnauthorized
	case errors.Is(err, generation.ErrRateLimited):
		return MsgRateLimited
	}

	var upstream *generation.UpstreamError
	if errors.As(err, &upstream) {
		return MsgSummaryFailed + ": " + redact.String(payloadText(upstream.Body))
	}

	if isTimeout(err) {
		return MsgTimedOut
	}
	return MsgSummaryFailed
}

// payloadText renders an upstream body compactly: JSON bodies are compacted,
// anything else is quoted as a JSON string.
func payloadText(body string) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, []byte(body)); err == nil && buf.Len() > 0 {
		return buf.String()
	}
	quoted, _ := json.Marshal(body)
	return string(quoted)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
