package events

import (
	"context"
	"errors"
	"log/slog"
	"sync"
)

// HandlerFunc adapts a plain function to EventHandler.
type HandlerFunc func(ctx context.Context, event *Event) error

// HandleEvent implements EventHandler.
func (f HandlerFunc) HandleEvent(ctx context.Context, event *Event) error {
	return f(ctx, event)
}

// LogHandler returns a handler that records every event at debug level.
func LogHandler(logger *slog.Logger) EventHandler {
	return HandlerFunc(func(ctx context.Context, event *Event) error {
		logger.DebugContext(ctx, "event",
			slog.String("event_id", event.ID.String()),
			slog.String("event_type", event.Type),
			slog.String("payload", string(event.Payload)))
		return nil
	})
}

// InMemoryEventEmitter dispatches events synchronously to its handlers,
// in registration order, on the caller's goroutine.
type InMemoryEventEmitter struct {
	mu       sync.RWMutex
	handlers []EventHandler
	logger   *slog.Logger
}

// Ensure InMemoryEventEmitter implements EventEmitter interface
var _ EventEmitter = (*InMemoryEventEmitter)(nil)

// NewInMemoryEventEmitter creates an emitter with no handlers.
func NewInMemoryEventEmitter(logger *slog.Logger) *InMemoryEventEmitter {
	if logger == nil {
		logger = slog.Default()
	}
	return &InMemoryEventEmitter{
		logger: logger.With("component", "event_emitter"),
	}
}

// RegisterHandler subscribes handler to every subsequent event.
func (e *InMemoryEventEmitter) RegisterHandler(handler EventHandler) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.handlers = append(e.handlers, handler)
	e.logger.Debug("registered event handler", "handler_count", len(e.handlers))
}

// EmitEvent passes event to every handler, even after one fails, and returns
// the joined handler errors.
func (e *InMemoryEventEmitter) EmitEvent(ctx context.Context, event *Event) error {
	if event == nil {
		return errors.New("event cannot be nil")
	}

	e.mu.RLock()
	handlers := append([]EventHandler(nil), e.handlers...)
	e.mu.RUnlock()

	var errs []error
	for i, handler := range handlers {
		if err := handler.HandleEvent(ctx, event); err != nil {
			e.logger.ErrorContext(ctx, "event handler failed",
				"error", err,
				"handler_index", i,
				"event_type", event.Type)
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
