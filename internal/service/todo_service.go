package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/yash7800/Todo/internal/domain"
	"github.com/yash7800/Todo/internal/events"
	"github.com/yash7800/Todo/internal/platform/logger"
	"github.com/yash7800/Todo/internal/store"
)

// TodoService provides todo-related operations.
type TodoService interface {
	// ListTodos returns every todo in creation order.
	ListTodos(ctx context.Context) ([]domain.Todo, error)

	// CreateTodo validates text and stores a new pending todo.
	CreateTodo(ctx context.Context, text string) (*domain.Todo, error)

	// DeleteTodo removes the todo with the given id.
	// Returns store.ErrTodoNotFound if no such todo exists.
	DeleteTodo(ctx context.Context, id int64) error
}

type todoServiceImpl struct {
	store   store.TodoStore
	emitter events.EventEmitter
	logger  *slog.Logger
}

// NewTodoService creates a TodoService. A nil emitter disables events.
func NewTodoService(
	todoStore store.TodoStore,
	emitter events.EventEmitter,
	log *slog.Logger,
) (TodoService, error) {
	if todoStore == nil {
		return nil, errors.New("todoStore cannot be nil")
	}
	if emitter == nil {
		emitter = events.NopEmitter{}
	}
	if log == nil {
		log = slog.Default()
	}

	return &todoServiceImpl{
		store:   todoStore,
		emitter: emitter,
		logger:  log.With("component", "todo_service"),
	}, nil
}

// ListTodos implements TodoService.
func (s *todoServiceImpl) ListTodos(ctx context.Context) ([]domain.Todo, error) {
	return s.store.List(ctx)
}

// CreateTodo implements TodoService.
func (s *todoServiceImpl) CreateTodo(ctx context.Context, text string) (*domain.Todo, error) {
	if err := domain.ValidateTodoText(text); err != nil {
		return nil, err
	}

	todo, err := s.store.Create(ctx, text)
	if err != nil {
		return nil, err
	}

	log := logger.FromContextOrDefault(ctx, s.logger)
	log.InfoContext(ctx, "todo created", "todo_id", todo.ID)
	emitEvent(ctx, s.emitter, s.logger, events.TypeTodoCreated, events.TodoPayload{TodoID: todo.ID})

	return todo, nil
}

// DeleteTodo implements TodoService.
func (s *todoServiceImpl) DeleteTodo(ctx context.Context, id int64) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}

	log := logger.FromContextOrDefault(ctx, s.logger)
	log.InfoContext(ctx, "todo deleted", "todo_id", id)
	emitEvent(ctx, s.emitter, s.logger, events.TypeTodoDeleted, events.TodoPayload{TodoID: id})

	return nil
}

// emitEvent publishes an event. The state change already happened, so
// failures are logged rather than returned.
func emitEvent(
	ctx context.Context,
	emitter events.EventEmitter,
	fallback *slog.Logger,
	eventType string,
	payload interface{},
) {
	event, err := events.NewEvent(eventType, payload)
	if err == nil {
		err = emitter.EmitEvent(ctx, event)
	}
	if err != nil {
		logger.FromContextOrDefault(ctx, fallback).WarnContext(ctx, "failed to emit event",
			"event_type", eventType,
			"error", err)
	}
}
