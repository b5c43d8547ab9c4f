package api

import (
	"context"

	"github.com/yash7800/Todo/internal/domain"
	"github.com/yash7800/Todo/internal/service"
)

// MockTodoService is a mock implementation of service.TodoService for testing
type MockTodoService struct {
	ListTodosFn  func(ctx context.Context) ([]domain.Todo, error)
	CreateTodoFn func(ctx context.Context, text string) (*domain.Todo, error)
	DeleteTodoFn func(ctx context.Context, id int64) error
}

// ListTodos implements service.TodoService
func (m *MockTodoService) ListTodos(ctx context.Context) ([]domain.Todo, error) {
	if m.ListTodosFn != nil {
		return m.ListTodosFn(ctx)
	}
	return nil, nil
}

// CreateTodo implements service.TodoService
func (m *MockTodoService) CreateTodo(ctx context.Context, text string) (*domain.Todo, error) {
	if m.CreateTodoFn != nil {
		return m.CreateTodoFn(ctx, text)
	}
	return nil, nil
}

// DeleteTodo implements service.TodoService
func (m *MockTodoService) DeleteTodo(ctx context.Context, id int64) error {
	if m.DeleteTodoFn != nil {
		return m.DeleteTodoFn(ctx, id)
	}
	return nil
}

// MockSummaryService is a mock implementation of service.SummaryService
type MockSummaryService struct {
	SummarizeFn func(ctx context.Context) (*service.SummaryResult, error)
}

// Summarize implements service.SummaryService
func (m *MockSummaryService) Summarize(ctx context.Context) (*service.SummaryResult, error) {
	if m.SummarizeFn != nil {
		return m.SummarizeFn(ctx)
	}
	return nil, nil
}
