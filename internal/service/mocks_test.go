package service

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"
	"github.com/yash7800/Todo/internal/domain"
	"github.com/yash7800/Todo/internal/events"
	"github.com/yash7800/Todo/internal/generation"
	"github.com/yash7800/Todo/internal/notify"
)

// MockTodoStore mocks store.TodoStore
type MockTodoStore struct {
	mock.Mock
}

func (m *MockTodoStore) List(ctx context.Context) ([]domain.Todo, error) {
	args := m.Called(ctx)
	todos, _ := args.Get(0).([]domain.Todo)
	return todos, args.Error(1)
}

func (m *MockTodoStore) Create(ctx context.Context, text string) (*domain.Todo, error) {
	args := m.Called(ctx, text)
	todo, _ := args.Get(0).(*domain.Todo)
	return todo, args.Error(1)
}

func (m *MockTodoStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockGenerator mocks generation.Generator
type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) GenerateSummary(ctx context.Context, prompt string) (*generation.Summary, error) {
	args := m.Called(ctx, prompt)
	summary, _ := args.Get(0).(*generation.Summary)
	return summary, args.Error(1)
}

// MockNotifier mocks notify.Notifier
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(ctx context.Context, msg notify.Message) (*notify.Delivery, error) {
	args := m.Called(ctx, msg)
	delivery, _ := args.Get(0).(*notify.Delivery)
	return delivery, args.Error(1)
}

// recordingEmitter keeps every emitted event.
type recordingEmitter struct {
	mu     sync.Mutex
	events []*events.Event
	err    error
}

func (r *recordingEmitter) EmitEvent(_ context.Context, event *events.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return r.err
}

func (r *recordingEmitter) types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Type)
	}
	return out
}
