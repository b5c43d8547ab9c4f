package memory

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/yash7800/Todo/internal/domain"
	"github.com/yash7800/Todo/internal/store"
)

// TodoStore keeps todos in an ordered slice guarded by a mutex.
type TodoStore struct {
	mu     sync.RWMutex
	todos  []domain.Todo
	nextID int64
	logger *slog.Logger
}

// Ensure TodoStore implements store.TodoStore interface
var _ store.TodoStore = (*TodoStore)(nil)

// NewTodoStore creates an empty store whose first id is 1.
func NewTodoStore(logger *slog.Logger) *TodoStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &TodoStore{
		todos:  make([]domain.Todo, 0),
		nextID: 1,
		logger: logger.With(slog.String("component", "todo_store")),
	}
}

// List returns a copy of all todos in insertion order.
func (s *TodoStore) List(ctx context.Context) ([]domain.Todo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	todos := make([]domain.Todo, len(s.todos))
	copy(todos, s.todos)
	return todos, nil
}

// Create appends a new todo and returns it.
func (s *TodoStore) Create(ctx context.Context, text string) (*domain.Todo, error) {
	s.mu.Lock()
	todo := domain.Todo{
		ID:        s.nextID,
		Text:      text,
		Completed: false,
	}
	s.nextID++
	s.todos = append(s.todos, todo)
	count := len(s.todos)
	s.mu.Unlock()

	s.logger.DebugContext(ctx, "todo created",
		slog.Int64("todo_id", todo.ID),
		slog.Int("todo_count", count))

	return &todo, nil
}

// Delete removes the todo with the given id.
func (s *TodoStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, t := range s.todos {
		if t.ID != id {
			continue
		}
		s.todos = append(s.todos[:i], s.todos[i+1:]...)
		s.logger.DebugContext(ctx, "todo deleted",
			slog.Int64("todo_id", id),
			slog.Int("todo_count", len(s.todos)))
		return nil
	}

	return store.NewStoreError("todo", "delete",
		fmt.Sprintf("no todo with id %d", id), store.ErrTodoNotFound)
}

// Len returns the number of stored todos.
func (s *TodoStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.todos)
}
