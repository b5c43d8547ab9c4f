package store

import (
	"context"

	"github.com/yash7800/Todo/internal/domain"
)

// TodoStore defines the interface for todo data storage.
// Implementations own the collection and the id counter; ids are assigned
// on Create, increase monotonically and are never reused.
type TodoStore interface {
	// List returns every todo in insertion order.
	// The returned slice is a copy and may be modified by the caller.
	List(ctx context.Context) ([]domain.Todo, error)

	// Create stores a new, not completed todo with the given text and
	// returns it with its assigned ID. Text validation is the caller's job.
	Create(ctx context.Context, text string) (*domain.Todo, error)

	// Delete removes the todo with the given ID.
	// Returns ErrTodoNotFound if no such todo exists; the store is left unchanged.
	Delete(ctx context.Context, id int64) error
}
