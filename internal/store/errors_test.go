package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNotFoundError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: false,
		},
		{
			name:     "generic error",
			err:      errors.New("some error"),
			expected: false,
		},
		{
			name:     "ErrNotFound",
			err:      ErrNotFound,
			expected: true,
		},
		{
			name:     "ErrTodoNotFound",
			err:      ErrTodoNotFound,
			expected: true,
		},
		{
			name:     "wrapped ErrTodoNotFound",
			err:      fmt.Errorf("failed to delete todo: %w", ErrTodoNotFound),
			expected: true,
		},
		{
			name:     "store error wrapping ErrTodoNotFound",
			err:      NewStoreError("todo", "delete", "no todo with id 3", ErrTodoNotFound),
			expected: true,
		},
		{
			name:     "store error without cause",
			err:      NewStoreError("todo", "create", "store closed", nil),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsNotFoundError(tt.err))
		})
	}
}

func TestStoreError(t *testing.T) {
	t.Run("with cause", func(t *testing.T) {
		err := NewStoreError("todo", "delete", "no todo with id 3", ErrTodoNotFound)

		assert.Equal(t, "delete operation on todo failed: no todo with id 3: entity not found: todo", err.Error())
		assert.ErrorIs(t, err, ErrTodoNotFound)

		var storeErr *StoreError
		assert.True(t, errors.As(fmt.Errorf("wrapped: %w", err), &storeErr))
		assert.Equal(t, "todo", storeErr.Entity)
	})

	t.Run("without cause", func(t *testing.T) {
		err := NewStoreError("todo", "create", "store closed", nil)

		assert.Equal(t, "create operation on todo failed: store closed", err.Error())
		assert.Nil(t, err.Unwrap())
	})
}
