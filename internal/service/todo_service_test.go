package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/yash7800/Todo/internal/domain"
	"github.com/yash7800/Todo/internal/events"
	"github.com/yash7800/Todo/internal/store"
)

func TestNewTodoService_RequiresStore(t *testing.T) {
	_, err := NewTodoService(nil, nil, nil)
	assert.Error(t, err)
}

func TestTodoService_CreateTodo(t *testing.T) {
	ctx := context.Background()

	t.Run("stores and emits", func(t *testing.T) {
		st := new(MockTodoStore)
		em := &recordingEmitter{}
		st.On("Create", mock.Anything, "Buy milk").
			Return(&domain.Todo{ID: 1, Text: "Buy milk"}, nil)

		svc, err := NewTodoService(st, em, nil)
		require.NoError(t, err)

		todo, err := svc.CreateTodo(ctx, "Buy milk")
		require.NoError(t, err)
		assert.Equal(t, int64(1), todo.ID)
		assert.False(t, todo.Completed)
		assert.Equal(t, []string{events.TypeTodoCreated}, em.types())

		var payload events.TodoPayload
		require.NoError(t, em.events[0].UnmarshalPayload(&payload))
		assert.Equal(t, int64(1), payload.TodoID)
		st.AssertExpectations(t)
	})

	t.Run("empty text never reaches the store", func(t *testing.T) {
		st := new(MockTodoStore)
		svc, err := NewTodoService(st, nil, nil)
		require.NoError(t, err)

		_, err = svc.CreateTodo(ctx, "")
		var vErr *domain.ValidationError
		require.True(t, errors.As(err, &vErr))
		assert.Equal(t, "text", vErr.Field)
		st.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("whitespace text is accepted", func(t *testing.T) {
		st := new(MockTodoStore)
		st.On("Create", mock.Anything, "   ").Return(&domain.Todo{ID: 2, Text: "   "}, nil)
		svc, err := NewTodoService(st, nil, nil)
		require.NoError(t, err)

		_, err = svc.CreateTodo(ctx, "   ")
		assert.NoError(t, err)
	})

	t.Run("emitter failure does not fail create", func(t *testing.T) {
		st := new(MockTodoStore)
		st.On("Create", mock.Anything, "x").Return(&domain.Todo{ID: 3, Text: "x"}, nil)
		svc, err := NewTodoService(st, &recordingEmitter{err: errors.New("handler down")}, nil)
		require.NoError(t, err)

		todo, err := svc.CreateTodo(ctx, "x")
		require.NoError(t, err)
		assert.Equal(t, int64(3), todo.ID)
	})
}

func TestTodoService_DeleteTodo(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes and emits", func(t *testing.T) {
		st := new(MockTodoStore)
		em := &recordingEmitter{}
		st.On("Delete", mock.Anything, int64(4)).Return(nil)

		svc, err := NewTodoService(st, em, nil)
		require.NoError(t, err)

		require.NoError(t, svc.DeleteTodo(ctx, 4))
		assert.Equal(t, []string{events.TypeTodoDeleted}, em.types())
	})

	t.Run("not found", func(t *testing.T) {
		st := new(MockTodoStore)
		em := &recordingEmitter{}
		st.On("Delete", mock.Anything, int64(99)).Return(store.ErrTodoNotFound)

		svc, err := NewTodoService(st, em, nil)
		require.NoError(t, err)

		err = svc.DeleteTodo(ctx, 99)
		assert.ErrorIs(t, err, store.ErrNotFound)
		assert.Empty(t, em.types())
	})
}

func TestTodoService_ListTodos(t *testing.T) {
	st := new(MockTodoStore)
	want := []domain.Todo{{ID: 1, Text: "a"}, {ID: 2, Text: "b", Completed: true}}
	st.On("List", mock.Anything).Return(want, nil)

	svc, err := NewTodoService(st, nil, nil)
	require.NoError(t, err)

	got, err := svc.ListTodos(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
