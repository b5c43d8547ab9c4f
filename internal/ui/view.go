// Package ui holds the client-side view model shared by the terminal client:
// the todo list, the draft input, the feedback message and the busy flag for
// summarization. Every action turns failures into a feedback message; no
// action returns an error or panics.
package ui

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/yash7800/Todo/internal/client"
	"github.com/yash7800/Todo/internal/domain"
)

// Feedback messages.
const (
	MsgEmptyDraft     = "Todo text cannot be empty"
	MsgAdded          = "Todo added successfully!"
	MsgDeleted        = "Todo deleted successfully!"
	MsgSummarySent    = "Summary sent to Slack successfully!"
	MsgLoadFailed     = "Failed to load todos. Please try again."
	MsgAddFailed      = "Failed to add todo"
	MsgDeleteFailed   = "Failed to delete todo"
	MsgSummaryFailed  = "Failed to generate summary"
	MsgSummarySending = "Sending..."
)

// KeyEnter submits the draft.
const KeyEnter = "enter"

// API is the subset of the todo API the view uses. *client.Client satisfies it.
type API interface {
	ListTodos(ctx context.Context) ([]domain.Todo, error)
	CreateTodo(ctx context.Context, text string) (*domain.Todo, error)
	DeleteTodo(ctx context.Context, id int64) error
	Summarize(ctx context.Context) (string, error)
}

// State is a snapshot of the view.
type State struct {
	Todos   []domain.Todo
	Draft   string
	Message string
	Busy    bool
}

// IsSuccess reports whether the current message reports a success.
func (s State) IsSuccess() bool {
	return strings.Contains(s.Message, "success")
}

// View is safe for concurrent use. Network calls run without holding the
// lock, so other actions may proceed while a summary is being sent.
type View struct {
	api API

	mu    sync.Mutex
	state State
}

// NewView creates an empty view. Call Load to populate it.
func NewView(api API) *View {
	return &View{
		api:   api,
		state: State{Todos: []domain.Todo{}},
	}
}

// State returns a copy of the current state.
func (v *View) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()

	s := v.state
	s.Todos = append([]domain.Todo(nil), v.state.Todos...)
	return s
}

// Load replaces the list with the server's todos.
func (v *View) Load(ctx context.Context) {
	todos, err := v.api.ListTodos(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()
	if err != nil {
		v.state.Message = MsgLoadFailed
		return
	}
	v.state.Todos = append([]domain.Todo{}, todos...)
}

// SetDraft updates the draft and clears any feedback.
func (v *View) SetDraft(text string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state.Draft = text
	v.state.Message = ""
}

// Add submits the draft. A blank draft is rejected without a network call.
func (v *View) Add(ctx context.Context) {
	v.mu.Lock()
	draft := v.state.Draft
	if domain.IsBlank(draft) {
		v.state.Message = MsgEmptyDraft
		v.mu.Unlock()
		return
	}
	v.mu.Unlock()

	todo, err := v.api.CreateTodo(ctx, draft)

	v.mu.Lock()
	defer v.mu.Unlock()
	if err != nil {
		v.state.Message = failureReason(err, MsgAddFailed)
		return
	}
	v.state.Todos = append(v.state.Todos, *todo)
	v.state.Draft = ""
	v.state.Message = MsgAdded
}

// Delete removes the todo with the given id.
func (v *View) Delete(ctx context.Context, id int64) {
	err := v.api.DeleteTodo(ctx, id)

	v.mu.Lock()
	defer v.mu.Unlock()
	if err != nil {
		v.state.Message = failureReason(err, MsgDeleteFailed)
		return
	}

	kept := v.state.Todos[:0]
	for _, t := range v.state.Todos {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	v.state.Todos = kept
	v.state.Message = MsgDeleted
}

// Summarize asks the server to send a summary. It is ignored while a previous
// call is still in progress; Busy is always cleared when it returns.
func (v *View) Summarize(ctx context.Context) {
	v.mu.Lock()
	if v.state.Busy {
		v.mu.Unlock()
		return
	}
	v.state.Busy = true
	v.state.Message = ""
	v.mu.Unlock()

	var err error
	defer func() {
		v.mu.Lock()
		defer v.mu.Unlock()
		v.state.Busy = false
		if r := recover(); r != nil {
			v.state.Message = MsgSummaryFailed
			return
		}
		if err != nil {
			v.state.Message = failureReason(err, MsgSummaryFailed)
			return
		}
		v.state.Message = MsgSummarySent
	}()

	_, err = v.api.Summarize(ctx)
}

// HandleKey handles a key press in the draft input. Enter submits the draft;
// other keys are ignored.
func (v *View) HandleKey(ctx context.Context, key string) {
	if strings.EqualFold(key, KeyEnter) {
		v.Add(ctx)
	}
}

// failureReason prefers the server's message, then the error text, then fallback.
func failureReason(err error, fallback string) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Message != "" {
			return apiErr.Message
		}
		return fallback
	}
	if err.Error() != "" {
		return err.Error()
	}
	return fallback
}
