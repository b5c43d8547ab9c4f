package domain

import "strings"

// Todo is a single task tracked by the application.
type Todo struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// IsPending reports whether the todo still needs doing.
func (t Todo) IsPending() bool {
	return !t.Completed
}

// ValidateTodoText checks the text of a todo about to be created.
// Only presence is checked; whitespace-only text is accepted.
func ValidateTodoText(text string) error {
	if text == "" {
		return NewValidationError("text", "is required", ErrEmptyContent)
	}
	return nil
}

// PendingTodos returns the todos that are not completed, preserving order.
func PendingTodos(todos []Todo) []Todo {
	pending := make([]Todo, 0, len(todos))
	for _, t := range todos {
		if t.IsPending() {
			pending = append(pending, t)
		}
	}
	return pending
}

// IsBlank reports whether s has no visible characters.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
