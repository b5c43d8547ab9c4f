package api

// CreateTodoRequest is the body of POST /todos.
type CreateTodoRequest struct {
	Text string `json:"text" validate:"required"`
}

// SummaryResponse is the body of a successful POST /summarize.
type SummaryResponse struct {
	Success bool   `json:"success"`
	Summary string `json:"summary"`
}
