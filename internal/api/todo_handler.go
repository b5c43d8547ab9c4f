package api

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/yash7800/Todo/internal/api/shared"
	"github.com/yash7800/Todo/internal/domain"
	"github.com/yash7800/Todo/internal/platform/logger"
	"github.com/yash7800/Todo/internal/service"
)

// TodoHandler handles todo-related HTTP requests
type TodoHandler struct {
	todoService service.TodoService
	validator   *validator.Validate
}

// NewTodoHandler creates a new TodoHandler
func NewTodoHandler(todoService service.TodoService) *TodoHandler {
	return &TodoHandler{
		todoService: todoService,
		validator:   validator.New(),
	}
}

// ListTodos handles GET /todos requests
func (h *TodoHandler) ListTodos(w http.ResponseWriter, r *http.Request) {
	todos, err := h.todoService.ListTodos(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, MsgFetchFailed)
		return
	}
	if todos == nil {
		todos = []domain.Todo{}
	}

	shared.RespondWithJSON(w, r, http.StatusOK, todos)
}

// CreateTodo handles POST /todos requests
func (h *TodoHandler) CreateTodo(w http.ResponseWriter, r *http.Request) {
	var req CreateTodoRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		if errors.Is(err, shared.ErrEmptyBody) {
			shared.RespondWithError(w, r, http.StatusBadRequest, MsgTextRequired)
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, MsgInvalidRequest, err)
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, MsgTextRequired)
		return
	}

	todo, err := h.todoService.CreateTodo(r.Context(), req.Text)
	if err != nil {
		HandleAPIError(w, r, err, MsgAddFailed)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, todo)
}

// DeleteTodo handles DELETE /todos/{id} requests
func (h *TodoHandler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		logger.FromContextOrDefault(r.Context(), nil).Debug("invalid todo id",
			"value", r.URL.Path)
		HandleAPIError(w, r, err, MsgInvalidID)
		return
	}

	if err := h.todoService.DeleteTodo(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, MsgDeleteFailed)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
