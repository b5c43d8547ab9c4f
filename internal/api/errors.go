package api

import (
	"errors"
	"net/http"

	"github.com/yash7800/Todo/internal/api/shared"
	"github.com/yash7800/Todo/internal/domain"
	"github.com/yash7800/Todo/internal/service"
	"github.com/yash7800/Todo/internal/store"
)

// User-facing error messages.
const (
	MsgTextRequired       = "Todo text is required"
	MsgInvalidRequest     = "Invalid request format"
	MsgInvalidID          = "Invalid todo ID"
	MsgTodoNotFound       = "Todo not found"
	MsgNoPendingTodos     = "No pending todos to summarize"
	MsgConfigurationError = "Server configuration error"
	MsgFetchFailed        = "Failed to fetch todos"
	MsgAddFailed          = "Failed to add todo"
	MsgDeleteFailed       = "Failed to delete todo"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes so that
// internal error types never leak to clients.
func MapErrorToStatusCode(err error) int {
	var validationErr *domain.ValidationError
	switch {
	case errors.As(err, &validationErr),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrEmptyContent),
		errors.Is(err, service.ErrNoPendingTodos):
		return http.StatusBadRequest

	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a user-friendly message for err. fallback is
// used for errors without a dedicated message.
func GetSafeErrorMessage(err error, fallback string) string {
	if err == nil {
		return fallback
	}

	var sumErr *service.SummarizationError
	switch {
	case errors.Is(err, domain.ErrInvalidID):
		return MsgInvalidID
	case errors.Is(err, domain.ErrEmptyContent):
		return MsgTextRequired
	case errors.Is(err, store.ErrTodoNotFound):
		return MsgTodoNotFound
	case errors.Is(err, service.ErrNoPendingTodos):
		return MsgNoPendingTodos
	case errors.Is(err, service.ErrConfiguration):
		return MsgConfigurationError
	case errors.As(err, &sumErr):
		return sumErr.Message
	default:
		return fallback
	}
}

// HandleAPIError writes the error response for err: the mapped status code,
// the safe message and, for summarization failures, the redacted details.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err, fallback)

	var opts []shared.ResponseOption
	var sumErr *service.SummarizationError
	if errors.As(err, &sumErr) {
		opts = append(opts, shared.WithDetails(sumErr.Details))
	}
	if errors.Is(err, service.ErrNoPendingTodos) {
		opts = append(opts, shared.WithElevatedLogLevel())
	}

	shared.RespondWithErrorAndLog(w, r, status, message, err, opts...)
}
