package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/yash7800/Todo/internal/domain"
)

// getPathID extracts a todo ID from the URL path parameters. Only plain
// base-10 integers are accepted.
func getPathID(r *http.Request, paramName string) (int64, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return 0, domain.NewValidationError(paramName, "is required", domain.ErrInvalidID)
	}

	id, err := strconv.ParseInt(pathParam, 10, 64)
	if err != nil {
		return 0, domain.NewValidationError(paramName, "has invalid format", domain.ErrInvalidID)
	}

	return id, nil
}
