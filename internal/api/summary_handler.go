package api

import (
	"errors"
	"net/http"

	"github.com/yash7800/Todo/internal/api/shared"
	"github.com/yash7800/Todo/internal/service"
)

// SummaryHandler handles POST /summarize.
type SummaryHandler struct {
	summaryService service.SummaryService
}

// NewSummaryHandler creates a new SummaryHandler
func NewSummaryHandler(summaryService service.SummaryService) *SummaryHandler {
	return &SummaryHandler{summaryService: summaryService}
}

// Summarize generates a summary of pending todos and posts it to chat.
// The request body is ignored.
func (h *SummaryHandler) Summarize(w http.ResponseWriter, r *http.Request) {
	result, err := h.summaryService.Summarize(r.Context())
	if err != nil {
		if !errors.Is(err, service.ErrConfiguration) &&
			!errors.Is(err, service.ErrNoPendingTodos) &&
			!errors.Is(err, service.ErrSummarizationFailed) {
			err = service.NewSummarizationError(err)
		}
		HandleAPIError(w, r, err, service.MsgSummaryFailed)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, SummaryResponse{
		Success: true,
		Summary: result.Summary,
	})
}
