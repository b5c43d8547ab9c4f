package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/yash7800/Todo/internal/api/shared"
	"github.com/yash7800/Todo/internal/platform/logger"
)

// InternalErrorMessage is sent when a handler panics.
const InternalErrorMessage = "Internal server error"

// Recoverer turns a panic in a later handler into a JSON 500 response. The
// panic value and stack are logged and never sent to the client.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			logger.FromContextOrDefault(r.Context(), nil).ErrorContext(r.Context(), "panic recovered",
				"panic", fmt.Sprint(rec),
				"stack", string(debug.Stack()))

			shared.RespondWithError(w, r, http.StatusInternalServerError, InternalErrorMessage)
		}()

		next.ServeHTTP(w, r)
	})
}
