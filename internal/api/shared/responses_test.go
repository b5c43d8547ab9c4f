package shared

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yash7800/Todo/internal/platform/logger"
)

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestRespondWithJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/todos", nil)

	RespondWithJSON(rec, req, http.StatusCreated, map[string]int{"id": 1})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"id":1}`, rec.Body.String())
}

func TestRespondWithError_IncludesTraceID(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/todos", nil)
	req = req.WithContext(WithTraceID(req.Context(), "trace-123"))

	RespondWithError(rec, req, http.StatusNotFound, "Todo not found")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Todo not found", body["error"])
	assert.Equal(t, "trace-123", body["trace_id"])
	assert.NotContains(t, body, "details")
}

func TestRespondWithErrorAndLog(t *testing.T) {
	log, buf := logger.NewTestLogger(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/summarize", nil)
	req = req.WithContext(logger.WithLogger(req.Context(), log))

	cause := errors.New("openai said no: Bearer sk-supersecretvalue123")
	RespondWithErrorAndLog(rec, req, http.StatusInternalServerError,
		"Failed to generate and send summary", cause, WithDetails(cause.Error()))

	body := decodeBody(t, rec)
	assert.Equal(t, "Failed to generate and send summary", body["error"])
	assert.NotContains(t, body["details"], "sk-supersecretvalue123")
	assert.Contains(t, body["details"], "[REDACTED_KEY]")
	assert.NotContains(t, body, "trace_id")

	entries, err := buf.GetLogEntries()
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	last := entries[len(entries)-1]
	assert.Equal(t, "ERROR", last["level"])
	assert.NotContains(t, last["error"], "sk-supersecretvalue123")
	assert.Equal(t, "*errors.errorString", last["error_type"])
}

func TestRespondWithErrorAndLog_LogLevels(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		opts      []ResponseOption
		wantLevel string
	}{
		{"server error", http.StatusInternalServerError, nil, "ERROR"},
		{"rate limited", http.StatusTooManyRequests, nil, "WARN"},
		{"bad request", http.StatusBadRequest, nil, "DEBUG"},
		{"elevated bad request", http.StatusBadRequest, []ResponseOption{WithElevatedLogLevel()}, "WARN"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			log, buf := logger.NewTestLogger(t)
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req = req.WithContext(logger.WithLogger(req.Context(), log))

			RespondWithErrorAndLog(rec, req, tc.status, "msg", errors.New("x"), tc.opts...)

			entries, err := buf.GetLogEntries()
			require.NoError(t, err)
			require.Len(t, entries, 1)
			assert.Equal(t, tc.wantLevel, entries[0]["level"])
		})
	}
}
