package openai

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yash7800/Todo/internal/generation"
)

func newTestGenerator(t *testing.T, baseURL string) *Generator {
	t.Helper()
	gen, err := NewGenerator(Config{
		APIKey:      "sk-test",
		BaseURL:     baseURL,
		Temperature: 0.7,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return gen
}

func TestNewGenerator(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("missing key", func(t *testing.T) {
		_, err := NewGenerator(Config{}, logger)
		assert.ErrorIs(t, err, generation.ErrInvalidConfig)
	})

	t.Run("nil logger", func(t *testing.T) {
		_, err := NewGenerator(Config{APIKey: "k"}, nil)
		assert.Error(t, err)
	})

	t.Run("defaults", func(t *testing.T) {
		gen, err := NewGenerator(Config{APIKey: "k"}, logger)
		require.NoError(t, err)
		assert.Equal(t, DefaultBaseURL+"/chat/completions", gen.endpoint)
		assert.Equal(t, DefaultModel, gen.model)
	})

	t.Run("trailing slash trimmed", func(t *testing.T) {
		gen, err := NewGenerator(Config{APIKey: "k", BaseURL: "http://x/v1/"}, logger)
		require.NoError(t, err)
		assert.Equal(t, "http://x/v1/chat/completions", gen.endpoint)
	})
}

func TestGenerateSummary_Success(t *testing.T) {
	var got chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"model":"gpt-3.5-turbo-0125","choices":[{"index":0,"message":{"role":"assistant","content":"You've got this!"}}]}`)
	}))
	defer srv.Close()

	gen := newTestGenerator(t, srv.URL)
	summary, err := gen.GenerateSummary(context.Background(), "Summarize:\n- a")
	require.NoError(t, err)

	assert.Equal(t, "You've got this!", summary.Text)
	assert.Equal(t, "gpt-3.5-turbo-0125", summary.Model)

	assert.Equal(t, DefaultModel, got.Model)
	assert.Equal(t, 1, got.N)
	assert.InDelta(t, 0.7, got.Temperature, 1e-9)
	require.Len(t, got.Messages, 1)
	assert.Equal(t, "user", got.Messages[0].Role)
	assert.Equal(t, "Summarize:\n- a", got.Messages[0].Content)
}

func TestGenerateSummary_Errors(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantIs   error
		wantBody string
	}{
		{
			name:     "unauthorized",
			status:   http.StatusUnauthorized,
			body:     `{"error":{"message":"Incorrect API key"}}`,
			wantIs:   generation.ErrUnauthorized,
			wantBody: `{"error":{"message":"Incorrect API key"}}`,
		},
		{
			name:   "rate limited",
			status: http.StatusTooManyRequests,
			body:   `{"error":{"message":"slow down"}}`,
			wantIs: generation.ErrRateLimited,
		},
		{
			name:     "server error keeps payload",
			status:   http.StatusInternalServerError,
			body:     `{"error":{"message":"boom"}}`,
			wantBody: `{"error":{"message":"boom"}}`,
		},
		{
			name:   "no choices",
			status: http.StatusOK,
			body:   `{"choices":[]}`,
			wantIs: generation.ErrInvalidResponse,
		},
		{
			name:   "empty content",
			status: http.StatusOK,
			body:   `{"choices":[{"message":{"role":"assistant","content":""}}]}`,
			wantIs: generation.ErrInvalidResponse,
		},
		{
			name:   "malformed json",
			status: http.StatusOK,
			body:   `not json`,
			wantIs: generation.ErrInvalidResponse,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = io.WriteString(w, tc.body)
			}))
			defer srv.Close()

			_, err := newTestGenerator(t, srv.URL).GenerateSummary(context.Background(), "p")
			require.Error(t, err)
			if tc.wantIs != nil {
				assert.ErrorIs(t, err, tc.wantIs)
			}
			if tc.wantBody != "" {
				var upstream *generation.UpstreamError
				require.True(t, errors.As(err, &upstream))
				assert.Equal(t, "openai", upstream.Service)
				assert.Equal(t, tc.status, upstream.StatusCode)
				assert.Equal(t, tc.wantBody, upstream.Body)
			}
		})
	}
}

func TestGenerateSummary_EmptyPrompt(t *testing.T) {
	gen := newTestGenerator(t, "http://127.0.0.1:0")
	_, err := gen.GenerateSummary(context.Background(), "")
	assert.ErrorIs(t, err, generation.ErrEmptyPrompt)
}

func TestGenerateSummary_ContextDeadline(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := newTestGenerator(t, srv.URL).GenerateSummary(ctx, "p")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
