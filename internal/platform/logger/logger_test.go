package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name  string
		want  slog.Level
		valid bool
	}{
		{"debug", slog.LevelDebug, true},
		{"INFO", slog.LevelInfo, true},
		{"warn", slog.LevelWarn, true},
		{"error", slog.LevelError, true},
		{"chatty", slog.LevelInfo, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			level, ok := ParseLevel(tc.name)
			assert.Equal(t, tc.want, level)
			assert.Equal(t, tc.valid, ok)
		})
	}
}

func TestNewWritesJSONAtConfiguredLevel(t *testing.T) {
	original := slog.Default()
	defer slog.SetDefault(original)

	buf := &TestLogBuffer{}
	l := New(buf, "warn")

	l.Info("hidden")
	l.Warn("shown", "todo_id", 3)

	entries, err := buf.GetLogEntries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "shown", entries[0]["msg"])
	assert.Equal(t, "WARN", entries[0]["level"])
	assert.Equal(t, float64(3), entries[0]["todo_id"])
	assert.Same(t, l, slog.Default())
}

func TestNewInvalidLevelWarns(t *testing.T) {
	original := slog.Default()
	defer slog.SetDefault(original)

	buf := &TestLogBuffer{}
	l := New(buf, "chatty")

	assert.True(t, l.Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, l.Enabled(context.Background(), slog.LevelDebug))
	assert.Contains(t, buf.String(), "invalid log level configured")
}

func TestContextLogger(t *testing.T) {
	fallback, _ := NewTestLogger(t)
	scoped, _ := NewTestLogger(t)

	ctx := context.Background()
	assert.Nil(t, FromContext(ctx))
	assert.Same(t, fallback, FromContextOrDefault(ctx, fallback))
	assert.Same(t, slog.Default(), FromContextOrDefault(ctx, nil))

	ctx = WithLogger(ctx, scoped)
	assert.Same(t, scoped, FromContext(ctx))
	assert.Same(t, scoped, FromContextOrDefault(ctx, fallback))
}
