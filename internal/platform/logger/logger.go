package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/yash7800/Todo/internal/config"
)

// ParseLevel converts a configured level name to a slog.Level.
// The boolean is false when the name is not recognised.
func ParseLevel(name string) (slog.Level, bool) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// Setup initializes and configures the application's logging system based on
// the provided configuration. It creates a structured JSON logger writing to
// stdout, sets it as the default logger and returns it.
func Setup(cfg config.ServerConfig) (*slog.Logger, error) {
	return New(os.Stdout, cfg.LogLevel), nil
}

// New builds a JSON logger writing to out and installs it as the default.
// An unknown level falls back to info with a warning.
func New(out io.Writer, levelName string) *slog.Logger {
	level, ok := ParseLevel(levelName)

	handler := slog.NewJSONHandler(out, &slog.HandlerOptions{
		Level: level,
	})
	logger := slog.New(handler)

	if !ok {
		logger.Warn("invalid log level configured, using default level",
			"configured_level", levelName,
			"default_level", "info")
	}

	// This allows using the slog package functions directly (slog.Info, slog.Error, etc.)
	slog.SetDefault(logger)

	return logger
}
