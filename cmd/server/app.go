package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/yash7800/Todo/internal/config"
	"github.com/yash7800/Todo/internal/events"
	"github.com/yash7800/Todo/internal/generation"
	"github.com/yash7800/Todo/internal/metrics"
	"github.com/yash7800/Todo/internal/notify"
	"github.com/yash7800/Todo/internal/platform/gemini"
	"github.com/yash7800/Todo/internal/platform/memory"
	"github.com/yash7800/Todo/internal/platform/openai"
	"github.com/yash7800/Todo/internal/platform/slack"
	"github.com/yash7800/Todo/internal/service"
	"github.com/yash7800/Todo/internal/web"
)

// application holds all the dependencies of the running server.
type application struct {
	config         *config.Config
	logger         *slog.Logger
	todoStore      *memory.TodoStore
	eventEmitter   *events.InMemoryEventEmitter
	metrics        *metrics.Metrics
	todoService    service.TodoService
	summaryService service.SummaryService
	webHandler     *web.Handler
}

// newApplication wires the store, services and handlers from cfg.
// Missing LLM or Slack credentials leave the summary pipeline unconfigured;
// the server still starts and /summarize reports a configuration error.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	logCredentials(logger, cfg)

	app := &application{
		config:       cfg,
		logger:       logger,
		todoStore:    memory.NewTodoStore(logger),
		eventEmitter: events.NewInMemoryEventEmitter(logger),
		metrics:      metrics.New(),
	}
	app.eventEmitter.RegisterHandler(app.metrics)
	app.eventEmitter.RegisterHandler(events.LogHandler(logger))
	app.metrics.SetItems(app.todoStore.Len())

	var err error
	app.todoService, err = service.NewTodoService(app.todoStore, app.eventEmitter, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create todo service: %w", err)
	}

	generator, err := newGenerator(ctx, cfg.LLM, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create text generator: %w", err)
	}

	notifier, err := newNotifier(cfg.Notify, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create notifier: %w", err)
	}

	app.summaryService, err = service.NewSummaryService(
		app.todoStore,
		generator,
		notifier,
		app.eventEmitter,
		logger,
		service.SummaryConfig{
			LLMTimeout:    cfg.LLM.Timeout(),
			NotifyTimeout: cfg.Notify.Timeout(),
			Header:        cfg.Notify.Header,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create summary service: %w", err)
	}

	app.webHandler, err = web.NewHandler(cfg.Server.APIBaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create web handler: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the HTTP server and blocks until ctx is cancelled or the
// server fails.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// newGenerator returns the configured provider's generator, or a nil
// interface when its API key is not set.
func newGenerator(ctx context.Context, cfg config.LLMConfig, logger *slog.Logger) (generation.Generator, error) {
	if cfg.APIKey() == "" {
		return nil, nil
	}

	switch cfg.Provider {
	case "gemini":
		g, err := gemini.NewGeminiGenerator(ctx, logger, gemini.Config{
			APIKey:      cfg.GeminiAPIKey,
			Model:       cfg.ModelName,
			Temperature: cfg.Temperature,
		})
		if err != nil {
			return nil, err
		}
		return g, nil
	default:
		g, err := openai.NewGenerator(openai.Config{
			APIKey:      cfg.OpenAIAPIKey,
			BaseURL:     cfg.BaseURL,
			Model:       cfg.ModelName,
			Temperature: cfg.Temperature,
		}, logger)
		if err != nil {
			return nil, err
		}
		return g, nil
	}
}

// newNotifier returns a Slack webhook notifier, or a nil interface when no
// webhook URL is configured.
func newNotifier(cfg config.NotifyConfig, logger *slog.Logger) (notify.Notifier, error) {
	if cfg.SlackWebhookURL == "" {
		return nil, nil
	}

	n, err := slack.NewWebhookNotifier(cfg.SlackWebhookURL, &http.Client{}, logger)
	if err != nil {
		return nil, err
	}
	return n, nil
}

// logCredentials reports which secrets are present without logging them.
func logCredentials(logger *slog.Logger, cfg *config.Config) {
	logger.Info("Credential status",
		"llm_provider", cfg.LLM.Provider,
		"llm_api_key", presence(cfg.LLM.APIKey()),
		"slack_webhook_url", presence(cfg.Notify.SlackWebhookURL))
}

func presence(value string) string {
	if value == "" {
		return "missing"
	}
	return "set"
}

// cleanup releases application resources after the server has stopped.
func (app *application) cleanup() {
	app.logger.Info("Application shutdown completed", "todos_in_memory", app.todoStore.Len())
}
