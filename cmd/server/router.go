package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/yash7800/Todo/internal/api"
	apiMiddleware "github.com/yash7800/Todo/internal/api/middleware"
)

// setupRouter creates the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{app.config.Server.AllowedOrigin},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{"X-Trace-ID"},
		MaxAge:         300,
	}))
	r.Use(apiMiddleware.TraceMiddleware(app.logger))
	r.Use(app.metrics.Middleware)
	r.Use(apiMiddleware.Recoverer)

	todoHandler := api.NewTodoHandler(app.todoService)
	summaryHandler := api.NewSummaryHandler(app.summaryService)

	r.Get("/todos", todoHandler.ListTodos)
	r.Post("/todos", todoHandler.CreateTodo)
	r.Delete("/todos/{id}", todoHandler.DeleteTodo)
	r.Post("/summarize", summaryHandler.Summarize)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})
	r.Method(http.MethodGet, "/metrics", app.metrics.Handler())

	app.webHandler.Routes(r)

	return r
}
