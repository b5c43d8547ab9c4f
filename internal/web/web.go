// Package web serves the browser client: an HTML page rendered with the
// configured API base URL, plus its static script and stylesheet.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Title is the page heading.
const Title = "Todo Summary Assistant"

//go:embed templates/index.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

type pageData struct {
	Title  string
	APIURL string
}

// Handler serves "/" and "/static/*".
type Handler struct {
	page   []byte
	static http.Handler
}

// NewHandler renders the index page once for apiBaseURL. An empty base URL
// makes the page call the API on its own origin.
func NewHandler(apiBaseURL string) (*Handler, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse index template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, pageData{Title: Title, APIURL: apiBaseURL}); err != nil {
		return nil, fmt.Errorf("failed to render index template: %w", err)
	}

	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("failed to open static assets: %w", err)
	}

	return &Handler{
		page:   buf.Bytes(),
		static: http.StripPrefix("/static/", http.FileServer(http.FS(sub))),
	}, nil
}

// Routes mounts the client on r.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.Index)
	r.Get("/static/*", h.static.ServeHTTP)
}

// Index writes the rendered page.
func (h *Handler) Index(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(h.page)
}
