// Package metrics exposes Prometheus instrumentation for the HTTP API and the
// application events. Collectors live in a registry owned by the caller rather
// than the global default registry, so tests and multiple servers stay isolated.
package metrics

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/yash7800/Todo/internal/events"
)

const namespace = "todo"

// unmatchedRoute labels requests that matched no route.
const unmatchedRoute = "unmatched"

// Metrics holds the application collectors.
type Metrics struct {
	registry *prometheus.Registry

	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	events   *prometheus.CounterVec
	items    prometheus.Gauge
}

// Ensure Metrics implements events.EventHandler interface
var _ events.EventHandler = (*Metrics)(nil)

// New creates the collectors and registers them, together with the Go runtime
// and process collectors, in a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route pattern and status code.",
		}, []string{"method", "route", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_total",
			Help:      "Application events by type.",
		}, []string{"type"}),
		items: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "items",
			Help:      "Todos currently held in the store.",
		}),
	}

	m.registry.MustRegister(
		m.requests,
		m.duration,
		m.events,
		m.items,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Registry returns the registry holding every collector.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Middleware records a request count and latency per chi route pattern.
// It must be installed with Use on the chi router so the route pattern is
// known once the request completes.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := unmatchedRoute
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		m.requests.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		m.duration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

// HandleEvent implements events.EventHandler. It counts every event and
// keeps the item gauge in step with creates and deletes.
func (m *Metrics) HandleEvent(_ context.Context, event *events.Event) error {
	m.events.WithLabelValues(event.Type).Inc()

	switch event.Type {
	case events.TypeTodoCreated:
		m.items.Inc()
	case events.TypeTodoDeleted:
		m.items.Dec()
	}
	return nil
}

// SetItems sets the item gauge, e.g. from the store size at startup.
func (m *Metrics) SetItems(n int) {
	m.items.Set(float64(n))
}
