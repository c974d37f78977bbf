package pagetable

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures the Prometheus metrics middleware.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "pagetable").
	Namespace string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for render duration.
	// Default: prometheus.DefBuckets
	Buckets []float64
}

// MetricsOption configures the Prometheus metrics middleware.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// Metrics creates middleware that collects navigation metrics and registers
// them with reg:
//   - pagetable_navigations_total: navigations by route, kind and status
//   - pagetable_render_duration_seconds: time to serve a page by route
//
// Not-found navigations are counted under the route label "not_found".
// Metrics panics if the collectors are already registered with reg.
func Metrics(reg prometheus.Registerer, opts ...MetricsOption) MiddlewareFunc {
	config := MetricsConfig{
		Namespace: "pagetable",
		Buckets:   prometheus.DefBuckets,
	}
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(reg)

	navigations := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace:   config.Namespace,
		Name:        "navigations_total",
		Help:        "Total number of page navigations resolved",
		ConstLabels: config.ConstLabels,
	}, []string{"route", "kind", "status"})

	duration := factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   config.Namespace,
		Name:        "render_duration_seconds",
		Help:        "Page render duration in seconds",
		ConstLabels: config.ConstLabels,
		Buckets:     config.Buckets,
	}, []string{"route"})

	return func(next http.Handler, route Route) http.Handler {
		name := routeLabel(route)
		observer := duration.WithLabelValues(name)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			observer.Observe(time.Since(start).Seconds())
			navigations.WithLabelValues(name, requestKind(r), strconv.Itoa(statusOf(ww))).Inc()
		})
	}
}
