package pagetable

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type tracingConfig struct {
	tracerName string
	provider   trace.TracerProvider
}

// TracingOption configures the tracing middleware.
type TracingOption func(*tracingConfig)

// WithTracerName sets the tracer name (default: "github.com/jackielii/pagetable").
func WithTracerName(name string) TracingOption {
	return func(c *tracingConfig) {
		c.tracerName = name
	}
}

// WithTracerProvider sets the provider. It defaults to the global provider,
// so configure otel.SetTracerProvider before creating the middleware.
func WithTracerProvider(tp trace.TracerProvider) TracingOption {
	return func(c *tracingConfig) {
		c.provider = tp
	}
}

// Tracing creates middleware that starts a server span for every navigation,
// named after the resolved route.
func Tracing(opts ...TracingOption) MiddlewareFunc {
	config := tracingConfig{tracerName: "github.com/jackielii/pagetable"}
	for _, opt := range opts {
		opt(&config)
	}
	if config.provider == nil {
		config.provider = otel.GetTracerProvider()
	}
	tracer := config.provider.Tracer(config.tracerName)

	return func(next http.Handler, route Route) http.Handler {
		name := routeLabel(route)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := tracer.Start(r.Context(), "navigate "+name,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					attribute.String("pagetable.route", name),
					attribute.String("pagetable.path", r.URL.Path),
					attribute.String("pagetable.kind", requestKind(r)),
				),
			)
			defer span.End()

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			status := statusOf(ww)
			span.SetAttributes(attribute.Int("http.status_code", status))
			if status >= http.StatusInternalServerError {
				span.SetStatus(codes.Error, http.StatusText(status))
			}
		})
	}
}
