package pagetable

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

type recordingProvider struct {
	noop.TracerProvider
	spans []string
}

func (p *recordingProvider) Tracer(name string, opts ...trace.TracerOption) trace.Tracer {
	return recordingTracer{p: p}
}

type recordingTracer struct {
	noop.Tracer
	p *recordingProvider
}

func (t recordingTracer) Start(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	t.p.spans = append(t.p.spans, name)
	return t.Tracer.Start(ctx, name, opts...)
}

func TestTracing(t *testing.T) {
	tp := &recordingProvider{}
	h := newTestHandler(t, WithMiddlewares(Tracing(WithTracerProvider(tp), WithTracerName("test"))))

	rec := serve(h, "/editor/3")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "<layout editor>editor:3</layout>", rec.Body.String())

	serve(h, "/missing")
	assert.Equal(t, []string{"navigate editor", "navigate not_found"}, tp.spans)
}

func TestTracing_GlobalProvider(t *testing.T) {
	h := newTestHandler(t, WithMiddlewares(Tracing()))
	rec := serve(h, "/dashboard", "HX-Request", "true")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "dashboard", rec.Body.String())
}
