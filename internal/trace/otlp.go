// Package trace records desk interactions (reveal runs, drag sessions) as
// OpenTelemetry spans when an OTLP endpoint is configured.
package trace

import (
	"context"
	"os"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// Recorder starts spans. The zero value and a nil *Recorder are no-ops.
type Recorder struct {
	provider *sdktrace.TracerProvider
	tracer   oteltrace.Tracer
}

// Span is an in-flight recorded interaction.
type Span struct {
	span oteltrace.Span
}

// NewRecorder exports to OTEL_EXPORTER_OTLP_ENDPOINT when set.
// Returns a no-op recorder if the endpoint is not configured.
func NewRecorder(ctx context.Context) (*Recorder, error) {
	endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if endpoint == "" {
		return NewNoopRecorder(), nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	serviceName := os.Getenv("OTEL_SERVICE_NAME")
	if serviceName == "" {
		serviceName = "blueprint"
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	return &Recorder{provider: provider, tracer: provider.Tracer("blueprint/desk")}, nil
}

// NewNoopRecorder returns a recorder that drops everything.
func NewNoopRecorder() *Recorder {
	return &Recorder{tracer: noop.NewTracerProvider().Tracer("blueprint/desk")}
}

// NewRecorderWithProvider records into an existing SDK provider (tests use an
// in-memory span recorder).
func NewRecorderWithProvider(provider *sdktrace.TracerProvider) *Recorder {
	return &Recorder{provider: provider, tracer: provider.Tracer("blueprint/desk")}
}

// Start begins a span. attrs keys are namespaced under "blueprint.".
func (r *Recorder) Start(name string, attrs map[string]string) *Span {
	if r == nil || r.tracer == nil {
		return nil
	}
	_, span := r.tracer.Start(context.Background(), name, oteltrace.WithTimestamp(time.Now()))
	span.SetAttributes(toAttributes(attrs)...)
	return &Span{span: span}
}

// Annotate adds attributes to a running span.
func (s *Span) Annotate(attrs map[string]string) {
	if s == nil {
		return
	}
	s.span.SetAttributes(toAttributes(attrs)...)
}

// End finishes the span with an outcome attribute.
func (s *Span) End(outcome string) {
	if s == nil {
		return
	}
	if outcome != "" {
		s.span.SetAttributes(attribute.String("blueprint.outcome", outcome))
	}
	s.span.End(oteltrace.WithTimestamp(time.Now()))
}

func toAttributes(attrs map[string]string) []attribute.KeyValue {
	out := make([]attribute.KeyValue, 0, len(attrs))
	for k, v := range attrs {
		out = append(out, attribute.String("blueprint."+k, v))
	}
	return out
}

// Shutdown flushes and closes the exporter.
func (r *Recorder) Shutdown(ctx context.Context) error {
	if r == nil || r.provider == nil {
		return nil
	}
	return r.provider.Shutdown(ctx)
}
