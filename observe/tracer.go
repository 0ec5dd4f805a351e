package observe

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"

	"github.com/jonwraymond/checkops/status"
)

// Tracer wraps OpenTelemetry tracing with check-specific span management.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: EndSpan must be best-effort and must not panic.
type Tracer interface {
	// StartSpan starts a new span for a check run.
	StartSpan(ctx context.Context, meta PluginMeta) (context.Context, trace.Span)

	// EndSpan ends the span, recording the resulting level and any error.
	EndSpan(span trace.Span, level status.Level, err error)
}

type tracerImpl struct {
	tracer trace.Tracer
}

func newTracer(t trace.Tracer) Tracer {
	return &tracerImpl{tracer: t}
}

// StartSpan starts a new span with plugin metadata as attributes.
func (t *tracerImpl) StartSpan(ctx context.Context, meta PluginMeta) (context.Context, trace.Span) {
	attrs := []attribute.KeyValue{
		attribute.String("check.id", meta.CheckID()),
		attribute.String("plugin.name", meta.Name),
	}
	if meta.Label != "" {
		attrs = append(attrs, attribute.String("check.label", meta.Label))
	}
	if meta.Version != "" {
		attrs = append(attrs, attribute.String("plugin.version", meta.Version))
	}

	return t.tracer.Start(ctx, meta.SpanName(),
		trace.WithAttributes(attrs...),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// EndSpan records the status level. An error marks the span failed; a
// non-OK level alone does not, since alerting is the check working.
func (t *tracerImpl) EndSpan(span trace.Span, level status.Level, err error) {
	span.SetAttributes(
		attribute.String("check.status", level.String()),
		attribute.Int("check.exit_code", level.ExitCode()),
	)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		span.RecordError(err)
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

type noopTracer struct {
	noop trace.Tracer
}

func newNoopTracer() Tracer {
	return &noopTracer{
		noop: tracenoop.NewTracerProvider().Tracer("noop"),
	}
}

func (t *noopTracer) StartSpan(ctx context.Context, meta PluginMeta) (context.Context, trace.Span) {
	return t.noop.Start(ctx, meta.SpanName())
}

func (t *noopTracer) EndSpan(span trace.Span, level status.Level, err error) {
	span.End()
}
