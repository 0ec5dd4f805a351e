package observe

import (
	"context"
	"time"

	"github.com/jonwraymond/checkops/status"
)

// CheckFunc is the signature of a check run that Middleware wraps.
type CheckFunc func(ctx context.Context, meta PluginMeta) (status.Level, error)

// Middleware wraps check runs with tracing, metrics and logging.
//
// Contract:
//   - Concurrency: Wrap() returns a thread-safe CheckFunc.
//   - Context: Propagates context through tracing spans.
//   - Errors: The level and error of the wrapped function are recorded and
//     returned unchanged.
type Middleware struct {
	tracer  Tracer
	metrics Metrics
	logger  Logger
}

// NewMiddleware creates a new Middleware. Nil components are replaced with
// no-op implementations.
func NewMiddleware(tracer Tracer, metrics Metrics, logger Logger) *Middleware {
	if tracer == nil {
		tracer = newNoopTracer()
	}
	if metrics == nil {
		metrics = &noopMetrics{}
	}
	if logger == nil {
		logger = &noopLogger{}
	}
	return &Middleware{
		tracer:  tracer,
		metrics: metrics,
		logger:  logger,
	}
}

// Wrap wraps a CheckFunc with tracing, metrics, and logging.
func (m *Middleware) Wrap(fn CheckFunc) CheckFunc {
	return func(ctx context.Context, meta PluginMeta) (status.Level, error) {
		ctx, span := m.tracer.StartSpan(ctx, meta)
		start := time.Now()

		level, err := fn(ctx, meta)

		duration := time.Since(start)
		m.tracer.EndSpan(span, level, err)
		m.metrics.RecordCheck(ctx, meta, duration, level, err)

		logger := m.logger.WithPlugin(meta)
		fields := []Field{
			{Key: "status", Value: level.String()},
			{Key: "duration_ms", Value: float64(duration.Milliseconds())},
		}
		if err != nil {
			fields = append(fields, Field{Key: "error", Value: err.Error()})
			logger.Error(ctx, "check failed", fields...)
		} else {
			logger.Debug(ctx, "check completed", fields...)
		}

		return level, err
	}
}

// MiddlewareFromObserver creates a Middleware from an Observer.
func MiddlewareFromObserver(obs Observer) (*Middleware, error) {
	if obs == nil {
		return nil, ErrNilObserver
	}

	metrics, err := newMetrics(obs.Meter())
	if err != nil {
		return nil, err
	}

	return NewMiddleware(newTracer(obs.Tracer()), metrics, obs.Logger()), nil
}
