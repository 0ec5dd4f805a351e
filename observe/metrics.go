package observe

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/jonwraymond/checkops/status"
)

// Metrics records check run metrics.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: implementations must not panic.
type Metrics interface {
	// RecordCheck records one check run with its duration, level and error.
	RecordCheck(ctx context.Context, meta PluginMeta, duration time.Duration, level status.Level, err error)
}

type metricsImpl struct {
	runCount     metric.Int64Counter
	errorCount   metric.Int64Counter
	durationHist metric.Float64Histogram
}

func newMetrics(meter metric.Meter) (*metricsImpl, error) {
	runCount, err := meter.Int64Counter(
		"check.runs.total",
		metric.WithDescription("Total number of check runs by resulting status"),
		metric.WithUnit("{run}"),
	)
	if err != nil {
		return nil, err
	}

	errorCount, err := meter.Int64Counter(
		"check.errors",
		metric.WithDescription("Total number of check runs that failed with an error"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, err
	}

	durationHist, err := meter.Float64Histogram(
		"check.duration_ms",
		metric.WithDescription("Check run duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return &metricsImpl{
		runCount:     runCount,
		errorCount:   errorCount,
		durationHist: durationHist,
	}, nil
}

// RecordCheck records metrics for a check run.
func (m *metricsImpl) RecordCheck(ctx context.Context, meta PluginMeta, duration time.Duration, level status.Level, err error) {
	attrs := []attribute.KeyValue{
		attribute.String("check.id", meta.CheckID()),
		attribute.String("plugin.name", meta.Name),
	}
	opt := metric.WithAttributes(attrs...)

	m.runCount.Add(ctx, 1, metric.WithAttributes(append(attrs, attribute.String("check.status", level.String()))...))
	if err != nil {
		m.errorCount.Add(ctx, 1, opt)
	}
	m.durationHist.Record(ctx, float64(duration.Milliseconds()), opt)
}

type noopMetrics struct{}

func (m *noopMetrics) RecordCheck(ctx context.Context, meta PluginMeta, duration time.Duration, level status.Level, err error) {
}
