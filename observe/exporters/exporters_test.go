package exporters

import (
	"bytes"
	"context"
	"errors"
	"testing"

	promclient "github.com/prometheus/client_golang/prometheus"
)

func lookupFrom(env map[string]string) Option {
	return WithLookup(func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	})
}

// TestExporter_InvalidName verifies unknown exporter names return an error.
func TestExporter_InvalidName(t *testing.T) {
	if _, err := NewTracingExporter(context.Background(), "invalid"); !errors.Is(err, ErrUnknownExporter) {
		t.Errorf("tracing error = %v, want ErrUnknownExporter", err)
	}
	if _, err := NewMetricsReader(context.Background(), "invalid"); !errors.Is(err, ErrUnknownExporter) {
		t.Errorf("metrics error = %v, want ErrUnknownExporter", err)
	}
}

// TestExporter_StdoutTracing verifies the stdout tracing exporter honours the writer.
func TestExporter_StdoutTracing(t *testing.T) {
	var buf bytes.Buffer
	exp, err := NewTracingExporter(context.Background(), "stdout", WithWriter(&buf))
	if err != nil {
		t.Fatalf("failed to create stdout tracing exporter: %v", err)
	}
	if exp == nil {
		t.Fatal("expected non-nil exporter")
	}
	_ = exp.Shutdown(context.Background())
}

// TestExporter_StdoutMetrics verifies the stdout metrics reader.
func TestExporter_StdoutMetrics(t *testing.T) {
	reader, err := NewMetricsReader(context.Background(), "stdout", WithWriter(&bytes.Buffer{}))
	if err != nil {
		t.Fatalf("failed to create stdout metrics reader: %v", err)
	}
	if reader == nil {
		t.Fatal("expected non-nil reader")
	}
	_ = reader.Shutdown(context.Background())
}

// TestExporter_None verifies disabled exporters return nil without error.
func TestExporter_None(t *testing.T) {
	for _, name := range []string{"none", ""} {
		exp, err := NewTracingExporter(context.Background(), name)
		if err != nil || exp != nil {
			t.Errorf("NewTracingExporter(%q) = %v, %v, want nil, nil", name, exp, err)
		}
		reader, err := NewMetricsReader(context.Background(), name)
		if err != nil || reader != nil {
			t.Errorf("NewMetricsReader(%q) = %v, %v, want nil, nil", name, reader, err)
		}
	}
}

// TestExporter_OtlpMissingEndpoint verifies OTLP without endpoint fails.
func TestExporter_OtlpMissingEndpoint(t *testing.T) {
	empty := lookupFrom(map[string]string{"OTEL_EXPORTER_OTLP_ENDPOINT": ""})

	if _, err := NewTracingExporter(context.Background(), "otlp", empty); !errors.Is(err, ErrEndpointNotConfigured) {
		t.Errorf("tracing error = %v, want ErrEndpointNotConfigured", err)
	}
	if _, err := NewMetricsReader(context.Background(), "otlp", empty); !errors.Is(err, ErrEndpointNotConfigured) {
		t.Errorf("metrics error = %v, want ErrEndpointNotConfigured", err)
	}
	if _, err := NewTracingExporter(context.Background(), "jaeger", empty); !errors.Is(err, ErrEndpointNotConfigured) {
		t.Errorf("jaeger error = %v, want ErrEndpointNotConfigured", err)
	}
}

// TestExporter_OtlpWithEndpoint verifies OTLP with a configured endpoint.
func TestExporter_OtlpWithEndpoint(t *testing.T) {
	env := lookupFrom(map[string]string{"OTEL_EXPORTER_OTLP_TRACES_ENDPOINT": "localhost:4317"})

	exp, err := NewTracingExporter(context.Background(), "otlp", env)
	if err != nil {
		t.Fatalf("failed to create OTLP exporter: %v", err)
	}
	if exp == nil {
		t.Fatal("expected non-nil exporter")
	}
}

// TestExporter_Prometheus verifies the prometheus reader registers with the given registry.
func TestExporter_Prometheus(t *testing.T) {
	reg := promclient.NewRegistry()

	reader, err := NewMetricsReader(context.Background(), "prometheus", WithRegisterer(reg))
	if err != nil {
		t.Fatalf("failed to create Prometheus reader: %v", err)
	}
	if reader == nil {
		t.Fatal("expected non-nil reader")
	}

	// A second reader on a fresh registry must not collide.
	if _, err := NewMetricsReader(context.Background(), "prometheus", WithRegisterer(promclient.NewRegistry())); err != nil {
		t.Errorf("second reader: %v", err)
	}
}
