package health

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonwraymond/checkops/status"
)

func TestResultConstructors(t *testing.T) {
	tests := []struct {
		name   string
		result Result
		want   status.Level
	}{
		{"OK", OK("fine"), status.OK},
		{"Warning", Warning("high"), status.Warning},
		{"Critical", Critical("down"), status.Critical},
		{"Unknown", Unknown("no data", nil), status.Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.result.Status != tt.want {
				t.Errorf("Status = %v, want %v", tt.result.Status, tt.want)
			}
			if tt.result.Timestamp.IsZero() {
				t.Error("Timestamp should be set")
			}
		})
	}
}

func TestUnknown_Error(t *testing.T) {
	err := errors.New("connection refused")
	result := Unknown("cannot reach host", err)

	if result.Error != err {
		t.Errorf("Error = %v, want %v", result.Error, err)
	}
	if result.Message != "cannot reach host" {
		t.Errorf("Message = %q", result.Message)
	}
}

func TestResult_WithDetails(t *testing.T) {
	result := OK("ok").WithDetails(map[string]any{"key": "value"})

	if result.Details["key"] != "value" {
		t.Errorf("Details[key] = %v, want 'value'", result.Details["key"])
	}
}

func TestResult_WithDuration(t *testing.T) {
	result := OK("ok").WithDuration(100 * time.Millisecond)

	if result.Duration != 100*time.Millisecond {
		t.Errorf("Duration = %v, want 100ms", result.Duration)
	}
}

func TestCheckerFunc(t *testing.T) {
	checker := NewCheckerFunc("test", func(ctx context.Context) Result {
		return OK("all good")
	})

	if checker.Name() != "test" {
		t.Errorf("Name() = %v, want 'test'", checker.Name())
	}

	result := checker.Check(context.Background())
	if result.Status != status.OK {
		t.Errorf("Status = %v, want OK", result.Status)
	}
}

func TestCheckerFunc_WithContext(t *testing.T) {
	checker := NewCheckerFunc("ctx-aware", func(ctx context.Context) Result {
		select {
		case <-ctx.Done():
			return Unknown("cancelled", ctx.Err())
		default:
			return OK("ok")
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := checker.Check(ctx)
	if result.Status != status.Unknown {
		t.Errorf("Status = %v, want UNKNOWN for cancelled context", result.Status)
	}
	if !errors.Is(result.Error, context.Canceled) {
		t.Errorf("Error = %v, want context.Canceled", result.Error)
	}
}
