package health

import (
	"context"
	"errors"
	"testing"

	"github.com/jonwraymond/checkops/status"
	"github.com/jonwraymond/checkops/threshold"
)

func constant(v float64) ValueFunc {
	return func(context.Context) (float64, error) { return v, nil }
}

func TestNewThresholdChecker_Validation(t *testing.T) {
	if _, err := NewThresholdChecker(ThresholdCheckerConfig{Value: constant(1)}); !errors.Is(err, ErrMissingName) {
		t.Errorf("missing name: error = %v, want ErrMissingName", err)
	}
	if _, err := NewThresholdChecker(ThresholdCheckerConfig{Name: "load"}); !errors.Is(err, ErrMissingValueFunc) {
		t.Errorf("missing value: error = %v, want ErrMissingValueFunc", err)
	}
}

func TestThresholdChecker_Check(t *testing.T) {
	th, err := threshold.New("80", "90")
	if err != nil {
		t.Fatalf("threshold.New() error = %v", err)
	}

	tests := []struct {
		value   float64
		want    status.Level
		message string
	}{
		{10, status.OK, "disk 10%"},
		{85, status.Warning, "disk 85%"},
		{95.5, status.Critical, "disk 95.5%"},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			c, err := NewThresholdChecker(ThresholdCheckerConfig{
				Name:      "disk_usage",
				Label:     "disk",
				Unit:      "%",
				Threshold: th,
				Value:     constant(tt.value),
			})
			if err != nil {
				t.Fatalf("NewThresholdChecker() error = %v", err)
			}

			result := c.Check(context.Background())
			if result.Status != tt.want {
				t.Errorf("Status = %v, want %v", result.Status, tt.want)
			}
			if result.Message != tt.message {
				t.Errorf("Message = %q, want %q", result.Message, tt.message)
			}
			if result.Details["value"] != tt.value {
				t.Errorf("Details[value] = %v, want %v", result.Details["value"], tt.value)
			}
			if result.Details["warning"] != "80" || result.Details["critical"] != "90" {
				t.Errorf("Details = %v, want warning 80 and critical 90", result.Details)
			}
		})
	}
}

func TestThresholdChecker_ValueError(t *testing.T) {
	boom := errors.New("no such variable")
	c, err := NewThresholdChecker(ThresholdCheckerConfig{
		Name: "offset",
		Value: func(context.Context) (float64, error) {
			return 0, boom
		},
	})
	if err != nil {
		t.Fatalf("NewThresholdChecker() error = %v", err)
	}

	result := c.Check(context.Background())
	if result.Status != status.Unknown {
		t.Errorf("Status = %v, want UNKNOWN", result.Status)
	}
	if !errors.Is(result.Error, boom) {
		t.Errorf("Error = %v, want %v", result.Error, boom)
	}
	if result.Message != "offset: no such variable" {
		t.Errorf("Message = %q", result.Message)
	}
}

func TestThresholdChecker_Unset(t *testing.T) {
	c, err := NewThresholdChecker(ThresholdCheckerConfig{Name: "x", Value: constant(1e9)})
	if err != nil {
		t.Fatalf("NewThresholdChecker() error = %v", err)
	}

	result := c.Check(context.Background())
	if result.Status != status.OK {
		t.Errorf("Status = %v, want OK without thresholds", result.Status)
	}
	if _, ok := result.Details["warning"]; ok {
		t.Error("unset warning should not appear in details")
	}
}

func TestFormatValue(t *testing.T) {
	tests := map[float64]string{
		0:       "0",
		15.3:    "15.3",
		-2:      "-2",
		1e21:    "1000000000000000000000",
		0.00001: "0.00001",
	}
	for v, want := range tests {
		if got := FormatValue(v); got != want {
			t.Errorf("FormatValue(%v) = %q, want %q", v, got, want)
		}
	}
}
