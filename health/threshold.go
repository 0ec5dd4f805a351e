package health

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jonwraymond/checkops/threshold"
)

// ValueFunc measures the quantity a ThresholdChecker classifies.
type ValueFunc func(ctx context.Context) (float64, error)

// ThresholdCheckerConfig configures a ThresholdChecker.
type ThresholdCheckerConfig struct {
	// Name identifies the checker. Required.
	Name string

	// Label names the measured quantity in messages. Defaults to Name.
	Label string

	// Unit is appended to the value in messages, e.g. "%" or "ms".
	Unit string

	// Threshold holds the warning and critical ranges.
	Threshold threshold.Threshold

	// Value produces the measurement.
	Value ValueFunc
}

// ThresholdChecker classifies a measured value against warning and
// critical ranges.
type ThresholdChecker struct {
	config ThresholdCheckerConfig
}

// NewThresholdChecker creates a new ThresholdChecker.
func NewThresholdChecker(config ThresholdCheckerConfig) (*ThresholdChecker, error) {
	if config.Name == "" {
		return nil, ErrMissingName
	}
	if config.Value == nil {
		return nil, ErrMissingValueFunc
	}
	if config.Label == "" {
		config.Label = config.Name
	}
	return &ThresholdChecker{config: config}, nil
}

// Name returns the name of this checker.
func (c *ThresholdChecker) Name() string {
	return c.config.Name
}

// Check measures the value and classifies it. A measurement error yields
// an Unknown result.
func (c *ThresholdChecker) Check(ctx context.Context) Result {
	v, err := c.config.Value(ctx)
	if err != nil {
		return Unknown(fmt.Sprintf("%s: %v", c.config.Label, err), err)
	}

	level := c.config.Threshold.Classify(v)
	details := map[string]any{
		"value": v,
	}
	if w := c.config.Threshold.Warning; w != nil {
		details["warning"] = w.String()
	}
	if cr := c.config.Threshold.Critical; cr != nil {
		details["critical"] = cr.String()
	}

	return NewResult(level, c.config.Label+" "+FormatValue(v)+c.config.Unit).WithDetails(details)
}

// FormatValue renders v in the shortest form that reads back exactly.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
