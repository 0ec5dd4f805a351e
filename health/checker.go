package health

import (
	"context"
	"time"

	"github.com/jonwraymond/checkops/status"
)

// Result contains the outcome of a check.
type Result struct {
	// Status is the check's status level.
	Status status.Level

	// Message is the human readable summary printed after the level.
	Message string

	// Details contains arbitrary metadata about the check.
	Details map[string]any

	// Duration is how long the check took.
	Duration time.Duration

	// Timestamp is when the check was performed.
	Timestamp time.Time

	// Error is set when the check could not determine a level.
	Error error
}

// NewResult creates a result with the given level.
func NewResult(level status.Level, message string) Result {
	return Result{
		Status:    level,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// OK creates an OK result.
func OK(message string) Result {
	return NewResult(status.OK, message)
}

// Warning creates a WARNING result.
func Warning(message string) Result {
	return NewResult(status.Warning, message)
}

// Critical creates a CRITICAL result.
func Critical(message string) Result {
	return NewResult(status.Critical, message)
}

// Unknown creates an UNKNOWN result for a check that failed to run.
func Unknown(message string, err error) Result {
	r := NewResult(status.Unknown, message)
	r.Error = err
	return r
}

// WithDetails adds details to a result.
func (r Result) WithDetails(details map[string]any) Result {
	r.Details = details
	return r
}

// WithDuration sets the duration on a result.
func (r Result) WithDuration(d time.Duration) Result {
	r.Duration = d
	return r
}

// Checker is the interface for checks.
type Checker interface {
	// Name returns the name of this checker.
	Name() string

	// Check performs the check and returns the result.
	Check(ctx context.Context) Result
}

// CheckerFunc is an adapter to allow ordinary functions to be used as Checkers.
type CheckerFunc struct {
	name string
	fn   func(context.Context) Result
}

// NewCheckerFunc creates a new CheckerFunc.
func NewCheckerFunc(name string, fn func(context.Context) Result) *CheckerFunc {
	return &CheckerFunc{name: name, fn: fn}
}

// Name returns the name of this checker.
func (f *CheckerFunc) Name() string {
	return f.name
}

// Check performs the check.
func (f *CheckerFunc) Check(ctx context.Context) Result {
	return f.fn(ctx)
}
