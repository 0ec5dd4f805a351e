package health

import "errors"

var (
	// ErrCheckTimeout indicates a check did not finish in time.
	ErrCheckTimeout = errors.New("health: check timeout")

	// ErrCheckerNotFound indicates a checker was not found.
	ErrCheckerNotFound = errors.New("health: checker not found")

	// ErrMissingName indicates a checker was configured without a name.
	ErrMissingName = errors.New("health: checker name is required")

	// ErrMissingValueFunc indicates a ThresholdChecker without a value source.
	ErrMissingValueFunc = errors.New("health: value function is required")
)
