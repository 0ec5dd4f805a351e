// Package status defines the severity levels a check reports.
//
// The numeric value of each Level is the process exit code expected by the
// monitoring system. OK, Warning and Critical form an ordered scale used by
// threshold evaluation; Unknown and Dependent are out-of-band signals for
// configuration or system failures.
package status

import (
	"errors"
	"fmt"
	"strings"
)

// Level is the severity reported by a check.
type Level int

const (
	// OK indicates the measured value is within every configured range.
	OK Level = iota
	// Warning indicates the warning range alerted.
	Warning
	// Critical indicates the critical range alerted.
	Critical
	// Unknown indicates the check could not determine a result.
	Unknown
	// Dependent indicates the result depends on another check.
	Dependent
)

// ErrUnknownLevel is returned by Parse for unrecognised input.
var ErrUnknownLevel = errors.New("status: unknown level")

// String returns the upper-case name used in plugin output.
func (l Level) String() string {
	switch l {
	case OK:
		return "OK"
	case Warning:
		return "WARNING"
	case Critical:
		return "CRITICAL"
	case Dependent:
		return "DEPENDENT"
	default:
		return "UNKNOWN"
	}
}

// ExitCode returns the process exit code for the level.
func (l Level) ExitCode() int {
	switch l {
	case OK, Warning, Critical, Dependent:
		return int(l)
	default:
		return int(Unknown)
	}
}

// Parse reads a level from its name (case-insensitive) or its single-digit
// numeric form. Only OK, WARNING, CRITICAL and UNKNOWN are accepted.
func Parse(s string) (Level, error) {
	switch {
	case strings.EqualFold(s, "OK") || s == "0":
		return OK, nil
	case strings.EqualFold(s, "WARNING") || s == "1":
		return Warning, nil
	case strings.EqualFold(s, "CRITICAL") || s == "2":
		return Critical, nil
	case strings.EqualFold(s, "UNKNOWN") || s == "3":
		return Unknown, nil
	}
	return Unknown, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
}

// severity ranks levels for worst-of combination.
func (l Level) severity() int {
	switch l {
	case Critical:
		return 4
	case Warning:
		return 3
	case Unknown:
		return 2
	case Dependent:
		return 1
	case OK:
		return 0
	default:
		return 2
	}
}

// Worst returns the more severe of the given levels.
// The order is Critical, Warning, Unknown, Dependent, OK. With no arguments
// it returns OK.
func Worst(levels ...Level) Level {
	worst := OK
	for _, l := range levels {
		if l.severity() > worst.severity() {
			worst = l
		}
	}
	return worst
}
