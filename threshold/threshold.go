package threshold

import (
	"fmt"
	"math"
	"strings"

	"github.com/jonwraymond/checkops/status"
)

// Threshold pairs an optional warning range with an optional critical range.
// A nil range disables the check for that level.
type Threshold struct {
	Warning  *Range
	Critical *Range
}

// New builds a Threshold from the warning and critical expressions of a
// check. An empty expression leaves that level unset.
//
// It returns ErrRangeUnparseable if either expression is invalid, and
// ErrWarningWithinCritical if the warning range could never alert.
func New(warning, critical string) (Threshold, error) {
	var th Threshold

	if warning != "" {
		r, err := Parse(warning)
		if err != nil {
			return Threshold{}, fmt.Errorf("warning: %w", err)
		}
		th.Warning = &r
	}

	if critical != "" {
		r, err := Parse(critical)
		if err != nil {
			return Threshold{}, fmt.Errorf("critical: %w", err)
		}
		th.Critical = &r
	}

	if err := th.Validate(); err != nil {
		return Threshold{}, err
	}
	return th, nil
}

// Validate reports ErrWarningWithinCritical when both ranges are set and
// every value the warning range alerts on also alerts the critical range.
func (t Threshold) Validate() error {
	if t.Warning == nil || t.Critical == nil {
		return nil
	}
	if alertSubset(*t.Warning, *t.Critical) {
		return fmt.Errorf("%w: warning %q, critical %q", ErrWarningWithinCritical, t.Warning, t.Critical)
	}
	return nil
}

// Classify maps value to a status level. The critical range is checked
// first, so a value alerting both ranges is Critical.
func (t Threshold) Classify(value float64) status.Level {
	if t.Critical != nil && t.Critical.ShouldAlert(value) {
		return status.Critical
	}
	if t.Warning != nil && t.Warning.ShouldAlert(value) {
		return status.Warning
	}
	return status.OK
}

// IsZero reports whether neither range is set.
func (t Threshold) IsZero() bool {
	return t.Warning == nil && t.Critical == nil
}

// String returns the thresholds in "warn;crit" form, leaving unset levels
// empty, as used in performance data.
func (t Threshold) String() string {
	var b strings.Builder
	if t.Warning != nil {
		b.WriteString(t.Warning.String())
	}
	b.WriteByte(';')
	if t.Critical != nil {
		b.WriteString(t.Critical.String())
	}
	return b.String()
}

// alertSubset reports whether the set of values on which w alerts is
// contained in the set on which c alerts.
func alertSubset(w, c Range) bool {
	wlo, whi := w.lower(), w.upper()
	clo, chi := c.lower(), c.upper()

	switch {
	case w.AlertOn == Outside && c.AlertOn == Outside:
		// complement(W) within complement(C) iff C within W
		return wlo <= clo && chi <= whi
	case w.AlertOn == Inside && c.AlertOn == Inside:
		return clo <= wlo && whi <= chi
	case w.AlertOn == Inside && c.AlertOn == Outside:
		// W must not intersect C
		return whi < clo || chi < wlo
	default:
		// complement(W) within C: each unbounded tail outside W must be covered
		if !math.IsInf(wlo, -1) && (!math.IsInf(clo, -1) || chi < wlo) {
			return false
		}
		if !math.IsInf(whi, 1) && (!math.IsInf(chi, 1) || clo > whi) {
			return false
		}
		return true
	}
}
