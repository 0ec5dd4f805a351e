package threshold

import (
	"fmt"
	"math"
	"strings"

	"github.com/jonwraymond/checkops/internal/numscan"
)

// Polarity selects whether a range alerts on values inside or outside it.
type Polarity int

const (
	// Outside alerts when the value falls outside the range. This is the default.
	Outside Polarity = iota
	// Inside alerts when the value falls inside the range.
	Inside
)

// String returns the string representation of the polarity.
func (p Polarity) String() string {
	if p == Inside {
		return "inside"
	}
	return "outside"
}

// Range is a numeric interval with optional infinite bounds.
//
// Start is only meaningful when StartInfinite is false, End only when
// EndInfinite is false. When both bounds are finite, Start <= End.
type Range struct {
	Start         float64
	StartInfinite bool
	End           float64
	EndInfinite   bool
	AlertOn       Polarity

	// Text is the expression the range was parsed from.
	Text string
}

// Parse parses a range expression of the form [@][start:][end].
//
// A leading '@' inverts the polarity. A '~' start means negative infinity.
// Without a ':' the whole expression is the end and start is 0. An empty end
// means positive infinity.
func Parse(text string) (Range, error) {
	r := Range{
		EndInfinite: true,
		AlertOn:     Outside,
		Text:        text,
	}

	s := text
	if strings.HasPrefix(s, "@") {
		r.AlertOn = Inside
		s = s[1:]
	}

	endStr := s
	if idx := strings.IndexByte(s, ':'); idx >= 0 {
		if s[0] == '~' {
			r.StartInfinite = true
		} else {
			r.Start, _ = numscan.Float(s[:idx])
		}
		endStr = s[idx+1:]
	}

	if endStr != "" {
		r.End, _ = numscan.Float(endStr)
		r.EndInfinite = false
	}

	if !r.StartInfinite && !r.EndInfinite && r.Start > r.End {
		return Range{}, fmt.Errorf("%w: %q", ErrRangeUnparseable, text)
	}
	return r, nil
}

// MustParse is like Parse but panics if the expression cannot be parsed.
// It simplifies initialisation of ranges known at compile time.
func MustParse(text string) Range {
	r, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return r
}

// IsInside reports whether value lies within the range, bounds included.
func (r Range) IsInside(value float64) bool {
	switch {
	case !r.StartInfinite && !r.EndInfinite:
		return r.Start <= value && value <= r.End
	case !r.StartInfinite && r.EndInfinite:
		return r.Start <= value
	case r.StartInfinite && !r.EndInfinite:
		return value <= r.End
	default:
		return true
	}
}

// ShouldAlert reports whether value triggers an alert for this range.
func (r Range) ShouldAlert(value float64) bool {
	return r.IsInside(value) == (r.AlertOn == Inside)
}

// String returns the expression the range was parsed from. Ranges built by
// hand are rendered in the canonical [@]start:end form.
func (r Range) String() string {
	if r.Text != "" {
		return r.Text
	}

	var b strings.Builder
	if r.AlertOn == Inside {
		b.WriteByte('@')
	}
	if r.StartInfinite {
		b.WriteString("~:")
	} else if r.Start != 0 || r.EndInfinite {
		fmt.Fprintf(&b, "%g:", r.Start)
	}
	if !r.EndInfinite {
		fmt.Fprintf(&b, "%g", r.End)
	}
	return b.String()
}

func (r Range) lower() float64 {
	if r.StartInfinite {
		return math.Inf(-1)
	}
	return r.Start
}

func (r Range) upper() float64 {
	if r.EndInfinite {
		return math.Inf(1)
	}
	return r.End
}
