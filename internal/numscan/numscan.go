// Package numscan parses the numeric prefix of a string the way the C library
// scanners (strtod, strtoul, atoi) do: leading whitespace is skipped, the
// longest valid number is consumed and everything after it is ignored.
//
// Threshold expressions such as "1:12%" and state file fields both rely on
// this permissive behaviour, so it lives in one place.
package numscan

import (
	"math"
	"strconv"
	"strings"
)

// Float returns the value of the longest floating point prefix of s and the
// number of bytes consumed. If s does not start with a number, it returns 0, 0.
//
// Accepted forms are an optional sign followed by decimal digits with an
// optional fraction and exponent, a "0x" hexadecimal mantissa with an
// optional binary "p" exponent, or "inf", "infinity" and "nan" in any case.
func Float(s string) (float64, int) {
	i := skipSpace(s)
	start := i

	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	if n := infinityLen(s[i:]); n > 0 {
		v := math.Inf(1)
		if s[start] == '-' {
			v = math.Inf(-1)
		}
		return v, i + n
	}
	if n := nanLen(s[i:]); n > 0 {
		return math.NaN(), i + n
	}
	if n := hexLen(s[i:]); n > 0 {
		return parseHex(s[start:i+n]), i + n
	}

	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		j := i + 1
		frac := 0
		for j < len(s) && isDigit(s[j]) {
			j++
			frac++
		}
		if digits > 0 || frac > 0 {
			i = j
			digits += frac
		}
	}
	if digits == 0 {
		return 0, 0
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		exp := 0
		for j < len(s) && isDigit(s[j]) {
			j++
			exp++
		}
		if exp > 0 {
			i = j
		}
	}

	// Out of range values come back as +-Inf or 0 together with an error,
	// which matches strtod returning HUGE_VAL.
	v, _ := strconv.ParseFloat(s[start:i], 64)
	return v, i
}

// Int returns the value of the leading decimal integer of s, like atoi.
// Values that overflow are clamped to the int64 range.
func Int(s string) (int64, int) {
	i := skipSpace(s)
	start := i

	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digitsStart := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i == digitsStart {
		return 0, 0
	}

	// ParseInt returns the clamped value alongside ErrRange.
	v, _ := strconv.ParseInt(s[start:i], 10, 64)
	return v, i
}

// Uint returns the value of the leading decimal integer of s, like strtoul.
// A leading minus sign negates the value in unsigned arithmetic, so "-1"
// yields math.MaxUint64.
func Uint(s string) (uint64, int) {
	i := skipSpace(s)

	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}
	digitsStart := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i == digitsStart {
		return 0, 0
	}

	v, err := strconv.ParseUint(s[digitsStart:i], 10, 64)
	if err != nil {
		v = math.MaxUint64
	}
	if neg {
		v = -v
	}
	return v, i
}

func infinityLen(s string) int {
	lower := strings.ToLower(s)
	switch {
	case strings.HasPrefix(lower, "infinity"):
		return len("infinity")
	case strings.HasPrefix(lower, "inf"):
		return len("inf")
	}
	return 0
}

// nanLen returns the length of a leading "nan" or "nan(chars)".
func nanLen(s string) int {
	if !strings.HasPrefix(strings.ToLower(s), "nan") {
		return 0
	}
	n := len("nan")
	if n < len(s) && s[n] == '(' {
		j := n + 1
		for j < len(s) && (isDigit(s[j]) || isLetter(s[j]) || s[j] == '_') {
			j++
		}
		if j < len(s) && s[j] == ')' {
			return j + 1
		}
	}
	return n
}

// hexLen returns the length of a leading hexadecimal float such as
// "0x1A", "0x1.8" or "0x10p-2", or 0 if s has no hex digits after "0x".
func hexLen(s string) int {
	if len(s) < 2 || s[0] != '0' || (s[1] != 'x' && s[1] != 'X') {
		return 0
	}
	i := 2
	digits := 0
	for i < len(s) && isHexDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		j := i + 1
		frac := 0
		for j < len(s) && isHexDigit(s[j]) {
			j++
			frac++
		}
		if digits > 0 || frac > 0 {
			i = j
			digits += frac
		}
	}
	if digits == 0 {
		return 0
	}

	if i < len(s) && (s[i] == 'p' || s[i] == 'P') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		exp := 0
		for j < len(s) && isDigit(s[j]) {
			j++
			exp++
		}
		if exp > 0 {
			i = j
		}
	}
	return i
}

// parseHex converts a string accepted by hexLen, with optional sign.
// strconv requires the binary exponent, so a missing one is supplied.
func parseHex(s string) float64 {
	if !strings.ContainsAny(s, "pP") {
		s += "p0"
	}
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

func skipSpace(s string) int {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	return i
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDigit(c) || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
