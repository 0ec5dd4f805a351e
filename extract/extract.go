package extract

import "strings"

// space is the C locale whitespace set.
const space = " \t\n\v\f\r"

// Value returns the value of key in text, where fields are separated by
// sep. It reports false when no field carries a non-empty value for key.
func Value(text, key string, sep byte) (string, bool) {
	s := text
	for {
		s = strings.TrimLeft(s, space)

		if strings.HasPrefix(s, key) {
			s = strings.TrimLeft(s[len(key):], space)

			if strings.HasPrefix(s, "=") {
				s = strings.TrimLeft(s[1:], space)

				v := s
				if i := strings.IndexByte(s, sep); i >= 0 {
					v = s[:i]
				}
				if v == "" {
					continue
				}
				return strings.TrimRight(v, space), true
			}
		}

		i := strings.IndexByte(s, sep)
		if i < 0 {
			return "", false
		}
		s = s[i+1:]
	}
}

// NTPVar returns the value of key in a comma separated NTP variable list.
func NTPVar(text, key string) (string, bool) {
	return Value(text, key, ',')
}
