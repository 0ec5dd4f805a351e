// Package extract pulls named values out of delimited key=value text, such
// as NTP control packet variables or performance data.
//
// # Matching Rules
//
// Leading whitespace before a key is ignored and the key must be followed,
// after optional whitespace, by '='. The value runs from the first
// non-space character after '=' up to the next separator or the end of the
// text, with trailing whitespace removed. A value may itself contain '='.
//
// An occurrence with an empty value does not match; scanning continues, so
// the first non-empty occurrence of a key wins.
//
//	v, ok := extract.NTPVar("offset=0.25, jitter=1.1", "jitter") // "1.1", true
package extract
