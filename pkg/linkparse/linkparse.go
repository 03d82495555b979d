// Package linkparse splits delimiter-separated configuration strings into
// their path elements, honoring backslash escapes.
package linkparse

import "strings"

// DefaultDelimiter separates path elements unless overridden.
const DefaultDelimiter = '.'

// Escape marks the following delimiter as literal.
const Escape = '\\'

// Split splits s along DefaultDelimiter. See SplitDelim.
func Split(s string) []string {
	return SplitDelim(s, DefaultDelimiter)
}

// SplitDelim splits s along delim into path elements, in order of
// appearance.
//
// A backslash followed by delim appends delim literally to the current
// element; a backslash followed by anything else (or at the end of the
// string) is a literal backslash. Delimiters at the beginning or end of the
// string, or several in a row, produce empty elements. The element being
// assembled when the string ends is always emitted, so the result holds at
// least one element.
func SplitDelim(s string, delim byte) []string {
	elems := make([]string, 0, strings.Count(s, string(delim))+1)

	var elem strings.Builder
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case Escape:
			if i+1 < len(s) && s[i+1] == delim {
				elem.WriteByte(delim)
				i++
			} else {
				elem.WriteByte(Escape)
			}
		case delim:
			elems = append(elems, elem.String())
			elem.Reset()
		default:
			elem.WriteByte(c)
		}
	}
	return append(elems, elem.String())
}
