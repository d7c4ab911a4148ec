package match

import (
	"strings"
	"unicode"
)

// Normalize canonicalizes a string for comparison: it lowercases the input,
// drops every character outside the lowercase letters, digits, and whitespace,
// and collapses whitespace runs into single spaces with no leading or trailing
// space.
//
// The function is total and idempotent: it never fails, accepts any input
// including empty strings, and applying it to its own output changes nothing.
// Accented and non-Latin characters are removed rather than transliterated,
// so "café" normalizes to "caf".
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			// Preserve a boundary; runs collapse below.
			b.WriteByte(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}
