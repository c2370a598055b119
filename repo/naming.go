package repo

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// KebabToCamel converts a hyphenated input key to identifier form:
// "start-date" becomes "startDate". Keys without hyphens come back unchanged.
func KebabToCamel(key string) string {
	parts := strings.Split(key, "-")
	if len(parts) == 1 {
		return key
	}

	var b strings.Builder
	b.WriteString(parts[0])

	for _, p := range parts[1:] {
		if p == "" {
			continue
		}

		r, size := utf8.DecodeRuneInString(p)
		b.WriteRune(unicode.ToUpper(r))
		b.WriteString(p[size:])
	}

	return b.String()
}
