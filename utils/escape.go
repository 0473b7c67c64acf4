package utils

import "strings"

// EscapeString neutralizes quote and escape characters the way the legacy
// MySQL escaping call did. Live queries use parameter binding instead; this
// shim exists only so legacy inputs keep their documented behavior.
func EscapeString(raw string) string {
	var b strings.Builder
	b.Grow(len(raw) * 2)
	for _, r := range raw {
		switch r {
		case 0:
			b.WriteString(`\0`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\\':
			b.WriteString(`\\`)
		case '\'':
			b.WriteString(`\'`)
		case '"':
			b.WriteString(`\"`)
		case '\x1a':
			b.WriteString(`\Z`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
