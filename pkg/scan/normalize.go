package scan

import "strings"

// Normalize strips SQL comments and collapses whitespace runs, producing
// a single-line statement with no comment markers, no multi-space runs,
// and no leading or trailing whitespace.
//
// Line comments (-- through end of line) and block comments (/* ... */,
// shortest match) are treated as whitespace, so a removed comment never
// glues two tokens together. An unterminated block comment removes text
// through the end of the input. Text inside single-quoted string literals
// is preserved verbatim, including comment markers and whitespace.
//
// Normalize is a total function: it never fails, whatever the input.
func Normalize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))

	pendingSpace := false
	i := 0
	for i < len(raw) {
		c := raw[i]
		switch {
		case c == '-' && i+1 < len(raw) && raw[i+1] == '-':
			// Line comment: consume to end of line, fold into whitespace.
			for i < len(raw) && raw[i] != '\n' {
				i++
			}
			pendingSpace = true

		case c == '/' && i+1 < len(raw) && raw[i+1] == '*':
			// Block comment: consume to the nearest */; unterminated
			// comments remove the rest of the input.
			end := strings.Index(raw[i+2:], "*/")
			if end < 0 {
				i = len(raw)
			} else {
				i += 2 + end + 2
			}
			pendingSpace = true

		case c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f':
			pendingSpace = true
			i++

		case c == '\'':
			// String literal: copy verbatim, honoring '' escapes.
			if pendingSpace && b.Len() > 0 {
				b.WriteByte(' ')
			}
			pendingSpace = false
			b.WriteByte(c)
			i++
			for i < len(raw) {
				b.WriteByte(raw[i])
				if raw[i] == '\'' {
					if i+1 < len(raw) && raw[i+1] == '\'' {
						b.WriteByte(raw[i+1])
						i += 2
						continue
					}
					i++
					break
				}
				i++
			}

		default:
			if pendingSpace && b.Len() > 0 {
				b.WriteByte(' ')
			}
			pendingSpace = false
			b.WriteByte(c)
			i++
		}
	}

	return b.String()
}
