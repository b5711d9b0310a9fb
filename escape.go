package rexbuild

import "strings"

// literalMeta is the set of characters the host engine treats as special
// outside a bracket expression.
const literalMeta = `\.+*?()|[]{}^$`

// escapeLiteral returns regex source matching text literally. Metacharacters
// gain a backslash and whitespace controls are rewritten to their escape
// sequences so the result survives free-spacing mode.
func escapeLiteral(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case r < 0x80 && strings.ContainsRune(literalMeta, r):
			b.WriteByte('\\')
			b.WriteRune(r)
		case r == '\t':
			b.WriteString(`\t`)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == '\f':
			b.WriteString(`\f`)
		case r == '\v':
			b.WriteString(`\v`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
