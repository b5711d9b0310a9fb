package rexbuild

import (
	"fmt"
	"strings"
)

// Template substitutes {name} placeholders in f's pattern. Values are
// Fragments, inserted verbatim, or strings, escaped; a nil value fails with
// ErrInvalidOperand. A placeholder with no supplied value is left untouched,
// which makes partial application possible.
//
// Placeholders are recognized by a scanning pass, not text replacement:
// braces only count when they enclose an identifier, so quantifier braces
// like {2,5} and braces inside raw-injected source pass through unchanged.
func (f Fragment) Template(vars map[string]any) (Fragment, error) {
	var b strings.Builder
	b.Grow(len(f.pattern))
	p := f.pattern
	for i := 0; i < len(p); {
		c := p[i]
		if c == '\\' && i+1 < len(p) {
			b.WriteString(p[i : i+2])
			i += 2
			continue
		}
		if c != '{' {
			b.WriteByte(c)
			i++
			continue
		}
		name, end := placeholderAt(p, i)
		if name == "" {
			b.WriteByte(c)
			i++
			continue
		}
		v, ok := vars[name]
		if !ok {
			b.WriteString(p[i:end])
			i = end
			continue
		}
		frag, err := operand(v)
		if err != nil {
			return Fragment{}, fmt.Errorf("placeholder {%s}: %w", name, err)
		}
		b.WriteString(frag.pattern)
		f.flags |= frag.flags
		i = end
	}
	return Fragment{pattern: b.String(), flags: f.flags}, nil
}

// placeholderAt reads a {name} placeholder starting at the `{` at i. It
// returns the identifier and the index just past the closing brace, or an
// empty name when the braces do not enclose an identifier.
func placeholderAt(p string, i int) (string, int) {
	j := i + 1
	if j >= len(p) || !identStart(p[j]) {
		return "", 0
	}
	for j < len(p) && identPart(p[j]) {
		j++
	}
	if j >= len(p) || p[j] != '}' {
		return "", 0
	}
	return p[i+1 : j], j + 1
}

func identStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func identPart(c byte) bool {
	return identStart(c) || (c >= '0' && c <= '9')
}
