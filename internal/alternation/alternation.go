// Package alternation flattens and compresses alternation branches. Nested
// non-capturing alternations are spliced into the top level, character-like
// branches merge into a single bracket expression, and everything else is
// preserved in order.
package alternation

import (
	"strings"

	"github.com/rexbuild/rexbuild/internal/charclass"
	"github.com/rexbuild/rexbuild/internal/scan"
)

// kind classifies a top-level alternative.
type kind int

const (
	kindSingleChar kind = iota
	kindClass
	kindNegatedClass
	kindEscapeClass
	kindOther
)

// maxRangeSpan bounds how wide a bracket-expression range is expanded into
// individual code points during merging. Wider ranges stay unmerged.
const maxRangeSpan = 256

// Optimize rewrites alternatives into their most compact joined form. Single
// characters, non-negated bracket expressions, and common escape classes
// merge into one bracket expression; negated classes and everything else stay
// separate, joined by `|` with the merged class first.
func Optimize(alternatives []string) string {
	if len(alternatives) == 0 {
		return ""
	}
	if len(alternatives) == 1 {
		return alternatives[0]
	}

	flat := flatten(alternatives)
	if len(flat) == 0 {
		return ""
	}
	if len(flat) == 1 {
		return flat[0]
	}

	set := charclass.NewSet()
	var others []string
	for _, alt := range flat {
		k, runes, tokens := classify(alt)
		switch k {
		case kindSingleChar, kindClass, kindEscapeClass:
			set.AddRunes(runes)
			for _, token := range tokens {
				set.AddToken(token)
			}
		default:
			others = append(others, alt)
		}
	}

	if set.Empty() {
		return "(?:" + strings.Join(flat, "|") + ")"
	}

	if len(others) == 0 {
		if bare, ok := set.Single(); ok {
			return bare
		}
		return "[" + set.Body() + "]"
	}

	parts := make([]string, 0, len(others)+1)
	parts = append(parts, "["+set.Body()+"]")
	parts = append(parts, others...)
	return "(?:" + strings.Join(parts, "|") + ")"
}

// flatten splices every alternative that is itself a complete non-capturing
// alternation into the top-level list, recursively.
func flatten(alternatives []string) []string {
	var out []string
	for _, alt := range alternatives {
		if body, ok := scan.NonCapturingBody(alt); ok {
			out = append(out, flatten(scan.SplitTopLevel(body))...)
			continue
		}
		out = append(out, alt)
	}
	return out
}

// classify tags an alternative and, for mergeable kinds, extracts its code
// points and escape-class tokens.
func classify(alt string) (kind, []rune, []string) {
	if r, ok := singleSafeChar(alt); ok {
		return kindSingleChar, []rune{r}, nil
	}
	if r, token, ok := escapeToken(alt); ok {
		if token != "" {
			return kindEscapeClass, nil, []string{token}
		}
		return kindEscapeClass, []rune{r}, nil
	}
	if body, negated, ok := scan.WholeClass(alt); ok {
		if negated {
			return kindNegatedClass, nil, nil
		}
		runes, tokens, ok := parseClassBody(body)
		if !ok {
			return kindOther, nil, nil
		}
		return kindClass, runes, tokens
	}
	return kindOther, nil, nil
}

// singleSafeChar reports whether alt is one literal code point with no regex
// meaning of its own.
func singleSafeChar(alt string) (rune, bool) {
	runes := []rune(alt)
	if len(runes) != 1 {
		return 0, false
	}
	r := runes[0]
	if strings.ContainsRune(`.*+?^${}()|[]\`, r) {
		return 0, false
	}
	return r, true
}

// escapeToken recognizes the common two-byte escapes eligible for merging.
// Whitespace escapes resolve to their code point; `\d`, `\w` and `\s` stay
// symbolic.
func escapeToken(alt string) (rune, string, bool) {
	if len(alt) != 2 || alt[0] != '\\' {
		return 0, "", false
	}
	switch alt[1] {
	case 'd', 'w', 's':
		return 0, alt, true
	case 't':
		return '\t', "", true
	case 'n':
		return '\n', "", true
	case 'r':
		return '\r', "", true
	}
	return 0, "", false
}

// parseClassBody expands a bracket-expression body into code points and
// escape-class tokens. Bodies using constructs the merger cannot represent
// (unknown escapes, very wide ranges) report !ok and the alternative is left
// unmerged.
func parseClassBody(body string) ([]rune, []string, bool) {
	var runes []rune
	var tokens []string

	var pending []rune
	i := 0
	next := func() (rune, bool) {
		if i >= len(body) {
			return 0, false
		}
		if body[i] == '\\' {
			if i+1 >= len(body) {
				return 0, false
			}
			c := body[i+1]
			i += 2
			switch c {
			case 'd', 'w', 's':
				tokens = append(tokens, "\\"+string(c))
				return -1, true
			case 't':
				return '\t', true
			case 'n':
				return '\n', true
			case 'r':
				return '\r', true
			case 'f':
				return '\f', true
			case 'v':
				return '\v', true
			case '\\', ']', '[', '^', '-':
				return rune(c), true
			}
			return 0, false
		}
		r := []rune(body[i:])[0]
		i += len(string(r))
		return r, true
	}

	for i < len(body) {
		// Range detection: a pending literal, a bare dash, and one more
		// literal form an inclusive code-point range.
		if body[i] == '-' && len(pending) > 0 && i+1 < len(body) {
			i++
			hi, ok := next()
			if !ok || hi < 0 {
				return nil, nil, false
			}
			lo := pending[len(pending)-1]
			pending = pending[:len(pending)-1]
			if hi < lo || hi-lo > maxRangeSpan {
				return nil, nil, false
			}
			for r := lo; r <= hi; r++ {
				pending = append(pending, r)
			}
			continue
		}
		r, ok := next()
		if !ok {
			return nil, nil, false
		}
		if r >= 0 {
			pending = append(pending, r)
		}
	}

	runes = append(runes, pending...)
	return runes, tokens, true
}
