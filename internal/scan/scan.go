// Package scan provides the single-pass pattern-text scanners behind grouping
// and alternation decisions. Every function here operates on regex source the
// library itself produced; none of them validate full regex grammar.
package scan

import (
	"strings"
	"unicode/utf8"
)

// metachars are the characters that carry meaning outside an atom. A pattern
// containing one of these outside an escape, bracket expression, or group is
// not safe to quantify bare.
const metachars = "+*?{}|^$"

// NeedsGroup reports whether pattern must be wrapped in a non-capturing group
// before a quantifier suffix is appended. The rules run in priority order:
// top-level alternation, leading/trailing anchors, and trailing quantifiers
// always group; a single atom (escape token, bracket expression, balanced
// group, or lone literal) never does; anything else groups.
func NeedsGroup(pattern string) bool {
	if pattern == "" {
		return false
	}
	if hasTopLevelPipe(pattern) {
		return true
	}
	if pattern[0] == '^' || endsWithUnescaped(pattern, '$') {
		return true
	}
	if EndsWithQuantifier(pattern) {
		return true
	}
	atoms, clean := countAtoms(pattern)
	return atoms > 1 || !clean
}

// hasTopLevelPipe reports whether pattern contains an unescaped `|` outside
// every bracket expression and paren group.
func hasTopLevelPipe(pattern string) bool {
	depth := 0
	inClass := false
	for i := 0; i < len(pattern); i++ {
		switch pattern[i] {
		case '\\':
			i++
		case '[':
			inClass = true
		case ']':
			inClass = false
		case '(':
			if !inClass {
				depth++
			}
		case ')':
			if !inClass {
				depth--
			}
		case '|':
			if !inClass && depth == 0 {
				return true
			}
		}
	}
	return false
}

// endsWithUnescaped reports whether pattern ends with c outside an escape.
func endsWithUnescaped(pattern string, c byte) bool {
	if pattern == "" || pattern[len(pattern)-1] != c {
		return false
	}
	return !escapedAt(pattern, len(pattern)-1)
}

// escapedAt reports whether the byte at idx is preceded by an odd number of
// backslashes.
func escapedAt(s string, idx int) bool {
	n := 0
	for i := idx - 1; i >= 0 && s[i] == '\\'; i-- {
		n++
	}
	return n%2 == 1
}

// EndsWithQuantifier reports whether pattern ends with a quantifier suffix:
// `+`, `*`, `?`, or a bounded `{n}`/`{n,}`/`{n,m}`, each optionally followed
// by a lazy `?`. Appending another quantifier to such a pattern is a
// "multiple repeat" error.
func EndsWithQuantifier(pattern string) bool {
	if pattern == "" {
		return false
	}
	last := pattern[len(pattern)-1]
	switch last {
	case '+', '*', '?':
		return !escapedAt(pattern, len(pattern)-1)
	case '}':
		return !escapedAt(pattern, len(pattern)-1) && boundedQuantifierEnd(pattern, len(pattern))
	}
	return false
}

// EndsGreedyQuantifier reports whether pattern ends with a greedy quantifier
// suffix, i.e. one that a trailing `?` would make lazy. A pattern already
// ending in a lazy suffix does not qualify.
func EndsGreedyQuantifier(pattern string) bool {
	if pattern == "" {
		return false
	}
	last := pattern[len(pattern)-1]
	if escapedAt(pattern, len(pattern)-1) {
		return false
	}
	switch last {
	case '+', '*':
		return true
	case '}':
		return boundedQuantifierEnd(pattern, len(pattern))
	case '?':
		// `a?` is a greedy optional; `a+?`, `a*?`, `a??` and `a{2}?` are
		// already lazy.
		if len(pattern) == 1 {
			return false
		}
		prev := pattern[len(pattern)-2]
		if escapedAt(pattern, len(pattern)-2) {
			return true
		}
		if prev == '+' || prev == '*' || prev == '?' {
			return false
		}
		if prev == '}' && boundedQuantifierEnd(pattern, len(pattern)-1) {
			return false
		}
		return true
	}
	return false
}

// boundedQuantifierEnd reports whether the text ending at end (exclusive) is a
// `{...}` bounded quantifier: digits, an open-ended `{n,}`, or a `{n,m}` pair.
func boundedQuantifierEnd(pattern string, end int) bool {
	open := strings.LastIndexByte(pattern[:end-1], '{')
	if open < 0 || escapedAt(pattern, open) {
		return false
	}
	body := pattern[open+1 : end-1]
	digits := 0
	commas := 0
	for i := 0; i < len(body); i++ {
		switch {
		case body[i] >= '0' && body[i] <= '9':
			digits++
		case body[i] == ',':
			commas++
		default:
			return false
		}
	}
	return digits > 0 && commas <= 1
}

// countAtoms scans pattern left to right counting regex atoms: escape tokens,
// bracket expressions, balanced paren groups, and lone literal characters.
// clean is false when a metacharacter or unbalanced bracket remains outside
// every atom.
func countAtoms(pattern string) (atoms int, clean bool) {
	clean = true
	for i := 0; i < len(pattern); {
		c := pattern[i]
		switch {
		case c == '\\' && i+1 < len(pattern):
			_, w := utf8.DecodeRuneInString(pattern[i+1:])
			atoms++
			i += 1 + w
		case c == '[':
			end := classEnd(pattern, i)
			if end < 0 {
				clean = false
				i++
				continue
			}
			atoms++
			i = end
		case c == '(':
			end := groupEnd(pattern, i)
			if end < 0 {
				clean = false
				i++
				continue
			}
			atoms++
			i = end
		case strings.IndexByte(metachars, c) >= 0 || c == ']' || c == ')':
			clean = false
			i++
		default:
			_, w := utf8.DecodeRuneInString(pattern[i:])
			atoms++
			i += w
		}
	}
	return atoms, clean
}

// classEnd returns the index just past the bracket expression opening at
// start, or -1 if it never closes.
func classEnd(pattern string, start int) int {
	i := start + 1
	if i < len(pattern) && pattern[i] == '^' {
		i++
	}
	for ; i < len(pattern); i++ {
		switch pattern[i] {
		case '\\':
			i++
		case ']':
			return i + 1
		}
	}
	return -1
}

// groupEnd returns the index just past the paren group opening at start, or
// -1 if it never closes. Parens inside nested bracket expressions are
// ignored.
func groupEnd(pattern string, start int) int {
	depth := 0
	for i := start; i < len(pattern); i++ {
		switch pattern[i] {
		case '\\':
			i++
		case '[':
			end := classEnd(pattern, i)
			if end < 0 {
				return -1
			}
			i = end - 1
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i + 1
			}
		}
	}
	return -1
}

// SplitTopLevel splits pattern on every `|` that sits outside bracket
// expressions and paren groups. Empty pieces are dropped.
func SplitTopLevel(pattern string) []string {
	var parts []string
	var current strings.Builder
	depth := 0
	inClass := false
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		if c == '\\' && i+1 < len(pattern) {
			current.WriteByte(c)
			current.WriteByte(pattern[i+1])
			i++
			continue
		}
		switch {
		case c == '[' && !inClass:
			inClass = true
		case c == ']' && inClass:
			inClass = false
		case c == '(' && !inClass:
			depth++
		case c == ')' && !inClass:
			depth--
		case c == '|' && !inClass && depth == 0:
			if current.Len() > 0 {
				parts = append(parts, current.String())
			}
			current.Reset()
			continue
		}
		current.WriteByte(c)
	}
	if current.Len() > 0 {
		parts = append(parts, current.String())
	}
	return parts
}

// NonCapturingBody returns the interior of pattern when the whole pattern is
// a single `(?:...)` group.
func NonCapturingBody(pattern string) (string, bool) {
	if !strings.HasPrefix(pattern, "(?:") {
		return "", false
	}
	if groupEnd(pattern, 0) != len(pattern) {
		return "", false
	}
	return pattern[3 : len(pattern)-1], true
}

// WholeClass returns the body of pattern when the whole pattern is a single
// bracket expression, along with whether the class is negated. The leading
// `^` of a negated class is not part of the returned body.
func WholeClass(pattern string) (body string, negated bool, ok bool) {
	if pattern == "" || pattern[0] != '[' {
		return "", false, false
	}
	if classEnd(pattern, 0) != len(pattern) {
		return "", false, false
	}
	body = pattern[1 : len(pattern)-1]
	if strings.HasPrefix(body, "^") {
		return body[1:], true, true
	}
	return body, false, true
}

// WholeGroup reports whether pattern is a single balanced paren group
// spanning the whole string.
func WholeGroup(pattern string) bool {
	return pattern != "" && pattern[0] == '(' && groupEnd(pattern, 0) == len(pattern)
}
