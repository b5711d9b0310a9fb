// Package charclass compresses character sets into minimal bracket-expression
// bodies. The optimizer deduplicates and sorts input code points, then renders
// maximal runs of consecutive code points as ranges.
package charclass

import (
	"sort"
	"strings"
)

// Optimize returns the shortest bracket-expression body that matches exactly
// the given characters. Duplicates are removed, code points are sorted
// ascending, and runs of three or more consecutive code points render as
// first-last ranges. An empty input yields an empty body; callers decide
// whether an empty class is meaningful.
func Optimize(chars []rune) string {
	if len(chars) == 0 {
		return ""
	}

	runes := dedupeSorted(chars)

	var b strings.Builder
	i := 0
	for i < len(runes) {
		j := i
		for j+1 < len(runes) && runes[j+1] == runes[j]+1 {
			j++
		}
		if j-i >= 2 {
			b.WriteString(EscapeChar(runes[i]))
			b.WriteByte('-')
			b.WriteString(EscapeChar(runes[j]))
		} else {
			for k := i; k <= j; k++ {
				b.WriteString(EscapeChar(runes[k]))
			}
		}
		i = j + 1
	}
	return b.String()
}

// dedupeSorted returns the distinct code points in ascending order. The
// canonical order is what makes range detection deterministic.
func dedupeSorted(chars []rune) []rune {
	set := make(map[rune]struct{}, len(chars))
	for _, r := range chars {
		set[r] = struct{}{}
	}
	runes := make([]rune, 0, len(set))
	for r := range set {
		runes = append(runes, r)
	}
	sort.Slice(runes, func(a, b int) bool { return runes[a] < runes[b] })
	return runes
}

// EscapeChar escapes r for use inside a bracket expression.
func EscapeChar(r rune) string {
	switch r {
	case '\\', ']', '[', '^', '-':
		return "\\" + string(r)
	case '\t':
		return `\t`
	case '\n':
		return `\n`
	case '\r':
		return `\r`
	case '\f':
		return `\f`
	case '\v':
		return `\v`
	}
	return string(r)
}
