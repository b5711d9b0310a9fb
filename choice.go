package rexbuild

import "github.com/rexbuild/rexbuild/internal/alternation"

// Choice returns a fragment matching any one of alts. Each alternative is a
// Fragment, inserted verbatim, or a string, escaped and matched literally.
// Zero alternatives fail with ErrEmptyChoice; a nil alternative fails with
// ErrInvalidOperand.
//
// The result is optimized: nested non-capturing alternations are flattened
// and character-like alternatives merge into one bracket expression, so
// Choice("a", "b", "c") yields `[a-c]` rather than `(?:a|b|c)`.
func Choice(alts ...any) (Fragment, error) {
	if len(alts) == 0 {
		return Fragment{}, ErrEmptyChoice
	}
	patterns := make([]string, 0, len(alts))
	var flags Flags
	for _, alt := range alts {
		frag, err := operand(alt)
		if err != nil {
			return Fragment{}, err
		}
		patterns = append(patterns, frag.pattern)
		flags |= frag.flags
	}
	return Fragment{pattern: alternation.Optimize(patterns), flags: flags}, nil
}

// Or returns a fragment matching f or any of others, with the same
// optimization as Choice. An empty receiver contributes no alternative.
func (f Fragment) Or(others ...Fragment) Fragment {
	patterns := make([]string, 0, len(others)+1)
	flags := f.flags
	if f.pattern != "" {
		patterns = append(patterns, f.pattern)
	}
	for _, other := range others {
		patterns = append(patterns, other.pattern)
		flags |= other.flags
	}
	return Fragment{pattern: alternation.Optimize(patterns), flags: flags}
}
