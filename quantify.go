package rexbuild

import (
	"fmt"

	"github.com/rexbuild/rexbuild/internal/scan"
)

// Times appends the {n} quantifier: exactly n repetitions.
func (f Fragment) Times(n int) (Fragment, error) {
	return f.quantify(fmt.Sprintf("{%d}", n), n)
}

// AtLeast appends the {n,} quantifier: n or more repetitions.
func (f Fragment) AtLeast(n int) (Fragment, error) {
	return f.quantify(fmt.Sprintf("{%d,}", n), n)
}

// AtMost appends the {0,n} quantifier: up to n repetitions. The explicit zero
// lower bound is used because the host engine treats the open-ended `{,n}`
// form as literal text.
func (f Fragment) AtMost(n int) (Fragment, error) {
	return f.quantify(fmt.Sprintf("{0,%d}", n), n)
}

// Between appends the {min,max} quantifier.
func (f Fragment) Between(min, max int) (Fragment, error) {
	return f.quantify(fmt.Sprintf("{%d,%d}", min, max), min, max)
}

// OneOrMore appends the + quantifier.
func (f Fragment) OneOrMore() Fragment { return f.quantified("+") }

// ZeroOrMore appends the * quantifier.
func (f Fragment) ZeroOrMore() Fragment { return f.quantified("*") }

// Optional appends the ? quantifier.
func (f Fragment) Optional() Fragment { return f.quantified("?") }

// Lazy makes a trailing greedy quantifier non-greedy. A fragment that does
// not end with a greedy quantifier is returned unchanged.
func (f Fragment) Lazy() Fragment {
	if !scan.EndsGreedyQuantifier(f.pattern) {
		return f
	}
	f.pattern += "?"
	return f
}

// quantify validates bounds before applying suffix. All bounds must be
// non-negative, and a two-bound range must not be inverted.
func (f Fragment) quantify(suffix string, bounds ...int) (Fragment, error) {
	for _, n := range bounds {
		if n < 0 {
			return Fragment{}, fmt.Errorf("%w: count %d is negative", ErrInvalidBound, n)
		}
	}
	if len(bounds) == 2 && bounds[0] > bounds[1] {
		return Fragment{}, fmt.Errorf("%w: min %d greater than max %d", ErrInvalidBound, bounds[0], bounds[1])
	}
	return f.quantified(suffix), nil
}

// quantified appends a quantifier suffix, wrapping the pattern in a
// non-capturing group first whenever quantifying it bare would change its
// meaning or produce invalid syntax.
func (f Fragment) quantified(suffix string) Fragment {
	p := f.pattern
	if scan.NeedsGroup(p) {
		p = "(?:" + p + ")"
	}
	return Fragment{pattern: p + suffix, flags: f.flags}
}
