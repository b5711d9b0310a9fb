package rexbuild

// Lookahead returns the zero-width assertion (?=...). The operand is a
// Fragment, inserted verbatim, or a string, escaped.
func Lookahead(v any) (Fragment, error) { return assertion("(?=", v) }

// NegLookahead returns the zero-width assertion (?!...).
func NegLookahead(v any) (Fragment, error) { return assertion("(?!", v) }

// Lookbehind returns the zero-width assertion (?<=...).
func Lookbehind(v any) (Fragment, error) { return assertion("(?<=", v) }

// NegLookbehind returns the zero-width assertion (?<!...).
func NegLookbehind(v any) (Fragment, error) { return assertion("(?<!", v) }

func assertion(prefix string, v any) (Fragment, error) {
	frag, err := operand(v)
	if err != nil {
		return Fragment{}, err
	}
	return Fragment{pattern: prefix + frag.pattern + ")", flags: frag.flags}, nil
}

// Before constrains f to be followed by p: f(?=p).
func (f Fragment) Before(p Fragment) Fragment {
	return Fragment{pattern: f.pattern + "(?=" + p.pattern + ")", flags: f.flags | p.flags}
}

// NotBefore constrains f to not be followed by p: f(?!p).
func (f Fragment) NotBefore(p Fragment) Fragment {
	return Fragment{pattern: f.pattern + "(?!" + p.pattern + ")", flags: f.flags | p.flags}
}

// After constrains f to be preceded by p: (?<=p)f.
func (f Fragment) After(p Fragment) Fragment {
	return Fragment{pattern: "(?<=" + p.pattern + ")" + f.pattern, flags: f.flags | p.flags}
}

// NotAfter constrains f to not be preceded by p: (?<!p)f.
func (f Fragment) NotAfter(p Fragment) Fragment {
	return Fragment{pattern: "(?<!" + p.pattern + ")" + f.pattern, flags: f.flags | p.flags}
}

// WordBoundary returns the \b assertion.
func WordBoundary() Fragment { return Fragment{pattern: `\b`} }

// NonWordBoundary returns the \B assertion.
func NonWordBoundary() Fragment { return Fragment{pattern: `\B`} }

// WordBounded wraps f in word boundaries: \bf\b.
func (f Fragment) WordBounded() Fragment {
	return Fragment{pattern: `\b` + f.pattern + `\b`, flags: f.flags}
}

// NonWordBounded wraps f in non-word boundaries: \Bf\B.
func (f Fragment) NonWordBounded() Fragment {
	return Fragment{pattern: `\B` + f.pattern + `\B`, flags: f.flags}
}
