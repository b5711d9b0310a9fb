package rexbuild

// StartOfString returns the ^ anchor.
func StartOfString() Fragment { return Fragment{pattern: "^"} }

// EndOfString returns the $ anchor.
func EndOfString() Fragment { return Fragment{pattern: "$"} }

// StartOfLine returns the ^ anchor with the Multiline flag set, so it matches
// at every line start.
func StartOfLine() Fragment { return Fragment{pattern: "^", flags: Multiline} }

// EndOfLine returns the $ anchor with the Multiline flag set.
func EndOfLine() Fragment { return Fragment{pattern: "$", flags: Multiline} }

// AtStart anchors f to the start: ^f.
func (f Fragment) AtStart() Fragment {
	return Fragment{pattern: "^" + f.pattern, flags: f.flags}
}

// AtEnd anchors f to the end: f$.
func (f Fragment) AtEnd() Fragment {
	return Fragment{pattern: f.pattern + "$", flags: f.flags}
}

// Anchored anchors f at both ends: ^f$.
func (f Fragment) Anchored() Fragment {
	return Fragment{pattern: "^" + f.pattern + "$", flags: f.flags}
}

// AnchoredLine anchors f at both ends and sets the Multiline flag, matching f
// against whole lines.
func (f Fragment) AnchoredLine() Fragment {
	return Fragment{pattern: "^" + f.pattern + "$", flags: f.flags | Multiline}
}
