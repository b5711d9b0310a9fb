package rexbuild

import (
	"fmt"
	"strconv"

	"github.com/rexbuild/rexbuild/internal/scan"
)

// Capture wraps f in a capturing group.
func (f Fragment) Capture() Fragment {
	return Fragment{pattern: "(" + f.pattern + ")", flags: f.flags}
}

// CaptureAs wraps f in a named capturing group, (?<name>...). Identifier
// validity is checked by the engine at Compile time, not here.
func (f Fragment) CaptureAs(name string) Fragment {
	return Fragment{pattern: "(?<" + name + ">" + f.pattern + ")", flags: f.flags}
}

// NonCapturing wraps f in a non-capturing group.
func (f Fragment) NonCapturing() Fragment {
	return Fragment{pattern: "(?:" + f.pattern + ")", flags: f.flags}
}

// Invert negates f. A bracket expression toggles its negation, so [abc]
// becomes [^abc] and back; any other pattern is wrapped in a negative
// lookahead.
func (f Fragment) Invert() Fragment {
	if body, negated, ok := scan.WholeClass(f.pattern); ok {
		if negated {
			return Fragment{pattern: "[" + body + "]", flags: f.flags}
		}
		return Fragment{pattern: "[^" + body + "]", flags: f.flags}
	}
	return Fragment{pattern: "(?!" + f.pattern + ")", flags: f.flags}
}

// CaseInsensitiveGroup wraps f in the inline-option group (?i:...), making
// just this portion of the pattern case-insensitive.
func (f Fragment) CaseInsensitiveGroup() Fragment {
	return Fragment{pattern: "(?i:" + f.pattern + ")", flags: f.flags}
}

// CaseSensitiveGroup wraps f in the inline-option group (?-i:...), restoring
// case sensitivity inside a case-insensitive pattern.
func (f Fragment) CaseSensitiveGroup() Fragment {
	return Fragment{pattern: "(?-i:" + f.pattern + ")", flags: f.flags}
}

// BackrefName emits a backreference to the named group: \k<name>. Whether the
// group exists is checked by the engine at Compile time.
func BackrefName(name string) Fragment {
	return Fragment{pattern: `\k<` + name + `>`}
}

// BackrefNumber emits a backreference to capture group n. Group numbering
// starts at 1.
func BackrefNumber(n int) (Fragment, error) {
	if n < 1 {
		return Fragment{}, fmt.Errorf("%w: backreference to group %d", ErrInvalidBound, n)
	}
	return Fragment{pattern: "\\" + strconv.Itoa(n)}, nil
}
