package rexbuild

import "fmt"

// Fragment is an immutable piece of regex source paired with its compilation
// flags. Every combinator returns a new value; a Fragment is never mutated
// after creation and may be shared freely across goroutines.
//
// The pattern text is kept safely concatenable at every step: quantifiers
// group their operand when needed, and literal text is escaped on entry. Only
// Raw bypasses this guarantee, by design.
type Fragment struct {
	pattern string
	flags   Flags
}

// New returns a fragment over a raw, trusted pattern with the given flags.
// Most callers want Literal or one of the class constructors instead.
func New(pattern string, flags Flags) Fragment {
	return Fragment{pattern: pattern, flags: flags}
}

// Literal returns a fragment matching text exactly; regex metacharacters are
// escaped.
func Literal(text string) Fragment {
	return Fragment{pattern: escapeLiteral(text)}
}

// Raw injects expr into a fragment without escaping. The caller is trusted to
// supply well-formed regex source; malformed input surfaces as a CompileError
// at the Compile boundary.
func Raw(expr string) Fragment {
	return Fragment{pattern: expr}
}

// Pattern returns the regex source text built so far.
func (f Fragment) Pattern() string { return f.pattern }

// Flags returns the accumulated compilation flags.
func (f Fragment) Flags() Flags { return f.flags }

// String returns the pattern text.
func (f Fragment) String() string { return f.pattern }

// IsEmpty reports whether the fragment has no pattern text.
func (f Fragment) IsEmpty() bool { return f.pattern == "" }

// Then returns the concatenation of f and parts, in order. Flags accumulate
// by OR.
func (f Fragment) Then(parts ...Fragment) Fragment {
	out := f
	for _, part := range parts {
		out.pattern += part.pattern
		out.flags |= part.flags
	}
	return out
}

// ThenLiteral appends text to f with metacharacters escaped.
func (f Fragment) ThenLiteral(text string) Fragment {
	return f.Then(Literal(text))
}

// WithFlags returns f with the given flags OR'd in.
func (f Fragment) WithFlags(flags Flags) Fragment {
	f.flags |= flags
	return f
}

// CaseInsensitive returns f with the IgnoreCase flag set.
func (f Fragment) CaseInsensitive() Fragment { return f.WithFlags(IgnoreCase) }

// MultilineMode returns f with the Multiline flag set.
func (f Fragment) MultilineMode() Fragment { return f.WithFlags(Multiline) }

// DotAllMode returns f with the DotAll flag set.
func (f Fragment) DotAllMode() Fragment { return f.WithFlags(DotAll) }

// FreeSpacing returns f with the Verbose flag set.
func (f Fragment) FreeSpacing() Fragment { return f.WithFlags(Verbose) }

// Concat joins parts in order. Each part is a Fragment, inserted verbatim, or
// a string, escaped and matched literally. A nil or unsupported part fails
// with ErrInvalidOperand rather than being treated as empty.
func Concat(parts ...any) (Fragment, error) {
	var out Fragment
	for _, part := range parts {
		frag, err := operand(part)
		if err != nil {
			return Fragment{}, err
		}
		out.pattern += frag.pattern
		out.flags |= frag.flags
	}
	return out, nil
}

// Must returns f, panicking if err is non-nil. It allows fallible combinators
// to be chained when the arguments are known to be valid:
//
//	octet := rexbuild.Must(rexbuild.Digit().Between(1, 3))
func Must(f Fragment, err error) Fragment {
	if err != nil {
		panic(err)
	}
	return f
}

// operand coerces a combinator argument into a fragment.
func operand(v any) (Fragment, error) {
	switch p := v.(type) {
	case Fragment:
		return p, nil
	case string:
		return Literal(p), nil
	case nil:
		return Fragment{}, fmt.Errorf("%w: nil", ErrInvalidOperand)
	default:
		return Fragment{}, fmt.Errorf("%w: %T", ErrInvalidOperand, v)
	}
}
