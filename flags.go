package rexbuild

import "github.com/dlclark/regexp2"

// Flags is a bitset of orthogonal regex compilation flags. Flags combine by
// bitwise OR only; no flag ever clears another. The zero value means no flags.
type Flags uint8

const (
	// IgnoreCase makes matching case-insensitive.
	IgnoreCase Flags = 1 << iota

	// Multiline makes `^` and `$` match at line boundaries.
	Multiline

	// DotAll makes `.` match newlines.
	DotAll

	// Verbose enables free-spacing mode: unescaped whitespace in the pattern
	// is ignored and `#` starts a comment.
	Verbose
)

// Has reports whether every bit in flag is set.
func (f Flags) Has(flag Flags) bool { return f&flag == flag }

// options maps the bitset onto the host engine's option set.
func (f Flags) options() regexp2.RegexOptions {
	opts := regexp2.None
	if f.Has(IgnoreCase) {
		opts |= regexp2.IgnoreCase
	}
	if f.Has(Multiline) {
		opts |= regexp2.Multiline
	}
	if f.Has(DotAll) {
		opts |= regexp2.Singleline
	}
	if f.Has(Verbose) {
		opts |= regexp2.IgnorePatternWhitespace
	}
	return opts
}
