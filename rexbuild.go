// Package rexbuild builds regular-expression source text through composable,
// immutable pattern fragments. Fragments are combined by concatenation,
// alternation, and quantification, and the library takes care of producing a
// correct, optimized pattern string: operands are grouped before quantifiers
// when semantics require it, character alternatives collapse into minimal
// bracket expressions, and nested alternations are flattened.
//
// Matching itself is delegated to the regexp2 engine, which accepts the
// lookaround assertions and backreferences the algebra can emit.
//
// Basic usage:
//
//	// \w+@\w+ as a whole-string match
//	email := rexbuild.WordChar().OneOrMore().
//		ThenLiteral("@").
//		Then(rexbuild.WordChar().OneOrMore())
//
//	ok, err := email.FullMatchString("user@example")
//
// Combinators that validate their arguments return (Fragment, error); Must
// unwraps them when the arguments are known good:
//
//	octet := rexbuild.Must(rexbuild.Digit().Between(1, 3))
//	ip := rexbuild.Must(octet.SeparatedBy(rexbuild.Literal("."), 4))
//	// ip.Pattern() == `(?:\d{1,3}\.){3}\d{1,3}`
package rexbuild

import "github.com/dlclark/regexp2"

// Compile hands the fragment's pattern text and flags to the host engine.
// The library guarantees the pattern is well-formed only with respect to the
// invariants it maintains itself; raw-injected source is validated here and
// nowhere earlier. Failures are reported as a *CompileError.
func (f Fragment) Compile() (*regexp2.Regexp, error) {
	re, err := regexp2.Compile(f.pattern, f.flags.options())
	if err != nil {
		return nil, &CompileError{Pattern: f.pattern, Err: err}
	}
	return re, nil
}

// MustCompile is like Compile but panics on error. Useful for fragments known
// to be valid at program start.
func (f Fragment) MustCompile() *regexp2.Regexp {
	re, err := f.Compile()
	if err != nil {
		panic(err)
	}
	return re
}

// MatchString reports whether the pattern matches anywhere in s.
func (f Fragment) MatchString(s string) (bool, error) {
	re, err := f.Compile()
	if err != nil {
		return false, err
	}
	return re.MatchString(s)
}

// FullMatchString reports whether the pattern matches all of s.
func (f Fragment) FullMatchString(s string) (bool, error) {
	anchored := `\A(?:` + f.pattern + `)\z`
	re, err := regexp2.Compile(anchored, f.flags.options())
	if err != nil {
		return false, &CompileError{Pattern: f.pattern, Err: err}
	}
	return re.MatchString(s)
}
