package rexbuild

import (
	"fmt"

	"github.com/rexbuild/rexbuild/internal/alternation"
	"github.com/rexbuild/rexbuild/internal/charclass"
)

// ClassOf returns a fragment matching any one of the given characters,
// rendered as an optimized bracket expression. A single character renders
// bare, without brackets. An empty set fails with ErrInvalidOperand.
func ClassOf(chars string) (Fragment, error) {
	if chars == "" {
		return Fragment{}, fmt.Errorf("%w: empty character set", ErrInvalidOperand)
	}
	runes := []rune(chars)
	if len(runes) == 1 {
		return Fragment{pattern: escapeLiteral(chars)}, nil
	}
	return Fragment{pattern: "[" + charclass.Optimize(runes) + "]"}, nil
}

// NoneOf returns a fragment matching any character except the given ones.
func NoneOf(chars string) (Fragment, error) {
	if chars == "" {
		return Fragment{}, fmt.Errorf("%w: empty character set", ErrInvalidOperand)
	}
	return Fragment{pattern: "[^" + charclass.Optimize([]rune(chars)) + "]"}, nil
}

// CharRange returns a fragment matching the inclusive code-point range
// [lo-hi]. An inverted range fails with ErrInvalidBound.
func CharRange(lo, hi rune) (Fragment, error) {
	if lo > hi {
		return Fragment{}, fmt.Errorf("%w: range %q-%q is inverted", ErrInvalidBound, lo, hi)
	}
	return Fragment{pattern: "[" + charclass.EscapeChar(lo) + "-" + charclass.EscapeChar(hi) + "]"}, nil
}

// OneOf returns a fragment matching any one of items. When every item is a
// single character the result is a bracket expression; otherwise the items
// form an optimized alternation. Zero items fail with ErrEmptyChoice.
func OneOf(items ...string) (Fragment, error) {
	if len(items) == 0 {
		return Fragment{}, ErrEmptyChoice
	}
	allSingle := true
	for _, item := range items {
		if len([]rune(item)) != 1 {
			allSingle = false
			break
		}
	}
	if allSingle {
		var chars []rune
		for _, item := range items {
			chars = append(chars, []rune(item)...)
		}
		if len(items) == 1 {
			return Fragment{pattern: escapeLiteral(items[0])}, nil
		}
		return Fragment{pattern: "[" + charclass.Optimize(chars) + "]"}, nil
	}
	if len(items) == 1 {
		return Literal(items[0]), nil
	}
	patterns := make([]string, len(items))
	for i, item := range items {
		patterns[i] = escapeLiteral(item)
	}
	return Fragment{pattern: alternation.Optimize(patterns)}, nil
}

// AnyChar matches any character: `.`
func AnyChar() Fragment { return Fragment{pattern: "."} }

// Digit matches any digit: `\d`
func Digit() Fragment { return Fragment{pattern: `\d`} }

// NonDigit matches any non-digit: `\D`
func NonDigit() Fragment { return Fragment{pattern: `\D`} }

// WordChar matches any word character: `\w`
func WordChar() Fragment { return Fragment{pattern: `\w`} }

// NonWordChar matches any non-word character: `\W`
func NonWordChar() Fragment { return Fragment{pattern: `\W`} }

// Whitespace matches any whitespace character: `\s`
func Whitespace() Fragment { return Fragment{pattern: `\s`} }

// NonWhitespace matches any non-whitespace character: `\S`
func NonWhitespace() Fragment { return Fragment{pattern: `\S`} }

// Tab matches the tab character: `\t`
func Tab() Fragment { return Fragment{pattern: `\t`} }

// Newline matches the newline character: `\n`
func Newline() Fragment { return Fragment{pattern: `\n`} }

// CarriageReturn matches the carriage return character: `\r`
func CarriageReturn() Fragment { return Fragment{pattern: `\r`} }

// Letter matches any ASCII letter: `[a-zA-Z]`
func Letter() Fragment { return Fragment{pattern: "[a-zA-Z]"} }

// Lowercase matches any lowercase ASCII letter: `[a-z]`
func Lowercase() Fragment { return Fragment{pattern: "[a-z]"} }

// Uppercase matches any uppercase ASCII letter: `[A-Z]`
func Uppercase() Fragment { return Fragment{pattern: "[A-Z]"} }

// Alphanumeric matches any ASCII letter or digit: `[a-zA-Z0-9]`
func Alphanumeric() Fragment { return Fragment{pattern: "[a-zA-Z0-9]"} }

// HexDigit matches any hexadecimal digit: `[0-9a-fA-F]`
func HexDigit() Fragment { return Fragment{pattern: "[0-9a-fA-F]"} }

// ASCII matches any printable ASCII character: `[ -~]`
func ASCII() Fragment { return Fragment{pattern: "[ -~]"} }

// NonASCII matches any character outside printable ASCII: `[^ -~]`
func NonASCII() Fragment { return Fragment{pattern: "[^ -~]"} }

// UnicodeClass matches the Unicode category or named block: `\p{name}`.
// Categories use their short names ("L", "Nd"); blocks take an Is prefix
// ("IsGreek"). Name validity is checked by the engine at Compile time.
func UnicodeClass(category string) Fragment {
	return Fragment{pattern: `\p{` + category + `}`}
}
