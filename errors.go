package rexbuild

import (
	"errors"
	"fmt"
)

// Contract violations reported by the combinator algebra. All of them are
// raised eagerly at call time; no partial fragment is ever returned alongside
// an error.
var (
	// ErrInvalidOperand indicates a nil or unsupported value where a fragment
	// or literal string is required.
	ErrInvalidOperand = errors.New("rexbuild: invalid operand")

	// ErrInvalidBound indicates a negative or inverted quantifier bound.
	ErrInvalidBound = errors.New("rexbuild: invalid bound")

	// ErrEmptyChoice indicates an alternation built from zero alternatives.
	ErrEmptyChoice = errors.New("rexbuild: alternation requires at least one alternative")
)

// CompileError wraps a host-engine compilation failure with the offending
// pattern. It surfaces only at the Compile boundary: raw-regex injection
// bypasses the library's own escaping, so malformed input cannot be caught
// earlier.
type CompileError struct {
	Pattern string
	Err     error
}

// Error implements the error interface.
func (e *CompileError) Error() string {
	return fmt.Sprintf("rexbuild: compile %q: %v", e.Pattern, e.Err)
}

// Unwrap returns the underlying engine error.
func (e *CompileError) Unwrap() error { return e.Err }
