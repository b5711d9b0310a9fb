// Package gen renders built fragments into generated Go source: one compiled
// pattern variable per fragment, with optional match helpers. It is the
// build-time export surface of the library; the generated file depends only
// on the host engine.
package gen

import (
	"bytes"
	"fmt"
	"go/token"
	"unicode"
	"unicode/utf8"

	"github.com/dave/jennifer/jen"

	"github.com/rexbuild/rexbuild"
)

// enginePath is the import path of the host engine the generated file
// compiles patterns with.
const enginePath = "github.com/dlclark/regexp2"

// Pattern names a fragment for generation. Name becomes the generated
// variable name and must be an exported Go identifier.
type Pattern struct {
	Name     string
	Fragment rexbuild.Fragment
}

// Options configures source generation.
type Options struct {
	// Package is the package name of the generated file.
	Package string

	// OutputFile is the path Generate writes the file to.
	OutputFile string

	// Patterns are the named fragments to declare, in output order.
	Patterns []Pattern

	// MatchHelpers adds a Match<Name>(s string) (bool, error) function per
	// pattern.
	MatchHelpers bool
}

// Validate checks if the options are valid.
func (o Options) Validate() error {
	if o.Package == "" {
		return fmt.Errorf("package cannot be empty")
	}
	if len(o.Patterns) == 0 {
		return fmt.Errorf("at least one pattern is required")
	}
	seen := make(map[string]bool, len(o.Patterns))
	for _, p := range o.Patterns {
		if !exportedIdent(p.Name) {
			return fmt.Errorf("pattern name %q must be an exported Go identifier", p.Name)
		}
		if seen[p.Name] {
			return fmt.Errorf("duplicate pattern name %q", p.Name)
		}
		seen[p.Name] = true
	}
	return nil
}

// Generate renders the patterns and writes the file to Options.OutputFile.
func Generate(opts Options) error {
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}
	if opts.OutputFile == "" {
		return fmt.Errorf("invalid options: output file cannot be empty")
	}
	f := build(opts)
	if err := f.Save(opts.OutputFile); err != nil {
		return fmt.Errorf("failed to write generated code: %w", err)
	}
	return nil
}

// Source renders the patterns to a source string without touching the
// filesystem.
func Source(opts Options) (string, error) {
	if err := opts.Validate(); err != nil {
		return "", fmt.Errorf("invalid options: %w", err)
	}
	f := build(opts)
	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return "", fmt.Errorf("failed to render generated code: %w", err)
	}
	return buf.String(), nil
}

// build assembles the generated file.
func build(opts Options) *jen.File {
	f := jen.NewFile(opts.Package)
	f.HeaderComment("Code generated by rexbuild. DO NOT EDIT.")

	for _, p := range opts.Patterns {
		f.Commentf("%s is compiled from the pattern %s", p.Name, p.Fragment.Pattern())
		f.Var().Id(p.Name).Op("=").Qual(enginePath, "MustCompile").Call(
			jen.Lit(p.Fragment.Pattern()),
			optionsExpr(p.Fragment.Flags()),
		)
		f.Line()

		if opts.MatchHelpers {
			f.Commentf("Match%s reports whether s contains a match for %s.", p.Name, p.Name)
			f.Func().Id("Match" + p.Name).Params(jen.Id("s").String()).Params(jen.Bool(), jen.Error()).Block(
				jen.Return(jen.Id(p.Name).Dot("MatchString").Call(jen.Id("s"))),
			)
			f.Line()
		}
	}
	return f
}

// optionsExpr emits the engine option expression for the fragment's flags.
func optionsExpr(flags rexbuild.Flags) *jen.Statement {
	var names []string
	if flags.Has(rexbuild.IgnoreCase) {
		names = append(names, "IgnoreCase")
	}
	if flags.Has(rexbuild.Multiline) {
		names = append(names, "Multiline")
	}
	if flags.Has(rexbuild.DotAll) {
		names = append(names, "Singleline")
	}
	if flags.Has(rexbuild.Verbose) {
		names = append(names, "IgnorePatternWhitespace")
	}
	if len(names) == 0 {
		return jen.Qual(enginePath, "None")
	}
	expr := jen.Qual(enginePath, names[0])
	for _, name := range names[1:] {
		expr = expr.Op("|").Qual(enginePath, name)
	}
	return expr
}

// exportedIdent reports whether name is a valid exported Go identifier.
func exportedIdent(name string) bool {
	if !token.IsIdentifier(name) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(name)
	return unicode.IsUpper(r)
}
