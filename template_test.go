package rexbuild

import (
	"errors"
	"testing"
)

func TestTemplate(t *testing.T) {
	tests := []struct {
		name string
		frag Fragment
		vars map[string]any
		want string
	}{
		{
			name: "fragment inserted verbatim",
			frag: Raw("{year}-{month}"),
			vars: map[string]any{"year": Must(Digit().Times(4)), "month": Must(Digit().Times(2))},
			want: `\d{4}-\d{2}`,
		},
		{
			name: "string value escaped",
			frag: Raw("{sep}"),
			vars: map[string]any{"sep": "."},
			want: `\.`,
		},
		{
			name: "missing placeholder untouched",
			frag: Raw("{known}/{unknown}"),
			vars: map[string]any{"known": "x"},
			want: "x/{unknown}",
		},
		{
			name: "quantifier braces untouched",
			frag: Raw(`a{2,5}b{name}`),
			vars: map[string]any{"name": "c"},
			want: "a{2,5}bc",
		},
		{
			name: "numeric braces are not placeholders",
			frag: Raw("a{3}"),
			vars: map[string]any{"3": "x"},
			want: "a{3}",
		},
		{
			name: "escaped brace skipped",
			frag: Raw(`\{name}`),
			vars: map[string]any{"name": "x"},
			want: `\{name}`,
		},
		{
			name: "repeated placeholder",
			frag: Raw("{d}:{d}"),
			vars: map[string]any{"d": Digit()},
			want: `\d:\d`,
		},
		{
			name: "no placeholders",
			frag: Raw("abc"),
			vars: map[string]any{"a": "x"},
			want: "abc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.frag.Template(tt.vars)
			if err != nil {
				t.Fatalf("Template: %v", err)
			}
			if got.Pattern() != tt.want {
				t.Errorf("Template pattern = %q, want %q", got.Pattern(), tt.want)
			}
		})
	}
}

func TestTemplateNilValue(t *testing.T) {
	_, err := Raw("{name}").Template(map[string]any{"name": nil})
	if !errors.Is(err, ErrInvalidOperand) {
		t.Errorf("Template error = %v, want ErrInvalidOperand", err)
	}
}

func TestTemplateFlagsAccumulate(t *testing.T) {
	f, err := Raw("{word}").Template(map[string]any{"word": New("a", IgnoreCase)})
	if err != nil {
		t.Fatalf("Template: %v", err)
	}
	if !f.Flags().Has(IgnoreCase) {
		t.Error("replacement flags should carry into the result")
	}
}

func TestTemplatePartialApplication(t *testing.T) {
	base := Raw("{area}-{line}")
	step1, err := base.Template(map[string]any{"area": Must(Digit().Times(3))})
	if err != nil {
		t.Fatalf("first substitution: %v", err)
	}
	step2, err := step1.Template(map[string]any{"line": Must(Digit().Times(4))})
	if err != nil {
		t.Fatalf("second substitution: %v", err)
	}
	if got, want := step2.Pattern(), `\d{3}-\d{4}`; got != want {
		t.Errorf("pattern = %q, want %q", got, want)
	}
}
