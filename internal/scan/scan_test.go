package scan

import (
	"reflect"
	"testing"
)

func TestNeedsGroup(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    bool
	}{
		// Top-level alternation always groups.
		{"bare alternation", "a|b", true},
		{"alternation in longer pattern", "cat|dog", true},
		{"alternation inside group is fine", "(?:a|b)", false},
		{"alternation inside class is fine", "[a|b]", false},
		{"escaped pipe is fine", `a\|b`, true}, // still two atoms plus escape
		{"escaped pipe alone", `\|`, false},

		// Anchors group.
		{"leading caret", "^abc", true},
		{"trailing dollar", "abc$", true},
		{"escaped dollar at end", `\$`, false},

		// Trailing quantifiers group (multiple repeat).
		{"plus", "a+", true},
		{"star", "a*", true},
		{"optional", "a?", true},
		{"bounded", "a{3}", true},
		{"bounded open", "a{2,}", true},
		{"bounded range lazy", "a{2,5}?", true},
		{"quantified group", "(?:ab)+", true},
		{"escaped plus alone", `\+`, false},

		// Single atoms do not group.
		{"empty", "", false},
		{"single literal", "a", false},
		{"single dot", ".", false},
		{"escape class", `\d`, false},
		{"escaped metachar", `\.`, false},
		{"bracket expression", "[abc]", false},
		{"negated bracket expression", "[^a-z]", false},
		{"non-capturing group", "(?:abc)", false},
		{"capturing group", "(ab)", false},
		{"named group", "(?<word>a)", false},
		{"lookahead", "(?=a)", false},
		{"negative lookbehind", "(?<!a)", false},
		{"inline option group", "(?i:abc)", false},

		// Multiple atoms or stray metacharacters group.
		{"two literals", "ab", true},
		{"literal and class", `a\d`, true},
		{"two groups", "(a)(b)", true},
		{"two classes", "[ab][cd]", true},
		{"inner quantifier", "a+b", true},
		{"unbalanced bracket", "[ab", true},
		{"unbalanced paren", "(ab", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NeedsGroup(tt.pattern); got != tt.want {
				t.Errorf("NeedsGroup(%q) = %v, want %v", tt.pattern, got, tt.want)
			}
		})
	}
}

func TestSplitTopLevel(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    []string
	}{
		{"plain", "a|b|c", []string{"a", "b", "c"}},
		{"no pipe", "abc", []string{"abc"}},
		{"pipe in group", "(a|b)|c", []string{"(a|b)", "c"}},
		{"pipe in nested group", "(?:x(?:y|z))|w", []string{"(?:x(?:y|z))", "w"}},
		{"pipe in class", "[a|b]|c", []string{"[a|b]", "c"}},
		{"escaped pipe", `a\|b`, []string{`a\|b`}},
		{"empty pieces dropped", "a||b|", []string{"a", "b"}},
		{"empty input", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitTopLevel(tt.pattern)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitTopLevel(%q) = %q, want %q", tt.pattern, got, tt.want)
			}
		})
	}
}

func TestNonCapturingBody(t *testing.T) {
	tests := []struct {
		pattern string
		want    string
		ok      bool
	}{
		{"(?:a|b)", "a|b", true},
		{"(?:)", "", true},
		{"(?:a)(?:b)", "", false},
		{"(a|b)", "", false},
		{"(?=a)", "", false},
		{"abc", "", false},
		{"(?:unclosed", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			got, ok := NonCapturingBody(tt.pattern)
			if got != tt.want || ok != tt.ok {
				t.Errorf("NonCapturingBody(%q) = %q, %v, want %q, %v", tt.pattern, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestWholeClass(t *testing.T) {
	tests := []struct {
		pattern string
		body    string
		negated bool
		ok      bool
	}{
		{"[abc]", "abc", false, true},
		{"[^abc]", "abc", true, true},
		{"[a-z0-9]", "a-z0-9", false, true},
		{`[\]]`, `\]`, false, true},
		{"[ab][cd]", "", false, false},
		{"[unclosed", "", false, false},
		{"abc", "", false, false},
		{"", "", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			body, negated, ok := WholeClass(tt.pattern)
			if body != tt.body || negated != tt.negated || ok != tt.ok {
				t.Errorf("WholeClass(%q) = %q, %v, %v, want %q, %v, %v",
					tt.pattern, body, negated, ok, tt.body, tt.negated, tt.ok)
			}
		})
	}
}

func TestEndsWithQuantifier(t *testing.T) {
	tests := []struct {
		pattern string
		want    bool
	}{
		{"a+", true},
		{"a*", true},
		{"a?", true},
		{"a+?", true},
		{"a{3}", true},
		{"a{3,}", true},
		{"a{3,5}", true},
		{"a{3,5}?", true},
		{"a", false},
		{"", false},
		{`a\+`, false},
		{`a\}`, false},
		{"a{}", false},
		{"a{x}", false},
		{"a{1,2,3}", false},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			if got := EndsWithQuantifier(tt.pattern); got != tt.want {
				t.Errorf("EndsWithQuantifier(%q) = %v, want %v", tt.pattern, got, tt.want)
			}
		})
	}
}

func TestEndsGreedyQuantifier(t *testing.T) {
	tests := []struct {
		pattern string
		want    bool
	}{
		{"a+", true},
		{"a*", true},
		{"a?", true},
		{"ab?", true},
		{"a{2}", true},
		{"a{2,5}", true},
		{"a+?", false},
		{"a*?", false},
		{"a??", false},
		{"a{2}?", false},
		{`\?`, false},
		{`a\??`, true}, // optional quantifier over an escaped literal
		{"a", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			if got := EndsGreedyQuantifier(tt.pattern); got != tt.want {
				t.Errorf("EndsGreedyQuantifier(%q) = %v, want %v", tt.pattern, got, tt.want)
			}
		})
	}
}
