package charclass

import (
	"testing"

	"github.com/dlclark/regexp2"
)

func TestOptimize(t *testing.T) {
	tests := []struct {
		name  string
		chars string
		want  string
	}{
		{"empty", "", ""},
		{"single", "a", "a"},
		{"pair stays individual", "ab", "ab"},
		{"run of three becomes range", "abc", "a-c"},
		{"run of four becomes range", "abcd", "a-d"},
		{"unsorted input", "cab", "a-c"},
		{"duplicates removed", "aabbcc", "a-c"},
		{"no consecutive runs", "aceg", "aceg"},
		{"two separate runs", "abcxyz", "a-cx-z"},
		{"digits", "0123459", "0-59"},
		{"short run then singleton", "019", "019"},
		{"dash escaped", "z-a", `\-az`},
		{"closing bracket escaped", "]", `\]`},
		{"caret escaped", "^", `\^`},
		{"backslash escaped", `\`, `\\`},
		{"control escapes form a range", "\t\n\v\f\r", `\t-\r`},
		{"unicode run", "éêë", "é-ë"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Optimize([]rune(tt.chars))
			if got != tt.want {
				t.Errorf("Optimize(%q) = %q, want %q", tt.chars, got, tt.want)
			}
		})
	}
}

// TestOptimizeRoundTrip verifies the invariant that the optimized body,
// bracketed, matches exactly the input set, in both positive and negated
// form. Each code point 0-127 plus a few higher samples is probed against
// the compiled class.
func TestOptimizeRoundTrip(t *testing.T) {
	sets := []string{
		"abcxyz019",
		"a-]^[\\",
		"0123456789",
		" \t\n",
		"aeiouAEIOU",
		"éêëa",
		"._%+-",
	}
	probes := []rune{'é', 'ê', 'ü', '日', 0x2028}

	for _, set := range sets {
		t.Run(set, func(t *testing.T) {
			body := Optimize([]rune(set))
			pos, err := regexp2.Compile("["+body+"]", regexp2.None)
			if err != nil {
				t.Fatalf("compile [%s]: %v", body, err)
			}
			neg, err := regexp2.Compile("[^"+body+"]", regexp2.None)
			if err != nil {
				t.Fatalf("compile [^%s]: %v", body, err)
			}

			members := make(map[rune]bool)
			for _, r := range set {
				members[r] = true
			}

			var candidates []rune
			for r := rune(0); r < 128; r++ {
				candidates = append(candidates, r)
			}
			candidates = append(candidates, probes...)

			for _, r := range candidates {
				got, err := pos.MatchString(string(r))
				if err != nil {
					t.Fatalf("match %q: %v", r, err)
				}
				if got != members[r] {
					t.Errorf("[%s] match %q = %v, want %v", body, r, got, members[r])
				}
				gotNeg, err := neg.MatchString(string(r))
				if err != nil {
					t.Fatalf("negated match %q: %v", r, err)
				}
				if gotNeg != !members[r] {
					t.Errorf("[^%s] match %q = %v, want %v", body, r, gotNeg, !members[r])
				}
			}
		})
	}
}

func TestSet(t *testing.T) {
	s := NewSet()
	if !s.Empty() {
		t.Fatal("new set should be empty")
	}

	s.AddRunes([]rune("cba"))
	s.AddRune('a') // duplicate
	s.AddToken(`\d`)
	s.AddToken(`\d`) // duplicate
	s.AddToken(`\s`)

	if s.Empty() {
		t.Error("set should not be empty")
	}
	if got, want := s.Size(), 5; got != want {
		t.Errorf("Size() = %d, want %d", got, want)
	}
	if got, want := s.Body(), `a-c\d\s`; got != want {
		t.Errorf("Body() = %q, want %q", got, want)
	}
	if _, ok := s.Single(); ok {
		t.Error("Single() should fail on a multi-member set")
	}
}

func TestSetSingle(t *testing.T) {
	tests := []struct {
		name  string
		build func(*Set)
		want  string
	}{
		{"plain rune", func(s *Set) { s.AddRune('a') }, "a"},
		{"metachar rune escaped", func(s *Set) { s.AddRune('.') }, `\.`},
		{"tab rune", func(s *Set) { s.AddRune('\t') }, `\t`},
		{"lone token stays bare", func(s *Set) { s.AddToken(`\d`) }, `\d`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSet()
			tt.build(s)
			got, ok := s.Single()
			if !ok {
				t.Fatal("Single() = !ok, want ok")
			}
			if got != tt.want {
				t.Errorf("Single() = %q, want %q", got, tt.want)
			}
		})
	}
}
