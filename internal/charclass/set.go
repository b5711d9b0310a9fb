package charclass

// Set accumulates the mergeable members of an alternation: individual code
// points plus common escape-class tokens such as `\d`. Code points are
// rendered through Optimize; escape-class tokens keep first-seen order.
type Set struct {
	runes  map[rune]struct{}
	tokens []string
	seen   map[string]struct{}
}

// NewSet returns an empty set.
func NewSet() *Set {
	return &Set{
		runes: make(map[rune]struct{}),
		seen:  make(map[string]struct{}),
	}
}

// AddRune adds a single code point.
func (s *Set) AddRune(r rune) {
	s.runes[r] = struct{}{}
}

// AddRunes adds each code point in rs.
func (s *Set) AddRunes(rs []rune) {
	for _, r := range rs {
		s.runes[r] = struct{}{}
	}
}

// AddToken adds an escape-class token such as `\d`. Duplicates are dropped.
func (s *Set) AddToken(token string) {
	if _, ok := s.seen[token]; ok {
		return
	}
	s.seen[token] = struct{}{}
	s.tokens = append(s.tokens, token)
}

// Empty reports whether the set has no members.
func (s *Set) Empty() bool {
	return len(s.runes) == 0 && len(s.tokens) == 0
}

// Size returns the member count: distinct code points plus distinct tokens.
func (s *Set) Size() int {
	return len(s.runes) + len(s.tokens)
}

// Body renders the bracket-expression body: the optimized code-point body
// followed by the escape-class tokens.
func (s *Set) Body() string {
	runes := make([]rune, 0, len(s.runes))
	for r := range s.runes {
		runes = append(runes, r)
	}
	body := Optimize(runes)
	for _, token := range s.tokens {
		body += token
	}
	return body
}

// Single returns the bare (bracket-free) rendering when the set holds exactly
// one member: the escaped code point, or the lone escape-class token.
func (s *Set) Single() (string, bool) {
	if s.Size() != 1 {
		return "", false
	}
	if len(s.tokens) == 1 {
		return s.tokens[0], true
	}
	for r := range s.runes {
		return escapeBare(r), true
	}
	return "", false
}

// escapeBare escapes r for use outside a bracket expression.
func escapeBare(r rune) string {
	switch r {
	case '\\', '.', '+', '*', '?', '(', ')', '|', '[', ']', '{', '}', '^', '$':
		return "\\" + string(r)
	case '\t':
		return `\t`
	case '\n':
		return `\n`
	case '\r':
		return `\r`
	case '\f':
		return `\f`
	case '\v':
		return `\v`
	}
	return string(r)
}
