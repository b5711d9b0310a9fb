package rexbuild

import "fmt"

// SeparatedBy repeats f count times with sep between repetitions, rendered as
// `(?:f sep){count-1} f`. A count below one fails with ErrInvalidBound; a
// count of one returns f alone.
func (f Fragment) SeparatedBy(sep Fragment, count int) (Fragment, error) {
	if count < 1 {
		return Fragment{}, fmt.Errorf("%w: repeat count %d is below one", ErrInvalidBound, count)
	}
	if count == 1 {
		return f, nil
	}
	unit := Fragment{pattern: f.pattern + sep.pattern, flags: f.flags | sep.flags}.NonCapturing()
	repeated, err := unit.Times(count - 1)
	if err != nil {
		return Fragment{}, err
	}
	return repeated.Then(f), nil
}

// EmailAddress matches the common user@domain.tld shape. It is a loose
// validator built entirely from the public algebra, not an RFC 5322 parser.
func EmailAddress() Fragment {
	const alnum = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	local := Must(ClassOf(alnum + "._%+-")).OneOrMore()
	domain := Must(ClassOf(alnum + ".-")).OneOrMore()
	tld := Must(Letter().AtLeast(2))
	return local.ThenLiteral("@").Then(domain).ThenLiteral(".").Then(tld)
}

// IPv4Address matches four dot-separated groups of one to three digits. It
// does not range-check octets.
func IPv4Address() Fragment {
	octet := Must(Digit().Between(1, 3))
	return Must(octet.SeparatedBy(Literal("."), 4))
}

// HexColor matches a #-prefixed three- or six-digit hex color code.
func HexColor() Fragment {
	six := Must(HexDigit().Times(6))
	three := Must(HexDigit().Times(3))
	return Literal("#").Then(six.Or(three))
}
