package fracdex

import (
	"fmt"
	"strings"
)

// midpoint returns a string strictly between a and b that does not end in
// the zero digit. a == "" means no lower bound and b == "" means no upper
// bound; a must sort strictly before b when b is present, and neither side
// may end in the zero digit.
func (al Alphabet) midpoint(a, b string) (string, error) {
	if b != "" && a >= b {
		return "", fmt.Errorf("%w: %s >= %s", ErrKeysOutOfOrder, a, b)
	}
	zero := string(al.zeroDigit())
	if strings.HasSuffix(a, zero) || strings.HasSuffix(b, zero) {
		return "", fmt.Errorf("%w: midpoint of %q and %q", ErrTrailingZero, a, b)
	}

	if b != "" {
		// Strip the longest common prefix, treating a as padded with zero
		// digits where it is shorter. b cannot run out before a inside the
		// common prefix because a < b.
		i := 0
		for ; i < len(b); i++ {
			c := al.zeroDigit()
			if i < len(a) {
				c = a[i]
			}
			if c != b[i] {
				break
			}
		}
		if i > 0 {
			suffix := ""
			if i < len(a) {
				suffix = a[i:]
			}
			m, err := al.midpoint(suffix, b[i:])
			if err != nil {
				return "", err
			}
			return b[:i] + m, nil
		}
	}

	// First digits (or the lack of one) differ.
	digitA := 0
	if a != "" {
		digitA = al.index(a[0])
	}
	digitB := len(al.digits)
	if b != "" {
		digitB = al.index(b[0])
	}

	if digitB-digitA > 1 {
		// Room for a single interior digit, rounding half up.
		return string(al.digits[(digitA+digitB+1)/2]), nil
	}

	// The first digits are consecutive. Any key starting with b's first
	// digit sorts below b as long as it doesn't reproduce all of b.
	if len(b) > 1 {
		return b[:1], nil
	}

	// b is absent or a single digit: keep a's first digit and recurse on
	// its tail with no upper bound. midpoint("49", "5") becomes
	// "4" + midpoint("9", ""), which becomes "495".
	sa := ""
	if a != "" {
		sa = a[1:]
	}
	m, err := al.midpoint(sa, "")
	if err != nil {
		return "", err
	}
	return string(al.digits[digitA]) + m, nil
}
