package fracdex

import (
	"errors"
	"strings"
)

// Alphabet is the ordered set of digit characters used for the fractional
// and magnitude digits of order keys. Index 0 is the zero digit. The
// characters must be distinct and ascending by code point; that ordering is
// what makes generated keys compare correctly, and it is the caller's
// responsibility; it is not validated here.
//
// Head characters (A..Z, a..z) are fixed and independent of the alphabet.
type Alphabet struct {
	digits string
}

// Base62 is the default alphabet: 0-9, A-Z, a-z in ascending code-point
// order. Digits before uppercase before lowercase is load-bearing; it keeps
// fractional digits sorting consistently against head characters.
var Base62 = Alphabet{digits: "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"}

// NewAlphabet returns an Alphabet over the given digit characters. It
// rejects alphabets of fewer than two digits; anything else, including
// ordering, is up to the caller.
func NewAlphabet(digits string) (Alphabet, error) {
	if len(digits) < 2 {
		return Alphabet{}, errors.New("alphabet needs at least two digits")
	}
	return Alphabet{digits: digits}, nil
}

func (al Alphabet) index(c byte) int { return strings.IndexByte(al.digits, c) }

func (al Alphabet) zeroDigit() byte { return al.digits[0] }

func (al Alphabet) lastDigit() byte { return al.digits[len(al.digits)-1] }

// zeroKey is the first-ever key, returned when both bounds are absent:
// the smallest non-negative integer part, "a" plus the zero digit.
func (al Alphabet) zeroKey() string {
	return "a" + string(al.zeroDigit())
}

// smallestInt is the reserved minimal integer part: head 'A' followed by 26
// zero digits. It is not a valid key on its own; only keys strictly below
// it in fractional space exist, and there are none.
func (al Alphabet) smallestInt() string {
	return "A" + strings.Repeat(string(al.zeroDigit()), 26)
}
