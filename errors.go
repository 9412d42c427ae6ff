package fracdex

import "errors"

// Every error the package returns wraps one of these sentinels, so callers
// can branch with errors.Is instead of matching message text. All failures
// are deterministic validation errors; none are transient.
var (
	// ErrInvalidHead means a key's first character is outside A..Z and a..z.
	ErrInvalidHead = errors.New("invalid order key head")

	// ErrInvalidIntegerPart means an integer part's length does not match
	// the length implied by its head character, or it contains a byte that
	// is not in the alphabet.
	ErrInvalidIntegerPart = errors.New("invalid integer part of order key")

	// ErrInvalidKey means a malformed key: too short for its integer part,
	// a fractional suffix ending in the zero digit, or the reserved
	// smallest integer part standing alone.
	ErrInvalidKey = errors.New("invalid order key")

	// ErrKeysOutOfOrder means the caller supplied bounds with a >= b.
	ErrKeysOutOfOrder = errors.New("order keys out of order")

	// ErrTrailingZero means a midpoint argument ends in the zero digit.
	// Unreachable through KeyBetween, which validates its inputs first.
	ErrTrailingZero = errors.New("trailing zero digit")

	// ErrKeySpaceExhausted means the integer part cannot be incremented or
	// decremented past the representable magnitude boundary.
	ErrKeySpaceExhausted = errors.New("order key space exhausted")
)
