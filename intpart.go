package fracdex

import (
	"fmt"
	"strings"
)

// intLen returns the total length of an integer part from its head
// character. Lowercase heads encode non-negative magnitudes and grow with
// the head ('a' is 2 characters total); uppercase heads encode negative
// magnitudes and shrink as the head climbs toward 'Z'.
func intLen(head byte) (int, error) {
	switch {
	case head >= 'a' && head <= 'z':
		return int(head-'a') + 2, nil
	case head >= 'A' && head <= 'Z':
		return int('Z'-head) + 2, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrInvalidHead, string(head))
	}
}

// intPart returns the integer-part prefix of key, whose length is fully
// determined by the head character.
func intPart(key string) (string, error) {
	n, err := intLen(key[0])
	if err != nil {
		return "", err
	}
	if n > len(key) {
		return "", fmt.Errorf("%w: %s", ErrInvalidKey, key)
	}
	return key[:n], nil
}

func (al Alphabet) validateInt(s string) error {
	n, err := intLen(s[0])
	if err != nil {
		return err
	}
	if len(s) != n {
		return fmt.Errorf("%w: %s", ErrInvalidIntegerPart, s)
	}
	return nil
}

func (al Alphabet) validateOrderKey(key string) error {
	if key == "" {
		return ErrInvalidKey
	}
	if key == al.smallestInt() {
		return fmt.Errorf("%w: %s", ErrInvalidKey, key)
	}
	// intPart rejects a bad head or a key too short for it; we need the
	// result anyway to find the fractional suffix.
	i, err := intPart(key)
	if err != nil {
		return err
	}
	f := key[len(i):]
	if strings.HasSuffix(f, string(al.zeroDigit())) {
		return fmt.Errorf("%w: %s", ErrInvalidKey, key)
	}
	return nil
}

// increment adds one unit to a validated integer part, walking the digits
// right to left with a carry. The empty string means the magnitude has
// reached the representable maximum (head 'z', all digits maximal).
func (al Alphabet) increment(x string) (string, error) {
	if err := al.validateInt(x); err != nil {
		return "", err
	}
	head := x[0]
	digs := []byte(x[1:])
	carry := true
	for i := len(digs) - 1; carry && i >= 0; i-- {
		d := al.index(digs[i])
		if d < 0 {
			return "", fmt.Errorf("%w: %s", ErrInvalidIntegerPart, x)
		}
		if d+1 == len(al.digits) {
			digs[i] = al.zeroDigit()
		} else {
			digs[i] = al.digits[d+1]
			carry = false
		}
	}
	if carry {
		if head == 'Z' {
			// crossed from negative headspace to the zero key
			return al.zeroKey(), nil
		}
		if head == 'z' {
			return "", nil
		}
		head++
		if head >= 'a' {
			// lowercase lengths grow with the head
			digs = append(digs, al.zeroDigit())
		} else {
			// uppercase lengths shrink toward 'Z'
			digs = digs[:len(digs)-1]
		}
	}
	return string(head) + string(digs), nil
}

// decrement subtracts one unit from a validated integer part, the exact
// mirror of increment. The empty string means the magnitude has reached
// the representable minimum (head 'A', all digits zero).
func (al Alphabet) decrement(x string) (string, error) {
	if err := al.validateInt(x); err != nil {
		return "", err
	}
	head := x[0]
	digs := []byte(x[1:])
	borrow := true
	for i := len(digs) - 1; borrow && i >= 0; i-- {
		d := al.index(digs[i])
		if d < 0 {
			return "", fmt.Errorf("%w: %s", ErrInvalidIntegerPart, x)
		}
		if d == 0 {
			digs[i] = al.lastDigit()
		} else {
			digs[i] = al.digits[d-1]
			borrow = false
		}
	}
	if borrow {
		if head == 'a' {
			// crossed from the zero key into negative headspace
			return "Z" + string(al.lastDigit()), nil
		}
		if head == 'A' {
			return "", nil
		}
		head--
		if head < 'Z' {
			digs = append(digs, al.lastDigit())
		} else {
			digs = digs[:len(digs)-1]
		}
	}
	return string(head) + string(digs), nil
}
