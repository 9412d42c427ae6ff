package fracdex

import "fmt"

// KeyBetween returns a key that sorts lexicographically between a and b
// using the Base62 alphabet. Either bound can be the empty string: an empty
// a means no lower bound, an empty b means no upper bound. When both are
// present, a must sort strictly before b.
func KeyBetween(a, b string) (string, error) {
	return Base62.KeyBetween(a, b)
}

// NKeysBetween returns n strictly increasing keys between a and b using the
// Base62 alphabet. Bounds behave as in KeyBetween.
func NKeysBetween(a, b string, n uint) ([]string, error) {
	return Base62.NKeysBetween(a, b, n)
}

// KeyBetween returns a key that sorts lexicographically between a and b.
func (al Alphabet) KeyBetween(a, b string) (string, error) {
	return al.keyBetween(a, b, al.midpoint)
}

// NKeysBetween returns n strictly increasing keys between a and b.
func (al Alphabet) NKeysBetween(a, b string, n uint) ([]string, error) {
	return al.nKeysBetween(a, b, n, al.KeyBetween)
}

// keyBetween is the one orchestration shared by the plain and jittered
// entry points; mid supplies the fractional midpoint strategy.
func (al Alphabet) keyBetween(a, b string, mid func(a, b string) (string, error)) (string, error) {
	if a != "" && b != "" && a >= b {
		return "", fmt.Errorf("%w: %s >= %s", ErrKeysOutOfOrder, a, b)
	}
	if a != "" {
		if err := al.validateOrderKey(a); err != nil {
			return "", err
		}
	}
	if b != "" {
		if err := al.validateOrderKey(b); err != nil {
			return "", err
		}
	}

	if a == "" {
		if b == "" {
			return al.zeroKey(), nil
		}
		ib, err := intPart(b)
		if err != nil {
			return "", err
		}
		fb := b[len(ib):]
		if ib == al.smallestInt() {
			// nothing below this integer part; go fractional under it
			m, err := mid("", fb)
			if err != nil {
				return "", err
			}
			return ib + m, nil
		}
		if ib < b {
			// the bare integer part already sorts below b
			return ib, nil
		}
		res, err := al.decrement(ib)
		if err != nil {
			return "", err
		}
		if res == "" {
			return "", fmt.Errorf("%w: cannot decrement %s", ErrKeySpaceExhausted, ib)
		}
		return res, nil
	}

	if b == "" {
		ia, err := intPart(a)
		if err != nil {
			return "", err
		}
		fa := a[len(ia):]
		i, err := al.increment(ia)
		if err != nil {
			return "", err
		}
		if i == "" {
			// magnitude maxed out; widen the fractional part instead
			m, err := mid(fa, "")
			if err != nil {
				return "", err
			}
			return ia + m, nil
		}
		return i, nil
	}

	ia, err := intPart(a)
	if err != nil {
		return "", err
	}
	fa := a[len(ia):]
	ib, err := intPart(b)
	if err != nil {
		return "", err
	}
	fb := b[len(ib):]
	if ia == ib {
		m, err := mid(fa, fb)
		if err != nil {
			return "", err
		}
		return ia + m, nil
	}
	i, err := al.increment(ia)
	if err != nil {
		return "", err
	}
	if i == "" {
		return "", fmt.Errorf("%w: cannot increment %s", ErrKeySpaceExhausted, ia)
	}
	if i < b {
		return i, nil
	}
	m, err := mid(fa, "")
	if err != nil {
		return "", err
	}
	return ia + m, nil
}

// nKeysBetween generates n keys with the supplied single-key generator.
func (al Alphabet) nKeysBetween(a, b string, n uint, between func(a, b string) (string, error)) ([]string, error) {
	if n == 0 {
		return []string{}, nil
	}
	if n == 1 {
		c, err := between(a, b)
		if err != nil {
			return nil, err
		}
		return []string{c}, nil
	}
	if b == "" {
		// appending: each new key becomes the lower bound for the next
		c, err := between(a, b)
		if err != nil {
			return nil, err
		}
		result := make([]string, 0, n)
		result = append(result, c)
		for i := uint(1); i < n; i++ {
			c, err = between(c, b)
			if err != nil {
				return nil, err
			}
			result = append(result, c)
		}
		return result, nil
	}
	if a == "" {
		// prepending: generate top-down, then flip back to ascending
		c, err := between(a, b)
		if err != nil {
			return nil, err
		}
		result := make([]string, 0, n)
		result = append(result, c)
		for i := uint(1); i < n; i++ {
			c, err = between(a, c)
			if err != nil {
				return nil, err
			}
			result = append(result, c)
		}
		reverse(result)
		return result, nil
	}
	// Divide and conquer around the midpoint key. Keeps recursion depth and
	// generated key lengths logarithmic in n.
	mid := n / 2
	c, err := between(a, b)
	if err != nil {
		return nil, err
	}
	result := make([]string, 0, n)
	left, err := al.nKeysBetween(a, c, mid, between)
	if err != nil {
		return nil, err
	}
	result = append(result, left...)
	result = append(result, c)
	right, err := al.nKeysBetween(c, b, n-mid-1, between)
	if err != nil {
		return nil, err
	}
	result = append(result, right...)
	return result, nil
}

func reverse(keys []string) {
	for i, j := 0, len(keys)-1; i < j; i, j = i+1, j-1 {
		keys[i], keys[j] = keys[j], keys[i]
	}
}
