package fracdex

import (
	"fmt"
	"math"
)

// Float64Approx converts a key produced by KeyBetween to a float64 using
// the Base62 alphabet. The key space is far larger than float64 can
// represent exactly, so the result is approximate. Close enough for jazz,
// but use string comparison, not this, for ordering.
func Float64Approx(key string) (float64, error) {
	return Base62.Float64Approx(key)
}

// Float64Approx converts a key to an approximate float64 value.
func (al Alphabet) Float64Approx(key string) (float64, error) {
	if key == "" {
		return 0, ErrInvalidKey
	}
	if err := al.validateOrderKey(key); err != nil {
		return 0, err
	}
	ip, err := intPart(key)
	if err != nil {
		return 0, err
	}

	base := float64(len(al.digits))
	rv := 0.0
	digs := ip[1:]
	for i := 0; i < len(digs); i++ {
		p := al.index(digs[len(digs)-1-i])
		if p < 0 {
			return 0, fmt.Errorf("%w: %s", ErrInvalidKey, key)
		}
		rv += float64(p) * math.Pow(base, float64(i))
	}

	frac := key[len(ip):]
	for i := 0; i < len(frac); i++ {
		p := al.index(frac[i])
		if p < 0 {
			return 0, fmt.Errorf("%w: %s", ErrInvalidKey, key)
		}
		rv += float64(p) / math.Pow(base, float64(i+1))
	}

	if ip[0] < 'a' {
		rv = -rv
	}
	return rv, nil
}
