package fracdex

import (
	"fmt"
	"math/rand"
	"strings"
)

// Jitter supplies the randomness for the jittered generators. Use
// RandJitter in production and NoJitter for deterministic output.
type Jitter interface {
	// IntnRange returns a uniform integer in [min, max], inclusive.
	IntnRange(min, max int) int
}

// NoJitter makes the jittered generators deterministic: every pick lands
// on the lowest allowed value.
type NoJitter struct{}

func (NoJitter) IntnRange(min, max int) int { return min }

// RandJitter implements Jitter backed by *rand.Rand.
type RandJitter struct{ R *rand.Rand }

func (j RandJitter) IntnRange(min, max int) int {
	if max <= min {
		return min
	}
	return min + j.R.Intn(max-min+1)
}

// KeyBetweenJitter returns a key strictly between a and b, randomizing the
// digit choice within the available gap. Independent writers filling the
// same gap are less likely to collide than with KeyBetween. jitterRange
// caps how far a pick may deviate, in digit steps.
func KeyBetweenJitter(a, b string, j Jitter, jitterRange int) (string, error) {
	return Base62.KeyBetweenJitter(a, b, j, jitterRange)
}

// NKeysBetweenJitter returns n strictly increasing keys between a and b
// with randomized digit choices.
func NKeysBetweenJitter(a, b string, n uint, j Jitter, jitterRange int) ([]string, error) {
	return Base62.NKeysBetweenJitter(a, b, n, j, jitterRange)
}

// KeyBetweenJitter returns a key strictly between a and b with randomized
// digit choices.
func (al Alphabet) KeyBetweenJitter(a, b string, j Jitter, jitterRange int) (string, error) {
	return al.keyBetween(a, b, func(fa, fb string) (string, error) {
		return al.midpointJitter(fa, fb, j, jitterRange)
	})
}

// NKeysBetweenJitter returns n strictly increasing keys between a and b
// with randomized digit choices.
func (al Alphabet) NKeysBetweenJitter(a, b string, n uint, j Jitter, jitterRange int) ([]string, error) {
	return al.nKeysBetween(a, b, n, func(x, y string) (string, error) {
		return al.KeyBetweenJitter(x, y, j, jitterRange)
	})
}

// midpointJitter mirrors midpoint but randomizes digit picks while keeping
// the ordering and trailing-zero invariants.
func (al Alphabet) midpointJitter(a, b string, j Jitter, jitterRange int) (string, error) {
	if b != "" && a >= b {
		return "", fmt.Errorf("%w: %s >= %s", ErrKeysOutOfOrder, a, b)
	}
	zero := string(al.zeroDigit())
	if strings.HasSuffix(a, zero) || strings.HasSuffix(b, zero) {
		return "", fmt.Errorf("%w: midpoint of %q and %q", ErrTrailingZero, a, b)
	}

	if b != "" {
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
			m, err := al.midpointJitter(suffix, b[i:], j, jitterRange)
			if err != nil {
				return "", err
			}
			return b[:i] + m, nil
		}
	}

	digitA := 0
	if a != "" {
		digitA = al.index(a[0])
	}
	digitB := len(al.digits)
	if b != "" {
		digitB = al.index(b[0])
	}

	if digitB-digitA > 1 {
		// Pick an interior digit near the center, deviating at most
		// jitterRange digit steps either way.
		center := (digitA + digitB + 1) / 2
		lo := max(digitA+1, center-j.IntnRange(0, jitterRange))
		hi := min(digitB-1, center+j.IntnRange(0, jitterRange))
		pick := lo
		if hi > lo {
			pick = j.IntnRange(lo, hi)
		}
		return string(al.digits[pick]), nil
	}

	// Adjacent digits: extend below b with b's first digit plus a nonzero
	// digit strictly below b's second digit.
	if len(b) > 1 {
		high := al.index(b[1]) - 1
		if high < 1 {
			return b[:1], nil
		}
		pick := j.IntnRange(1, min(high, 1+jitterRange))
		// clamp against Jitter implementations that wander out of range
		if pick < 1 {
			pick = 1
		}
		if pick > high {
			pick = high
		}
		return string(b[0]) + string(al.digits[pick]), nil
	}

	// b is absent or a single digit; same recursive construction as the
	// deterministic midpoint.
	sa := ""
	if a != "" {
		sa = a[1:]
	}
	m, err := al.midpointJitter(sa, "", j, jitterRange)
	if err != nil {
		return "", err
	}
	return string(al.digits[digitA]) + m, nil
}
