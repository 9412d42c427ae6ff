package fracdex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntLen(t *testing.T) {
	assert := assert.New(t)

	cases := map[byte]int{
		'a': 2, 'b': 3, 'c': 4, 'z': 27,
		'Z': 2, 'Y': 3, 'A': 27,
	}
	for head, exp := range cases {
		n, err := intLen(head)
		assert.NoError(err)
		assert.Equal(exp, n, "head %q", string(head))
	}

	for _, head := range []byte{'0', '9', '!', '|', 0} {
		_, err := intLen(head)
		assert.ErrorIs(err, ErrInvalidHead, "head %q", string(head))
	}
}

func TestIntPart(t *testing.T) {
	assert := assert.New(t)

	p, err := intPart("a0V")
	assert.NoError(err)
	assert.Equal("a0", p)

	p, err = intPart("b12345")
	assert.NoError(err)
	assert.Equal("b12", p)

	p, err = intPart("Zz")
	assert.NoError(err)
	assert.Equal("Zz", p)

	_, err = intPart("b1")
	assert.ErrorIs(err, ErrInvalidKey)
	_, err = intPart("!x")
	assert.ErrorIs(err, ErrInvalidHead)
}

func TestValidateOrderKey(t *testing.T) {
	assert := assert.New(t)

	for _, key := range []string{"a0", "a1V", "Zz", "b00x", "zzzzzzzzzzzzzzzzzzzzzzzzzzz"} {
		assert.NoError(Base62.validateOrderKey(key), "key %q", key)
	}

	bad := []string{
		"",                            // empty key
		"A00000000000000000000000000", // reserved smallest integer part
		"a00",                         // trailing zero digit
		"a0V0",
		"b1", // shorter than the head implies
	}
	for _, key := range bad {
		assert.ErrorIs(Base62.validateOrderKey(key), ErrInvalidKey, "key %q", key)
	}
}

func TestIncrement(t *testing.T) {
	assert := assert.New(t)

	test := func(x, exp string) {
		act, err := Base62.increment(x)
		assert.NoError(err, "increment(%q)", x)
		assert.Equal(exp, act, "increment(%q)", x)
	}

	test("a0", "a1")
	test("a1", "a2")
	test("az", "b00")
	test("b0z", "b10")
	test("bzz", "c000")
	test("Zy", "Zz")
	test("Zz", "a0") // negative headspace crosses into the zero key
	test("Xz00", "Xz01")
	test("Yzz", "Z0") // uppercase shrinks toward 'Z'
	test("zzzzzzzzzzzzzzzzzzzzzzzzzzz", "")

	_, err := Base62.increment("a00")
	assert.ErrorIs(err, ErrInvalidIntegerPart)
	_, err = Base62.increment("a!")
	assert.ErrorIs(err, ErrInvalidIntegerPart)
	_, err = Base62.increment("!0")
	assert.ErrorIs(err, ErrInvalidHead)
}

func TestDecrement(t *testing.T) {
	assert := assert.New(t)

	test := func(x, exp string) {
		act, err := Base62.decrement(x)
		assert.NoError(err, "decrement(%q)", x)
		assert.Equal(exp, act, "decrement(%q)", x)
	}

	test("a1", "a0")
	test("a2", "a1")
	test("b00", "az") // lowercase shrinks toward 'a'
	test("b10", "b0z")
	test("a0", "Zz") // zero key crosses into negative headspace
	test("Zz", "Zy")
	test("Z0", "Yzz")
	test("Y00", "Xzzz")
	test("A00000000000000000000000000", "")

	_, err := Base62.decrement("a00")
	assert.ErrorIs(err, ErrInvalidIntegerPart)
	_, err = Base62.decrement("a!")
	assert.ErrorIs(err, ErrInvalidIntegerPart)
}

func TestIncrementDecrementRoundTrip(t *testing.T) {
	assert := assert.New(t)

	x := "a0"
	for i := 0; i < 200; i++ {
		next, err := Base62.increment(x)
		assert.NoError(err)
		assert.Less(x, next, "increment(%q)", x)
		back, err := Base62.decrement(next)
		assert.NoError(err)
		assert.Equal(x, back, "decrement(increment(%q))", x)
		x = next
	}
}
