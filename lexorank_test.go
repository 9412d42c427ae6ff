package fracdex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLexorankString(t *testing.T) {
	assert := assert.New(t)

	rk := NewLexorank(1, "a1")
	assert.Equal("1|a1", rk.String())
	assert.Equal(Bucket(1), rk.Bucket())
	assert.Equal("a1", rk.Key())
}

func TestParseLexorank(t *testing.T) {
	assert := assert.New(t)

	rk, err := ParseLexorank("3|a0V")
	assert.NoError(err)
	assert.Equal(Bucket(3), rk.Bucket())
	assert.Equal("a0V", rk.Key())
	assert.Equal("3|a0V", rk.String())

	_, err = ParseLexorank("a0V")
	assert.Error(err)
	_, err = ParseLexorank("x|a0")
	assert.Error(err)
	_, err = ParseLexorank("300|a0")
	assert.Error(err)
	_, err = ParseLexorank("1|a00")
	assert.ErrorIs(err, ErrInvalidKey)
	_, err = ParseLexorank("1|")
	assert.ErrorIs(err, ErrInvalidKey)
}

func TestLexorankNavigation(t *testing.T) {
	require := require.New(t)

	rk := NewLexorank(2, "a1")

	next, err := rk.Next()
	require.NoError(err)
	require.Equal(Bucket(2), next.Bucket())
	require.Less(rk.Key(), next.Key())

	prev, err := rk.Prev()
	require.NoError(err)
	require.Equal(Bucket(2), prev.Bucket())
	require.Less(prev.Key(), rk.Key())

	mid, err := LexorankBetween(prev, next)
	require.NoError(err)
	require.Equal(Bucket(2), mid.Bucket())
	require.Less(prev.Key(), mid.Key())
	require.Less(mid.Key(), next.Key())
}

func TestLexorankBetweenBucketMismatch(t *testing.T) {
	_, err := LexorankBetween(NewLexorank(1, "a0"), NewLexorank(2, "a1"))
	assert.Error(t, err)
}
