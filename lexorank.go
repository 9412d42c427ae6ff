package fracdex

import (
	"fmt"
	"strconv"
	"strings"
)

// Bucket namespaces lexoranks so unrelated lists (or tenants) can keep
// independent orderings in the same store.
type Bucket uint8

// Lexorank pairs a bucket with an order key. Its string form "bucket|key"
// keeps both components parseable and sorts correctly within a bucket.
type Lexorank struct {
	bucket Bucket
	key    string
}

// NewLexorank creates a Lexorank in the given bucket with the given
// Base62 order key.
func NewLexorank(bucket Bucket, key string) Lexorank {
	return Lexorank{bucket: bucket, key: key}
}

// ParseLexorank parses the "bucket|key" form produced by String, and
// validates the key component.
func ParseLexorank(s string) (Lexorank, error) {
	bs, key, ok := strings.Cut(s, "|")
	if !ok {
		return Lexorank{}, fmt.Errorf("malformed lexorank: %s", s)
	}
	n, err := strconv.ParseUint(bs, 10, 8)
	if err != nil {
		return Lexorank{}, fmt.Errorf("malformed lexorank bucket: %s", s)
	}
	if err := Base62.validateOrderKey(key); err != nil {
		return Lexorank{}, err
	}
	return Lexorank{bucket: Bucket(n), key: key}, nil
}

// String returns the "bucket|key" form, e.g. "1|a1".
func (rk Lexorank) String() string {
	return fmt.Sprintf("%d|%s", rk.bucket, rk.key)
}

// Bucket returns the bucket this rank belongs to.
func (rk Lexorank) Bucket() Bucket { return rk.bucket }

// Key returns the order key that places this rank within its bucket.
func (rk Lexorank) Key() string { return rk.key }

// Next returns a rank that sorts after rk within the same bucket.
func (rk Lexorank) Next() (Lexorank, error) {
	k, err := KeyBetween(rk.key, "")
	if err != nil {
		return Lexorank{}, err
	}
	return Lexorank{bucket: rk.bucket, key: k}, nil
}

// Prev returns a rank that sorts before rk within the same bucket.
func (rk Lexorank) Prev() (Lexorank, error) {
	k, err := KeyBetween("", rk.key)
	if err != nil {
		return Lexorank{}, err
	}
	return Lexorank{bucket: rk.bucket, key: k}, nil
}

// LexorankBetween returns a rank strictly between a and b. The two ranks
// must share a bucket.
func LexorankBetween(a, b Lexorank) (Lexorank, error) {
	if a.bucket != b.bucket {
		return Lexorank{}, fmt.Errorf("lexorank buckets differ: %d vs %d", a.bucket, b.bucket)
	}
	k, err := KeyBetween(a.key, b.key)
	if err != nil {
		return Lexorank{}, err
	}
	return Lexorank{bucket: a.bucket, key: k}, nil
}
