// Package fracdex generates short, lexicographically ordered string keys
// that can always be inserted between two existing keys without touching
// any other key, a technique known as fractional indexing. Keys are plain
// strings; store them in any sortable column or register and compare them
// byte-wise.
//
// All operations are pure functions over their string inputs and are safe
// for concurrent use. Two writers filling the same gap independently can
// still produce the same key; serialize writers or use the jittered
// generators to make collisions unlikely.
package fracdex
