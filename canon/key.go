package canon

import "github.com/cespare/xxhash"

// KeyFunc maps a node to its canonical key.
type KeyFunc[N any, K comparable] func(node N) K

// Keyed is implemented by nodes that know their own canonical key.
type Keyed[K comparable] interface {
	CanonicalKey() K
}

// Identity keys a comparable node by itself.
func Identity[N comparable]() KeyFunc[N, N] {
	return func(node N) N { return node }
}

// ByMethod keys a node by its CanonicalKey method.
func ByMethod[N Keyed[K], K comparable]() KeyFunc[N, K] {
	return func(node N) K { return node.CanonicalKey() }
}

// Equal reports "same state" under key. It is the natural IsAtGoal for
// searches whose goal is one concrete node.
func Equal[N any, K comparable](key KeyFunc[N, K]) func(a, b N) bool {
	return func(a, b N) bool { return key(a) == key(b) }
}

// Digest compacts a string key to a 64-bit xxhash digest.
func Digest[N any](key KeyFunc[N, string]) KeyFunc[N, uint64] {
	return func(node N) uint64 { return xxhash.Sum64String(key(node)) }
}
