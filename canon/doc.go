// Package canon derives canonical keys for search states.
//
// The engines in statesearch never compare nodes directly. They compare the
// keys produced by a caller-supplied KeyFunc, and two nodes are the same
// state if and only if their keys are equal. Getting this right is the
// caller's job:
//
//   - A key that embeds irrelevant detail (how a state was reached rather
//     than what it is) makes equivalent states look distinct. The search is
//     still correct but explores more.
//   - A key that merges genuinely different states is a correctness bug
//     (false deduplication). The engines cannot detect it.
//
// Helpers:
//
//   - Identity:  the node is already a comparable value (a struct of ints, a string).
//   - ByMethod:  the node implements Keyed and builds its own key.
//   - Builder:   assembles a string key field by field; Sorted* sections sort
//     their elements first so that collections whose order carries no
//     meaning (items on a floor, robots in a room) compare equal.
//   - Digest:    compacts string keys to 64-bit xxhash digests. Collisions are
//     improbable but not impossible; use only when memory matters more.
//   - JSON:      encodes a node to canonical JSON and back, for nodes that are
//     easiest to key by full structural serialization.
package canon
