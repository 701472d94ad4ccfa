// Package bfs provides breadth-first enumeration of implicit state spaces.
//
// What
//
//   - Explores states in non-decreasing step count from a start node, using
//     only a caller-supplied neighbour function (core.Graph).
//   - Deduplicates by canonical key (canon.KeyFunc), never by node identity.
//   - Returns a Result containing:
//   - Order:  discovery sequence of keys
//   - Nodes:  key → the node first seen with that key
//   - Depth:  key → fewest steps from the start
//   - Parent: key → predecessor key in the BFS tree
//   - The result is the whole reached set; callers filter it for goals,
//     counts within a step budget (WithinDepth), or the farthest state
//     (Farthest). The start is always included.
//
// Options
//
//   - WithMaxDepth(d):        do not expand beyond d steps (>0; 0 = no limit).
//   - WithFilterNeighbor(fn): skip moves for which fn(curr, nbr) is false.
//   - WithOnEnqueue(fn):      hook when a state is first reached.
//   - WithOnVisit(fn):        hook when a state is expanded; an error aborts.
//
// Termination
//
//	The frontier must empty for BFS to return, which happens only when the
//	reachable space is finite or bounded by WithMaxDepth. There is no
//	cancellation; bounding the space is the caller's job.
//
// Complexity (V = reached states, E = generated moves)
//
//   - Time:   O(V + E) key computations and map lookups
//   - Memory: O(V)
//
// Errors
//
//   - ErrGraphNil, ErrKeyFuncNil, ErrOptionViolation for invalid input.
//   - Wrapped OnVisit errors.
//   - ErrNoPath from Result.PathTo for states never reached.
package bfs
