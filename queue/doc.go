// Package queue provides the small ordered containers used by the search
// engines of statesearch: a binary min-heap keyed by float64 priority, a FIFO
// queue, and a LIFO stack.
//
// What
//
//   - MinHeap[T]: Push(item, priority) / Pull() returns the item with the
//     numerically smallest priority. Ties resolve in no particular order.
//   - FIFO[T]:    first-in first-out queue backing breadth-first search.
//   - Stack[T]:   last-in first-out stack backing depth-first search.
//
// All three report emptiness through IsEmpty and return (zero, false) from
// Pull on an empty container instead of panicking, so callers can loop on
// IsEmpty without extra guards.
//
// Heap layout
//
//	The heap is a 0-indexed slice. Children of index i live at 2i+1 and
//	2i+2, the parent of i at (i-1)/2. Push appends and sifts up while the new
//	entry is strictly smaller than its parent; Pull swaps the root with the
//	last entry, truncates, and sifts the new root down towards the smaller
//	child while that child is strictly smaller.
//
// Complexity
//
//   - MinHeap: Push and Pull O(log n), Peek/IsEmpty/Len O(1).
//   - FIFO, Stack: amortised O(1) per operation.
//
// None of the containers are safe for concurrent use; each search call owns
// its own instances.
package queue
