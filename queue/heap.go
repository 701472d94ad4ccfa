package queue

// entry pairs a stored item with its priority.
type entry[T any] struct {
	item     T
	priority float64
}

// MinHeap is a binary min-heap of items ordered by float64 priority.
// The zero value is an empty heap ready for use.
type MinHeap[T any] struct {
	entries []entry[T]
}

// NewMinHeap returns an empty heap with room for capacity entries.
func NewMinHeap[T any](capacity int) *MinHeap[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &MinHeap[T]{entries: make([]entry[T], 0, capacity)}
}

// IsEmpty reports whether the heap holds no entries.
func (h *MinHeap[T]) IsEmpty() bool { return len(h.entries) == 0 }

// Len returns the number of stored entries.
func (h *MinHeap[T]) Len() int { return len(h.entries) }

// Push adds item with the given priority.
// Complexity: O(log n).
func (h *MinHeap[T]) Push(item T, priority float64) {
	h.entries = append(h.entries, entry[T]{item: item, priority: priority})
	h.siftUp(len(h.entries) - 1)
}

// Pull removes and returns the item with the smallest priority.
// The boolean is false when the heap is empty.
// Complexity: O(log n).
func (h *MinHeap[T]) Pull() (T, bool) {
	var zero T
	n := len(h.entries)
	if n == 0 {
		return zero, false
	}
	h.swap(0, n-1)
	top := h.entries[n-1]
	h.entries[n-1] = entry[T]{} // drop reference for the GC
	h.entries = h.entries[:n-1]
	h.siftDown(0)

	return top.item, true
}

// Peek returns the minimum item and its priority without removing it.
func (h *MinHeap[T]) Peek() (T, float64, bool) {
	if len(h.entries) == 0 {
		var zero T
		return zero, 0, false
	}
	return h.entries[0].item, h.entries[0].priority, true
}

// siftUp moves the entry at i towards the root while it is strictly
// smaller than its parent.
func (h *MinHeap[T]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !h.less(i, parent) {
			return
		}
		h.swap(i, parent)
		i = parent
	}
}

// siftDown moves the entry at i towards the leaves, always swapping with
// the smaller child, until neither child is strictly smaller.
func (h *MinHeap[T]) siftDown(i int) {
	n := len(h.entries)
	for {
		child := 2*i + 1
		if child >= n {
			return
		}
		if right := child + 1; right < n && h.less(right, child) {
			child = right
		}
		if !h.less(child, i) {
			return
		}
		h.swap(i, child)
		i = child
	}
}

func (h *MinHeap[T]) less(i, j int) bool { return h.entries[i].priority < h.entries[j].priority }

func (h *MinHeap[T]) swap(i, j int) { h.entries[i], h.entries[j] = h.entries[j], h.entries[i] }
