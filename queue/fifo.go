package queue

// compactThreshold is how many consumed slots FIFO tolerates at the head
// before copying the live tail to a fresh slice.
const compactThreshold = 1 << 20

// FIFO is a first-in first-out queue. The zero value is ready for use.
type FIFO[T any] struct {
	items []T
	head  int
}

// IsEmpty reports whether no items are waiting.
func (q *FIFO[T]) IsEmpty() bool { return q.head == len(q.items) }

// Len returns the number of waiting items.
func (q *FIFO[T]) Len() int { return len(q.items) - q.head }

// Push appends item at the tail.
func (q *FIFO[T]) Push(item T) { q.items = append(q.items, item) }

// Pull removes and returns the item at the head.
// The boolean is false when the queue is empty.
func (q *FIFO[T]) Pull() (T, bool) {
	var zero T
	if q.IsEmpty() {
		return zero, false
	}
	item := q.items[q.head]
	q.items[q.head] = zero
	q.head++
	if q.head > compactThreshold {
		q.items = append(make([]T, 0, len(q.items)-q.head), q.items[q.head:]...)
		q.head = 0
	}

	return item, true
}
