package queue_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/statesearch/queue"
)

//----------------------------------------------------------------------------//
// MinHeap
//----------------------------------------------------------------------------//

// TestMinHeap_Empty verifies the zero value and Pull/Peek on an empty heap.
func TestMinHeap_Empty(t *testing.T) {
	var h queue.MinHeap[string]
	assert.True(t, h.IsEmpty())
	assert.Equal(t, 0, h.Len())

	item, ok := h.Pull()
	assert.False(t, ok, "Pull on empty heap must report empty")
	assert.Equal(t, "", item)

	_, _, ok = h.Peek()
	assert.False(t, ok)
}

// TestMinHeap_SortedDrain pushes n items and expects n pulls in non-decreasing order.
func TestMinHeap_SortedDrain(t *testing.T) {
	h := queue.NewMinHeap[int](0)
	prios := []float64{5, 3, 9, 1, 1, 7, 0, 4.5, -2, 3}
	for i, p := range prios {
		h.Push(i, p)
	}
	require.Equal(t, len(prios), h.Len())

	var got []float64
	for !h.IsEmpty() {
		idx, ok := h.Pull()
		require.True(t, ok)
		got = append(got, prios[idx])
	}
	assert.True(t, sort.Float64sAreSorted(got), "drain order %v is not sorted", got)
	assert.Len(t, got, len(prios))
}

// TestMinHeap_RandomInterleaving checks that every Pull returns a minimum
// of the items currently stored, across random push/pull sequences.
func TestMinHeap_RandomInterleaving(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	for round := 0; round < 50; round++ {
		h := queue.NewMinHeap[float64](4)
		var live []float64
		for op := 0; op < 300; op++ {
			if len(live) == 0 || rnd.Intn(3) > 0 {
				p := float64(rnd.Intn(40)) - 10
				h.Push(p, p)
				live = append(live, p)
				continue
			}
			got, ok := h.Pull()
			require.True(t, ok)
			sort.Float64s(live)
			require.Equal(t, live[0], got, "round %d op %d", round, op)
			live = live[1:]
		}
		require.Equal(t, len(live), h.Len())
	}
}

// TestMinHeap_Peek ensures Peek reports the root without removing it.
func TestMinHeap_Peek(t *testing.T) {
	h := queue.NewMinHeap[string](2)
	h.Push("far", 10)
	h.Push("near", 1)

	item, prio, ok := h.Peek()
	require.True(t, ok)
	assert.Equal(t, "near", item)
	assert.Equal(t, 1.0, prio)
	assert.Equal(t, 2, h.Len())
}

//----------------------------------------------------------------------------//
// FIFO and Stack
//----------------------------------------------------------------------------//

// TestFIFO_Order verifies first-in first-out behaviour and empty signalling.
func TestFIFO_Order(t *testing.T) {
	var q queue.FIFO[int]
	for i := 0; i < 5; i++ {
		q.Push(i)
	}
	assert.Equal(t, 5, q.Len())
	for i := 0; i < 5; i++ {
		got, ok := q.Pull()
		require.True(t, ok)
		assert.Equal(t, i, got)
	}
	_, ok := q.Pull()
	assert.False(t, ok)
	assert.True(t, q.IsEmpty())
}

// TestFIFO_InterleavedReuse keeps pushing after pulls and checks order survives.
func TestFIFO_InterleavedReuse(t *testing.T) {
	var q queue.FIFO[int]
	next, want := 0, 0
	for round := 0; round < 100; round++ {
		for i := 0; i < 3; i++ {
			q.Push(next)
			next++
		}
		for i := 0; i < 2; i++ {
			got, ok := q.Pull()
			require.True(t, ok)
			require.Equal(t, want, got)
			want++
		}
	}
	assert.Equal(t, next-want, q.Len())
}

// TestStack_Order verifies last-in first-out behaviour and empty signalling.
func TestStack_Order(t *testing.T) {
	var s queue.Stack[string]
	s.Push("a")
	s.Push("b")
	s.Push("c")

	for _, want := range []string{"c", "b", "a"} {
		got, ok := s.Pull()
		require.True(t, ok)
		assert.Equal(t, want, got)
	}
	_, ok := s.Pull()
	assert.False(t, ok)
	assert.True(t, s.IsEmpty())
}
