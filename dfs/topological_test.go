package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/statesearch/dfs"
)

// TestTopologicalOrder_DAG checks every move goes forwards in the ordering.
func TestTopologicalOrder_DAG(t *testing.T) {
	g := adj{
		"shirt": {"tie", "belt"},
		"tie":   {"jacket"},
		"pants": {"shoes", "belt"},
		"belt":  {"jacket"},
		"start": {"shirt", "pants"},
	}
	order, err := dfs.TopologicalOrder(g, "start", ident)
	require.NoError(t, err)
	require.Len(t, order, 7)

	pos := map[string]int{}
	for i, n := range order {
		pos[n] = i
	}
	for u, vs := range g {
		for _, v := range vs {
			assert.Less(t, pos[u], pos[v], "%s must precede %s", u, v)
		}
	}
	assert.Equal(t, "start", order[0])
}

// TestTopologicalOrder_Cycle reports back edges, self-loops included.
func TestTopologicalOrder_Cycle(t *testing.T) {
	cyclic := adj{"A": {"B"}, "B": {"C"}, "C": {"A"}}
	_, err := dfs.TopologicalOrder(cyclic, "A", ident)
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)

	loop := adj{"A": {"A"}}
	_, err = dfs.TopologicalOrder(loop, "A", ident)
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)

	// a diamond is not a cycle
	diamond := adj{"A": {"B", "C"}, "B": {"D"}, "C": {"D"}}
	order, err := dfs.TopologicalOrder(diamond, "A", ident)
	require.NoError(t, err)
	assert.Equal(t, "A", order[0])
	assert.Equal(t, "D", order[3])
}

// TestTopologicalOrder_Errors validates nil inputs.
func TestTopologicalOrder_Errors(t *testing.T) {
	_, err := dfs.TopologicalOrder[string, string](nil, "A", ident)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
	_, err = dfs.TopologicalOrder[string, string](adj{}, "A", nil)
	assert.ErrorIs(t, err, dfs.ErrKeyFuncNil)
}
