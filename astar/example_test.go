package astar_test

import (
	"fmt"

	"github.com/katalvlaran/statesearch/astar"
	"github.com/katalvlaran/statesearch/canon"
	"github.com/katalvlaran/statesearch/core"
)

type pos struct{ X, Y int }

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// ExampleSearch finds corner-to-corner on an open 3×3 grid using the
// Manhattan distance, which never overestimates with unit moves.
func ExampleSearch() {
	g := core.WeightedFuncs[pos]{
		Steps: func(p pos) []core.Step[pos] {
			var out []core.Step[pos]
			for _, d := range []pos{{0, -1}, {1, 0}, {0, 1}, {-1, 0}} {
				n := pos{p.X + d.X, p.Y + d.Y}
				if n.X >= 0 && n.X < 3 && n.Y >= 0 && n.Y < 3 {
					out = append(out, core.Step[pos]{Node: n, Cost: 1})
				}
			}
			return out
		},
		Estimate: func(from, to pos) float64 { return float64(abs(to.X-from.X) + abs(to.Y-from.Y)) },
		Goal:     func(c, g pos) bool { return c == g },
	}

	res, err := astar.Search(g, pos{0, 0}, pos{2, 2}, canon.Identity[pos]())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("cost:", res.Cost, "steps:", len(res.Path)-1)
	// Output: cost: 4 steps: 4
}

// ExampleDijkstra shows a goal predicate: any state whose value is a
// multiple of 5, starting from 3, where +1 costs 1 and ×3 costs 2.
func ExampleDijkstra() {
	g := core.WeightedFuncs[int]{
		Steps: func(n int) []core.Step[int] {
			return []core.Step[int]{{Node: n + 1, Cost: 1}, {Node: n * 3, Cost: 2}}
		},
		Goal: func(c, _ int) bool { return c%5 == 0 },
	}

	res, err := astar.Dijkstra(g, 3, 0, canon.Identity[int]())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.State, res.Cost)
	// Output: 5 2
}
