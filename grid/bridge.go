package grid

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/statesearch/astar"
	"github.com/katalvlaran/statesearch/canon"
	"github.com/katalvlaran/statesearch/core"
)

// bridgeNode is a cell, or the virtual source joined to every cell of the
// source component at zero cost.
type bridgeNode struct {
	P      Point
	Source bool
}

// Bridge finds the fewest walls that must be opened to connect component
// src to component dst, as numbered by Components. Moving into an open cell
// costs 0 and into a wall costs 1, so the result cost is the number of
// walls on the returned path. The path starts on a src cell and ends on the
// first dst cell reached.
//
// Returns ErrComponentIndex for out-of-range indices.
// Complexity: O(W·H·log(W·H)).
func (g *Grid) Bridge(src, dst int) ([]Point, int, error) {
	comps, err := g.Components()
	if err != nil {
		return nil, 0, err
	}
	if src < 0 || src >= len(comps) || dst < 0 || dst >= len(comps) {
		return nil, 0, ErrComponentIndex
	}
	dstSet := make(map[Point]struct{}, len(comps[dst]))
	for _, p := range comps[dst] {
		dstSet[p] = struct{}{}
	}

	graph := core.WeightedFuncs[bridgeNode]{
		Steps: func(n bridgeNode) []core.Step[bridgeNode] {
			if n.Source {
				out := make([]core.Step[bridgeNode], 0, len(comps[src]))
				for _, p := range comps[src] {
					out = append(out, core.Step[bridgeNode]{Node: bridgeNode{P: p}})
				}
				return out
			}
			out := make([]core.Step[bridgeNode], 0, len(g.offsets))
			for _, d := range g.offsets {
				q := Point{n.P.X + d.X, n.P.Y + d.Y}
				if !g.InBounds(q) {
					continue
				}
				cost := 0.0
				if !g.Open(q) {
					cost = 1
				}
				out = append(out, core.Step[bridgeNode]{Node: bridgeNode{P: q}, Cost: cost})
			}
			return out
		},
		Goal: func(candidate, _ bridgeNode) bool {
			if candidate.Source {
				return false
			}
			_, ok := dstSet[candidate.P]
			return ok
		},
	}

	res, err := astar.Dijkstra[bridgeNode, bridgeNode](graph, bridgeNode{Source: true}, bridgeNode{}, canon.Identity[bridgeNode]())
	if err != nil {
		if errors.Is(err, astar.ErrNoPath) {
			return nil, 0, fmt.Errorf("%w: %w", ErrNoPath, err)
		}
		return nil, 0, err
	}

	path := make([]Point, 0, len(res.Path)-1)
	for _, n := range res.Path[1:] {
		path = append(path, n.P)
	}

	return path, int(res.Cost), nil
}
