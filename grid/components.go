package grid

import (
	"github.com/katalvlaran/statesearch/bfs"
	"github.com/katalvlaran/statesearch/canon"
)

// Components finds all contiguous regions of open cells under g.Conn.
// Components are ordered by their first cell in row-major order; the cells
// of each component are in BFS discovery order from that first cell.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for the seen set and output.
func (g *Grid) Components() ([][]Point, error) {
	seen := make(map[Point]struct{}, g.Width*g.Height)
	var comps [][]Point

	for _, p := range g.OpenCells() {
		if _, ok := seen[p]; ok {
			continue
		}
		res, err := bfs.BFS[Point, Point](g, p, canon.Identity[Point]())
		if err != nil {
			return nil, err
		}
		comp := res.Reached()
		for _, q := range comp {
			seen[q] = struct{}{}
		}
		comps = append(comps, comp)
	}

	return comps, nil
}
