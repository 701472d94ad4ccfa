package main

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/statesearch/astar"
	"github.com/katalvlaran/statesearch/canon"
	"github.com/katalvlaran/statesearch/grid"
)

func newPathCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "path <maze-file>",
		Short: "Find the cheapest path from S to G",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadMaze(args[0])
			if err != nil {
				return err
			}

			opts := []astar.Option[grid.Point]{
				astar.WithOnExpand(func(p grid.Point, cost float64) error {
					a.log.Trace().Int("x", p.X).Int("y", p.Y).Float64("cost", cost).Msg("expand")
					return nil
				}),
			}
			if a.cfg.Settled {
				opts = append(opts, astar.WithSettled[grid.Point]())
			}

			search := astar.Search[grid.Point, grid.Point]
			if a.cfg.Dijkstra {
				search = astar.Dijkstra[grid.Point, grid.Point]
			}
			res, err := search(g, g.Start, g.Goal, canon.Identity[grid.Point](), opts...)
			if err != nil {
				return err
			}

			a.log.Info().
				Float64("cost", res.Cost).
				Int("expanded", res.Expanded).
				Bool("dijkstra", a.cfg.Dijkstra).
				Msg("path found")

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "cost: %g\n", res.Cost)
			if a.cfg.ShowPath {
				cells := lo.Map(res.Path, func(p grid.Point, _ int) string {
					return fmt.Sprintf("%d,%d", p.X, p.Y)
				})
				fmt.Fprintf(out, "path: %s\n", strings.Join(cells, " "))
			}

			return nil
		},
	}
	f := cmd.Flags()
	f.Bool("show-path", false, "Print the cells of the path")
	f.Bool("dijkstra", false, "Ignore the heuristic (uniform-cost search)")
	f.Bool("settled", false, "Skip cells already expanded at no greater cost")

	return cmd
}
