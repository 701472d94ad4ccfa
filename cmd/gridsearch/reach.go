package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/statesearch/bfs"
	"github.com/katalvlaran/statesearch/canon"
	"github.com/katalvlaran/statesearch/grid"
)

func newReachCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reach <maze-file>",
		Short: "Count cells reachable from S and the largest step distance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadMaze(args[0])
			if err != nil {
				return err
			}

			res, err := bfs.BFS[grid.Point, grid.Point](g, g.Start, canon.Identity[grid.Point](),
				bfs.WithMaxDepth[grid.Point](a.cfg.MaxDepth),
				bfs.WithOnVisit(func(p grid.Point, depth int) error {
					a.log.Trace().Int("x", p.X).Int("y", p.Y).Int("depth", depth).Msg("visit")
					return nil
				}),
			)
			if err != nil {
				return err
			}

			far, steps := res.Farthest()
			a.log.Debug().Int("x", far.X).Int("y", far.Y).Msg("farthest cell")
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "reachable: %d\n", res.Len())
			fmt.Fprintf(out, "farthest: %d\n", steps)

			return nil
		},
	}
	cmd.Flags().Int("max-depth", 0, "Stop expanding beyond this many steps (0 = unlimited)")

	return cmd
}
