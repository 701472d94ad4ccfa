package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/statesearch/grid"
)

// app carries the per-invocation state shared by subcommands.
type app struct {
	cfg *settings
	log zerolog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: zerolog.Nop()}

	root := &cobra.Command{
		Use:   "gridsearch",
		Short: "Breadth-first and A* search over ASCII mazes",
		Long: `gridsearch loads a maze ('#' wall, '.' open, '1'-'9' entry cost,
'S' start, 'G' goal) and either counts what is reachable from S or finds
the cheapest path from S to G.`,
		PersistentPreRunE: a.load,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "Path to a YAML config file")
	pf.String("log-level", "info", "Log level (trace|debug|info|warn|error)")
	pf.Bool("diagonal", false, "Allow diagonal moves (8-connectivity)")

	root.AddCommand(newReachCmd(a), newPathCmd(a))

	return root
}

// load resolves settings and sets up logging before any subcommand runs.
func (a *app) load(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings(cmd.Flags())
	if err != nil {
		return err
	}
	logger, err := newLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return err
	}
	a.cfg, a.log = cfg, logger
	a.log.Debug().Str("config", cfg.Config).Bool("diagonal", cfg.Diagonal).Msg("settings loaded")

	return nil
}

// loadMaze parses the maze file at path using the configured connectivity.
func (a *app) loadMaze(path string) (*grid.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	opts := grid.DefaultOptions()
	if a.cfg.Diagonal {
		opts.Conn = grid.Conn8
	}
	g, err := grid.Parse(f, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	a.log.Info().
		Str("file", path).
		Int("width", g.Width).
		Int("height", g.Height).
		Int("open", len(g.OpenCells())).
		Msg("maze loaded")

	return g, nil
}
