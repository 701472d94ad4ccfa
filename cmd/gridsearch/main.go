// Command gridsearch runs the statesearch engines over an ASCII maze file.
//
//	gridsearch reach maze.txt --max-depth 64
//	gridsearch path maze.txt --show-path --diagonal
//
// Answers go to stdout; logs go to stderr. Every flag can also be set
// through a GRIDSEARCH_* environment variable or a YAML file given by
// --config.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "gridsearch: %v\n", err)
		os.Exit(1)
	}
}
