package astar

import (
	"fmt"

	"github.com/katalvlaran/routeplanner/core"
)

// PathCost sums Edge.Weight over consecutive pairs of path.
// A single-location path costs 0. Returns ErrBrokenPath for an empty path,
// an unknown location, or two consecutive locations with no road.
func PathCost(g *core.Graph, path []string) (float64, error) {
	if g == nil {
		return 0, ErrNilGraph
	}
	if len(path) == 0 {
		return 0, fmt.Errorf("%w: empty", ErrBrokenPath)
	}
	if !g.HasVertex(path[0]) {
		return 0, fmt.Errorf("%w: unknown location %q", ErrBrokenPath, path[0])
	}

	var total float64
	for i := 1; i < len(path); i++ {
		e, err := g.EdgeBetween(path[i-1], path[i])
		if err != nil {
			return 0, fmt.Errorf("%w: %w", ErrBrokenPath, err)
		}
		total += e.Weight
	}

	return total, nil
}
