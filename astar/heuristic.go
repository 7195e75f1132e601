package astar

import (
	"fmt"

	"github.com/katalvlaran/routeplanner/core"
	"github.com/katalvlaran/routeplanner/geo"
)

// Distance returns the straight-line distance between the coordinates of a
// and b. Fails with ErrUnknownLocation if either is absent.
func Distance(g *core.Graph, a, b string) (float64, error) {
	if g == nil {
		return 0, ErrNilGraph
	}
	pa, err := g.Coord(a)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownLocation, a)
	}
	pb, err := g.Coord(b)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownLocation, b)
	}

	return geo.Distance(pa, pb), nil
}

// Euclidean adapts Distance to the Heuristic signature.
// Search only asks for locations it found in g, so a lookup failure here is a
// broken invariant and panics.
func Euclidean(g *core.Graph) Heuristic {
	return func(from, to string) float64 {
		d, err := Distance(g, from, to)
		if err != nil {
			panic(err)
		}
		return d
	}
}

// Zero is the trivial heuristic.
func Zero(_, _ string) float64 { return 0 }
