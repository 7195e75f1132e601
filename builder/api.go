// SPDX-License-Identifier: MIT
// Package builder turns a catalog (locations, roads) plus an optional traffic
// table into a core.Graph ready for searching.
//
// For every road (u, v, base) the penalty is looked up in the traffic table in
// both orderings, defaulting to 0, and the edge stores base, penalty and
// time = base + penalty. Table entries for pairs that are not roads are never
// matched. The same catalog and table always produce the same graph.
package builder

import (
	"fmt"
	"sort"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/routeplanner/bfs"
	"github.com/katalvlaran/routeplanner/core"
)

// Build validates the configured catalog and materializes it as a graph,
// applying the configured traffic penalties.
//
// Errors:
//   - ErrInvalidCatalog wrapping catalog.ErrInvalidCatalog.
//   - ErrConstructFailed wrapping the core sentinel that rejected an element.
//
// Complexity: O(V + E).
func Build(opts ...BuilderOption) (*core.Graph, error) {
	cfg := newBuilderConfig(opts...)

	// 1) Reject malformed catalogs before touching the graph.
	if err := cfg.catalog.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}

	g := core.NewGraph()

	// 2) Locations, in catalog order.
	for _, l := range cfg.catalog.Locations {
		if err := g.AddVertex(l.ID, orb.Point{l.X, l.Y}); err != nil {
			return nil, fmt.Errorf("%w: location %q: %w", ErrConstructFailed, l.ID, err)
		}
	}

	// 3) Roads with their resolved penalties.
	for _, r := range cfg.catalog.Connections {
		penalty := cfg.traffic.Penalty(r.From, r.To)
		if _, err := g.AddEdge(r.From, r.To, r.Base, core.WithPenalty(penalty)); err != nil {
			return nil, fmt.Errorf("%w: road %s-%s: %w", ErrConstructFailed, r.From, r.To, err)
		}
	}

	return g, nil
}

// CheckConnected reports whether every location is reachable from every other.
// On failure it returns ErrDisconnected listing the locations not reachable
// from the first location (sorted by ID). An empty graph is connected.
func CheckConnected(g *core.Graph) error {
	ids := g.Vertices()
	if len(ids) == 0 {
		return nil
	}
	res, err := bfs.BFS(g, ids[0])
	if err != nil {
		return err
	}
	if len(res.Order) == len(ids) {
		return nil
	}

	var missing []string
	for _, id := range ids {
		if _, ok := res.Depth[id]; !ok {
			missing = append(missing, id)
		}
	}
	sort.Strings(missing)

	return fmt.Errorf("%w: unreachable from %q: %v", ErrDisconnected, ids[0], missing)
}
