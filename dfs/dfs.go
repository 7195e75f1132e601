package dfs

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/routeplanner/core"
)

// pathWalker carries the backtracking state.
type pathWalker struct {
	graph  *core.Graph
	opts   Options
	target string
	onPath map[string]bool
	stack  []string
	cost   float64
	out    []Path
}

// SimplePaths returns every path from `from` to `to` that visits no location
// twice, weighted by Edge.Weight. Results are sorted by cost, then
// lexicographically by vertex sequence. from == to yields the single path
// [from] with cost 0.
func SimplePaths(g *core.Graph, from, to string, opts ...Option) ([]Path, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if !g.HasVertex(from) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, from)
	}
	if !g.HasVertex(to) {
		return nil, fmt.Errorf("%w: %q", ErrTargetVertexNotFound, to)
	}

	w := &pathWalker{
		graph:  g,
		opts:   o,
		target: to,
		onPath: map[string]bool{},
	}
	if err := w.visit(from); err != nil {
		return nil, err
	}
	sort.SliceStable(w.out, func(i, j int) bool {
		if w.out[i].Cost != w.out[j].Cost {
			return w.out[i].Cost < w.out[j].Cost
		}
		return strings.Join(w.out[i].Vertices, ",") < strings.Join(w.out[j].Vertices, ",")
	})

	return w.out, nil
}

// visit pushes id, records a path on reaching the target, and otherwise
// recurses into every neighbor not already on the stack.
func (w *pathWalker) visit(id string) error {
	if err := w.opts.Ctx.Err(); err != nil {
		return err
	}
	w.onPath[id] = true
	w.stack = append(w.stack, id)
	defer func() {
		w.stack = w.stack[:len(w.stack)-1]
		delete(w.onPath, id)
	}()

	if id == w.target {
		w.out = append(w.out, Path{
			Vertices: append([]string(nil), w.stack...),
			Cost:     w.cost,
		})
		return nil
	}
	if w.opts.MaxDepth >= 0 && len(w.stack)-1 >= w.opts.MaxDepth {
		return nil
	}

	edges, err := w.graph.Neighbors(id)
	if err != nil {
		return fmt.Errorf("dfs: Neighbors(%q): %w", id, err)
	}
	for _, e := range edges {
		next := e.Other(id)
		if w.onPath[next] {
			continue
		}
		w.cost += e.Weight
		err = w.visit(next)
		w.cost -= e.Weight
		if err != nil {
			return err
		}
	}

	return nil
}

// Cheapest returns the first path of a SimplePaths result, which is the
// minimum-cost one. ok is false when paths is empty.
func Cheapest(paths []Path) (p Path, ok bool) {
	if len(paths) == 0 {
		return Path{}, false
	}
	return paths[0], true
}
