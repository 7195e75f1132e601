package astar

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/routeplanner/core"
)

// Search returns a minimum-time path from source to target in g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. source and target must be non-empty (ErrEmptyEndpoint).
//  3. both must be vertices of g (ErrUnknownLocation).
//  4. no edge in g can have negative weight (ErrNegativeWeight).
//
// source == target yields Path [source] with Cost 0. If the open set is
// exhausted without reaching target, Search fails with ErrNoPathFound.
func Search(g *core.Graph, source, target string, opts ...Option) (*Result, error) {
	// 1) Validate inputs
	if g == nil {
		return nil, ErrNilGraph
	}
	if source == "" || target == "" {
		return nil, ErrEmptyEndpoint
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLocation, source)
	}
	if !g.HasVertex(target) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLocation, target)
	}

	// 2) Options
	cfg := Options{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Heuristic == nil {
		cfg.Heuristic = Euclidean(g)
	}

	// 3) Fail fast on negative weights
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %s-%s weight=%g", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	n := g.VertexCount()
	r := &runner{
		g:      g,
		h:      cfg.Heuristic,
		target: target,
		gScore: make(map[string]float64, n),
		prev:   make(map[string]string, n),
		closed: make(map[string]bool, n),
		open:   make(nodePQ, 0, n),
	}
	r.push(source, 0)

	return r.run(source)
}

// runner holds the mutable state of one search.
type runner struct {
	g      *core.Graph
	h      Heuristic
	target string
	gScore map[string]float64 // best known cost from source
	prev   map[string]string  // predecessor on the best known path
	closed map[string]bool    // finalized locations
	open   nodePQ
	seq    uint64 // insertion counter for FIFO tie-breaking
	expand int
}

// push records g for id and adds it to the open set.
func (r *runner) push(id string, g float64) {
	r.gScore[id] = g
	r.seq++
	heap.Push(&r.open, &nodeItem{id: id, g: g, f: g + r.h(id, r.target), seq: r.seq})
}

// run pops the lowest-f entry until target is closed or the open set empties.
func (r *runner) run(source string) (*Result, error) {
	for r.open.Len() > 0 {
		item := heap.Pop(&r.open).(*nodeItem)
		u := item.id

		// Stale entry: u was closed, or improved after this push.
		if r.closed[u] || item.g > r.gScore[u] {
			continue
		}
		r.closed[u] = true
		r.expand++

		if u == r.target {
			return &Result{
				Path:     r.reconstruct(source),
				Cost:     item.g,
				Expanded: r.expand,
			}, nil
		}
		if err := r.relax(u); err != nil {
			return nil, err
		}
	}

	return nil, fmt.Errorf("%w: %q to %q", ErrNoPathFound, source, r.target)
}

// relax tries to improve every open neighbor of u through u.
func (r *runner) relax(u string) error {
	edges, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("astar: failed to get neighbors of %q: %w", u, err)
	}
	for _, e := range edges {
		v := e.Other(u)
		if r.closed[v] {
			continue
		}
		candidate := r.gScore[u] + e.Weight
		if best, seen := r.gScore[v]; seen && candidate >= best {
			continue
		}
		r.prev[v] = u
		r.push(v, candidate)
	}

	return nil
}

// reconstruct walks predecessors back from target and reverses.
func (r *runner) reconstruct(source string) []string {
	path := []string{r.target}
	for cur := r.target; cur != source; {
		cur = r.prev[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// nodeItem is one open-set entry.
type nodeItem struct {
	id  string
	g   float64 // cost from source when pushed
	f   float64 // g + heuristic
	seq uint64
}

// nodePQ is a min-heap of *nodeItem ordered by f, then by insertion order.
// Improved locations are pushed again; outdated entries are skipped on pop.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	return pq[i].seq < pq[j].seq
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
