// Package core: Graph method implementations
//
// This file provides thread-safe operations for vertex and edge management on
// the Graph type defined in types.go. Adjacency is a nested map
// adjacency[from][to] = edgeID, mirrored for both endpoints, so existence
// checks and pair lookups are constant time.

package core

import (
	"fmt"
	"sort"

	"github.com/paulmach/orb"
)

const (
	edgeIDPrefix = "e"
)

// AddVertex inserts a new location with the given ID and coordinate.
// Returns ErrEmptyVertexID if id is empty and ErrDuplicateVertex if a vertex
// with that ID already exists (locations are immutable once created).
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string, coord orb.Point) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.vertices[id]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateVertex, id)
	}
	g.vertices[id] = &Vertex{ID: id, Coord: coord, Metadata: make(map[string]interface{})}
	g.adjacency[id] = make(map[string]string)

	return nil
}

// HasVertex reports whether a vertex with the given ID exists in the graph.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, exists := g.vertices[id]

	return exists
}

// Vertex returns the vertex stored under id.
// Returns ErrEmptyVertexID or ErrVertexNotFound.
func (g *Graph) Vertex(id string) (*Vertex, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	return v, nil
}

// Coord returns the coordinate of vertex id.
func (g *Graph) Coord(id string) (orb.Point, error) {
	v, err := g.Vertex(id)
	if err != nil {
		return orb.Point{}, err
	}

	return v.Coord, nil
}

// AddEdge joins two existing vertices with an undirected edge of the given
// base time, applies any EdgeOption (WithPenalty), and returns the new Edge.ID.
// Weight is computed as Base + Penalty.
//
// Returns ErrEmptyVertexID, ErrVertexNotFound, ErrBadWeight, ErrLoopNotAllowed
// or ErrMultiEdgeNotAllowed.
// Complexity: O(1).
func (g *Graph) AddEdge(from, to string, base float64, opts ...EdgeOption) (string, error) {
	// 1) Input validation
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to {
		return "", fmt.Errorf("%w: %q", ErrLoopNotAllowed, from)
	}

	// 2) Construct the edge and apply options before locking
	e := &Edge{From: from, To: to, Base: base}
	for _, opt := range opts {
		opt(e)
	}
	if e.Base < 0 || e.Penalty < 0 {
		return "", fmt.Errorf("%w: %s-%s base=%g penalty=%g", ErrBadWeight, from, to, e.Base, e.Penalty)
	}
	e.Weight = e.Base + e.Penalty

	g.mu.Lock()
	defer g.mu.Unlock()

	// 3) Both endpoints must already be present
	if _, ok := g.vertices[from]; !ok {
		return "", fmt.Errorf("%w: %q", ErrVertexNotFound, from)
	}
	if _, ok := g.vertices[to]; !ok {
		return "", fmt.Errorf("%w: %q", ErrVertexNotFound, to)
	}

	// 4) At most one edge per unordered pair
	if _, ok := g.adjacency[from][to]; ok {
		return "", fmt.Errorf("%w: %s-%s", ErrMultiEdgeNotAllowed, from, to)
	}

	// 5) Store and mirror
	g.nextEdgeID++
	e.ID = fmt.Sprintf("%s%d", edgeIDPrefix, g.nextEdgeID)
	g.edges[e.ID] = e
	g.adjacency[from][to] = e.ID
	g.adjacency[to][from] = e.ID

	return e.ID, nil
}

// HasEdge reports whether an edge joins u and v (in either order).
// Complexity: O(1).
func (g *Graph) HasEdge(u, v string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[u][v]

	return ok
}

// EdgeBetween returns the edge joining u and v regardless of the order in
// which it was added. Returns ErrEdgeNotFound if there is none.
func (g *Graph) EdgeBetween(u, v string) (*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	eid, ok := g.adjacency[u][v]
	if !ok {
		return nil, fmt.Errorf("%w: %s-%s", ErrEdgeNotFound, u, v)
	}

	return g.edges[eid], nil
}

// Neighbors returns all edges incident to vertex id, sorted by Edge.ID.
// Use Edge.Other(id) to obtain the neighbor on each edge.
// Complexity: O(d log d), where d is the degree of id.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	adj, ok := g.adjacency[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	out := make([]*Edge, 0, len(adj))
	for _, eid := range adj {
		out = append(out, g.edges[eid])
	}
	sort.Slice(out, func(i, j int) bool { return edgeIDLess(out[i].ID, out[j].ID) })

	return out, nil
}

// NeighborIDs returns the sorted IDs of all vertices adjacent to id.
// Complexity: O(d log d)
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	adj, ok := g.adjacency[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	ids := make([]string, 0, len(adj))
	for v := range adj {
		ids = append(ids, v)
	}
	sort.Strings(ids)

	return ids, nil
}

// Edges returns all edges in insertion order.
// Complexity: O(E·logE)
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return edgeIDLess(out[i].ID, out[j].ID) })

	return out
}

// Vertices returns all vertex IDs in sorted order.
// Complexity: O(V·logV)
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Bound returns the smallest axis-aligned box containing every vertex.
// An empty graph yields the zero Bound.
func (g *Graph) Bound() orb.Bound {
	g.mu.RLock()
	defer g.mu.RUnlock()
	points := make(orb.MultiPoint, 0, len(g.vertices))
	for _, v := range g.vertices {
		points = append(points, v.Coord)
	}
	if len(points) == 0 {
		return orb.Bound{}
	}

	return points.Bound()
}

// EdgeCount returns total number of edges. O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// VertexCount returns total number of vertices. O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// edgeIDLess orders "e2" before "e10" so that insertion order survives sorting.
func edgeIDLess(a, b string) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}

	return a < b
}
