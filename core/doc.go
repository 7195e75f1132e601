// Package core provides the thread-safe, in-memory road network used by the
// route planner: named locations with planar coordinates, joined by
// undirected roads that carry a base travel time, an optional traffic
// penalty, and the effective weight searched over.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Undirected edges only; adjacency is mirrored for both endpoints.
//   - At most one edge per unordered pair (ErrMultiEdgeNotAllowed).
//   - No self-loops (ErrLoopNotAllowed).
//   - Locations are immutable; there is no removal API, so the vertex set is
//     fixed once the builder is done.
//   - Edge weights are float64 minutes: Weight = Base + Penalty, both >= 0.
//   - Deterministic iteration: Vertices() is sorted by ID, Edges() and
//     Neighbors() follow insertion order of the edges.
//   - A single sync.RWMutex guards all state.
//
// Core Methods:
//
//	AddVertex(id string, coord orb.Point) error                         // O(1)
//	HasVertex(id string) bool                                           // O(1)
//	Vertex(id string) (*Vertex, error)                                  // O(1)
//	AddEdge(from, to string, base float64, opts ...EdgeOption) (string, error) // O(1)
//	EdgeBetween(u, v string) (*Edge, error)                             // O(1)
//	Neighbors(id string) ([]*Edge, error)                               // O(d log d)
//	Edges() []*Edge                                                     // O(E log E)
//	Vertices() []string                                                 // O(V log V)
//	Bound() orb.Bound                                                   // O(V)
//
// Example:
//
//	g := core.NewGraph()
//	_ = g.AddVertex("A", orb.Point{0, 0})
//	_ = g.AddVertex("B", orb.Point{4, 1})
//	_, _ = g.AddEdge("A", "B", 10, core.WithPenalty(3))
//	e, _ := g.EdgeBetween("B", "A") // e.Weight == 13
package core
