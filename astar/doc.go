// Package astar implements informed best-first route search (A*) on a
// core.Graph whose edges carry non-negative travel times.
//
// Search expands, at every step, the open location minimizing
//
//	f(v) = g(v) + h(v, target)
//
// where g is the accumulated Edge.Weight from the source and h is the
// heuristic estimate of the remaining time. With the default Euclidean
// heuristic h is the straight-line distance between stored coordinates, which
// never exceeds the remaining travel time as long as every road takes at least
// as many minutes as its length. Under that condition the first time the
// target leaves the open set its g is optimal.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each location is expanded at most once (closed set).
//   - Each improvement pushes a new heap entry (lazy decrease-key).
//   - Space: O(V + E)
//
// Determinism:
//
//	Entries with equal f leave the open set in insertion order, and neighbors
//	are relaxed in Edge.ID order, so the same graph always yields the same
//	path even when several optimal paths exist.
//
// Options:
//
//	– WithHeuristic(h):   custom estimate; panics on nil.
//	– WithZeroHeuristic(): h ≡ 0, i.e. uniform-cost search (Dijkstra).
//
// Errors (sentinel):
//
//	– ErrNilGraph         if the provided graph pointer is nil.
//	– ErrEmptyEndpoint    if source or target is the empty string.
//	– ErrUnknownLocation  if source or target is not in the graph.
//	– ErrNegativeWeight   if any edge has a negative weight.
//	– ErrNoPathFound      if target is unreachable from source.
//
// Example usage:
//
//	res, err := astar.Search(g, "A", "F")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Path, res.Cost)
package astar
