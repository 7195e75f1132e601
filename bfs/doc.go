// Package bfs provides breadth-first search over a core.Graph, returning hop
// counts, parent links and visit order while ignoring travel times.
//
// The route planner uses it for reachability: builder.CheckConnected runs one
// BFS from the first location and reports whatever it did not reach.
//
// Determinism
//
//	core.Graph.NeighborIDs returns neighbors sorted by ID and BFS enqueues them
//	in that order, so the visit sequence is reproducible.
//
// Options
//
//   - WithContext(ctx)        cancellation, checked once per dequeue.
//   - WithOnVisit(fn)         hook on every visited location; an error aborts.
//   - WithMaxDepth(d)         d > 0 limits hops, d == 0 means no limit, d < 0 is rejected.
//   - WithFilterNeighbor(fn)  return false to skip the road curr→neighbor.
//
// Complexity: O(V + E) time, O(V) memory.
package bfs
