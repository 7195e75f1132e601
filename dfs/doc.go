// Package dfs enumerates every simple path between two locations of a
// core.Graph by depth-first backtracking.
//
// The enumeration is exponential in the worst case and is meant for small road
// networks: it is the brute-force oracle that informed searches are checked
// against, and a way to list alternatives for a single trip.
//
// Key features:
//   - SimplePaths(g, from, to, opts...): all loop-free paths, cheapest first
//   - Cheapest(paths): the minimum-cost entry, if any
//   - Cancellation via context.Context, checked on every step
//   - WithMaxDepth(limit) bounds the number of roads per path
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if from is missing.
//   - ErrTargetVertexNotFound   if to is missing.
//   - context.Canceled          if ctx is done.
package dfs
