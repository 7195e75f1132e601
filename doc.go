// Package routeplanner finds the fastest route across a small road network,
// optionally slowed down by simulated traffic, and draws the result.
//
// What is inside?
//
//   - core/     – thread-safe Graph of locations (orb.Point) and undirected roads
//   - catalog/  – the network as configuration: built-in demo, YAML/JSON files
//   - traffic/  – order-independent penalty table
//   - builder/  – catalog + traffic → core.Graph, connectivity check
//   - astar/    – informed best-first search with a Euclidean heuristic
//   - bfs/      – hop-count reachability
//   - dfs/      – exhaustive simple-path enumeration, the brute-force oracle
//   - geo/      – planar distance and an R-tree nearest-location index
//   - render/   – SVG and text drawings of a highlighted route
//   - scenario/ – the two-option interactive menu
//
// The command lives in cmd/routeplanner.
//
// The built-in network, travel minutes on each road:
//
//	A-B 10   A-D 12   B-C 9    B-D 5    B-E 14   C-D 8    C-E 11
//	C-F 25   C-G 12   D-G 10   E-F 10   E-H 9    G-H 7    H-F 8
//
// From A to F the best route is A → B → E → F in 34 minutes, with or without
// the simulated jams on B-C, C-E, G-H and H-F.
package routeplanner
