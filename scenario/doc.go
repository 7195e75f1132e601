// SPDX-License-Identifier: MIT
// Package scenario runs the planner's interactive menu.
//
// A Runner lists the catalog's scenarios in menu order, reads one selection,
// builds the matching graph, searches it and prints the route:
//
//	=== ROUTE PLANNING WITH A* ===
//	1 - Run without traffic
//	2 - Run with traffic (simulated)
//	Choose an option: 1
//
//	[NO TRAFFIC]
//	Best path: [A B E F]
//	Total time: 34 min
//
// Any other selection prints "Invalid option!" and ends normally without
// building, searching or rendering anything. Rendering happens after the
// result is printed and its failures are only logged.
package scenario
