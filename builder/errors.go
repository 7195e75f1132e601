// SPDX-License-Identifier: MIT
// Package: routeplanner/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Context is attached with %w at the failure site.

package builder

import "errors"

// ErrInvalidCatalog indicates that the catalog failed validation before any
// vertex was inserted. The underlying catalog error is wrapped.
var ErrInvalidCatalog = errors.New("builder: invalid catalog")

// ErrConstructFailed indicates that the core graph rejected a location or a
// road while the catalog was being materialized.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrDisconnected is returned by CheckConnected when some locations cannot be
// reached from the others. It is diagnostic: a disconnected network is still
// searchable and yields astar.ErrNoPathFound for unreachable pairs.
var ErrDisconnected = errors.New("builder: network is disconnected")
