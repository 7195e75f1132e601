// SPDX-License-Identifier: MIT
// Package core defines the central Graph, Vertex, and Edge types of the road
// network, and provides thread-safe primitives for building and querying it.
//
// This file declares Vertex, Edge, Graph, EdgeOption, sentinel errors,
// and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrDuplicateVertex     - a vertex with the same ID already exists.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrBadWeight           - negative base time or penalty.
//	ErrLoopNotAllowed      - self-loop (from == to).
//	ErrMultiEdgeNotAllowed - second edge between the same unordered pair.
package core

import (
	"errors"
	"sync"

	"github.com/paulmach/orb"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided Vertex has an empty ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrDuplicateVertex indicates that a vertex with the same ID was already added.
	ErrDuplicateVertex = errors.New("core: duplicate vertex")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a negative base time or a negative penalty.
	ErrBadWeight = errors.New("core: negative edge weight")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Vertex represents a named location in the road network.
//
// ID uniquely identifies this Vertex within its Graph.
// Coord is the planar position used by the heuristic and by renderers.
// Metadata stores arbitrary key-value data.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Coord is the 2D position of the location.
	Coord orb.Point

	// Metadata stores arbitrary user data.
	Metadata map[string]interface{}
}

// Edge represents an undirected road between two vertices.
//
// Base is the nominal travel time, Penalty the additive traffic delay and
// Weight the effective travel time (Base + Penalty) used by searches.
// Invariant: Weight >= Base >= 0 and Penalty >= 0.
type Edge struct {
	// ID uniquely identifies this edge in the Graph.
	ID string

	// From is the first endpoint as given to AddEdge.
	From string

	// To is the second endpoint as given to AddEdge.
	To string

	// Base is the nominal travel time in minutes.
	Base float64

	// Penalty is the traffic delay in minutes (zero without traffic).
	Penalty float64

	// Weight is Base + Penalty.
	Weight float64
}

// Other returns the endpoint of e opposite to id.
// If id is not an endpoint of e, Other returns the empty string.
func (e *Edge) Other(id string) string {
	switch id {
	case e.From:
		return e.To
	case e.To:
		return e.From
	default:
		return ""
	}
}

// EdgeOption configures properties of individual edges when added.
type EdgeOption func(*Edge)

// WithPenalty attaches a traffic penalty to the edge being added.
// Negative values are rejected by AddEdge with ErrBadWeight.
func WithPenalty(p float64) EdgeOption {
	return func(e *Edge) { e.Penalty = p }
}

// Graph is the in-memory road network.
//
// All edges are undirected; adjacency is mirrored for both endpoints.
// Self-loops and parallel edges are always rejected.
// mu guards vertices, edges and adjacency; nextEdgeID feeds Edge.ID generation.
type Graph struct {
	mu sync.RWMutex

	nextEdgeID uint64
	vertices   map[string]*Vertex
	edges      map[string]*Edge

	// adjacency[u][v] = edge ID of the single edge joining u and v.
	adjacency map[string]map[string]string
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		vertices:  make(map[string]*Vertex),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string]map[string]string),
	}
}
