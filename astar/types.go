package astar

import "errors"

// Sentinel errors returned by Search and its helpers.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("astar: graph is nil")

	// ErrEmptyEndpoint indicates an empty source or target ID.
	ErrEmptyEndpoint = errors.New("astar: endpoint ID is empty")

	// ErrUnknownLocation indicates that an endpoint is not a vertex of the graph.
	ErrUnknownLocation = errors.New("astar: unknown location")

	// ErrNegativeWeight indicates that a negative edge weight was detected.
	ErrNegativeWeight = errors.New("astar: negative edge weight encountered")

	// ErrNoPathFound indicates that the open set ran empty before the target
	// was reached.
	ErrNoPathFound = errors.New("astar: no path found")

	// ErrBrokenPath is returned by PathCost for an empty path or one that
	// steps between locations with no road.
	ErrBrokenPath = errors.New("astar: path is not a walk in the graph")
)

// Heuristic estimates the remaining travel time from one location to another.
// It must never overestimate for Search to return an optimal route.
type Heuristic func(from, to string) float64

// Options configures Search.
//
// Heuristic – estimate of remaining time; nil means Euclidean(g).
type Options struct {
	Heuristic Heuristic
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// WithHeuristic overrides the default Euclidean heuristic.
// Panics on nil; use WithZeroHeuristic for uniform-cost search.
func WithHeuristic(h Heuristic) Option {
	if h == nil {
		panic("astar: WithHeuristic(nil)")
	}
	return func(o *Options) {
		o.Heuristic = h
	}
}

// WithZeroHeuristic turns Search into uniform-cost search.
func WithZeroHeuristic() Option {
	return func(o *Options) {
		o.Heuristic = Zero
	}
}

// Result is the outcome of a successful search.
//
// Path     – location IDs from source to target inclusive.
// Cost     – sum of Edge.Weight along Path.
// Expanded – number of locations moved to the closed set.
type Result struct {
	Path     []string
	Cost     float64
	Expanded int
}
