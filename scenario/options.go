// SPDX-License-Identifier: MIT
package scenario

import (
	"io"

	"go.uber.org/zap"

	"github.com/katalvlaran/routeplanner/astar"
	"github.com/katalvlaran/routeplanner/builder"
	"github.com/katalvlaran/routeplanner/catalog"
	"github.com/katalvlaran/routeplanner/core"
	"github.com/katalvlaran/routeplanner/internal/metrics"
	"github.com/katalvlaran/routeplanner/render"
)

// BuildFunc matches builder.Build.
type BuildFunc func(opts ...builder.BuilderOption) (*core.Graph, error)

// SearchFunc matches astar.Search.
type SearchFunc func(g *core.Graph, source, target string, opts ...astar.Option) (*astar.Result, error)

// Option customizes a Runner.
type Option func(*Runner)

// WithInput sets where the selection is read from (default os.Stdin).
func WithInput(r io.Reader) Option {
	return func(rn *Runner) { rn.in = r }
}

// WithOutput sets where the report is printed (default os.Stdout).
func WithOutput(w io.Writer) Option {
	return func(rn *Runner) { rn.out = w }
}

// WithLogger sets the logger (default zap.NewNop()).
func WithLogger(l *zap.Logger) Option {
	return func(rn *Runner) {
		if l != nil {
			rn.log = l
		}
	}
}

// WithCatalog replaces the built-in catalog.
func WithCatalog(c catalog.Catalog) Option {
	return func(rn *Runner) { rn.catalog = c }
}

// WithRenderer sets the renderer invoked after each successful search.
// nil disables rendering.
func WithRenderer(r render.Renderer) Option {
	return func(rn *Runner) { rn.renderer = r }
}

// WithMetrics records every search in c.
func WithMetrics(c *metrics.Collector) Option {
	return func(rn *Runner) { rn.metrics = c }
}

// WithEndpoints overrides every scenario's start and destination.
// Empty values keep the scenario's own endpoints.
func WithEndpoints(from, to string) Option {
	return func(rn *Runner) { rn.from, rn.to = from, to }
}

// WithBuildFunc replaces builder.Build. Panics on nil.
func WithBuildFunc(fn BuildFunc) Option {
	if fn == nil {
		panic("scenario: WithBuildFunc(nil)")
	}
	return func(rn *Runner) { rn.build = fn }
}

// WithSearchFunc replaces astar.Search. Panics on nil.
func WithSearchFunc(fn SearchFunc) Option {
	if fn == nil {
		panic("scenario: WithSearchFunc(nil)")
	}
	return func(rn *Runner) { rn.search = fn }
}
