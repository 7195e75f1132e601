// SPDX-License-Identifier: MIT
// Package: routeplanner/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors panic on meaningless inputs (nil tables);
//     Build itself never panics.

package builder

import (
	"github.com/katalvlaran/routeplanner/catalog"
	"github.com/katalvlaran/routeplanner/traffic"
)

// BuilderOption customizes Build by mutating a builderConfig before the graph
// is constructed.
type BuilderOption func(*builderConfig)

// WithCatalog replaces the built-in network description.
func WithCatalog(c catalog.Catalog) BuilderOption {
	return func(cfg *builderConfig) {
		cfg.catalog = c
	}
}

// WithTraffic applies the given penalties to matching roads.
// Panics on nil; omit the option for "no traffic".
func WithTraffic(t *traffic.Table) BuilderOption {
	if t == nil {
		panic("builder: WithTraffic(nil)")
	}
	return func(cfg *builderConfig) {
		cfg.traffic = t
	}
}
