// SPDX-License-Identifier: MIT
// Package: routeplanner/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • catalog = catalog.Default()  (eight locations, fourteen roads)
//   • traffic = empty table         (no penalties)

package builder

import (
	"github.com/katalvlaran/routeplanner/catalog"
	"github.com/katalvlaran/routeplanner/traffic"
)

// builderConfig aggregates the inputs of Build.
type builderConfig struct {
	catalog catalog.Catalog
	traffic *traffic.Table
}

// newBuilderConfig constructs a config with defaults and applies all options
// in order (later overrides earlier).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		catalog: catalog.Default(),
		traffic: traffic.NewTable(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
