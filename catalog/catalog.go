// SPDX-License-Identifier: MIT
// Package catalog describes a road network as plain configuration: a list of
// locations with coordinates, a list of roads with base travel times, and the
// canned scenarios the planner offers. The built-in catalog reproduces the
// eight-city demonstration network; other catalogs can be loaded from YAML or
// JSON files without code changes.
package catalog

import (
	"github.com/katalvlaran/routeplanner/traffic"
)

// Location is a named point on the plane.
type Location struct {
	ID string  `yaml:"id" json:"id"`
	X  float64 `yaml:"x" json:"x"`
	Y  float64 `yaml:"y" json:"y"`
}

// Connection is an undirected road with its nominal travel time in minutes.
type Connection struct {
	From string  `yaml:"from" json:"from"`
	To   string  `yaml:"to" json:"to"`
	Base float64 `yaml:"base" json:"base"`
}

// Penalty is one traffic delay of a scenario.
type Penalty struct {
	From  string  `yaml:"from" json:"from"`
	To    string  `yaml:"to" json:"to"`
	Delay float64 `yaml:"delay" json:"delay"`
}

// Scenario is one selectable menu entry.
//
// Key is what the user types, Label is echoed in brackets when the scenario
// runs, and Title names the rendered diagram.
type Scenario struct {
	Key         string    `yaml:"key" json:"key"`
	Label       string    `yaml:"label" json:"label"`
	Description string    `yaml:"description" json:"description"`
	Title       string    `yaml:"title" json:"title"`
	Start       string    `yaml:"start" json:"start"`
	Destination string    `yaml:"destination" json:"destination"`
	Traffic     []Penalty `yaml:"traffic,omitempty" json:"traffic,omitempty"`
}

// Table converts the scenario's penalties into a traffic.Table.
func (s Scenario) Table() (*traffic.Table, error) {
	entries := make([]traffic.Entry, 0, len(s.Traffic))
	for _, p := range s.Traffic {
		entries = append(entries, traffic.Entry{Pair: traffic.Pair{From: p.From, To: p.To}, Penalty: p.Delay})
	}

	return traffic.FromEntries(entries)
}

// Catalog is the full description of a network and its scenarios.
type Catalog struct {
	Locations   []Location   `yaml:"locations" json:"locations"`
	Connections []Connection `yaml:"connections" json:"connections"`
	Scenarios   []Scenario   `yaml:"scenarios" json:"scenarios"`
}

// Scenario returns the scenario selected by key.
func (c Catalog) Scenario(key string) (Scenario, bool) {
	for _, s := range c.Scenarios {
		if s.Key == key {
			return s, true
		}
	}

	return Scenario{}, false
}

// Default returns the built-in eight-location demonstration network with its
// two scenarios: free-flowing roads and simulated congestion.
func Default() Catalog {
	return Catalog{
		Locations: []Location{
			{ID: "A", X: 0, Y: 0},
			{ID: "B", X: 4, Y: 1},
			{ID: "C", X: 8, Y: 0},
			{ID: "D", X: 4, Y: -3},
			{ID: "E", X: 12, Y: 3},
			{ID: "F", X: 16, Y: 0},
			{ID: "G", X: 10, Y: -4},
			{ID: "H", X: 14, Y: -3},
		},
		Connections: []Connection{
			{From: "A", To: "B", Base: 10},
			{From: "A", To: "D", Base: 12},
			{From: "B", To: "C", Base: 9},
			{From: "B", To: "D", Base: 5},
			{From: "B", To: "E", Base: 14},
			{From: "C", To: "D", Base: 8},
			{From: "C", To: "E", Base: 11},
			{From: "C", To: "F", Base: 25},
			{From: "C", To: "G", Base: 12},
			{From: "D", To: "G", Base: 10},
			{From: "E", To: "F", Base: 10},
			{From: "E", To: "H", Base: 9},
			{From: "G", To: "H", Base: 7},
			{From: "H", To: "F", Base: 8},
		},
		Scenarios: []Scenario{
			{
				Key:         "1",
				Label:       "NO TRAFFIC",
				Description: "Run without traffic",
				Title:       "Route Without Traffic",
				Start:       "A",
				Destination: "F",
			},
			{
				Key:         "2",
				Label:       "WITH TRAFFIC",
				Description: "Run with traffic (simulated)",
				Title:       "Route With Traffic",
				Start:       "A",
				Destination: "F",
				Traffic: []Penalty{
					{From: "B", To: "C", Delay: 8},
					{From: "C", To: "E", Delay: 10},
					{From: "G", To: "H", Delay: 7},
					{From: "H", To: "F", Delay: 12},
				},
			},
		},
	}
}
