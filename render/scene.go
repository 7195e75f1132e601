// SPDX-License-Identifier: MIT
package render

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/routeplanner/core"
)

// Point is a location to draw.
type Point struct {
	ID    string
	Coord orb.Point
}

// Segment is a road to draw. Label carries the travel time, Highlight marks
// roads that belong to the route.
type Segment struct {
	From, To  string
	A, B      orb.Point
	Label     string
	Highlight bool
}

// Scene is everything a Renderer needs, detached from the graph.
type Scene struct {
	Title    string
	Points   []Point
	Segments []Segment
	Bound    orb.Bound
}

// Renderer consumes a Scene.
type Renderer interface {
	Render(Scene) error
}

// RendererFunc adapts a plain function to Renderer.
type RendererFunc func(Scene) error

// Render calls f(s).
func (f RendererFunc) Render(s Scene) error { return f(s) }

// NewScene snapshots g with the roads between consecutive entries of path
// highlighted. Points are sorted by ID and segments follow Edge.ID order.
func NewScene(g *core.Graph, path []string, title string) Scene {
	onPath := make(map[[2]string]bool, len(path))
	for i := 1; i < len(path); i++ {
		onPath[[2]string{path[i-1], path[i]}] = true
		onPath[[2]string{path[i], path[i-1]}] = true
	}

	s := Scene{Title: title, Bound: g.Bound()}
	for _, id := range g.Vertices() {
		p, _ := g.Coord(id)
		s.Points = append(s.Points, Point{ID: id, Coord: p})
	}
	for _, e := range g.Edges() {
		a, _ := g.Coord(e.From)
		b, _ := g.Coord(e.To)
		s.Segments = append(s.Segments, Segment{
			From:      e.From,
			To:        e.To,
			A:         a,
			B:         b,
			Label:     fmt.Sprintf("%g min", e.Weight),
			Highlight: onPath[[2]string{e.From, e.To}],
		})
	}

	return s
}

// Highlighted returns the segments marked as part of the route.
func (s Scene) Highlighted() []Segment {
	var out []Segment
	for _, seg := range s.Segments {
		if seg.Highlight {
			out = append(out, seg)
		}
	}

	return out
}
