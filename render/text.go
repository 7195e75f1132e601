// SPDX-License-Identifier: MIT
package render

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// TextRenderer writes a plain listing of the scene:
//
//	== Route Without Traffic ==
//	* A-B 10 min
//	  A-D 12 min
//	route: A -> B -> E -> F
type TextRenderer struct {
	W io.Writer
}

// Render writes s to r.W.
func (r TextRenderer) Render(s Scene) error {
	var b strings.Builder
	fmt.Fprintf(&b, "== %s ==\n", s.Title)
	for _, seg := range s.Segments {
		mark := " "
		if seg.Highlight {
			mark = "*"
		}
		fmt.Fprintf(&b, "%s %s-%s %s\n", mark, seg.From, seg.To, seg.Label)
	}
	if route := routeOf(s); len(route) > 0 {
		fmt.Fprintf(&b, "route: %s\n", strings.Join(route, " -> "))
	}
	_, err := io.WriteString(r.W, b.String())

	return err
}

// routeOf chains the highlighted segments back into a location sequence,
// starting from the endpoint that appears only once.
func routeOf(s Scene) []string {
	hl := s.Highlighted()
	if len(hl) == 0 {
		return nil
	}
	adj := make(map[string][]string, len(hl)+1)
	for _, seg := range hl {
		adj[seg.From] = append(adj[seg.From], seg.To)
		adj[seg.To] = append(adj[seg.To], seg.From)
	}
	start := ""
	for _, p := range s.Points {
		if len(adj[p.ID]) == 1 {
			start = p.ID
			break
		}
	}
	if start == "" {
		return nil
	}

	route := []string{start}
	prev, cur := "", start
	for len(route) <= len(hl) {
		next := ""
		for _, n := range adj[cur] {
			if n != prev {
				next = n
				break
			}
		}
		if next == "" {
			return route
		}
		route = append(route, next)
		prev, cur = cur, next
	}

	return route
}

// Multi renders to every member and joins their errors.
type Multi []Renderer

// Render calls each renderer in order.
func (m Multi) Render(s Scene) error {
	var errs []error
	for _, r := range m {
		if r == nil {
			continue
		}
		if err := r.Render(s); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
