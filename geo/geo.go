// SPDX-License-Identifier: MIT
// Package geo holds the planar geometry helpers shared by the search and the
// renderers: Euclidean distance, coordinate parsing, and a nearest-location
// index over a core.Graph.
package geo

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// ErrBadPoint indicates that a textual coordinate could not be parsed.
var ErrBadPoint = errors.New("geo: malformed point")

// Distance returns the straight-line distance between a and b.
func Distance(a, b orb.Point) float64 {
	return planar.Distance(a, b)
}

// ParsePoint parses "x,y" (spaces allowed around either number).
func ParsePoint(s string) (orb.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return orb.Point{}, fmt.Errorf("%w: %q", ErrBadPoint, s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return orb.Point{}, fmt.Errorf("%w: %q: %v", ErrBadPoint, s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return orb.Point{}, fmt.Errorf("%w: %q: %v", ErrBadPoint, s, err)
	}

	return orb.Point{x, y}, nil
}

// LooksLikePoint reports whether s has the "x,y" shape accepted by ParsePoint.
func LooksLikePoint(s string) bool {
	return strings.Contains(s, ",")
}
