// SPDX-License-Identifier: MIT
package render

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	svg "github.com/ajstarks/svgo"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

const (
	defaultWidth   = 800
	defaultHeight  = 600
	defaultPadding = 60
	nodeRadius     = 14
)

// SVG style fragments.
const (
	styleRoad   = "stroke:gray;stroke-width:2"
	styleRoute  = "stroke:green;stroke-width:6"
	styleNode   = "fill:lightblue;stroke:black;stroke-width:1"
	styleNodeID = "font-family:sans-serif;font-size:14px;text-anchor:middle;dominant-baseline:central"
	styleLabel  = "fill:red;font-family:sans-serif;font-size:12px;text-anchor:middle"
	styleTitle  = "font-family:sans-serif;font-size:20px;text-anchor:middle"
)

// SVGRenderer writes each scene to Dir/<slug(title)>.svg.
type SVGRenderer struct {
	Dir           string
	Width, Height int
}

// SVGOption customizes an SVGRenderer.
type SVGOption func(*SVGRenderer)

// WithCanvas sets the canvas size in pixels. Panics on non-positive sizes.
func WithCanvas(width, height int) SVGOption {
	if width <= 0 || height <= 0 {
		panic("render: WithCanvas requires positive dimensions")
	}
	return func(r *SVGRenderer) {
		r.Width, r.Height = width, height
	}
}

// NewSVGRenderer returns a renderer writing into dir.
func NewSVGRenderer(dir string, opts ...SVGOption) *SVGRenderer {
	r := &SVGRenderer{Dir: dir, Width: defaultWidth, Height: defaultHeight}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Path returns the file a scene with the given title is written to.
func (r *SVGRenderer) Path(title string) string {
	return filepath.Join(r.Dir, Slug(title)+".svg")
}

// Render creates Dir if needed and writes the scene document.
func (r *SVGRenderer) Render(s Scene) (err error) {
	if err := os.MkdirAll(r.Dir, 0o755); err != nil {
		return errors.Wrapf(err, "render: create %s", r.Dir)
	}
	path := r.Path(s.Title)
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "render: create %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "render: close %s", path)
		}
	}()

	return WriteSVG(f, s, r.Width, r.Height)
}

// WriteSVG draws s on a width×height canvas. Roads come first so locations
// sit on top; route roads are drawn after plain ones.
func WriteSVG(w io.Writer, s Scene, width, height int) error {
	pr := newProjection(s.Bound, width, height)
	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Title(s.Title)
	canvas.Rect(0, 0, width, height, "fill:white")
	canvas.Text(width/2, defaultPadding/2, s.Title, styleTitle)

	for _, highlight := range []bool{false, true} {
		for _, seg := range s.Segments {
			if seg.Highlight != highlight {
				continue
			}
			x1, y1 := pr.xy(seg.A)
			x2, y2 := pr.xy(seg.B)
			style := styleRoad
			if seg.Highlight {
				style = styleRoute
			}
			canvas.Line(x1, y1, x2, y2, style)
		}
	}
	for _, seg := range s.Segments {
		mx, my := pr.xy(orb.Point{(seg.A[0] + seg.B[0]) / 2, (seg.A[1] + seg.B[1]) / 2})
		canvas.Text(mx, my-4, seg.Label, styleLabel)
	}
	for _, p := range s.Points {
		x, y := pr.xy(p.Coord)
		canvas.Circle(x, y, nodeRadius, styleNode)
		canvas.Text(x, y, p.ID, styleNodeID)
	}
	canvas.End()

	return nil
}

// projection maps plane coordinates into the padded canvas, flipping Y.
type projection struct {
	bound  orb.Bound
	scale  float64
	height int
}

func newProjection(b orb.Bound, width, height int) projection {
	dx := b.Max[0] - b.Min[0]
	dy := b.Max[1] - b.Min[1]
	sx := float64(width-2*defaultPadding) / nonZero(dx)
	sy := float64(height-2*defaultPadding) / nonZero(dy)
	scale := sx
	if sy < sx {
		scale = sy
	}

	return projection{bound: b, scale: scale, height: height}
}

func (p projection) xy(pt orb.Point) (int, int) {
	x := defaultPadding + (pt[0]-p.bound.Min[0])*p.scale
	y := float64(p.height) - defaultPadding - (pt[1]-p.bound.Min[1])*p.scale

	return int(x + 0.5), int(y + 0.5)
}

func nonZero(v float64) float64 {
	if v == 0 {
		return 1
	}
	return v
}

// Slug turns a title into a lowercase file name stem.
// "Route With Traffic" becomes "route-with-traffic".
func Slug(title string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	out := strings.TrimSuffix(b.String(), "-")
	if out == "" {
		return "route"
	}

	return out
}
