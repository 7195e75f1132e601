// SPDX-License-Identifier: MIT
// Package render draws a road network with one route highlighted.
//
// Search code never talks to a drawing surface directly: it builds a Scene
// (locations, labeled roads, highlighted subset) and hands it to a Renderer.
// Two renderers ship with the package:
//
//   - SVGRenderer writes one .svg document per scene into a directory,
//     using github.com/ajstarks/svgo. Route roads are thick green, time
//     labels red, locations light blue.
//   - TextRenderer writes a plain listing of roads, marking route roads with *.
//
// Multi fans a scene out to several renderers. Render failures are meant to be
// logged by the caller; they never change a search result.
package render
