// Package plot is a small plotting layer on top of the gg 2D graphics
// library.
//
// # Overview
//
// The central type is Path: a sequence of vertices paired with command
// codes (MoveTo, LineTo, Curve3, Curve4, ClosePoly). One Path may hold many
// disjoint sub-paths, so a whole histogram or a set of Bezier curves can be
// drawn as a single compound path in one fill and one stroke.
//
// A Path is wrapped in a PathPatch, which adds face and edge colors, alpha,
// line width and style. Patches and lines are added to an Axes, whose view
// limits map data coordinates onto a rectangle of the Figure.
//
// # Quick Start
//
//	import "github.com/gogpu/gg-plot"
//
//	fig, ax := plot.Subplots()
//
//	path, err := plot.MakeCompoundPathFromPolys(rects)
//	if err != nil {
//		log.Fatal(err)
//	}
//	ax.AddPatch(plot.NewPathPatch(path,
//		plot.WithFaceColor(plot.MustColor("blue")),
//		plot.WithAlpha(0.4)))
//
//	if err := fig.Save("hist.png"); err != nil {
//		log.Fatal(err)
//	}
//
// # Output
//
// Figures are drawn through a render.Backend. The raster backend (PNG and
// JPEG, rendered with gg) and the svg backend are registered by default;
// Figure.Save picks one by file extension.
//
// # Logging
//
// The package is silent by default. Use SetLogger to receive debug records
// about added artists, limit changes and saved files.
package plot
