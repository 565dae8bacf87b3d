// Package render defines the output backends that figures are drawn to.
//
// A figure lays out its axes and artists in pixel space and hands the
// resulting gg paths to a Backend. Backends translate those calls to their
// output format: raster pixels (PNG, JPEG) or SVG elements.
//
// # Backend Registration
//
// Backends register themselves in init() following the database/sql driver
// pattern, together with the file extensions they can write:
//
//	import _ "github.com/gogpu/gg-plot/render/backends/raster"
//	import _ "github.com/gogpu/gg-plot/render/backends/svg"
//
//	b, err := render.NewBackend("svg")
//	b, err = render.ForFile("figure.png")
//
// # Coordinates
//
// All coordinates are pixels with the origin at the top-left corner and y
// growing downward. Paths arrive already transformed; backends never apply
// their own transform.
package render
