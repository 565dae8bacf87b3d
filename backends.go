package plot

// The raster and svg backends are built in so Figure.Save works for the
// common file types without extra imports.
import (
	_ "github.com/gogpu/gg-plot/render/backends/raster"
	_ "github.com/gogpu/gg-plot/render/backends/svg"
)
