// Command pathdemo draws one of the compound path demos and saves it.
//
//	pathdemo -demo hist -o hist.png
//	pathdemo -demo bezier -o curves.svg -show
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math/rand/v2"
	"os"

	"github.com/gogpu/gg"

	plot "github.com/gogpu/gg-plot"
	"github.com/gogpu/gg-plot/demo"
	"github.com/gogpu/gg-plot/internal/config"
	"github.com/gogpu/gg-plot/internal/termview"
	"github.com/gogpu/gg-plot/show"
)

type options struct {
	demo    string
	output  string
	samples int
	bins    int
	seed    uint64
	show    bool
	preview bool
	cfg     config.Config
}

func main() {
	var (
		demoName   = flag.String("demo", "hist", "demo to draw: hist or bezier")
		output     = flag.String("o", "", "output file (.png, .jpg, .svg); default <demo>.png")
		width      = flag.Float64("width", plot.DefaultFigureWidth, "figure width in inches")
		height     = flag.Float64("height", plot.DefaultFigureHeight, "figure height in inches")
		dpi        = flag.Float64("dpi", plot.DefaultDPI, "resolution in pixels per inch")
		samples    = flag.Int("samples", 1000, "number of normal samples for the histogram")
		bins       = flag.Int("bins", 50, "number of histogram bins")
		seed       = flag.Uint64("seed", 0, "random seed; 0 picks one")
		configPath = flag.String("config", "", "TOML style file")
		showWin    = flag.Bool("show", false, "open a window with the result")
		preview    = flag.Bool("preview", false, "print a terminal preview of the histogram")
		verbose    = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	if *verbose {
		plot.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	// Flags given on the command line win over the file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Figure.Width = *width
		case "height":
			cfg.Figure.Height = *height
		case "dpi":
			cfg.Figure.DPI = *dpi
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid settings: %v", err)
	}

	opts := options{
		demo:    *demoName,
		output:  *output,
		samples: *samples,
		bins:    *bins,
		seed:    *seed,
		show:    *showWin,
		preview: *preview,
		cfg:     cfg,
	}
	if opts.output == "" {
		opts.output = opts.demo + ".png"
	}
	if opts.seed == 0 {
		opts.seed = rand.Uint64()
	}

	if err := run(opts); err != nil {
		log.Fatalf("pathdemo: %v", err)
	}
}

func run(opts options) error {
	fig, hist, err := build(opts)
	if err != nil {
		return err
	}

	if opts.preview && hist != nil {
		view, err := termview.Histogram(hist.counts, hist.edges, termview.Options{
			Title: fmt.Sprintf("%d samples, %d bins", opts.samples, opts.bins),
		})
		if err != nil {
			return err
		}
		fmt.Println(view)
	}

	if err := fig.Save(opts.output); err != nil {
		return err
	}
	w, h := fig.PixelSize()
	log.Printf("Demo saved to %s (%dx%d)\n", opts.output, w, h)

	if opts.show {
		return show.Figure(fig, "pathdemo: "+opts.demo)
	}
	return nil
}

type histogram struct {
	counts []int
	edges  []float64
}

// build draws the selected demo. The histogram data is returned for the
// terminal preview.
func build(opts options) (*plot.Figure, *histogram, error) {
	fig, ax := plot.Subplots(opts.cfg.FigureOptions()...)

	switch opts.demo {
	case "hist", "histogram":
		data := normalSamples(opts.samples, opts.seed)
		counts, edges, err := plot.Histogram(data, opts.bins)
		if err != nil {
			return nil, nil, err
		}
		if _, err := demo.HistogramPath(ax, counts, edges, opts.cfg.PatchOptions()...); err != nil {
			return nil, nil, err
		}
		return fig, &histogram{counts: counts, edges: edges}, nil

	case "bezier":
		if err := drawBezier(ax, opts.cfg); err != nil {
			return nil, nil, err
		}
		return fig, nil, nil

	default:
		return nil, nil, fmt.Errorf("unknown demo %q (want hist or bezier)", opts.demo)
	}
}

var bezierVertices = []gg.Point{
	gg.Pt(0.1, 0), gg.Pt(1, 0), gg.Pt(1, 0.5),
	gg.Pt(1, 0.5), gg.Pt(1, 1), gg.Pt(0.1, 0.1),
}

func drawBezier(ax *plot.Axes, cfg config.Config) error {
	if _, err := demo.QuadBezier(ax, bezierVertices,
		plot.WithEdgeColor(plot.MustColor("blue")),
		plot.WithLineStyle(plot.LineSolid),
		plot.WithLineWidth(cfg.Patch.LineWidth),
	); err != nil {
		return err
	}

	// Control polygons, one per curve.
	xs, ys := demo.Unzip(bezierVertices)
	for i := 0; i < len(xs); i += 3 {
		if _, err := ax.Plot(xs[i:i+3], ys[i:i+3], "k:"); err != nil {
			return err
		}
	}

	if err := ax.SetXLim(-0.1, 1.1); err != nil {
		return err
	}
	return ax.SetYLim(-0.1, 1.1)
}

func normalSamples(n int, seed uint64) []float64 {
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	data := make([]float64, max(n, 0))
	for i := range data {
		data[i] = r.NormFloat64()
	}
	return data
}
