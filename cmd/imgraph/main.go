// Command imgraph assembles a demo compositing graph, runs a preview pass
// and writes every node's intermediate texture as PNG.
//
// Image decode/encode and disk I/O live here, outside the engine core.
package main

import (
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	xdraw "golang.org/x/image/draw"

	imagegraph "github.com/Hu-zihaoOo/ImageGraph"
	"github.com/Hu-zihaoOo/ImageGraph/parallel"
)

type flags struct {
	config   string
	input    string
	overlay  string
	outDir   string
	scalar   bool
	verbose  bool
	workers  int
	adjust   imagegraph.ColorAdjustParams
	radius   int
	tiling   imagegraph.TileOffsetParams
	mode     string
	strength float64
}

func main() {
	f := flags{
		adjust: imagegraph.DefaultColorAdjustParams(),
		radius: 1,
		tiling: imagegraph.DefaultTileOffsetParams(),
		mode:   "multiply",
	}

	root := &cobra.Command{
		Use:   "imgraph",
		Short: "Node-graph image compositing demo",
		Long: "imgraph builds the canonical demo graph (input -> color adjust -> blur ->\n" +
			"tile/offset -> blend with a second input), evaluates it and writes each\n" +
			"node's intermediate texture as PNG.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(f)
		},
	}

	fs := root.Flags()
	fs.StringVar(&f.config, "config", "", "TOML options file")
	fs.StringVar(&f.input, "input", "", "source PNG (procedural gradient if empty)")
	fs.StringVar(&f.overlay, "overlay", "", "second blend source PNG (vignette if empty)")
	fs.StringVarP(&f.outDir, "out", "o", "out", "output directory")
	fs.BoolVar(&f.scalar, "scalar", false, "force the scalar reference backend")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "debug logging")
	fs.IntVar(&f.workers, "workers", 0, "parallel workers (0 = GOMAXPROCS)")
	fs.Float64Var(&f.adjust.Brightness, "brightness", 1, "brightness [0,2]")
	fs.Float64Var(&f.adjust.Contrast, "contrast", 1, "contrast [0,2]")
	fs.Float64Var(&f.adjust.Saturation, "saturation", 1, "saturation [0,2]")
	fs.Float64Var(&f.adjust.Hue, "hue", 0, "hue shift [0,1]")
	fs.IntVar(&f.radius, "radius", 1, "blur radius")
	fs.Float64Var(&f.tiling.TilingX, "tiling-x", 1, "horizontal tiling")
	fs.Float64Var(&f.tiling.TilingY, "tiling-y", 1, "vertical tiling")
	fs.Float64Var(&f.tiling.OffsetX, "offset-x", 0, "horizontal offset")
	fs.Float64Var(&f.tiling.OffsetY, "offset-y", 0, "vertical offset")
	fs.StringVar(&f.mode, "mode", "multiply", "blend mode: multiply or add")
	fs.Float64Var(&f.strength, "strength", 1, "blend strength (add mode)")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(f flags) error {
	logger := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		ReportTimestamp: true,
		Prefix:          "imgraph",
	})
	if f.verbose {
		logger.SetLevel(charmlog.DebugLevel)
	}
	imagegraph.SetLogger(slog.New(logger))

	opts := imagegraph.DefaultOptions()
	if f.config != "" {
		var err error
		if opts, err = imagegraph.LoadOptions(f.config); err != nil {
			return err
		}
	}
	if f.workers != 0 {
		opts.Workers = f.workers
	}

	if f.scalar {
		// Drop back to the reference implementation for comparisons.
		if err := imagegraph.RegisterBackend(scalarBackend{}); err != nil {
			return err
		}
	} else if err := parallel.Register(opts.Workers); err != nil {
		logger.Warn("parallel backend unavailable, staying on scalar", "err", err)
	}

	src, err := loadOrGenerate(f.input, opts.SurfaceWidth, opts.SurfaceHeight, gradientTexture)
	if err != nil {
		return err
	}
	overlay, err := loadOrGenerate(f.overlay, opts.SurfaceWidth, opts.SurfaceHeight, vignetteTexture)
	if err != nil {
		return err
	}

	mode := imagegraph.BlendMultiply
	if f.mode == "add" {
		mode = imagegraph.BlendAdd
	}

	g := imagegraph.NewGraph()
	in := g.AddNode(imagegraph.KindInput)
	in.SetSource(src)
	adjust := g.AddNode(imagegraph.KindColorAdjust)
	adjust.ColorAdjust = f.adjust
	blur := g.AddNode(imagegraph.KindBlur)
	blur.Blur.Radius = f.radius
	tile := g.AddNode(imagegraph.KindTileOffset)
	tile.TileOffset = f.tiling
	in2 := g.AddNode(imagegraph.KindInput)
	in2.SetSource(overlay)
	blend := g.AddNode(imagegraph.KindBlend)
	blend.Blend = imagegraph.BlendParams{Mode: mode, Strength: f.strength}

	mustConnect(g, in, 0, adjust, 0)
	mustConnect(g, adjust, 1, blur, 0)
	mustConnect(g, blur, 1, tile, 0)
	mustConnect(g, tile, 1, blend, 0)
	mustConnect(g, in2, 0, blend, 1)

	names := map[string]string{
		in.ID:     "00-input",
		adjust.ID: "01-color-adjust",
		blur.ID:   "02-blur",
		tile.ID:   "03-tile-offset",
		in2.ID:    "04-overlay",
		blend.ID:  "05-blend",
	}

	previewer := imagegraph.NewPreviewer(g, 0)
	results, _ := previewer.Refresh(opts.SurfaceWidth, opts.SurfaceHeight)

	if err := os.MkdirAll(f.outDir, 0o755); err != nil {
		return err
	}
	for id, tex := range results {
		name, ok := names[id]
		if !ok {
			name = id
		}
		path := filepath.Join(f.outDir, name+".png")
		if err := writePNG(path, tex); err != nil {
			return err
		}
		logger.Info("wrote", "file", path, "width", tex.Width(), "height", tex.Height())
	}
	return nil
}

// mustConnect wires an edge between nodes created by this command; a
// cycle here is a programming error.
func mustConnect(g *imagegraph.Graph, from *imagegraph.Node, fromPort int, to *imagegraph.Node, toPort int) {
	if err := g.Connect(from.ID, fromPort, to.ID, toPort); err != nil {
		panic(fmt.Sprintf("imgraph: wiring demo graph: %v", err))
	}
}

// scalarBackend satisfies imagegraph.KernelBackend while delegating to
// the scalar reference pass, useful for --scalar comparisons.
type scalarBackend struct{}

func (scalarBackend) Name() string { return "scalar" }
func (scalarBackend) Init() error  { return nil }
func (scalarBackend) Close()       {}
func (scalarBackend) Run(k imagegraph.Kernel, dst *imagegraph.Texture) error {
	imagegraph.RunScalar(k, dst)
	return nil
}

// loadOrGenerate decodes a PNG and scales it to the surface size, or
// falls back to a procedural texture when no path is given.
func loadOrGenerate(path string, w, h int, generate func(w, h int) *imagegraph.Texture) (*imagegraph.Texture, error) {
	if path == "" {
		return generate(w, h), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	if img.Bounds().Dx() != w || img.Bounds().Dy() != h {
		scaled := image.NewNRGBA(image.Rect(0, 0, w, h))
		xdraw.CatmullRom.Scale(scaled, scaled.Bounds(), img, img.Bounds(), xdraw.Over, nil)
		img = scaled
	}
	return imagegraph.FromImage(img), nil
}

// gradientTexture renders a diagonal color gradient.
func gradientTexture(w, h int) *imagegraph.Texture {
	t := imagegraph.NewTexture(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			u := float64(x) / float64(w-1)
			v := float64(y) / float64(h-1)
			t.Set(x, y, imagegraph.RGBA{R: u, G: v, B: 1 - u*v, A: 1})
		}
	}
	return t
}

// vignetteTexture renders a white-to-dark radial falloff.
func vignetteTexture(w, h int) *imagegraph.Texture {
	t := imagegraph.NewTexture(w, h)
	cx, cy := float64(w-1)/2, float64(h-1)/2
	maxD := cx*cx + cy*cy
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx, dy := float64(x)-cx, float64(y)-cy
			d := (dx*dx + dy*dy) / maxD
			l := imagegraph.Clamp01(1.15 - d)
			t.Set(x, y, imagegraph.RGBA{R: l, G: l, B: l, A: 1})
		}
	}
	return t
}

func writePNG(path string, t *imagegraph.Texture) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	return png.Encode(f, t.ToImage())
}
