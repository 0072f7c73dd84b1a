package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gonum.org/v1/gonum/spatial/r3"

	"tri-viewer/internal/camera"
	"tri-viewer/internal/config"
	"tri-viewer/internal/los"
	"tri-viewer/internal/scene"
	"tri-viewer/internal/tri"
	"tri-viewer/internal/viewer"
)

// Exit codes, one per failure class.
const (
	exitRender     = 1
	exitUsage      = 2
	exitNotFound   = 3
	exitDecode     = 4
	exitSchema     = 5
	exitNoGeometry = 6
)

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: viewer [flags] <mesh-file> [los-csv-file]")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Renders a .tri map mesh, plus an optional LOS test CSV overlay, to an")
	fmt.Fprintln(os.Stderr, "image snapshot (.webp, .png or .tga).")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Examples:")
	fmt.Fprintln(os.Stderr, "  viewer output/de_ancient.tri")
	fmt.Fprintln(os.Stderr, "  viewer -frames 36 output/de_ancient.tri los-tests.csv")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Flags:")
	flag.PrintDefaults()
}

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	output := flag.String("output", "", "Snapshot path (default: <mesh-name>.webp)")
	title := flag.String("title", "", "Scene title shown in diagnostics")
	width := flag.Int("width", 0, "Frame width in pixels (default: 1200)")
	height := flag.Int("height", 0, "Frame height in pixels (default: 800)")
	supersample := flag.Int("supersample", 0, "Supersampling factor (default: 2)")
	frames := flag.Int("frames", 0, "Turntable frame count; 1 renders a single view")
	workers := flag.Int("workers", 0, "Number of worker goroutines for turntable frames (default: NumCPU)")

	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
		os.Exit(exitUsage)
	}

	meshPath := flag.Arg(0)
	csvPath := ""
	if flag.NArg() > 1 {
		csvPath = flag.Arg(1)
	}

	if _, err := os.Stat(meshPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: .tri file not found: %s\n", meshPath)
		os.Exit(exitNotFound)
	}
	if csvPath != "" {
		if _, err := os.Stat(csvPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: CSV file not found: %s\n", csvPath)
			os.Exit(exitNotFound)
		}
	}

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(exitRender)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		Output:      *output,
		Title:       *title,
		Width:       *width,
		Height:      *height,
		Supersample: *supersample,
		Frames:      *frames,
		Workers:     *workers,
	})
	if cfg.Output == "" {
		cfg.Output = defaultOutput(meshPath)
	}
	if cfg.Title == "" {
		cfg.Title = "Map Viewer - " + filepath.Base(meshPath)
	}

	// Decode mesh
	fmt.Printf("Loading .tri file: %s\n", meshPath)
	mesh, err := tri.DecodeFile(meshPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitDecode)
	}
	fmt.Printf("Loaded %d triangles (%d vertices, %d faces)\n",
		mesh.NumTriangles(), len(mesh.Vertices), len(mesh.Faces))

	if mesh.Empty() {
		fmt.Fprintf(os.Stderr, "Error: %v: %s\n", tri.ErrNoGeometry, meshPath)
		os.Exit(exitNoGeometry)
	}

	// Load LOS tests
	var tests []los.Test
	if csvPath != "" {
		fmt.Printf("Loading LOS tests from: %s\n", csvPath)
		tests, err = los.Load(csvPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			var schemaErr *los.SchemaError
			if errors.As(err, &schemaErr) {
				os.Exit(exitSchema)
			}
			os.Exit(exitRender)
		}
		fmt.Printf("Loaded %d LOS tests\n", len(tests))
	}

	// Build scene
	builder := scene.Builder{
		Radius: cfg.SphereRadius,
		Logf:   logf,
	}
	prims := builder.Build(mesh, tests)

	fmt.Printf("%s: %d primitives\n", cfg.Title, len(prims))
	if len(tests) > 0 {
		fmt.Println("Legend:")
		fmt.Println("  - Gray mesh: Map geometry")
		fmt.Println("  - Green spheres/lines: Visible LOS")
		fmt.Println("  - Red spheres/lines: Blocked LOS")
	}

	// Hand off to the renderer
	backend := &viewer.Fauxgl{
		Width:        cfg.Width,
		Height:       cfg.Height,
		Supersample:  cfg.Supersample,
		Output:       cfg.Output,
		Frames:       cfg.Frames,
		Workers:      cfg.Workers,
		SphereDetail: cfg.SphereDetail,
		Title:        cfg.Title,
		Logf:         logf,
	}

	var r viewer.Renderer = backend
	r.Configure(options(cfg))
	r.SetCamera(view(cfg))
	if err := r.LoadPrimitives(prims); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitRender)
	}

	start := time.Now()
	if err := r.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitRender)
	}
	fmt.Printf("Done in %.1fs\n", time.Since(start).Seconds())
}

func defaultOutput(meshPath string) string {
	base := filepath.Base(meshPath)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".webp"
}

func options(cfg config.Config) viewer.Options {
	opts := viewer.DefaultOptions()
	if cfg.Background != nil {
		opts.Background = scene.Color{R: cfg.Background[0], G: cfg.Background[1], B: cfg.Background[2]}
	}
	if cfg.ShowBackfaces != nil {
		opts.ShowBackfaces = *cfg.ShowBackfaces
	}
	if cfg.Lighting != nil {
		opts.Lighting = *cfg.Lighting
	}
	opts.LineWidth = cfg.LineWidth
	opts.PointSize = cfg.PointSize
	return opts
}

func view(cfg config.Config) camera.View {
	v := camera.Default(r3.Vec{})
	v.Zoom = cfg.Zoom
	if cfg.Front != nil {
		v.Front = vec(*cfg.Front)
	}
	if cfg.LookAt != nil {
		v.LookAt = vec(*cfg.LookAt)
	}
	if cfg.Up != nil {
		v.Up = vec(*cfg.Up)
	}
	return v
}

func vec(a [3]float64) r3.Vec {
	return r3.Vec{X: a[0], Y: a[1], Z: a[2]}
}

func logf(format string, args ...any) {
	fmt.Printf(format+"\n", args...)
}
