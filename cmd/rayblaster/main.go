package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"rayblaster/internal/batch"
	"rayblaster/internal/config"
	"rayblaster/internal/output"
	"rayblaster/internal/render"
	"rayblaster/internal/scene"
)

const version = "0.3.0"

func main() {
	var flags config.Flags
	var configFile string
	var all, list, showVersion bool

	// CLI flags
	stringFlag(&flags.Output, "Place the output into <file> (format from extension)", "o", "output")
	stringFlag(&flags.Scene, "The scene to render (built-in name or .json file)", "s", "scene")
	intFlag(&flags.Width, "The width of the output image (default 640)", "w", "width")
	intFlag(&flags.Height, "The height of the output image (default 480)", "h", "height")
	floatFlag(&flags.FOV, "The vertical field of view in degrees (default 90)", "f", "fov")
	intFlag(&flags.Workers, "The number of worker goroutines (default NumCPU)", "t", "threads")
	intFlag(&flags.Supersample, "Supersampling rays per pixel: 1, 4 or 16 (default 1)", "ss", "supersample")
	intFlag(&flags.Thumbnail, "Also write a preview no larger than N pixels", "thumb")
	intFlag(&flags.Jobs, "Scenes rendered at once with -all (default 1)", "jobs")
	stringFlag(&flags.OutputDir, "Output directory for -all (default renders)", "outdir")
	flag.StringVar(&configFile, "config", "", "Path to config.json file")
	flag.BoolVar(&all, "all", false, "Render every built-in scene into -outdir")
	flag.BoolVar(&list, "list", false, "List built-in scenes and output formats")
	flag.BoolVar(&showVersion, "v", false, "Show version")
	flag.BoolVar(&showVersion, "version", false, "Show version")

	flag.Parse()

	flags.Set = make(map[string]bool)
	flag.Visit(func(f *flag.Flag) {
		if long, ok := longName[f.Name]; ok {
			flags.Set[long] = true
		}
	})

	if showVersion {
		fmt.Printf("rayblaster: v%s\n", version)
		return
	}
	if list {
		printList()
		return
	}

	// Load config
	var cfg config.Config
	if configFile != "" {
		var err error
		cfg, err = config.Load(configFile)
		if err != nil {
			fail("Error loading config: %v", err)
		}
	}

	// CLI flags override config file
	cfg.Resolve(flags)

	opts, err := cfg.RenderOptions()
	if err != nil {
		fail("Error: %v", err)
	}

	if all {
		os.Exit(renderAll(cfg, opts))
	}

	if cfg.Scene == "" {
		fail("Error: no scene given. Use -s <name> or -list to see the built-in scenes.")
	}
	if err := renderOne(cfg, opts); err != nil {
		fail("Error: %v", err)
	}
}

func renderOne(cfg config.Config, opts render.Options) error {
	if _, err := output.FormatFor(cfg.Output); err != nil {
		return err
	}

	s, err := scene.Lookup(cfg.Scene)
	if err != nil {
		return err
	}
	r, err := render.New(s, opts)
	if err != nil {
		return fmt.Errorf("%s: %w", cfg.Scene, err)
	}

	fmt.Printf("Rendering %s at %dx%d (%v supersampling) using %d workers\n",
		cfg.Scene, opts.Width, opts.Height, opts.Supersampling, opts.Workers)

	frame, stats, err := r.Render()
	if err != nil {
		return err
	}
	fmt.Printf("Rendered in %dms (%d rays)\n", stats.Elapsed.Milliseconds(), stats.Rays())

	img := output.ToNRGBA(frame)
	if err := output.Save(cfg.Output, img); err != nil {
		return err
	}
	fmt.Printf("Output: %s\n", cfg.Output)

	if cfg.Thumbnail > 0 {
		thumb := output.ThumbnailPath(cfg.Output)
		if err := output.Save(thumb, output.Downscale(img, cfg.Thumbnail)); err != nil {
			return err
		}
		fmt.Printf("Preview: %s\n", thumb)
	}
	return nil
}

func renderAll(cfg config.Config, opts render.Options) int {
	format, err := output.FormatFor(cfg.Output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	names := scene.Names()
	fmt.Printf("Scenes: %d, Jobs: %d, Workers: %d\n", len(names), cfg.Jobs, opts.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()
	results := batch.Run(batch.Config{
		OutputDir: cfg.OutputDir,
		Format:    format,
		Options:   opts,
		Thumbnail: cfg.Thumbnail,
		Jobs:      cfg.Jobs,
	}, names)

	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", time.Since(start).Seconds())

	failed := 0
	for _, r := range results {
		if r.Success {
			fmt.Printf("  %s: %s (%dms)\n", r.Scene, r.Path, r.Stats.Elapsed.Milliseconds())
		} else {
			failed++
			fmt.Printf("  %s: FAILED %s\n", r.Scene, r.Error)
		}
	}
	fmt.Printf("Rendered: %d/%d\n", len(results)-failed, len(results))

	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := batch.WriteManifest(manifestPath, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		return 1
	}
	return 0
}

func printList() {
	fmt.Println("Scenes:")
	for _, name := range scene.Names() {
		fmt.Printf("  %s\n", name)
	}
	fmt.Println("Formats:")
	for _, f := range output.Formats() {
		fmt.Printf("  .%s\n", f)
	}
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

// longName maps every alias of a multi-name flag to its last (long) name.
var longName = map[string]string{}

func alias(names []string) {
	for _, n := range names {
		longName[n] = names[len(names)-1]
	}
}

func stringFlag(p *string, usage string, names ...string) {
	alias(names)
	for _, n := range names {
		flag.StringVar(p, n, "", usage)
	}
}

func intFlag(p *int, usage string, names ...string) {
	alias(names)
	for _, n := range names {
		flag.IntVar(p, n, 0, usage)
	}
}

func floatFlag(p *float64, usage string, names ...string) {
	alias(names)
	for _, n := range names {
		flag.Float64Var(p, n, 0, usage)
	}
}
