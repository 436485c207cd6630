package batch

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"rayblaster/internal/output"
	"rayblaster/internal/render"
	"rayblaster/internal/scene"
)

// Config holds all shared settings for a batch run.
type Config struct {
	OutputDir string
	Format    output.Format
	Options   render.Options
	Thumbnail int // longest side of the preview image, 0 for none
	Jobs      int // scenes rendered at the same time
	Log       io.Writer
	Interval  time.Duration // progress report period, default 2s
}

// Result holds the outcome of rendering one scene.
type Result struct {
	Scene     string
	Path      string
	Thumbnail string
	Success   bool
	Error     string
	Stats     render.Stats
}

// Run renders every scene using a pool of cfg.Jobs workers. Results are in
// the same order as scenes.
func Run(cfg Config, scenes []string) []Result {
	if cfg.Log == nil {
		cfg.Log = os.Stdout
	}
	if cfg.Jobs <= 0 {
		cfg.Jobs = 1
	}
	if cfg.Interval <= 0 {
		cfg.Interval = 2 * time.Second
	}

	total := len(scenes)
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(cfg.Interval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					rate := float64(p) / elapsed
					fmt.Fprintf(cfg.Log, "  [%d/%d] %.2f scenes/sec\n", p, total, rate)
				}
			}
		}
	}()

	// Worker pool
	jobChan := make(chan int, cfg.Jobs*2)
	var wg sync.WaitGroup

	for w := 0; w < cfg.Jobs; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobChan {
				results[idx] = processScene(cfg, scenes[idx])
				processed.Add(1)
			}
		}()
	}

	// Send work
	for i := range scenes {
		jobChan <- i
	}
	close(jobChan)

	wg.Wait()
	close(done)

	return results
}

// OutputName turns a scene name or scene file path into an output file name.
func OutputName(sceneName string, format output.Format) string {
	base := filepath.Base(sceneName)
	if strings.HasSuffix(strings.ToLower(base), ".json") {
		base = base[:len(base)-len(".json")]
	}
	return base + "." + string(format)
}

func processScene(cfg Config, name string) Result {
	res := Result{Scene: name}

	s, err := scene.Lookup(name)
	if err != nil {
		res.Error = err.Error()
		return res
	}

	r, err := render.New(s, cfg.Options)
	if err != nil {
		res.Error = err.Error()
		return res
	}

	frame, stats, err := r.Render()
	if err != nil {
		res.Error = err.Error()
		return res
	}
	res.Stats = stats

	img := output.ToNRGBA(frame)
	res.Path = filepath.Join(cfg.OutputDir, OutputName(name, cfg.Format))
	if err := output.Save(res.Path, img); err != nil {
		res.Error = err.Error()
		return res
	}

	if cfg.Thumbnail > 0 {
		res.Thumbnail = output.ThumbnailPath(res.Path)
		if err := output.Save(res.Thumbnail, output.Downscale(img, cfg.Thumbnail)); err != nil {
			res.Error = fmt.Sprintf("thumbnail: %v", err)
			return res
		}
	}

	res.Success = true
	return res
}
