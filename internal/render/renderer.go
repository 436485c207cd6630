package render

import (
	"fmt"
	"math"
	"sync"
	"time"

	"rayblaster/internal/mathutil"
	"rayblaster/internal/primitive"
	"rayblaster/internal/scene"
)

// Renderer traces a scene with direct illumination and hard shadows.
// The scene is shared read-only by all workers and must not change during Render.
type Renderer struct {
	scene  *scene.Scene
	opts   Options
	aspect float64
	scale  float64
}

// New validates the options and the scene.
func New(s *scene.Scene, opts Options) (*Renderer, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return &Renderer{
		scene:  s,
		opts:   opts,
		aspect: float64(opts.Width) / float64(opts.Height),
		scale:  math.Tan(mathutil.Deg2Rad(opts.FOV) * 0.5),
	}, nil
}

// Options returns the options the renderer was built with.
func (r *Renderer) Options() Options {
	return r.opts
}

// chunk is a contiguous run of rows owned by one worker.
type chunk struct {
	start int
	lines int
}

// partition splits height rows into workers chunks of height/workers rows;
// the remainder goes to the last chunk. Workers beyond height get nothing to
// do, so the count is capped at height.
func partition(height, workers int) []chunk {
	if workers > height {
		workers = height
	}
	lines := height / workers
	chunks := make([]chunk, workers)
	for i := range chunks {
		chunks[i] = chunk{start: i * lines, lines: lines}
	}
	last := &chunks[workers-1]
	last.lines = height - last.start
	return chunks
}

// Render traces every pixel and returns the finished frame.
//
// One goroutine is started per row chunk and all are joined before Render returns.
// Each goroutine writes only its own rows. If any worker panics the render fails
// as a whole and no frame is returned.
func (r *Renderer) Render() (*Frame, Stats, error) {
	frame := NewFrame(r.opts.Width, r.opts.Height)
	chunks := partition(r.opts.Height, r.opts.Workers)

	type result struct {
		counters counters
		err      error
	}
	results := make([]result, len(chunks))

	start := time.Now()
	var wg sync.WaitGroup
	for i, c := range chunks {
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() {
				if p := recover(); p != nil {
					results[i].err = fmt.Errorf("render: %w: rows %d-%d: %v",
						ErrWorkerFailed, c.start, c.start+c.lines-1, p)
				}
			}()
			results[i].counters = r.renderChunk(frame.rows(c.start, c.lines), c.lines, c.start)
		}()
	}
	wg.Wait()

	stats := Stats{
		Workers: len(chunks),
		Samples: r.opts.Supersampling.Samples(),
		Elapsed: time.Since(start),
	}
	for _, res := range results {
		if res.err != nil {
			return nil, stats, res.err
		}
		stats.add(res.counters)
	}
	return frame, stats, nil
}

// renderChunk fills pix, which holds lines rows starting at image row yOffset.
func (r *Renderer) renderChunk(pix []Pixel, lines, yOffset int) counters {
	var c counters

	// Multiply is cheaper than divide, so use the inverses in the loop.
	invWidth := 1 / float64(r.opts.Width)
	invHeight := 1 / float64(r.opts.Height)
	offsets := r.opts.Supersampling.Offsets()
	samples := float64(r.opts.Supersampling.Samples())

	i := 0
	for y := 0; y < lines; y++ {
		py := float64(y + yOffset)
		for x := 0; x < r.opts.Width; x++ {
			px := float64(x)

			var sum mathutil.Vec3
			for _, sx := range offsets {
				for _, sy := range offsets {
					cx := (2*((px+sx)*invWidth) - 1) * r.aspect * r.scale
					cy := (1 - 2*((py+sy)*invHeight)) * r.scale
					ray := primitive.FromOrigin(mathutil.Vec3{cx, cy, -1}.Normalize())
					sum = sum.Add(r.trace(ray, &c))
				}
			}

			mean := mathutil.Vec3{sum[0] / samples, sum[1] / samples, sum[2] / samples}
			pix[i] = Pixel{clamp255(mean[0] * 255), clamp255(mean[1] * 255), clamp255(mean[2] * 255)}
			i++
		}
	}
	return c
}
