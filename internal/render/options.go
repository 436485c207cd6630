package render

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidOptions is returned for a non-positive size, no workers or an out-of-range FOV.
	ErrInvalidOptions = errors.New("invalid render options")

	// ErrUnsupportedSupersampling is returned for any mode other than 1, 4 or 16.
	ErrUnsupportedSupersampling = errors.New("unsupported supersampling mode")

	// ErrWorkerFailed is returned when a render worker panics; no frame is produced.
	ErrWorkerFailed = errors.New("render worker failed")
)

// SupersamplingMode is the number of camera rays traced per pixel.
type SupersamplingMode int

const (
	X1  SupersamplingMode = 1
	X4  SupersamplingMode = 4
	X16 SupersamplingMode = 16
)

// Sub-pixel offsets of the regular sampling grid, per axis.
var (
	offsetsX1  = []float64{0.5}
	offsetsX4  = []float64{0.25, 0.75}
	offsetsX16 = []float64{0.125, 0.375, 0.625, 0.875}
)

// ParseSupersampling accepts 1, 4 or 16.
func ParseSupersampling(n int) (SupersamplingMode, error) {
	m := SupersamplingMode(n)
	if !m.Valid() {
		return 0, fmt.Errorf("%w: %d (want 1, 4 or 16)", ErrUnsupportedSupersampling, n)
	}
	return m, nil
}

// Valid reports whether m is X1, X4 or X16.
func (m SupersamplingMode) Valid() bool {
	return m == X1 || m == X4 || m == X16
}

// Offsets returns the per-axis sub-pixel offsets; the full grid is Offsets × Offsets.
func (m SupersamplingMode) Offsets() []float64 {
	switch m {
	case X4:
		return offsetsX4
	case X16:
		return offsetsX16
	default:
		return offsetsX1
	}
}

// Samples is the number of rays per pixel.
func (m SupersamplingMode) Samples() int {
	n := len(m.Offsets())
	return n * n
}

// String formats the mode as "x1", "x4" or "x16".
func (m SupersamplingMode) String() string {
	return fmt.Sprintf("x%d", int(m))
}

// Options are the geometric parameters of a render.
type Options struct {
	Width         int
	Height        int
	Workers       int
	FOV           float64 // vertical field of view, degrees
	Supersampling SupersamplingMode
}

// Validate checks ranges. It does not look at the scene.
func (o Options) Validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidOptions, o.Width, o.Height)
	}
	if o.Workers < 1 {
		return fmt.Errorf("%w: workers %d", ErrInvalidOptions, o.Workers)
	}
	if !(o.FOV > 0 && o.FOV < 180) {
		return fmt.Errorf("%w: fov %v (want 0 < fov < 180)", ErrInvalidOptions, o.FOV)
	}
	if !o.Supersampling.Valid() {
		return fmt.Errorf("%w: %d", ErrUnsupportedSupersampling, int(o.Supersampling))
	}
	return nil
}
