package render

import "time"

// Stats summarizes one Render call.
type Stats struct {
	Workers     int           // goroutines actually started
	Samples     int           // rays per pixel
	PrimaryRays int64         // camera rays traced
	ShadowRays  int64         // occlusion rays traced
	Elapsed     time.Duration // wall time of the parallel section
}

// Rays is the total number of rays traced.
func (s Stats) Rays() int64 {
	return s.PrimaryRays + s.ShadowRays
}

// counters is owned by a single worker and merged after the join.
type counters struct {
	primary int64
	shadow  int64
}

func (s *Stats) add(c counters) {
	s.PrimaryRays += c.primary
	s.ShadowRays += c.shadow
}
