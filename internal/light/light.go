package light

import "rayblaster/internal/mathutil"

// Light is a point-like emitter. There is no falloff with distance.
type Light interface {
	Center() mathutil.Vec3
	Colour() mathutil.Vec3
}

// Spherical is treated as an ideal point light at its centre; the radius is not modelled.
type Spherical struct {
	center mathutil.Vec3
	colour mathutil.Vec3
}

func NewSpherical(center, colour mathutil.Vec3) *Spherical {
	return &Spherical{center: center, colour: colour}
}

func (l *Spherical) Center() mathutil.Vec3 { return l.center }
func (l *Spherical) Colour() mathutil.Vec3 { return l.colour }
