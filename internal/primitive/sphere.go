package primitive

import (
	"fmt"
	"math"

	"rayblaster/internal/material"
	"rayblaster/internal/mathutil"
)

// Sphere is a sphere with a single material.
type Sphere struct {
	Center   mathutil.Vec3
	Radius   float64
	Material material.Material
}

// NewSphere validates the radius and material.
func NewSphere(center mathutil.Vec3, radius float64, mat material.Material) (*Sphere, error) {
	if !(radius > 0) || math.IsInf(radius, 0) {
		return nil, fmt.Errorf("primitive: sphere radius must be finite and > 0, got %v", radius)
	}
	if mat == nil {
		return nil, fmt.Errorf("primitive: sphere needs a material")
	}
	return &Sphere{Center: center, Radius: radius, Material: mat}, nil
}

// Intersect solves the ray/sphere quadratic geometrically.
//
// A sphere whose centre projects behind the ray origin (tca < 0) is reported as a
// miss, which also drops rays that start inside the sphere and look away from its
// centre. Shadow rays leaving a lit surface rely on this.
func (s *Sphere) Intersect(ray Ray) (Intersection, bool) {
	l := s.Center.Sub(ray.Origin)
	tca := l.Dot(ray.Direction)
	if tca < 0 {
		return Intersection{}, false
	}

	r2 := s.Radius * s.Radius
	d2 := l.Dot(l) - tca*tca
	if d2 > r2 {
		return Intersection{}, false
	}

	thc := math.Sqrt(r2 - d2)
	t0 := tca - thc
	if t0 < 0 {
		// Origin inside the sphere: take the far root.
		t0 = tca + thc
	}

	pos := ray.At(t0)
	return Intersection{
		Pos:      pos,
		Normal:   pos.Sub(s.Center),
		Distance: t0,
		Material: s.Material,
	}, true
}
