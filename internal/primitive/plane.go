package primitive

import (
	"fmt"
	"math"

	"rayblaster/internal/material"
	"rayblaster/internal/mathutil"
)

// parallelEpsilon is the |n·d| below which a ray is treated as parallel to a plane.
const parallelEpsilon = 1e-6

// Plane is an infinite plane through Center with unit Normal.
type Plane struct {
	Center   mathutil.Vec3
	Normal   mathutil.Vec3
	Material material.Material
}

// NewPlane normalizes the normal and rejects a zero one.
func NewPlane(center, normal mathutil.Vec3, mat material.Material) (*Plane, error) {
	n := normal.Normalize()
	if n == (mathutil.Vec3{}) {
		return nil, fmt.Errorf("primitive: plane normal must be non-zero")
	}
	if mat == nil {
		return nil, fmt.Errorf("primitive: plane needs a material")
	}
	return &Plane{Center: center, Normal: n, Material: mat}, nil
}

// Intersect hits the plane from either side. The reported normal is the plane's own.
func (p *Plane) Intersect(ray Ray) (Intersection, bool) {
	d := p.Normal.Dot(ray.Direction)
	if math.Abs(d) < parallelEpsilon {
		return Intersection{}, false
	}

	t := p.Center.Sub(ray.Origin).Dot(p.Normal) / d
	if t < 0 {
		return Intersection{}, false
	}

	return Intersection{
		Pos:      ray.At(t),
		Normal:   p.Normal,
		Distance: t,
		Material: p.Material,
	}, true
}
