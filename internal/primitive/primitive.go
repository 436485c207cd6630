package primitive

import (
	"rayblaster/internal/material"
	"rayblaster/internal/mathutil"
)

// Intersection describes where a ray hit a primitive.
//
// Normal is not guaranteed to be unit length; callers normalize it before shading.
// Material points at the hit primitive's material and is shared, not copied.
type Intersection struct {
	Pos      mathutil.Vec3
	Normal   mathutil.Vec3
	Distance float64
	Material material.Material
}

// Primitive is a renderable shape. Implementations must be safe for concurrent
// Intersect calls since every render worker reads the same scene.
type Primitive interface {
	Intersect(ray Ray) (Intersection, bool)
}
