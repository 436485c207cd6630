package primitive

import "rayblaster/internal/mathutil"

// RayKind tags a ray for statistics; it does not change how the ray is traced.
type RayKind uint8

const (
	Primary RayKind = iota
	Shadow
)

func (k RayKind) String() string {
	switch k {
	case Primary:
		return "primary"
	case Shadow:
		return "shadow"
	}
	return "unknown"
}

// Ray is an origin plus a unit direction. Value type, never mutated after construction.
type Ray struct {
	Origin    mathutil.Vec3
	Direction mathutil.Vec3
	Kind      RayKind
}

// NewRay builds a primary ray. direction must already be unit length.
func NewRay(origin, direction mathutil.Vec3) Ray {
	return Ray{Origin: origin, Direction: direction, Kind: Primary}
}

// FromOrigin builds a primary ray leaving the camera at the world origin.
func FromOrigin(direction mathutil.Vec3) Ray {
	return Ray{Direction: direction, Kind: Primary}
}

// ShadowRay builds a ray used only for occlusion tests.
func ShadowRay(origin, direction mathutil.Vec3) Ray {
	return Ray{Origin: origin, Direction: direction, Kind: Shadow}
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float64) mathutil.Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}
