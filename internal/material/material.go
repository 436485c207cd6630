package material

import "rayblaster/internal/mathutil"

// Material converts hit geometry and a light direction into a radiance contribution.
//
// normal and lightDir are unit length; lightDir points from the surface towards the
// light. rayDir is the direction of the ray that hit the surface. The result is linear,
// unclamped and gets filtered by the light colour by the caller.
type Material interface {
	Sample(normal, rayDir, lightDir mathutil.Vec3) mathutil.Vec3
}
