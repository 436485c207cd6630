package render

import (
	"math"

	"rayblaster/internal/mathutil"
	"rayblaster/internal/primitive"
)

const (
	// shadowBias pushes shadow ray origins off the surface along the light
	// direction so they do not re-hit the surface they start on.
	shadowBias = 1e-6

	// Lights closer than this to a hit point have no usable direction.
	minLightDistance = 1e-12
)

// Background is returned for rays that hit nothing.
var Background = mathutil.Vec3{0, 0, 0}

// Trace returns the linear colour seen along ray.
func (r *Renderer) Trace(ray primitive.Ray) mathutil.Vec3 {
	var c counters
	return r.trace(ray, &c)
}

func (r *Renderer) trace(ray primitive.Ray, c *counters) mathutil.Vec3 {
	c.primary++

	hit, ok := r.tracePrimary(ray)
	if !ok {
		return Background
	}

	normal := hit.Normal.Normalize()
	var colour mathutil.Vec3
	for _, l := range r.scene.Lights {
		toLight := l.Center().Sub(hit.Pos)
		dist := toLight.Len()
		if dist < minLightDistance {
			continue
		}
		dir := toLight.Scale(1 / dist)

		c.shadow++
		shadow := primitive.ShadowRay(hit.Pos.Add(dir.Scale(shadowBias)), dir)
		if r.occluded(shadow, dist) {
			continue
		}

		colour = colour.Add(hit.Material.Sample(normal, ray.Direction, dir).Mul(l.Colour()))
	}
	return colour
}

// tracePrimary scans every primitive and keeps the nearest hit.
// Ties keep the primitive that comes first in the scene.
func (r *Renderer) tracePrimary(ray primitive.Ray) (primitive.Intersection, bool) {
	var nearest primitive.Intersection
	found := false
	tnear := math.Inf(1)

	for _, p := range r.scene.Primitives {
		if hit, ok := p.Intersect(ray); ok && hit.Distance < tnear {
			tnear = hit.Distance
			nearest = hit
			found = true
		}
	}
	return nearest, found
}

// occluded reports whether anything lies on ray closer than maxDist.
// Primitives behind the light do not cast shadows.
func (r *Renderer) occluded(ray primitive.Ray, maxDist float64) bool {
	for _, p := range r.scene.Primitives {
		if hit, ok := p.Intersect(ray); ok && hit.Distance < maxDist {
			return true
		}
	}
	return false
}
