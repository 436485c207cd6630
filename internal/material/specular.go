package material

import (
	"fmt"
	"math"

	"rayblaster/internal/mathutil"
)

// Specular is a Blinn-Phong surface: a masked Lambertian term plus a specular lobe.
type Specular struct {
	KDiff      float64
	KSpec      float64
	Shininess  float64
	DiffColour mathutil.Vec3
	SpecColour mathutil.Vec3
}

// NewSpecular validates the exponent; everything else is accepted as given.
func NewSpecular(kDiff, kSpec, shininess float64, diffColour, specColour mathutil.Vec3) (*Specular, error) {
	if !(shininess > 0) {
		return nil, fmt.Errorf("material: shininess must be > 0, got %v", shininess)
	}
	return &Specular{
		KDiff:      kDiff,
		KSpec:      kSpec,
		Shininess:  shininess,
		DiffColour: diffColour,
		SpecColour: specColour,
	}, nil
}

// Sample evaluates Blinn-Phong. The specular lobe is not masked by the facing test;
// a surface turned away from the light is normally removed by the shadow ray instead.
func (s *Specular) Sample(normal, rayDir, lightDir mathutil.Vec3) mathutil.Vec3 {
	half := lightDir.Sub(rayDir).Normalize()

	var diffuse mathutil.Vec3
	if ndl := normal.Dot(lightDir); ndl > 0 {
		diffuse = s.DiffColour.Scale(s.KDiff * ndl)
	}

	ndh := normal.Dot(half)
	if ndh < 0 {
		ndh = 0
	}
	specular := s.SpecColour.Scale(s.KSpec * math.Pow(ndh, s.Shininess))

	return diffuse.Add(specular)
}
