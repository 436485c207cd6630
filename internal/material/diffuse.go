package material

import "rayblaster/internal/mathutil"

// Diffuse is a Lambertian surface with a flat colour.
type Diffuse struct {
	Colour mathutil.Vec3
}

func NewDiffuse(colour mathutil.Vec3) *Diffuse {
	return &Diffuse{Colour: colour}
}

// Sample returns max(n·l, 0) * colour.
func (d *Diffuse) Sample(normal, _, lightDir mathutil.Vec3) mathutil.Vec3 {
	ndl := normal.Dot(lightDir)
	if ndl <= 0 {
		return mathutil.Vec3{}
	}
	return d.Colour.Scale(ndl)
}
