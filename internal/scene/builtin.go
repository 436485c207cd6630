package scene

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"

	"rayblaster/internal/light"
	"rayblaster/internal/material"
	"rayblaster/internal/mathutil"
	"rayblaster/internal/primitive"
)

var builtins = map[string]func() *Scene{
	"sphere":   Sphere,
	"spheres":  Spheres,
	"specular": SpecularSpheres,
}

var fold = cases.Fold()

// Names returns the registered scene names, sorted.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup builds a fresh scene by name. Names are matched case-insensitively;
// a name ending in .json is loaded from disk instead.
func Lookup(name string) (*Scene, error) {
	name = strings.TrimSpace(name)
	if strings.HasSuffix(fold.String(name), ".json") {
		return Load(name)
	}
	build, ok := builtins[fold.String(name)]
	if !ok {
		return nil, fmt.Errorf("scene: %q: %w", name, ErrUnknownScene)
	}
	return build(), nil
}

func diffuse(r, g, b float64) material.Material {
	return material.NewDiffuse(mathutil.Vec3{r, g, b})
}

// Sphere is a single green sphere lit from the upper right.
func Sphere() *Scene {
	s := &Scene{}
	s.Add(&primitive.Sphere{Center: mathutil.Vec3{0, 0, -8}, Radius: 3.5, Material: diffuse(0, 1, 0)})
	s.AddLight(light.NewSpherical(mathutil.Vec3{10, 10, 0}, mathutil.Vec3{1, 1, 1}))
	return s
}

// Spheres is a cyan ground plane with four coloured spheres and one white light.
func Spheres() *Scene {
	s := &Scene{}
	s.Add(
		&primitive.Plane{Center: mathutil.Vec3{0, -5, 0}, Normal: mathutil.Vec3{0, 1, 0}, Material: diffuse(0, 1, 1)},
		&primitive.Sphere{Center: mathutil.Vec3{-10, 10, -25}, Radius: 2, Material: diffuse(1, 0, 1)},
		&primitive.Sphere{Center: mathutil.Vec3{0, 0, -10}, Radius: 2, Material: diffuse(0, 0, 1)},
		&primitive.Sphere{Center: mathutil.Vec3{7, 8, -15}, Radius: 3, Material: diffuse(0, 1, 0)},
		&primitive.Sphere{Center: mathutil.Vec3{-12, 7, -15}, Radius: 1.5, Material: diffuse(1, 0, 0)},
	)
	s.AddLight(light.NewSpherical(mathutil.Vec3{25, 20, 10}, mathutil.Vec3{1, 1, 1}))
	return s
}

// SpecularSpheres shows Blinn-Phong highlights under a warm key and a cool fill light.
func SpecularSpheres() *Scene {
	white := mathutil.Vec3{1, 1, 1}
	shiny := func(c mathutil.Vec3, shininess float64) material.Material {
		return &material.Specular{KDiff: 0.7, KSpec: 0.5, Shininess: shininess, DiffColour: c, SpecColour: white}
	}

	s := &Scene{}
	s.Add(
		&primitive.Plane{Center: mathutil.Vec3{0, -4, 0}, Normal: mathutil.Vec3{0, 1, 0}, Material: diffuse(0.6, 0.6, 0.6)},
		&primitive.Sphere{Center: mathutil.Vec3{-5, -1, -14}, Radius: 3, Material: shiny(mathutil.Vec3{0.9, 0.2, 0.2}, 8)},
		&primitive.Sphere{Center: mathutil.Vec3{0, -1.5, -10}, Radius: 2.5, Material: shiny(mathutil.Vec3{0.2, 0.9, 0.2}, 32)},
		&primitive.Sphere{Center: mathutil.Vec3{5, -1, -14}, Radius: 3, Material: shiny(mathutil.Vec3{0.2, 0.3, 0.9}, 128)},
	)
	s.AddLight(
		light.NewSpherical(mathutil.Vec3{-15, 20, 5}, mathutil.Vec3{0.8, 0.7, 0.6}),
		light.NewSpherical(mathutil.Vec3{20, 10, 0}, mathutil.Vec3{0.2, 0.3, 0.5}),
	)
	return s
}
