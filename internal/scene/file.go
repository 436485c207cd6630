package scene

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"rayblaster/internal/light"
	"rayblaster/internal/material"
	"rayblaster/internal/mathutil"
	"rayblaster/internal/primitive"
)

// File is the JSON form of a scene.
type File struct {
	Primitives []PrimitiveDef `json:"primitives"`
	Lights     []LightDef     `json:"lights"`
}

// PrimitiveDef describes a sphere ("center", "radius") or a plane ("center", "normal").
type PrimitiveDef struct {
	Type     string        `json:"type"`
	Center   mathutil.Vec3 `json:"center"`
	Radius   float64       `json:"radius,omitempty"`
	Normal   mathutil.Vec3 `json:"normal"`
	Material MaterialDef   `json:"material"`
}

// MaterialDef describes a diffuse ("colour") or specular material.
type MaterialDef struct {
	Type       string        `json:"type"`
	Colour     mathutil.Vec3 `json:"colour"`
	KDiff      float64       `json:"k_diff,omitempty"`
	KSpec      float64       `json:"k_spec,omitempty"`
	Shininess  float64       `json:"shininess,omitempty"`
	DiffColour mathutil.Vec3 `json:"diff_colour"`
	SpecColour mathutil.Vec3 `json:"spec_colour"`
}

// LightDef describes a point light. Type may be omitted.
type LightDef struct {
	Type   string        `json:"type,omitempty"`
	Center mathutil.Vec3 `json:"center"`
	Colour mathutil.Vec3 `json:"colour"`
}

// Load reads a JSON scene file.
func Load(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scene: read %s: %w", path, err)
	}
	defer f.Close()

	s, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("scene: %s: %w", path, err)
	}
	return s, nil
}

// Decode parses a JSON scene and builds it. Unknown fields are rejected.
func Decode(r io.Reader) (*Scene, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var file File
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	return file.Build()
}

// Build turns the description into a scene, validating each element.
func (f File) Build() (*Scene, error) {
	s := &Scene{}
	for i, def := range f.Primitives {
		p, err := def.build()
		if err != nil {
			return nil, fmt.Errorf("primitive %d: %w", i, err)
		}
		s.Add(p)
	}
	for i, def := range f.Lights {
		if def.Type != "" && def.Type != "spherical" {
			return nil, fmt.Errorf("light %d: unknown type %q", i, def.Type)
		}
		s.AddLight(light.NewSpherical(def.Center, def.Colour))
	}
	return s, nil
}

func (def PrimitiveDef) build() (primitive.Primitive, error) {
	mat, err := def.Material.build()
	if err != nil {
		return nil, err
	}

	switch def.Type {
	case "sphere":
		return primitive.NewSphere(def.Center, def.Radius, mat)
	case "plane":
		return primitive.NewPlane(def.Center, def.Normal, mat)
	default:
		return nil, fmt.Errorf("unknown type %q", def.Type)
	}
}

func (def MaterialDef) build() (material.Material, error) {
	switch def.Type {
	case "diffuse":
		return material.NewDiffuse(def.Colour), nil
	case "specular":
		return material.NewSpecular(def.KDiff, def.KSpec, def.Shininess, def.DiffColour, def.SpecColour)
	default:
		return nil, fmt.Errorf("material: unknown type %q", def.Type)
	}
}
