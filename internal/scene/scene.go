package scene

import (
	"errors"

	"rayblaster/internal/light"
	"rayblaster/internal/primitive"
)

var (
	// ErrUnknownScene is returned by Lookup for names with no registered scene.
	ErrUnknownScene = errors.New("unknown scene")
	// ErrEmptyScene rejects scenes that have nothing to intersect.
	ErrEmptyScene = errors.New("scene has no primitives")
)

// Scene owns the lights and primitives handed to the renderer.
// Order is insertion order; on exactly equal hit distances the earlier primitive wins.
// A scene must not be modified while a render is using it.
type Scene struct {
	Lights     []light.Light
	Primitives []primitive.Primitive
}

// Add appends primitives in order.
func (s *Scene) Add(prims ...primitive.Primitive) {
	s.Primitives = append(s.Primitives, prims...)
}

// AddLight appends lights in order.
func (s *Scene) AddLight(lights ...light.Light) {
	s.Lights = append(s.Lights, lights...)
}

// Validate reports whether the scene can be rendered.
func (s *Scene) Validate() error {
	if s == nil || len(s.Primitives) == 0 {
		return ErrEmptyScene
	}
	return nil
}
