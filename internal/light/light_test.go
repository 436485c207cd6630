package light

import (
	"testing"

	"rayblaster/internal/mathutil"
)

func TestSpherical(t *testing.T) {
	var l Light = NewSpherical(mathutil.Vec3{25, 20, 10}, mathutil.Vec3{1, 0.5, 0})
	if got := l.Center(); got != (mathutil.Vec3{25, 20, 10}) {
		t.Errorf("Center = %v", got)
	}
	if got := l.Colour(); got != (mathutil.Vec3{1, 0.5, 0}) {
		t.Errorf("Colour = %v", got)
	}
}
