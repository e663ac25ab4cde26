package window

import (
	"github.com/a3f/TinyEMU/machine"
)

// Geometry is the framebuffer shape the current surface was built for.
type Geometry struct {
	Width, Height, Stride int
}

func GeometryOf(fb *machine.FBDevice) Geometry {
	return Geometry{Width: fb.Width, Height: fb.Height, Stride: fb.Stride}
}

// GeometryTracker decides when the host surface must be recreated: on
// first use and whenever any of width, height or stride changed.
type GeometryTracker struct {
	current Geometry
	valid   bool
}

// Ensure records fb's geometry and reports whether a (re)allocation is
// needed. It returns true exactly once per distinct geometry observed
// in sequence.
func (t *GeometryTracker) Ensure(fb *machine.FBDevice) bool {
	g := GeometryOf(fb)
	if t.valid && t.current == g {
		return false
	}
	t.current = g
	t.valid = true
	return true
}
