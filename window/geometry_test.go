package window

import (
	"testing"

	"github.com/a3f/TinyEMU/machine"
)

func TestGeometryTracker(t *testing.T) {
	fb := func(w, h, stride int) *machine.FBDevice {
		return &machine.FBDevice{Width: w, Height: h, Stride: stride}
	}

	table := []struct {
		fb       *machine.FBDevice
		expected bool
	}{
		{fb(640, 400, 2560), true},  // first use always allocates
		{fb(640, 400, 2560), false}, // same tuple: no realloc
		{fb(640, 400, 2560), false},
		{fb(800, 600, 3200), true}, // size change
		{fb(800, 600, 3200), false},
		{fb(800, 600, 4096), true}, // stride-only change
		{fb(640, 400, 2560), true}, // back to a previous tuple still reallocates
		{fb(640, 400, 2560), false},
	}

	var tracker GeometryTracker
	for i, entry := range table {
		if got := tracker.Ensure(entry.fb); got != entry.expected {
			t.Fatalf("step %d: Ensure(%dx%d/%d): got %v, expected %v",
				i, entry.fb.Width, entry.fb.Height, entry.fb.Stride, got, entry.expected)
		}
	}
}
