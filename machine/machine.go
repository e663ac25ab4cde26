// Package machine declares the guest-side contracts this frontend
// consumes. The emulated machine implements them; the frontend only
// calls them.
package machine

import (
	"github.com/a3f/TinyEMU/keymap"
)

// RedrawFunc pushes one dirty rectangle of the framebuffer to the
// display. Coordinates are pixels within the current framebuffer; the
// caller guarantees the rectangle is within bounds.
type RedrawFunc func(x, y, w, h int)

// FBDevice describes the guest framebuffer. Data is the guest's pixel
// memory (32bpp, R=0x00ff0000 G=0x0000ff00 B=0x000000ff); the frontend
// maps it but never owns or resizes it.
type FBDevice struct {
	Width  int
	Height int
	Stride int // bytes per row
	Data   []byte

	// Refresh redraws whatever changed since the last call, invoking
	// redraw once per dirty rectangle.
	Refresh func(fb *FBDevice, redraw RedrawFunc)
}

// VM is the guest-facing input sink and framebuffer owner.
type VM interface {
	// FBDevice returns the attached framebuffer, or nil if the machine
	// has no display.
	FBDevice() *FBDevice
	SendKeyEvent(pressed bool, code keymap.KeyCode)
	SendMouseEvent(x, y, dz int, buttons uint8)
	// MouseIsAbsolute reports whether the guest expects absolute
	// pointer positions rather than motion deltas.
	MouseIsAbsolute() bool
}
