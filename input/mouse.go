package input

// Host mouse button masks, in the windowing library's bit layout.
const (
	ButtonLeft   = 1 << 0
	ButtonMiddle = 1 << 1
	ButtonRight  = 1 << 2
)

// AbsScale is the span of the guest's absolute pointer coordinate
// space: positions map to 0..AbsScale-1.
const AbsScale = 32768

// MouseSink receives translated mouse events, normally the virtual
// machine.
type MouseSink interface {
	SendMouseEvent(x, y, dz int, buttons uint8)
}

// MapButtons remaps the host button mask to the guest encoding. Note
// the guest puts right before middle: bit0=left, bit1=right,
// bit2=middle.
func MapButtons(state uint32) uint8 {
	var buttons uint8
	if state&ButtonLeft != 0 {
		buttons |= 1 << 0
	}
	if state&ButtonRight != 0 {
		buttons |= 1 << 1
	}
	if state&ButtonMiddle != 0 {
		buttons |= 1 << 2
	}
	return buttons
}

// ScaleAbs rescales a window-pixel coordinate into the guest's
// absolute coordinate space. v in [0, span) maps into [0, AbsScale).
func ScaleAbs(v, span int) int {
	return v * AbsScale / span
}

// SendMouse translates one host motion event and forwards it. In
// absolute mode x and y are a window position rescaled against the
// window size (w, h); in relative mode they are a raw delta passed
// through unscaled.
func SendMouse(sink MouseSink, x, y, dz int, state uint32, absolute bool, w, h int) {
	if absolute {
		x = ScaleAbs(x, w)
		y = ScaleAbs(y, h)
	}
	sink.SendMouseEvent(x, y, dz, MapButtons(state))
}
