package main

import (
	"github.com/a3f/TinyEMU/input"
	"github.com/a3f/TinyEMU/keymap"
	"github.com/a3f/TinyEMU/machine"
	"github.com/a3f/TinyEMU/util"
	"github.com/a3f/TinyEMU/window"
)

// melodyNotes is the beep sequence the demo machine cycles through;
// zero entries are rests.
var melodyNotes = []int{440, 0, 523, 0, 659, 0, 0, 0}

const crosshairSize = 15

type demoRect struct {
	x, y, w, h int
}

// DemoMachine is a stand-in guest that exercises every frontend
// operation without a real emulator core: a scrolling gradient
// framebuffer reporting banded dirty rectangles, a crosshair pointer
// following mouse events, and a beep melody through the speaker.
// Esc asks the frontend loop to stop; F2 toggles between absolute and
// relative pointer mode.
type DemoMachine struct {
	fb       *machine.FBDevice
	beeper   window.Beeper
	absolute bool
	quit     bool

	frame   int
	band    int
	lastKey keymap.KeyCode

	melody   *util.TickCounter
	melodyAt int

	mouseX, mouseY   int
	buttons          uint8
	cursorX, cursorY int
	prevCursor       demoRect
	havePrevCursor   bool
}

func NewDemoMachine(width, height int, beeper window.Beeper, absolute bool) *DemoMachine {
	fb := &machine.FBDevice{
		Width:  width,
		Height: height,
		Stride: width * 4,
		Data:   make([]byte, width*height*4),
	}
	d := &DemoMachine{
		fb:       fb,
		beeper:   beeper,
		absolute: absolute,
		melody:   util.NewTickCounter(30),
	}
	fb.Refresh = d.refresh
	return d
}

func (d *DemoMachine) FBDevice() *machine.FBDevice {
	return d.fb
}

// Quit reports whether the guest asked the frontend loop to stop.
func (d *DemoMachine) Quit() bool {
	return d.quit
}

func (d *DemoMachine) SendKeyEvent(pressed bool, code keymap.KeyCode) {
	util.Trace("key event: pressed=%v code=%#x", pressed, code)
	if !pressed {
		return
	}
	switch code {
	case keymap.KeyEsc:
		d.quit = true
	case keymap.KeyF2:
		d.absolute = !d.absolute
	default:
		d.lastKey = code
	}
}

func (d *DemoMachine) SendMouseEvent(x, y, dz int, buttons uint8) {
	util.Trace("mouse event: x=%d y=%d dz=%d buttons=%#x", x, y, dz, buttons)
	d.mouseX, d.mouseY = x, y
	d.buttons = buttons
	if d.absolute {
		d.cursorX = x * d.fb.Width / input.AbsScale
		d.cursorY = y * d.fb.Height / input.AbsScale
	} else {
		d.cursorX += x
		d.cursorY += y
	}
	d.cursorX = min(max(d.cursorX, 0), d.fb.Width-1)
	d.cursorY = min(max(d.cursorY, 0), d.fb.Height-1)
}

func (d *DemoMachine) MouseIsAbsolute() bool {
	return d.absolute
}

// refresh redraws the whole screen on the first call and a moving
// band afterwards, then repaints the crosshair at the latest pointer
// position, reporting exactly the touched rectangles.
func (d *DemoMachine) refresh(fb *machine.FBDevice, redraw machine.RedrawFunc) {
	const bandHeight = 16

	if d.frame == 0 {
		d.fillRect(0, 0, fb.Width, fb.Height)
		redraw(0, 0, fb.Width, fb.Height)
	} else {
		y := d.band
		h := bandHeight
		if y+h > fb.Height {
			h = fb.Height - y
		}
		d.fillRect(0, y, fb.Width, h)
		redraw(0, y, fb.Width, h)
		d.band = (d.band + bandHeight) % fb.Height
	}

	// Restore what the crosshair covered last frame, then draw it at
	// the current position.
	if d.havePrevCursor {
		prev := d.prevCursor
		d.fillRect(prev.x, prev.y, prev.w, prev.h)
		redraw(prev.x, prev.y, prev.w, prev.h)
	}
	cur := d.drawCrosshair()
	redraw(cur.x, cur.y, cur.w, cur.h)
	d.prevCursor, d.havePrevCursor = cur, true

	d.frame++

	if d.beeper != nil && d.melody.Tick(1) {
		d.melodyAt = (d.melodyAt + 1) % len(melodyNotes)
		d.beeper.Beep(melodyNotes[d.melodyAt])
	}
}

// fillRect paints the gradient pattern in the framebuffer's BGRX
// layout. The pattern shifts with the frame count and the last key
// pressed, so input visibly changes the picture.
func (d *DemoMachine) fillRect(x, y, w, h int) {
	for row := y; row < y+h; row++ {
		off := row*d.fb.Stride + x*4
		for col := x; col < x+w; col++ {
			d.fb.Data[off+0] = byte(col ^ row)              // b
			d.fb.Data[off+1] = byte(row + d.frame)          // g
			d.fb.Data[off+2] = byte(col + int(d.lastKey)*8) // r
			d.fb.Data[off+3] = 0
			off += 4
		}
	}
}

// drawCrosshair paints the pointer at the last mouse position, white
// normally and red while any button is held, and returns the covered
// rectangle.
func (d *DemoMachine) drawCrosshair() demoRect {
	half := crosshairSize / 2
	x0 := max(d.cursorX-half, 0)
	x1 := min(d.cursorX+half, d.fb.Width-1)
	y0 := max(d.cursorY-half, 0)
	y1 := min(d.cursorY+half, d.fb.Height-1)

	var b, g byte = 0xff, 0xff
	if d.buttons != 0 {
		b, g = 0, 0
	}
	for x := x0; x <= x1; x++ {
		d.setPixel(x, d.cursorY, b, g, 0xff)
	}
	for y := y0; y <= y1; y++ {
		d.setPixel(d.cursorX, y, b, g, 0xff)
	}
	return demoRect{x0, y0, x1 - x0 + 1, y1 - y0 + 1}
}

func (d *DemoMachine) setPixel(x, y int, b, g, r byte) {
	off := y*d.fb.Stride + x*4
	d.fb.Data[off+0] = b
	d.fb.Data[off+1] = g
	d.fb.Data[off+2] = r
	d.fb.Data[off+3] = 0
}
