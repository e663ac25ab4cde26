//go:build ebiten

package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/a3f/TinyEMU/input"
	"github.com/a3f/TinyEMU/machine"
	"github.com/a3f/TinyEMU/tone"
	"github.com/a3f/TinyEMU/util"
)

func EbitenInitialize(title string, width, height int) {
	ebiten.SetTPS(60)
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(title)
	ebiten.SetCursorMode(ebiten.CursorModeHidden)

	audio.NewContext(tone.DefaultSampleRate)
}

// EbitenFrontend is the alternate backend. The embedding ebiten.Game
// calls Pump from Update and Draw from Draw; pacing comes from
// ebiten's TPS instead of a synchronizer.
type EbitenFrontend struct {
	tracker       GeometryTracker
	frame         *ebiten.Image
	pixels        []byte // RGBA staging, converted from the guest's BGRX
	width, height int

	fb       *machine.FBDevice
	keyboard *input.Keyboard
	keys     []ebiten.Key

	lastX, lastY int
	hasCursor    bool

	tone   *tone.Generator
	player *audio.Player
}

func NewEbitenFrontend(width, height int) (*EbitenFrontend, error) {
	front := &EbitenFrontend{
		width:    width,
		height:   height,
		keyboard: input.NewKeyboard(),
		tone:     tone.NewGenerator(tone.DefaultSampleRate),
	}

	player, err := audio.CurrentContext().NewPlayer(tone.NewReader(front.tone))
	if err != nil {
		return nil, err
	}
	player.Play()
	front.player = player

	return front, nil
}

// Beep sets the speaker frequency; 0 silences it.
func (front *EbitenFrontend) Beep(freq int) {
	front.tone.Beep(freq)
}

// Pump runs one frontend tick, exactly like the SDL backend's Pump but
// with ebiten's polled input model: key edges come from inpututil and
// relative mouse motion is derived from successive cursor positions.
func (front *EbitenFrontend) Pump(m machine.VM) error {
	fb := m.FBDevice()
	if fb == nil {
		return nil
	}

	front.fb = fb
	if front.tracker.Ensure(fb) {
		front.frame = ebiten.NewImage(fb.Width, fb.Height)
		front.pixels = make([]byte, 4*fb.Width*fb.Height)
		front.width = fb.Width
		front.height = fb.Height
		util.Trace("ebiten: framebuffer %dx%d stride %d", fb.Width, fb.Height, fb.Stride)
		// The fresh staging buffer is all black; repaint it in full
		// rather than waiting for the guest to redraw everything.
		front.blit(0, 0, fb.Width, fb.Height)
	}

	fb.Refresh(fb, front.blit)

	front.keys = inpututil.AppendJustPressedKeys(front.keys[:0])
	for _, key := range front.keys {
		if sc, ok := ebitenScancodes[key]; ok {
			front.keyboard.HandleKey(m, sc, true)
		}
	}
	front.keys = inpututil.AppendJustReleasedKeys(front.keys[:0])
	for _, key := range front.keys {
		if sc, ok := ebitenScancodes[key]; ok {
			front.keyboard.HandleKey(m, sc, false)
		}
	}

	x, y := ebiten.CursorPosition()
	if !front.hasCursor {
		front.lastX, front.lastY = x, y
		front.hasCursor = true
	}
	if x != front.lastX || y != front.lastY {
		var state uint32
		state |= util.MaskIf(ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft), input.ButtonLeft)
		state |= util.MaskIf(ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle), input.ButtonMiddle)
		state |= util.MaskIf(ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight), input.ButtonRight)

		if absolute := m.MouseIsAbsolute(); absolute {
			input.SendMouse(m, x, y, 0, state, true, front.width, front.height)
		} else {
			input.SendMouse(m, x-front.lastX, y-front.lastY, 0, state, false, front.width, front.height)
		}
		front.lastX, front.lastY = x, y
	}

	return nil
}

// blit converts one dirty rectangle from the guest's 32bpp BGRX layout
// into the RGBA staging buffer.
func (front *EbitenFrontend) blit(x, y, w, h int) {
	blitBGRX(front.pixels, front.width, front.fb, x, y, w, h)
}

func (front *EbitenFrontend) Draw(screen *ebiten.Image) {
	if front.frame == nil {
		return
	}
	front.frame.WritePixels(front.pixels)
	screen.DrawImage(front.frame, nil)
}

func (front *EbitenFrontend) Layout(outsideWidth, outsideHeight int) (int, int) {
	return front.width, front.height
}
