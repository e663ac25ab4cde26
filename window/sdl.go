//go:build sdl2

package window

// typedef short Sint16;
// typedef unsigned char Uint8;
// void OnTonePlayback(void *userdata, Uint8 *stream, int len);
import "C"
import (
	"fmt"
	"unsafe"

	"github.com/mattn/go-pointer"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/a3f/TinyEMU/input"
	"github.com/a3f/TinyEMU/keymap"
	"github.com/a3f/TinyEMU/machine"
	"github.com/a3f/TinyEMU/tone"
	"github.com/a3f/TinyEMU/util"
)

func Initialize() error {
	return sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO | sdl.INIT_NOPARACHUTE)
}

// SDLFrontend maps the guest framebuffer onto an SDL window, feeds
// host input back to the machine and plays the speaker tone. All
// methods except the audio callback run on the main loop.
type SDLFrontend struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
	surface  *sdl.Surface
	tracker  GeometryTracker

	screenWidth, screenHeight int

	cursor   *sdl.Cursor
	keyboard *input.Keyboard

	tone        *tone.Generator
	audioDevice sdl.AudioDeviceID
	userdata    unsafe.Pointer
}

func NewSDLFrontend(title string, width, height int32) (*SDLFrontend, error) {
	window, err := sdl.CreateWindow(
		title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		width,
		height,
		0,
	)
	if err != nil {
		return nil, fmt.Errorf("could not open display: %w", err)
	}

	front := &SDLFrontend{
		window:       window,
		screenWidth:  int(width),
		screenHeight: int(height),
		keyboard:     input.NewKeyboard(),
		tone:         tone.NewGenerator(tone.DefaultSampleRate),
	}
	front.hideCursor()

	if err := front.openAudio(); err != nil {
		window.Destroy()
		return nil, err
	}

	return front, nil
}

// The guest draws its own pointer, so replace the host cursor with a
// blank 1x8 one.
func (front *SDLFrontend) hideCursor() {
	data := []uint8{0}
	front.cursor = sdl.CreateCursor(&data[0], &data[0], 8, 1, 0, 0)
	sdl.ShowCursor(sdl.ENABLE)
	sdl.SetCursor(front.cursor)
}

func (front *SDLFrontend) openAudio() error {
	front.userdata = pointer.Save(front)

	var have sdl.AudioSpec
	audioDevice, err := sdl.OpenAudioDevice(
		"",
		false,
		&sdl.AudioSpec{
			Freq:     tone.DefaultSampleRate,
			Format:   sdl.AUDIO_S16,
			Channels: 1,
			Samples:  tone.BufferSamples,
			Callback: sdl.AudioCallback(C.OnTonePlayback),
			UserData: front.userdata,
		},
		&have,
		sdl.AUDIO_ALLOW_FREQUENCY_CHANGE,
	)
	if err != nil {
		pointer.Unref(front.userdata)
		front.userdata = nil
		return fmt.Errorf("could not open audio device: %w", err)
	}
	front.tone.SetSampleRate(int(have.Freq))
	sdl.PauseAudioDevice(audioDevice, false)
	front.audioDevice = audioDevice
	return nil
}

// Beep sets the speaker frequency; 0 silences it.
func (front *SDLFrontend) Beep(freq int) {
	front.tone.Beep(freq)
}

// EnsureSurface keeps the host surface, renderer and texture in sync
// with the framebuffer geometry, recreating all three on any change of
// width, height or stride.
func (front *SDLFrontend) EnsureSurface(fb *machine.FBDevice) error {
	if !front.tracker.Ensure(fb) {
		return nil
	}

	if front.texture != nil {
		front.texture.Destroy()
		front.texture = nil
	}
	if front.renderer != nil {
		front.renderer.Destroy()
		front.renderer = nil
	}
	if front.surface != nil {
		front.surface.Free()
		front.surface = nil
	}

	surface, err := sdl.CreateRGBSurfaceFrom(
		unsafe.Pointer(&fb.Data[0]),
		int32(fb.Width),
		int32(fb.Height),
		32,
		fb.Stride,
		0x00ff0000,
		0x0000ff00,
		0x000000ff,
		0x00000000,
	)
	if err != nil {
		return fmt.Errorf("could not create framebuffer surface: %w", err)
	}

	renderer, err := sdl.CreateRenderer(front.window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		surface.Free()
		return fmt.Errorf("could not create renderer: %w", err)
	}

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		renderer.Destroy()
		surface.Free()
		return fmt.Errorf("could not create texture: %w", err)
	}

	front.surface = surface
	front.renderer = renderer
	front.texture = texture
	return nil
}

// present uploads one dirty rectangle into the texture and puts the
// frame on screen. Callers guarantee the rectangle is within bounds.
func (front *SDLFrontend) present(x, y, w, h int) {
	rect := sdl.Rect{X: int32(x), Y: int32(y), W: int32(w), H: int32(h)}
	pitch := int(front.surface.Pitch)
	start := pitch*y + 4*x

	if err := front.texture.Update(&rect, front.surface.Pixels()[start:], pitch); err != nil {
		util.Warn("texture update (%d,%d %dx%d): %v", x, y, w, h, err)
	}
	if err := front.renderer.Copy(front.texture, nil, nil); err != nil {
		util.Warn("render copy: %v", err)
	}
	front.renderer.Present()
}

// Pump runs one frontend tick: sync the surface, let the framebuffer
// push its dirty rectangles, then drain all queued host events without
// blocking. It returns false when the host asked to quit.
func (front *SDLFrontend) Pump(m machine.VM) (bool, error) {
	fb := m.FBDevice()
	if fb == nil {
		return true, nil
	}

	if err := front.EnsureSurface(fb); err != nil {
		return false, err
	}

	fb.Refresh(fb, front.present)

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch ev := event.(type) {
		case *sdl.KeyboardEvent:
			front.keyboard.HandleKey(m, keymap.Scancode(ev.Keysym.Scancode), ev.Type == sdl.KEYDOWN)

		case *sdl.MouseMotionEvent:
			absolute := m.MouseIsAbsolute()
			var x, y int
			if absolute {
				x, y = int(ev.X), int(ev.Y)
			} else {
				x, y = int(ev.XRel), int(ev.YRel)
			}
			input.SendMouse(m, x, y, 0, ev.State, absolute, front.screenWidth, front.screenHeight)

		case *sdl.MouseButtonEvent:
			// Button state is consumed from motion events only.

		case *sdl.QuitEvent:
			return false, nil
		}
	}

	return true, nil
}

func (front *SDLFrontend) Close() {
	if front.audioDevice != 0 {
		sdl.CloseAudioDevice(front.audioDevice)
		front.audioDevice = 0
	}
	if front.userdata != nil {
		pointer.Unref(front.userdata)
		front.userdata = nil
	}
	if front.texture != nil {
		front.texture.Destroy()
		front.texture = nil
	}
	if front.renderer != nil {
		front.renderer.Destroy()
		front.renderer = nil
	}
	if front.surface != nil {
		front.surface.Free()
		front.surface = nil
	}
	if front.cursor != nil {
		sdl.FreeCursor(front.cursor)
		front.cursor = nil
	}
	if front.window != nil {
		front.window.Destroy()
		front.window = nil
	}
}

//export OnTonePlayback
func OnTonePlayback(userdata unsafe.Pointer, stream *C.Uint8, length C.int) {
	n := int(length) / 2
	buf := unsafe.Slice((*C.Sint16)(unsafe.Pointer(stream)), n)
	front := pointer.Restore(userdata).(*SDLFrontend)

	samples := front.tone.Scratch(n)
	front.tone.Fill(samples)
	for i, v := range samples {
		buf[i] = C.Sint16(v)
	}
}
