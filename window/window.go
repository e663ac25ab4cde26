// Package window hosts the machine's display, input and speaker on
// the local windowing stack. Two backends exist behind build tags:
// sdl2 (the primary one) and ebiten.
package window

// Beeper drives the virtual PC speaker.
type Beeper interface {
	Beep(freq int)
}
