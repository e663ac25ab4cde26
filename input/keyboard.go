// Package input translates host keyboard and mouse events into the
// guest event protocol.
package input

import (
	"github.com/a3f/TinyEMU/keymap"
)

// KeySink receives translated key events, normally the virtual machine.
type KeySink interface {
	SendKeyEvent(pressed bool, code keymap.KeyCode)
}

// Keyboard tracks which guest key codes are currently held down so that
// they can be released in one go when the host keyboard state desyncs.
type Keyboard struct {
	pressed [keymap.NRKeys]bool
}

func NewKeyboard() *Keyboard {
	return &Keyboard{}
}

// HandleKey translates one host key event and forwards it to sink.
//
// CapsLock and NumLock always produce a down-then-up pair: the host
// does not deliver key-up events for them. An unmapped key-up is taken
// as a desync signal (e.g. a desktop-switch hotkey swallowed the real
// key-ups) and releases everything via ResetKeys.
func (kb *Keyboard) HandleKey(sink KeySink, sc keymap.Scancode, down bool) {
	code := keymap.Lookup(sc)
	if code != keymap.KeyReserved {
		if code == keymap.KeyCapsLock || code == keymap.KeyNumLock {
			sink.SendKeyEvent(true, code)
			sink.SendKeyEvent(false, code)
			return
		}
		if code < keymap.NRKeys {
			kb.pressed[code] = down
		}
		sink.SendKeyEvent(down, code)
		return
	}
	if !down {
		kb.ResetKeys(sink)
	}
}

// ResetKeys sends a key-up for every tracked key currently held down
// and clears the table. Calling it again immediately sends nothing.
func (kb *Keyboard) ResetKeys(sink KeySink) {
	for code := 1; code < keymap.NRKeys; code++ {
		if kb.pressed[code] {
			sink.SendKeyEvent(false, keymap.KeyCode(code))
			kb.pressed[code] = false
		}
	}
}
