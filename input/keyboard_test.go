package input

import (
	"testing"

	"github.com/a3f/TinyEMU/keymap"
)

type keyEvent struct {
	pressed bool
	code    keymap.KeyCode
}

type recordingSink struct {
	keys []keyEvent
}

func (s *recordingSink) SendKeyEvent(pressed bool, code keymap.KeyCode) {
	s.keys = append(s.keys, keyEvent{pressed, code})
}

func TestHandleKeyMapped(t *testing.T) {
	table := []struct {
		sc       keymap.Scancode
		down     bool
		expected keyEvent
	}{
		{keymap.ScanA, true, keyEvent{true, keymap.KeyA}},
		{keymap.ScanA, false, keyEvent{false, keymap.KeyA}},
		{keymap.ScanEscape, true, keyEvent{true, keymap.KeyEsc}},
		{keymap.ScanLShift, false, keyEvent{false, keymap.KeyLeftShift}},
	}

	for _, entry := range table {
		kb := NewKeyboard()
		sink := &recordingSink{}
		kb.HandleKey(sink, entry.sc, entry.down)
		if len(sink.keys) != 1 || sink.keys[0] != entry.expected {
			t.Fatalf("HandleKey(%d, %v): got %v, expected [%v]", entry.sc, entry.down, sink.keys, entry.expected)
		}
	}
}

func TestHandleKeyLockKeys(t *testing.T) {
	// Down-then-up must be synthesized for both event directions.
	for _, sc := range []keymap.Scancode{keymap.ScanCapsLock, keymap.ScanNumLockClear} {
		for _, down := range []bool{true, false} {
			kb := NewKeyboard()
			sink := &recordingSink{}
			kb.HandleKey(sink, sc, down)
			code := keymap.Lookup(sc)
			if len(sink.keys) != 2 ||
				sink.keys[0] != (keyEvent{true, code}) ||
				sink.keys[1] != (keyEvent{false, code}) {
				t.Fatalf("HandleKey(%d, %v): got %v, expected down+up of %d", sc, down, sink.keys, code)
			}
		}
	}
}

func TestHandleKeyUnmappedDown(t *testing.T) {
	kb := NewKeyboard()
	sink := &recordingSink{}
	kb.HandleKey(sink, keymap.ScanApplication, true)
	if len(sink.keys) != 0 {
		t.Fatalf("unmapped key-down: got %v, expected no events", sink.keys)
	}
}

func TestResetOnUnmappedKeyUp(t *testing.T) {
	kb := NewKeyboard()
	sink := &recordingSink{}

	kb.HandleKey(sink, keymap.ScanA, true)
	kb.HandleKey(sink, keymap.ScanLShift, true)
	kb.HandleKey(sink, keymap.ScanB, true)
	kb.HandleKey(sink, keymap.ScanB, false)
	sink.keys = nil

	// Unmapped key-up releases everything still held.
	kb.HandleKey(sink, keymap.ScanApplication, false)

	expected := map[keymap.KeyCode]bool{keymap.KeyA: true, keymap.KeyLeftShift: true}
	if len(sink.keys) != len(expected) {
		t.Fatalf("reset: got %v, expected %d up events", sink.keys, len(expected))
	}
	for _, ev := range sink.keys {
		if ev.pressed || !expected[ev.code] {
			t.Fatalf("reset: unexpected event %v", ev)
		}
		delete(expected, ev.code)
	}

	// Idempotent: a second reset emits nothing.
	sink.keys = nil
	kb.ResetKeys(sink)
	if len(sink.keys) != 0 {
		t.Fatalf("second reset: got %v, expected no events", sink.keys)
	}
}
