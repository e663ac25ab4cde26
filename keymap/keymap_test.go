package keymap

import (
	"testing"
)

func TestLookup(t *testing.T) {
	table := []struct {
		sc       Scancode
		expected KeyCode
	}{
		{ScanA, KeyA},
		{ScanZ, KeyZ},
		{Scan1, Key1},
		{Scan0, Key0},
		{ScanReturn, KeyEnter},
		{ScanReturn2, KeyEnter},
		{ScanEscape, KeyEsc},
		{ScanSpace, KeySpace},
		{ScanCapsLock, KeyCapsLock},
		{ScanNumLockClear, KeyNumLock},
		{ScanF1, KeyF1},
		{ScanF12, KeyF12},
		{ScanF24, KeyF24},
		{ScanKP0, KeyKP0},
		{ScanKPEnter, KeyKPEnter},
		{ScanKPEqualsAS400, KeyKPEqual},
		{ScanNonUSHash, KeyBackslash},
		{ScanNonUSBackslash, KeyBackslash},
		{ScanLCtrl, KeyLeftCtrl},
		{ScanRAlt, KeyRightAlt},
		{ScanLGUI, KeyLeftMeta},
		{ScanSelect, KeySelect},
		{ScanClear, KeyClear},
	}

	for _, entry := range table {
		if got := Lookup(entry.sc); got != entry.expected {
			t.Fatalf("Lookup(%d): got %d, expected %d", entry.sc, got, entry.expected)
		}
	}
}

func TestLookupUnmapped(t *testing.T) {
	for _, sc := range []Scancode{ScanUnknown, 1, 2, 3, ScanApplication, ScanExecute, 231, 255, 256, 4096} {
		if got := Lookup(sc); got != KeyReserved {
			t.Fatalf("Lookup(%d): got %d, expected KeyReserved", sc, got)
		}
	}
}

func TestSpecialCodeValues(t *testing.T) {
	// The input translator special-cases these two codes by value.
	if KeyCapsLock != 0x3a {
		t.Fatalf("KeyCapsLock: got %#x, expected 0x3a", KeyCapsLock)
	}
	if KeyNumLock != 0x45 {
		t.Fatalf("KeyNumLock: got %#x, expected 0x45", KeyNumLock)
	}
}
