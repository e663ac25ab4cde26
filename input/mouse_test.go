package input

import (
	"testing"
)

type mouseEvent struct {
	x, y, dz int
	buttons  uint8
}

type recordingMouseSink struct {
	events []mouseEvent
}

func (s *recordingMouseSink) SendMouseEvent(x, y, dz int, buttons uint8) {
	s.events = append(s.events, mouseEvent{x, y, dz, buttons})
}

func TestMapButtons(t *testing.T) {
	table := []struct {
		state    uint32
		expected uint8
	}{
		{0, 0},
		{ButtonLeft, 1 << 0},
		{ButtonRight, 1 << 1},
		{ButtonMiddle, 1 << 2},
		{ButtonLeft | ButtonMiddle | ButtonRight, 0x7},
	}

	for _, entry := range table {
		if got := MapButtons(entry.state); got != entry.expected {
			t.Fatalf("MapButtons(%#x): got %#x, expected %#x", entry.state, got, entry.expected)
		}
	}
}

func TestScaleAbs(t *testing.T) {
	table := []struct {
		v, span  int
		expected int
	}{
		{0, 640, 0},
		{320, 640, 16384},
		{100, 800, 4096},
	}

	for _, entry := range table {
		if got := ScaleAbs(entry.v, entry.span); got != entry.expected {
			t.Fatalf("ScaleAbs(%d, %d): got %d, expected %d", entry.v, entry.span, got, entry.expected)
		}
	}

	// The rightmost pixel must stay inside the guest space.
	for _, span := range []int{640, 800, 1024, 1920} {
		if got := ScaleAbs(span-1, span); got >= AbsScale {
			t.Fatalf("ScaleAbs(%d, %d): got %d, expected < %d", span-1, span, got, AbsScale)
		}
	}
}

func TestSendMouseAbsolute(t *testing.T) {
	sink := &recordingMouseSink{}
	SendMouse(sink, 320, 100, 0, ButtonLeft, true, 640, 400)
	expected := mouseEvent{16384, 8192, 0, 1 << 0}
	if len(sink.events) != 1 || sink.events[0] != expected {
		t.Fatalf("absolute: got %v, expected [%v]", sink.events, expected)
	}
}

func TestSendMouseRelative(t *testing.T) {
	sink := &recordingMouseSink{}
	SendMouse(sink, -5, 12, 0, ButtonRight|ButtonMiddle, false, 640, 400)
	expected := mouseEvent{-5, 12, 0, 0x6}
	if len(sink.events) != 1 || sink.events[0] != expected {
		t.Fatalf("relative: got %v, expected [%v]", sink.events, expected)
	}
}
