package tone

import (
	"math"
	"testing"
)

func TestFillSine(t *testing.T) {
	const (
		rate = 44100
		freq = 441 // one period every 100 samples
	)
	g := NewGenerator(rate)
	g.Beep(freq)

	buf := make([]int16, 200) // two full periods
	g.Fill(buf)

	for i, got := range buf {
		expected := Amplitude * math.Sin(2*math.Pi*float64(freq)*float64(i)/rate)
		if math.Abs(float64(got)-expected) > 1.0 {
			t.Fatalf("sample %d: got %d, expected %.2f", i, got, expected)
		}
	}
}

func TestFillSilence(t *testing.T) {
	g := NewGenerator(DefaultSampleRate)
	buf := make([]int16, 64)
	g.Fill(buf)
	for i, got := range buf {
		if got != 0 {
			t.Fatalf("sample %d: got %d, expected silence", i, got)
		}
	}
}

func TestFillPhaseContinuity(t *testing.T) {
	const (
		rate = 44100
		freq = 441
	)
	g := NewGenerator(rate)
	g.Beep(freq)

	// Two half-size fills must equal one contiguous fill.
	split := make([]int16, 100)
	g.Fill(split[:50])
	g.Fill(split[50:])

	g2 := NewGenerator(rate)
	g2.Beep(freq)
	whole := make([]int16, 100)
	g2.Fill(whole)

	for i := range whole {
		if split[i] != whole[i] {
			t.Fatalf("sample %d: split fill %d != contiguous fill %d", i, split[i], whole[i])
		}
	}
}

func TestScratchReuse(t *testing.T) {
	g := NewGenerator(DefaultSampleRate)

	first := g.Scratch(64)
	if len(first) != 64 {
		t.Fatalf("Scratch(64): got len %d", len(first))
	}
	first[0] = 42

	// A smaller or equal request must reuse the same backing array.
	second := g.Scratch(16)
	if len(second) != 16 || second[0] != 42 {
		t.Fatalf("Scratch(16): got len %d, first sample %d; expected reused buffer", len(second), second[0])
	}

	// A larger request grows it.
	third := g.Scratch(128)
	if len(third) != 128 {
		t.Fatalf("Scratch(128): got len %d", len(third))
	}
}

func TestReaderStereoS16LE(t *testing.T) {
	const rate = 44100
	g := NewGenerator(rate)
	g.Beep(441)

	mono := make([]int16, 32)
	ref := NewGenerator(rate)
	ref.Beep(441)
	ref.Fill(mono)

	buf := make([]byte, 32*4)
	n, err := NewReader(g).Read(buf)
	if err != nil {
		t.Fatal(err)
	}
	if n != len(buf) {
		t.Fatalf("Read: got %d bytes, expected %d", n, len(buf))
	}
	for i, v := range mono {
		left := int16(uint16(buf[i*4]) | uint16(buf[i*4+1])<<8)
		right := int16(uint16(buf[i*4+2]) | uint16(buf[i*4+3])<<8)
		if left != v || right != v {
			t.Fatalf("frame %d: got (%d, %d), expected (%d, %d)", i, left, right, v, v)
		}
	}
}
