// Package tone synthesizes the PC speaker beep: a sine wave whose
// frequency is set asynchronously by the machine and pulled by the
// host audio device's callback.
package tone

import (
	"math"
	"sync"
)

const (
	// Amplitude of the generated sine in 16-bit sample units.
	Amplitude = 8000
	// DefaultSampleRate is requested from the host audio device; the
	// device may negotiate a different one (see SetSampleRate).
	DefaultSampleRate = 44100
	// BufferSamples is the host audio buffer size requested at device
	// open.
	BufferSamples = 4096
)

// Generator produces signed 16-bit mono sine samples. Beep is called
// from the main loop while Fill runs on the audio callback thread, so
// all state is guarded by one mutex on both sides.
type Generator struct {
	mu         sync.Mutex
	freq       int
	phase      float64
	sampleRate int

	// scratch is only touched by the audio callback thread.
	scratch []int16
}

func NewGenerator(sampleRate int) *Generator {
	return &Generator{sampleRate: sampleRate}
}

// Beep replaces the target frequency (Hz). It takes effect on the next
// audio callback; 0 silences the output.
func (g *Generator) Beep(freq int) {
	g.mu.Lock()
	g.freq = freq
	g.mu.Unlock()
}

// SetSampleRate records the rate the audio device actually negotiated.
func (g *Generator) SetSampleRate(rate int) {
	g.mu.Lock()
	g.sampleRate = rate
	g.mu.Unlock()
}

// Fill writes len(buf) samples, advancing the phase accumulator by the
// current frequency per sample: sample i of a steady tone f at rate r
// is Amplitude*sin(2*pi*f*i/r).
func (g *Generator) Fill(buf []int16) {
	g.mu.Lock()
	defer g.mu.Unlock()

	step := 2 * math.Pi / float64(g.sampleRate)
	for i := range buf {
		buf[i] = int16(Amplitude * math.Sin(g.phase*step))
		g.phase += float64(g.freq)
	}
}

// Scratch returns a reusable sample buffer of length n, growing the
// backing array only when n does. The audio callback fills it instead
// of allocating on every invocation.
func (g *Generator) Scratch(n int) []int16 {
	if cap(g.scratch) < n {
		g.scratch = make([]int16, n)
	}
	return g.scratch[:n]
}

// Reader adapts a Generator to the pull model of audio players that
// read signed 16-bit little-endian stereo (each mono sample duplicated
// into both channels).
type Reader struct {
	g    *Generator
	mono []int16
}

func NewReader(g *Generator) *Reader {
	return &Reader{g: g}
}

func (r *Reader) Read(buf []byte) (int, error) {
	n := len(buf) / 4 // 2 channels x 2 bytes
	if n == 0 {
		return 0, nil
	}
	if cap(r.mono) < n {
		r.mono = make([]int16, n)
	}
	mono := r.mono[:n]
	r.g.Fill(mono)
	for i, v := range mono {
		lo, hi := byte(v), byte(v>>8)
		buf[i*4+0] = lo
		buf[i*4+1] = hi
		buf[i*4+2] = lo
		buf[i*4+3] = hi
	}
	return n * 4, nil
}
