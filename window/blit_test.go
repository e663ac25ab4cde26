package window

import (
	"testing"

	"github.com/a3f/TinyEMU/machine"
)

func testFB(width, height, stride int) *machine.FBDevice {
	fb := &machine.FBDevice{
		Width:  width,
		Height: height,
		Stride: stride,
		Data:   make([]byte, height*stride),
	}
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			off := row*stride + col*4
			fb.Data[off+0] = byte(10 + col) // b
			fb.Data[off+1] = byte(20 + row) // g
			fb.Data[off+2] = byte(30 + col) // r
			fb.Data[off+3] = 0
		}
	}
	return fb
}

func TestBlitBGRXFullFrame(t *testing.T) {
	const width, height = 4, 3
	// Stride wider than width*4, as a guest framebuffer may be.
	fb := testFB(width, height, 24)

	// A fresh staging buffer, as allocated after a geometry change;
	// a full blit must repaint every pixel.
	dst := make([]byte, width*height*4)
	blitBGRX(dst, width, fb, 0, 0, width, height)

	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			off := (row*width + col) * 4
			r, g, b, a := dst[off+0], dst[off+1], dst[off+2], dst[off+3]
			if r != byte(30+col) || g != byte(20+row) || b != byte(10+col) || a != 0xff {
				t.Fatalf("pixel (%d,%d): got rgba(%d,%d,%d,%d)", col, row, r, g, b, a)
			}
		}
	}
}

func TestBlitBGRXSubRect(t *testing.T) {
	const width, height = 4, 3
	fb := testFB(width, height, 16)

	dst := make([]byte, width*height*4)
	blitBGRX(dst, width, fb, 1, 1, 2, 1)

	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			off := (row*width + col) * 4
			inside := row == 1 && col >= 1 && col < 3
			if inside {
				if dst[off+3] != 0xff {
					t.Fatalf("pixel (%d,%d) inside rect not converted", col, row)
				}
			} else if dst[off+0] != 0 || dst[off+1] != 0 || dst[off+2] != 0 || dst[off+3] != 0 {
				t.Fatalf("pixel (%d,%d) outside rect touched", col, row)
			}
		}
	}
}
