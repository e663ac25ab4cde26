package window

import (
	"github.com/a3f/TinyEMU/machine"
)

// blitBGRX converts one rectangle of the guest's 32bpp BGRX
// framebuffer into an RGBA staging buffer laid out dstWidth pixels
// per row. Callers guarantee the rectangle is within bounds.
func blitBGRX(dst []byte, dstWidth int, fb *machine.FBDevice, x, y, w, h int) {
	for row := y; row < y+h; row++ {
		src := row*fb.Stride + 4*x
		off := (row*dstWidth + x) * 4
		for col := 0; col < w; col++ {
			dst[off+0] = fb.Data[src+2] // r
			dst[off+1] = fb.Data[src+1] // g
			dst[off+2] = fb.Data[src+0] // b
			dst[off+3] = 0xff
			src += 4
			off += 4
		}
	}
}
