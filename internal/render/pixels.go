// Package render draws the backdrop with ebiten. The pixel helpers in this
// file carry no ebiten dependency so they can be tested headless.
package render

import (
	"image/color"
	"math"

	"ocean-fx/internal/canvas"
)

// fillGradientRGBA rasterizes g into a one-pixel-wide column of height h, as
// premultiplied RGBA. Each row samples the gradient at its center.
func fillGradientRGBA(buf []byte, h int, g canvas.Gradient) {
	for y := 0; y < h; y++ {
		t := (float64(y) + 0.5) / float64(h)
		putPremultiplied(buf[y*4:], g.At(t))
	}
}

func putPremultiplied(dst []byte, c color.NRGBA) {
	a := uint16(c.A)
	dst[0] = uint8((uint16(c.R)*a + 127) / 255)
	dst[1] = uint8((uint16(c.G)*a + 127) / 255)
	dst[2] = uint8((uint16(c.B)*a + 127) / 255)
	dst[3] = c.A
}

// glowLayer is one disc of a soft glow.
type glowLayer struct {
	radius float64
	alpha  float64
}

// glowLayers splits a glow of the given radius into n stacked discs, largest
// first. Stacked, the discs accumulate to roughly peak alpha at the center
// while the rim stays faint.
func glowLayers(radius, peak float64, n int) []glowLayer {
	if n < 1 || radius <= 0 || peak <= 0 {
		return nil
	}
	layers := make([]glowLayer, n)
	// per-layer alpha a such that 1-(1-a)^n == peak
	per := 1 - math.Pow(1-peak, 1/float64(n))
	for i := range layers {
		layers[i] = glowLayer{
			radius: radius * float64(n-i) / float64(n),
			alpha:  per,
		}
	}
	return layers
}
