package render

import (
	"image/color"
	"math"
	"testing"

	"ocean-fx/internal/canvas"
)

func TestFillGradientRGBA(t *testing.T) {
	g := canvas.VerticalGradient(color.NRGBA{R: 255, A: 255}, color.NRGBA{B: 255, A: 255})
	const h = 4
	buf := make([]byte, h*4)
	fillGradientRGBA(buf, h, g)
	if buf[0] <= buf[2] {
		t.Fatalf("top row should be mostly red, got %v", buf[:4])
	}
	last := buf[(h-1)*4:]
	if last[2] <= last[0] {
		t.Fatalf("bottom row should be mostly blue, got %v", last)
	}
	for y := 0; y < h; y++ {
		if buf[y*4+3] != 255 {
			t.Fatalf("row %d alpha = %d, expected opaque", y, buf[y*4+3])
		}
	}
}

func TestPremultipliedAlpha(t *testing.T) {
	dst := make([]byte, 4)
	putPremultiplied(dst, color.NRGBA{R: 255, G: 100, B: 0, A: 128})
	if dst[0] != 128 || dst[1] != 50 || dst[2] != 0 || dst[3] != 128 {
		t.Fatalf("premultiplied = %v", dst)
	}
}

func TestGlowLayersAccumulateToPeak(t *testing.T) {
	layers := glowLayers(30, 0.6, 5)
	if len(layers) != 5 {
		t.Fatalf("layers = %d", len(layers))
	}
	if layers[0].radius != 30 || layers[4].radius != 6 {
		t.Fatalf("radii %v..%v, expected 30..6", layers[0].radius, layers[4].radius)
	}
	covered := 1.0
	for _, l := range layers {
		covered *= 1 - l.alpha
	}
	if math.Abs((1-covered)-0.6) > 1e-9 {
		t.Fatalf("center alpha = %v, expected 0.6", 1-covered)
	}
	if glowLayers(0, 0.5, 3) != nil || glowLayers(10, 0, 3) != nil {
		t.Fatal("degenerate glow should produce no layers")
	}
}
